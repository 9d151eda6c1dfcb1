package scoring

import (
	"testing"

	"github.com/abhisek/mathsprint/internal/quiz"
)

func TestBasePoints(t *testing.T) {
	if got := BasePoints(true); got != 100 {
		t.Errorf("BasePoints(true) = %d, want 100", got)
	}
	if got := BasePoints(false); got != 0 {
		t.Errorf("BasePoints(false) = %d, want 0", got)
	}
}

func TestComboMultiplier(t *testing.T) {
	tests := []struct {
		combo int
		want  float64
	}{
		{0, 1.0},
		{2, 1.0},
		{3, 1.5},
		{4, 1.5},
		{5, 2.0},
		{9, 2.0},
		{10, 2.5},
		{14, 2.5},
		{15, 3.0},
		{100, 3.0},
	}

	for _, tt := range tests {
		if got := ComboMultiplier(tt.combo); got != tt.want {
			t.Errorf("ComboMultiplier(%d) = %v, want %v", tt.combo, got, tt.want)
		}
	}
}

func TestComboMultiplier_NonDecreasing(t *testing.T) {
	prev := ComboMultiplier(0)
	for combo := 1; combo <= 30; combo++ {
		cur := ComboMultiplier(combo)
		if cur < prev {
			t.Fatalf("ComboMultiplier decreased at combo %d: %v -> %v", combo, prev, cur)
		}
		prev = cur
	}
	if ComboMultiplier(15) != 3.0 || ComboMultiplier(1000) != 3.0 {
		t.Error("ComboMultiplier should saturate at 3.0 for combo >= 15")
	}
}

func TestSpeedBonus(t *testing.T) {
	tests := []struct {
		time float64
		want int
	}{
		{0.5, 100},
		{1.99, 100},
		{2.0, 50},
		{2.99, 50},
		{3.0, 25},
		{4.99, 25},
		{5.0, 0},
		{30.0, 0},
	}

	for _, tt := range tests {
		if got := SpeedBonus(tt.time); got != tt.want {
			t.Errorf("SpeedBonus(%v) = %d, want %d", tt.time, got, tt.want)
		}
	}
}

func TestDifficultyMultiplier(t *testing.T) {
	tests := []struct {
		difficulty quiz.Difficulty
		want       float64
	}{
		{quiz.Easy, 1.0},
		{quiz.Medium, 1.5},
		{quiz.Hard, 2.0},
		{quiz.Adaptive, 1.5},
		{quiz.Difficulty("nightmare"), 1.0},
		{quiz.Difficulty(""), 1.0},
	}

	for _, tt := range tests {
		if got := DifficultyMultiplier(tt.difficulty); got != tt.want {
			t.Errorf("DifficultyMultiplier(%q) = %v, want %v", tt.difficulty, got, tt.want)
		}
	}
}

func TestQuestionScore_IncorrectAlwaysZero(t *testing.T) {
	for _, combo := range []int{0, 5, 20} {
		for _, d := range []quiz.Difficulty{quiz.Easy, quiz.Hard} {
			if got := QuestionScore(false, 0.1, d, combo); got != 0 {
				t.Errorf("QuestionScore(incorrect, combo=%d, %s) = %d, want 0", combo, d, got)
			}
		}
	}
}

func TestQuestionScore_Correct(t *testing.T) {
	tests := []struct {
		name       string
		time       float64
		difficulty quiz.Difficulty
		combo      int
		want       int
	}{
		// (100*1.0 + 100) * 1.0
		{"fast easy no combo", 1.0, quiz.Easy, 1, 200},
		// (100*1.5 + 50) * 1.5
		{"medium with combo 3", 2.5, quiz.Medium, 3, 300},
		// (100*3.0 + 0) * 2.0
		{"slow hard saturated combo", 10.0, quiz.Hard, 20, 600},
		// (100*1.0 + 25) * 1.5 = 187.5, truncated
		{"truncates fraction", 4.0, quiz.Medium, 1, 187},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := QuestionScore(true, tt.time, tt.difficulty, tt.combo)
			if got != tt.want {
				t.Errorf("QuestionScore = %d, want %d", got, tt.want)
			}
		})
	}
}
