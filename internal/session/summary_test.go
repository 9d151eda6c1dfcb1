package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/mathsprint/internal/quiz"
)

func TestBuildSummary(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	q := quiz.NewQuestion(quiz.KindAddition, quiz.CategoryArithmetic, quiz.Medium, "2 + 2", "4", nil, nil)

	state := &State{
		ID:         "abc-123",
		Config:     sprintConfig(time.Minute),
		StartTime:  start,
		TotalScore: 450,
		Answered: []QuestionResult{
			{Question: q, UserAnswer: "4", IsCorrect: true, TimeTaken: 1.5, Timestamp: start.Add(1500 * time.Millisecond)},
			{Question: q, UserAnswer: "5", IsCorrect: false, TimeTaken: 2.0, Timestamp: start.Add(3500 * time.Millisecond)},
			{Question: q, UserAnswer: "4", IsCorrect: true, TimeTaken: 3.33, Timestamp: start.Add(6830 * time.Millisecond)},
		},
		IsComplete: true,
	}

	s := BuildSummary(state)

	if s.UUID != "abc-123" {
		t.Errorf("UUID = %q", s.UUID)
	}
	if s.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", s.TotalQuestions)
	}
	if s.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", s.CorrectAnswers)
	}
	if s.TotalScore != 450 {
		t.Errorf("TotalScore = %d, want 450", s.TotalScore)
	}
	// mean of 1.5, 2.0, 3.33 is 2.2766..., rounded to 2.28.
	if s.AvgTimePerQuestion != 2.28 {
		t.Errorf("AvgTimePerQuestion = %v, want 2.28", s.AvgTimePerQuestion)
	}
	if s.DurationSeconds != 6 {
		t.Errorf("DurationSeconds = %d, want 6", s.DurationSeconds)
	}
	if got := s.Accuracy(); got < 0.666 || got > 0.667 {
		t.Errorf("Accuracy = %v, want ~0.667", got)
	}

	// Same history, same aggregates.
	again := BuildSummary(state)
	if !reflect.DeepEqual(s, again) {
		t.Error("BuildSummary is not deterministic for identical state")
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	state := &State{ID: "x", StartTime: time.Now()}
	s := BuildSummary(state)

	if s.TotalQuestions != 0 || s.AvgTimePerQuestion != 0 || s.DurationSeconds != 0 {
		t.Errorf("empty summary has non-zero aggregates: %+v", s)
	}
	if s.Accuracy() != 0 {
		t.Errorf("Accuracy = %v, want 0", s.Accuracy())
	}
}
