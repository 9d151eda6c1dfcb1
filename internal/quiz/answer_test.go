package quiz

import "testing"

func numericQuestion(correct string, acceptable ...string) Question {
	return NewQuestion(KindAddition, CategoryArithmetic, Medium, "test", correct, acceptable, nil)
}

func TestValidate_ExactMatch(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		{"exact", "42", "42", true},
		{"trimmed", "  42  ", "42", true},
		{"case insensitive", "HALF", "half", true},
		{"empty", "", "42", false},
		{"whitespace only", "   ", "42", false},
		{"wrong", "43", "42", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.answer, numericQuestion(tt.correct))
			if got != tt.want {
				t.Errorf("Validate(%q) against %q = %v, want %v", tt.answer, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_DecimalSpellings(t *testing.T) {
	q := numericQuestion("30")
	if !Validate("30", q) {
		t.Error("Validate(\"30\") = false, want true")
	}
	if !Validate("30.0", q) {
		t.Error("Validate(\"30.0\") = false, want true")
	}
}

func TestValidate_Percentage(t *testing.T) {
	tests := []struct {
		answer  string
		correct string
		want    bool
	}{
		{"15%", "15", true},
		{"15", "15%", true},
		{"0.15", "15", true}, // decimal share spelling
		{"15.05", "15", true},
		{"14.5", "15", false},
		{"16", "15%", false},
		{"-20", "-20%", true},
	}

	for _, tt := range tests {
		got := Validate(tt.answer, numericQuestion(tt.correct))
		if got != tt.want {
			t.Errorf("Validate(%q) against %q = %v, want %v", tt.answer, tt.correct, got, tt.want)
		}
	}
}

func TestValidate_Fractions(t *testing.T) {
	tests := []struct {
		answer  string
		correct string
		want    bool
	}{
		{"1/2", "1/2", true},
		{"2/4", "1/2", true},
		{"3/6", "1/2", true},
		{"1/3", "1/2", false},
		{"1/0", "1/2", false},
		{"1/2/3", "1/2", false},
	}

	for _, tt := range tests {
		got := Validate(tt.answer, numericQuestion(tt.correct))
		if got != tt.want {
			t.Errorf("Validate(%q) against %q = %v, want %v", tt.answer, tt.correct, got, tt.want)
		}
	}
}

func TestValidate_NumericTolerance(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		correct string
		want    bool
	}{
		// |correct| > 10: relative bound of 1%, inclusive.
		{"1 percent off accepted", "101", "100", true},
		{"3 percent off rejected", "103", "100", false},
		{"large with commas", "1,000", "1000", true},
		// |correct| <= 10: absolute bound of 0.1.
		{"small close", "5.05", "5", true},
		{"small far", "5.2", "5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Validate(tt.answer, numericQuestion(tt.correct))
			if got != tt.want {
				t.Errorf("Validate(%q) against %q = %v, want %v", tt.answer, tt.correct, got, tt.want)
			}
		})
	}
}

func TestValidate_MalformedInputNeverPanics(t *testing.T) {
	q := numericQuestion("42")
	for _, input := range []string{"abc", "1/2/3", "%%", "4 2", "--5", "1/", "/2"} {
		if Validate(input, q) {
			t.Errorf("Validate(%q) = true, want false", input)
		}
	}
}

func TestValidate_AcceptableAnswerList(t *testing.T) {
	q := numericQuestion("0.67", "0.667", "0.6667")
	for _, input := range []string{"0.67", "0.667", "0.6667"} {
		if !Validate(input, q) {
			t.Errorf("Validate(%q) = false, want true", input)
		}
	}
}

func TestNewQuestion_CorrectAlwaysAcceptable(t *testing.T) {
	// Generator "forgot" to include the correct answer.
	q := NewQuestion(KindEstimation, CategoryEstimation, Hard, "Estimate", "50", []string{"49", "51"}, nil)

	found := false
	for _, a := range q.AcceptableAnswers {
		if a == "50" {
			found = true
		}
	}
	if !found {
		t.Error("CorrectAnswer missing from AcceptableAnswers")
	}

	if !Validate(q.CorrectAnswer, q) {
		t.Error("Validate(CorrectAnswer) = false, want true")
	}
}

func TestExtractPercentage(t *testing.T) {
	tests := []struct {
		text string
		want float64
		ok   bool
	}{
		{"15%", 15, true},
		{"15", 15, true},
		{"0.15", 15, true},
		{"1", 100, true},
		{"-50", -50, true},
		{"150", 0, false},
		{"abc", 0, false},
		{"abc%", 0, false},
	}

	for _, tt := range tests {
		v, ok := extractPercentage(tt.text)
		if ok != tt.ok || (ok && v != tt.want) {
			t.Errorf("extractPercentage(%q) = (%v, %v), want (%v, %v)", tt.text, v, ok, tt.want, tt.ok)
		}
	}
}
