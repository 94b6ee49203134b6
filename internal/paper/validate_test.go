package paper_test

import (
	"reflect"
	"testing"

	"github.com/paperpress/paperpress-server/internal/paper"
)

func validSettings() paper.Settings {
	return paper.Settings{
		InstituteName: "City Grammar School",
		Subject:       "Physics",
		ClassID:       "10th",
		Date:          "2026-03-14",
		TimeAllowed:   "2 Hours",
	}
}

func hasCode(issues []paper.ValidationIssue, code string) bool {
	for _, i := range issues {
		if i.Code == code {
			return true
		}
	}
	return false
}

func TestValidateZeroQuestions(t *testing.T) {
	res := paper.Validate(validSettings(), nil, nil, nil)
	if res.Valid {
		t.Fatal("expected invalid result for zero questions")
	}
	if !hasCode(res.Errors, "NO_QUESTIONS") {
		t.Fatalf("expected NO_QUESTIONS error, got %+v", res.Errors)
	}
}

func TestValidateMissingFields(t *testing.T) {
	res := paper.Validate(paper.Settings{}, mcqN(1, 1), nil, nil)
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	for _, field := range []string{"instituteName", "subject", "classId", "date", "timeAllowed"} {
		found := false
		for _, e := range res.Errors {
			if e.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing error for field %s", field)
		}
	}
}

func TestValidateMCQShape(t *testing.T) {
	bad := []paper.MCQQuestion{
		{ID: "q1", QuestionText: "three options only", Options: []string{"a", "b", "c"}, Marks: 1},
		{ID: "q2", QuestionText: "bad correct index", Options: []string{"a", "b", "c", "d"}, CorrectOption: 7, Marks: 1},
		{ID: "q3", QuestionText: "zero marks", Options: []string{"a", "b", "c", "d"}, Marks: 0},
	}
	res := paper.Validate(validSettings(), bad, nil, nil)
	if res.Valid {
		t.Fatal("expected invalid result")
	}
	for _, want := range []string{"MISSING_OPTIONS", "INVALID_CORRECT_OPTION", "INVALID_MARKS"} {
		if !hasCode(res.Errors, want) {
			t.Errorf("expected %s error, got %+v", want, res.Errors)
		}
	}
	// Errors are question-scoped.
	for _, e := range res.Errors {
		if e.QID == "" {
			t.Errorf("error %s lacks a question id", e.Code)
		}
	}
}

func TestValidateAttemptRuleWarning(t *testing.T) {
	s := validSettings()
	s.AttemptRules = &paper.AttemptRules{ShortAttempt: 9, ShortTotal: 9}
	res := paper.Validate(s, nil, shortN(3, 2), nil)
	if !res.Valid {
		t.Fatalf("warnings must not fail validation: %+v", res.Errors)
	}
	if !hasCode(res.Warnings, "ATTEMPT_EXCEEDS_SUPPLIED") {
		t.Fatalf("expected ATTEMPT_EXCEEDS_SUPPLIED warning, got %+v", res.Warnings)
	}
}

func TestValidateDuplicateWarning(t *testing.T) {
	shorts := []paper.ShortQuestion{
		{ID: "s1", QuestionText: "Define velocity.", Marks: 2},
		{ID: "s2", QuestionText: "define velocity.", Marks: 2},
	}
	res := paper.Validate(validSettings(), nil, shorts, nil)
	if !res.Valid {
		t.Fatalf("unexpected errors: %+v", res.Errors)
	}
	if !hasCode(res.Warnings, "DUPLICATE_QUESTIONS") {
		t.Fatalf("expected DUPLICATE_QUESTIONS warning, got %+v", res.Warnings)
	}
}

func TestValidateTooManyQuestions(t *testing.T) {
	res := paper.Validate(validSettings(), nil, shortN(101, 2), nil)
	if res.Valid || !hasCode(res.Errors, "TOO_MANY_QUESTIONS") {
		t.Fatalf("expected TOO_MANY_QUESTIONS, got %+v", res.Errors)
	}
}

func TestValidateIdempotent(t *testing.T) {
	s := paper.Settings{Subject: "Physics"}
	mcqs := []paper.MCQQuestion{{ID: "q1", Options: []string{"a"}, Marks: 0}}
	first := paper.Validate(s, mcqs, nil, nil)
	second := paper.Validate(s, mcqs, nil, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("validation not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComposeRefusesInvalid(t *testing.T) {
	composed, res := paper.Compose(paper.Settings{}, nil, nil, nil, nil)
	if composed != nil {
		t.Fatal("Compose must not build a paper from an invalid selection")
	}
	if res.Valid {
		t.Fatal("expected invalid result")
	}
}

func TestComposeComputesMarksAndPages(t *testing.T) {
	composed, res := paper.Compose(validSettings(), nil, mcqN(2, 1), shortN(2, 2), nil)
	if composed == nil {
		t.Fatalf("unexpected validation failure: %+v", res.Errors)
	}
	if composed.Marks.Total != 6 {
		t.Fatalf("total = %d, want 6", composed.Marks.Total)
	}
	if composed.Pages != paper.EstimatePages(2, 2, 0) {
		t.Fatalf("pages = %d, want %d", composed.Pages, paper.EstimatePages(2, 2, 0))
	}
	if composed.Layout.FontSize != 12 {
		t.Fatalf("layout not resolved to defaults: %+v", composed.Layout)
	}
}
