package paper

import (
	"fmt"
	"strings"
)

// ValidationIssue is a single field- or question-scoped message.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	QID     string `json:"questionId,omitempty"`
}

// ValidationResult collects every violation found in one pass.
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationIssue `json:"errors"`
	Warnings []ValidationIssue `json:"warnings"`
}

// Messages flattens errors into their display strings, in detection order.
func (r ValidationResult) Messages() []string {
	out := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		out = append(out, e.Message)
	}
	return out
}

// WarningMessages flattens warnings into their display strings.
func (r ValidationResult) WarningMessages() []string {
	out := make([]string, 0, len(r.Warnings))
	for _, w := range r.Warnings {
		out = append(out, w.Message)
	}
	return out
}

const (
	maxQuestions      = 100
	pageWarnThreshold = 8
)

// Validate checks a proposed composition for structural soundness. It is pure:
// running it twice on the same input yields the same issue lists. Renderers and
// the marks calculator must not run when the result is invalid.
func Validate(settings Settings, mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion) ValidationResult {
	var errs, warns []ValidationIssue

	requireField := func(v, field, label string) {
		if strings.TrimSpace(v) == "" {
			errs = append(errs, ValidationIssue{
				Code:    "MISSING_" + strings.ToUpper(field),
				Message: label + " is required",
				Field:   field,
			})
		}
	}
	requireField(settings.InstituteName, "instituteName", "Institute name")
	requireField(settings.Subject, "subject", "Subject")
	requireField(settings.ClassID, "classId", "Class")
	requireField(settings.Date, "date", "Date")
	requireField(settings.TimeAllowed, "timeAllowed", "Time allowed")

	for i, q := range mcqs {
		label := fmt.Sprintf("MCQ #%d", i+1)
		if strings.TrimSpace(q.QuestionText) == "" {
			errs = append(errs, ValidationIssue{Code: "EMPTY_QUESTION", Message: label + " has no question text", QID: q.ID})
		}
		if q.Marks <= 0 {
			errs = append(errs, ValidationIssue{Code: "INVALID_MARKS", Message: fmt.Sprintf("%s (%s) has non-positive marks", label, q.ID), QID: q.ID})
		}
		if len(q.Options) != 4 {
			errs = append(errs, ValidationIssue{Code: "MISSING_OPTIONS", Message: fmt.Sprintf("%s (%s) must have exactly 4 options", label, q.ID), QID: q.ID})
		} else {
			for oi, opt := range q.Options {
				if strings.TrimSpace(opt) == "" {
					errs = append(errs, ValidationIssue{
						Code:    "EMPTY_OPTION",
						Message: fmt.Sprintf("%s option %c is empty", label, 'A'+oi),
						QID:     q.ID,
					})
				}
			}
			if q.CorrectOption < 0 || q.CorrectOption > 3 {
				errs = append(errs, ValidationIssue{
					Code:    "INVALID_CORRECT_OPTION",
					Message: fmt.Sprintf("%s (%s) has no correct answer marked", label, q.ID),
					QID:     q.ID,
				})
			}
		}
	}
	for i, q := range shorts {
		if strings.TrimSpace(q.QuestionText) == "" {
			errs = append(errs, ValidationIssue{Code: "EMPTY_QUESTION", Message: fmt.Sprintf("Short Question #%d has no question text", i+1), QID: q.ID})
		}
		if q.Marks <= 0 {
			errs = append(errs, ValidationIssue{Code: "INVALID_MARKS", Message: fmt.Sprintf("Short Question #%d (%s) has non-positive marks", i+1, q.ID), QID: q.ID})
		}
	}
	for i, q := range longs {
		if strings.TrimSpace(q.QuestionText) == "" {
			errs = append(errs, ValidationIssue{Code: "EMPTY_QUESTION", Message: fmt.Sprintf("Long Question #%d has no question text", i+1), QID: q.ID})
		}
		if q.Marks <= 0 {
			errs = append(errs, ValidationIssue{Code: "INVALID_MARKS", Message: fmt.Sprintf("Long Question #%d (%s) has non-positive marks", i+1, q.ID), QID: q.ID})
		}
	}

	total := len(mcqs) + len(shorts) + len(longs)
	if total == 0 {
		errs = append(errs, ValidationIssue{Code: "NO_QUESTIONS", Message: "no questions selected"})
	}
	if total > maxQuestions {
		errs = append(errs, ValidationIssue{Code: "TOO_MANY_QUESTIONS", Message: fmt.Sprintf("maximum %d questions allowed", maxQuestions)})
	}

	if r := settings.AttemptRules; r != nil {
		if r.ShortAttempt > len(shorts) {
			warns = append(warns, ValidationIssue{
				Code:    "ATTEMPT_EXCEEDS_SUPPLIED",
				Message: fmt.Sprintf("short attempt rule asks for %d of %d supplied questions", r.ShortAttempt, len(shorts)),
			})
		}
		if r.LongAttempt > len(longs) {
			warns = append(warns, ValidationIssue{
				Code:    "ATTEMPT_EXCEEDS_SUPPLIED",
				Message: fmt.Sprintf("long attempt rule asks for %d of %d supplied questions", r.LongAttempt, len(longs)),
			})
		}
	}

	if pages := EstimatePages(len(mcqs), len(shorts), len(longs)); total > 0 && pages > pageWarnThreshold {
		warns = append(warns, ValidationIssue{
			Code:    "LARGE_PAPER",
			Message: fmt.Sprintf("estimated %d pages, consider splitting the paper", pages),
		})
	}

	if d := duplicateCount(mcqs, shorts, longs); d > 0 {
		warns = append(warns, ValidationIssue{
			Code:    "DUPLICATE_QUESTIONS",
			Message: fmt.Sprintf("%d duplicate question(s) found", d),
		})
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

func duplicateCount(mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion) int {
	seen := make(map[string]bool, len(mcqs)+len(shorts)+len(longs))
	dups := 0
	add := func(text string) {
		t := strings.ToLower(strings.TrimSpace(text))
		if t == "" {
			return
		}
		if seen[t] {
			dups++
			return
		}
		seen[t] = true
	}
	for _, q := range mcqs {
		add(q.QuestionText)
	}
	for _, q := range shorts {
		add(q.QuestionText)
	}
	for _, q := range longs {
		add(q.QuestionText)
	}
	return dups
}
