package paper

import "fmt"

// SectionMarks is the computed outcome for one question type.
type SectionMarks struct {
	Count        int `json:"count"`        // questions supplied
	AttemptCount int `json:"attemptCount"` // questions that count toward marks
	Total        int `json:"total"`
}

// Marks holds section and grand totals for a composition.
type Marks struct {
	MCQ   SectionMarks `json:"mcq"`
	Short SectionMarks `json:"short"`
	Long  SectionMarks `json:"long"`
	Total int          `json:"total"`
}

// CalculateMarks computes totals from the selected questions, attempt rules and
// per-type overrides. MCQ marks are never subject to an attempt rule. Selection
// order is significant: with no override active a section total is the sum of
// the individual marks of the first attemptCount questions as supplied.
func CalculateMarks(mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion, rules *AttemptRules, custom *CustomMarks) Marks {
	mcqMarks := make([]int, len(mcqs))
	for i, q := range mcqs {
		mcqMarks[i] = q.Marks
	}
	shortMarks := make([]int, len(shorts))
	for i, q := range shorts {
		shortMarks[i] = q.Marks
	}
	longMarks := make([]int, len(longs))
	for i, q := range longs {
		longMarks[i] = q.Marks
	}

	var mcqOverride, shortOverride, longOverride int
	if custom != nil {
		mcqOverride, shortOverride, longOverride = custom.MCQ, custom.Short, custom.Long
	}
	var shortAttempt, longAttempt int
	if rules != nil {
		shortAttempt, longAttempt = rules.ShortAttempt, rules.LongAttempt
	}

	m := Marks{
		MCQ:   sectionTotal(mcqMarks, 0, mcqOverride),
		Short: sectionTotal(shortMarks, shortAttempt, shortOverride),
		Long:  sectionTotal(longMarks, longAttempt, longOverride),
	}
	m.Total = m.MCQ.Total + m.Short.Total + m.Long.Total
	return m
}

// sectionTotal applies the effective-count and effective-mark rules for one
// section. attempt<=0 means no attempt rule; override<=0 means no override.
func sectionTotal(marks []int, attempt, override int) SectionMarks {
	count := len(marks)
	effective := count
	if attempt > 0 {
		effective = attempt
		if effective > count {
			effective = count // clamped; the validator warns about this
		}
	}
	s := SectionMarks{Count: count, AttemptCount: effective}
	if override > 0 {
		s.Total = effective * override
		return s
	}
	for _, mk := range marks[:effective] {
		s.Total += mk
	}
	return s
}

// PerQuestionMark resolves the mark shown beside a single question: the
// override when active, else the question's own marks field.
func PerQuestionMark(own, override int) int {
	if override > 0 {
		return override
	}
	return own
}

// AttemptText produces the section instruction shared verbatim by both
// renderers.
func AttemptText(attemptCount, supplied, sectionTotal int) string {
	if attemptCount >= supplied {
		return fmt.Sprintf("Attempt all (%d Questions = %d Marks)", supplied, sectionTotal)
	}
	return fmt.Sprintf("Attempt any %d of %d (%d Marks)", attemptCount, supplied, sectionTotal)
}
