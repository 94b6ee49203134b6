package paper

// Difficulty levels carried by bank questions.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MCQQuestion is a multiple-choice question: four options, one correct index.
type MCQQuestion struct {
	ID            string     `json:"id"`
	QuestionText  string     `json:"questionText"`
	Options       []string   `json:"options"`
	CorrectOption int        `json:"correctOption"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Marks         int        `json:"marks"`
	ChapterNumber int        `json:"chapterNumber,omitempty"`
	ChapterName   string     `json:"chapterName,omitempty"`
}

// ShortQuestion is a short-answer question.
type ShortQuestion struct {
	ID            string     `json:"id"`
	QuestionText  string     `json:"questionText"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Marks         int        `json:"marks"`
	ChapterNumber int        `json:"chapterNumber,omitempty"`
	ChapterName   string     `json:"chapterName,omitempty"`
}

// LongQuestion is a long-answer question.
type LongQuestion struct {
	ID            string     `json:"id"`
	QuestionText  string     `json:"questionText"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Marks         int        `json:"marks"`
	ChapterNumber int        `json:"chapterNumber,omitempty"`
	ChapterName   string     `json:"chapterName,omitempty"`
}

// AttemptRules captures "attempt N of M" policies per optional-question section.
// MCQ sections are never attempt-ruled.
type AttemptRules struct {
	ShortAttempt int `json:"shortAttempt,omitempty"`
	ShortTotal   int `json:"shortTotal,omitempty"`
	LongAttempt  int `json:"longAttempt,omitempty"`
	LongTotal    int `json:"longTotal,omitempty"`
}

// CustomMarks overrides each question's own marks uniformly per type.
// Zero means "no override" for that type.
type CustomMarks struct {
	MCQ   int `json:"mcq,omitempty"`
	Short int `json:"short,omitempty"`
	Long  int `json:"long,omitempty"`
}

// Settings identifies which paper is being built. Carries no question data.
type Settings struct {
	InstituteName   string `json:"instituteName"`
	InstituteLogo   string `json:"instituteLogo,omitempty"`
	ExamType        string `json:"examType,omitempty"`
	Date            string `json:"date"`
	TimeAllowed     string `json:"timeAllowed"`
	ClassID         string `json:"classId"`
	Subject         string `json:"subject"`
	CustomHeader    string `json:"customHeader,omitempty"`
	CustomSubHeader string `json:"customSubHeader,omitempty"`
	ShowLogo        *bool  `json:"showLogo,omitempty"`

	AttemptRules *AttemptRules `json:"attemptRules,omitempty"`
	CustomMarks  *CustomMarks  `json:"customMarks,omitempty"`

	// IncludeAnswerSheet defaults bubbles on unless explicitly false.
	IncludeAnswerSheet *bool `json:"includeAnswerSheet,omitempty"`
}

// LogoVisible reports whether the rendered header should carry the logo.
func (s Settings) LogoVisible() bool {
	if s.InstituteLogo == "" {
		return false
	}
	return s.ShowLogo == nil || *s.ShowLogo
}

// BubblesEnabled reports the answer-sheet default-on semantics.
func (s Settings) BubblesEnabled() bool {
	return s.IncludeAnswerSheet == nil || *s.IncludeAnswerSheet
}

// ComposedPaper is the validated, render-ready tuple. Constructed per request,
// consumed by exactly one renderer, then discarded.
type ComposedPaper struct {
	Settings Settings
	Layout   LayoutSettings
	MCQs     []MCQQuestion
	Shorts   []ShortQuestion
	Longs    []LongQuestion
	Marks    Marks
	Pages    int
}

// Compose validates the selection and, on success, resolves everything the
// renderers need. The returned ValidationResult carries warnings even when
// composition succeeds.
func Compose(settings Settings, layout *LayoutSettings, mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion) (*ComposedPaper, ValidationResult) {
	res := Validate(settings, mcqs, shorts, longs)
	if !res.Valid {
		return nil, res
	}
	p := &ComposedPaper{
		Settings: settings,
		Layout:   ResolveLayout(layout),
		MCQs:     mcqs,
		Shorts:   shorts,
		Longs:    longs,
		Marks:    CalculateMarks(mcqs, shorts, longs, settings.AttemptRules, settings.CustomMarks),
		Pages:    EstimatePages(len(mcqs), len(shorts), len(longs)),
	}
	return p, res
}
