// Package bank stores and serves the pre-authored question bank. The bank is
// read-mostly content: questions arrive via bulk upsert (the ETL that produces
// them lives outside this service) and are queried by class/subject filters
// when a paper is being composed.
package bank

type QuestionType string

const (
	TypeMCQ   QuestionType = "mcq"
	TypeShort QuestionType = "short"
	TypeLong  QuestionType = "long"
)

type Question struct {
	ID            string       `json:"id"`
	ClassID       string       `json:"classId"`
	Subject       string       `json:"subject"`
	ChapterNumber int          `json:"chapterNumber,omitempty"`
	ChapterName   string       `json:"chapterName,omitempty"`
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"questionText"`
	Options       []string     `json:"options,omitempty"`       // mcq only
	CorrectOption *int         `json:"correctOption,omitempty"` // mcq only
	Difficulty    string       `json:"difficulty,omitempty"`
	Marks         int          `json:"marks"`
}

// Filter narrows a bank listing. Zero values mean "any".
type Filter struct {
	ClassID    string
	Subject    string
	Type       QuestionType
	Difficulty string
	Chapter    int
	Limit      int
	Offset     int
}
