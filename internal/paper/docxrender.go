package paper

import (
	"fmt"
	"strings"

	"github.com/paperpress/paperpress-server/internal/docx"
)

const docFont = "Times New Roman"

// RenderDocument maps the composition onto the word-processor document tree
// and packs it. Section order, question order and totals match the HTML
// renderer exactly: both consume the same CalculateMarks output.
func RenderDocument(settings Settings, mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion) ([]byte, error) {
	marks := CalculateMarks(mcqs, shorts, longs, settings.AttemptRules, settings.CustomMarks)

	var mcqOverride, shortOverride, longOverride int
	if settings.CustomMarks != nil {
		mcqOverride = settings.CustomMarks.MCQ
		shortOverride = settings.CustomMarks.Short
		longOverride = settings.CustomMarks.Long
	}

	d := docx.New()
	writeDocHeader(d, settings, marks.Total)

	sec := 0
	if len(mcqs) > 0 {
		sec++
		writeDocMCQSection(d, sec, mcqs, marks.MCQ, mcqOverride)
	}
	if len(shorts) > 0 || len(longs) > 0 {
		d.AddParagraph(docx.Paragraph{
			Align:         docx.AlignCenter,
			SpacingBefore: 300,
			Runs:          []docx.Run{{Text: "SUBJECTIVE PART", Bold: true, Size: 28, Font: docFont}},
		})
	}
	if len(shorts) > 0 {
		sec++
		title := fmt.Sprintf("Q%d: SHORT QUESTIONS", sec)
		writeDocSubjective(d, title, shortsAsRows(shorts, shortOverride), marks.Short, settings.AttemptRules != nil && settings.AttemptRules.ShortAttempt > 0, shortOverride)
	}
	if len(longs) > 0 {
		sec++
		title := fmt.Sprintf("Q%d: LONG QUESTIONS", sec)
		writeDocSubjective(d, title, longsAsRows(longs, longOverride), marks.Long, settings.AttemptRules != nil && settings.AttemptRules.LongAttempt > 0, longOverride)
	}

	d.AddParagraph(docx.Paragraph{
		Align:         docx.AlignCenter,
		SpacingBefore: 400,
		BorderTop:     &docx.ParagraphBorder{Style: docx.BorderSingle, Size: 1, Color: "CCCCCC"},
		Runs:          []docx.Run{{Text: "Generated with PaperPress", Italic: true, Size: 16, Font: docFont, Color: "666666"}},
	})

	return d.Pack()
}

func writeDocHeader(d *docx.Document, settings Settings, totalMarks int) {
	center := func(text string, size int, bold, italic bool, after int) {
		d.AddParagraph(docx.Paragraph{
			Align:        docx.AlignCenter,
			SpacingAfter: after,
			Runs:         []docx.Run{{Text: text, Bold: bold, Italic: italic, Size: size, Font: docFont}},
		})
	}

	if h := strings.TrimSpace(settings.CustomHeader); h != "" {
		center(h, 24, false, false, 0)
	}
	center(strings.ToUpper(settings.InstituteName), 36, true, false, 100)
	if h := strings.TrimSpace(settings.CustomSubHeader); h != "" {
		center(h, 22, false, false, 0)
	}
	center(fmt.Sprintf("%s - CLASS %s", strings.ToUpper(settings.Subject), strings.ToUpper(settings.ClassID)), 28, true, false, 100)
	if settings.ExamType != "" {
		center(settings.ExamType, 22, false, true, 100)
	}

	d.AddParagraph(docx.Paragraph{
		Align:        docx.AlignCenter,
		SpacingAfter: 200,
		BorderBottom: &docx.ParagraphBorder{Style: docx.BorderSingle, Size: 6, Color: "000000"},
		Runs: []docx.Run{{
			Text: fmt.Sprintf("Time: %s    Total Marks: %d    Date: %s", settings.TimeAllowed, totalMarks, settings.Date),
			Size: 20,
			Font: docFont,
		}},
	})

	// Name / Roll No fill-in row.
	label := func(text string) docx.Cell {
		return docx.Cell{
			WidthPct:   15,
			Paragraphs: []docx.Paragraph{{Runs: []docx.Run{{Text: text, Bold: true, Size: 20, Font: docFont}}}},
		}
	}
	blank := docx.Cell{WidthPct: 35, Paragraphs: []docx.Paragraph{{}}}
	d.AddTable(docx.Table{Rows: []docx.Row{{Cells: []docx.Cell{label("Name:"), blank, label("Roll No:"), blank}}}})
	d.AddParagraph(docx.Paragraph{SpacingBefore: 300})
}

func writeDocMCQSection(d *docx.Document, num int, mcqs []MCQQuestion, s SectionMarks, override int) {
	d.AddParagraph(docx.Paragraph{
		Align:         docx.AlignCenter,
		SpacingBefore: 200,
		SpacingAfter:  100,
		Runs:          []docx.Run{{Text: fmt.Sprintf("Q%d: OBJECTIVE / MCQs", num), Bold: true, Size: 24, Font: docFont}},
	})
	d.AddParagraph(docx.Paragraph{
		Align:        docx.AlignCenter,
		SpacingAfter: 150,
		Runs:         []docx.Run{{Text: "(" + sectionMarksText(s, override) + ")", Size: 20, Font: docFont}},
	})

	for i, q := range mcqs {
		optionCells := make([]docx.Cell, 0, 4)
		for oi := 0; oi < 4; oi++ {
			optionCells = append(optionCells, docx.Cell{
				WidthPct: 25,
				Paragraphs: []docx.Paragraph{{Runs: []docx.Run{
					{Text: fmt.Sprintf("%c: ", 'A'+oi), Bold: true, Size: 18, Font: docFont},
					{Text: opt(q.Options, oi), Size: 18, Font: docFont},
				}}},
			})
		}
		d.AddTable(docx.Table{Rows: []docx.Row{
			{Cells: []docx.Cell{
				{
					WidthPct:   5,
					Shade:      "F0F0F0",
					Paragraphs: []docx.Paragraph{{Align: docx.AlignCenter, Runs: []docx.Run{{Text: fmt.Sprintf("%d", i+1), Bold: true, Size: 20, Font: docFont}}}},
				},
				{
					WidthPct:   95,
					Paragraphs: []docx.Paragraph{{Runs: []docx.Run{{Text: q.QuestionText, Size: 20, Font: docFont}}}},
				},
			}},
			{Cells: []docx.Cell{{
				SpanCols: 2,
				Tables:   []docx.Table{{Borderless: true, Rows: []docx.Row{{Cells: optionCells}}}},
			}}},
		}})
		d.AddParagraph(docx.Paragraph{SpacingAfter: 100})
	}
}

type subjectiveRow struct {
	id    string
	text  string
	marks int
}

func shortsAsRows(shorts []ShortQuestion, override int) []subjectiveRow {
	rows := make([]subjectiveRow, len(shorts))
	for i, q := range shorts {
		rows[i] = subjectiveRow{id: q.ID, text: q.QuestionText, marks: PerQuestionMark(q.Marks, override)}
	}
	return rows
}

func longsAsRows(longs []LongQuestion, override int) []subjectiveRow {
	rows := make([]subjectiveRow, len(longs))
	for i, q := range longs {
		rows[i] = subjectiveRow{id: q.ID, text: q.QuestionText, marks: PerQuestionMark(q.Marks, override)}
	}
	return rows
}

func writeDocSubjective(d *docx.Document, title string, rows []subjectiveRow, s SectionMarks, attemptRuled bool, override int) {
	heading := title + " (" + sectionMarksText(s, override) + ")"
	if attemptRuled {
		heading = title + " (" + AttemptText(s.AttemptCount, s.Count, s.Total) + ")"
	}
	d.AddParagraph(docx.Paragraph{
		SpacingBefore: 200,
		SpacingAfter:  100,
		Runs:          []docx.Run{{Text: heading, Bold: true, Size: 22, Font: docFont}},
	})

	for i, row := range rows {
		d.AddParagraph(docx.Paragraph{
			SpacingAfter: 100,
			Runs: []docx.Run{
				{Text: fmt.Sprintf("%d. ", i+1), Bold: true, Size: 20, Font: docFont},
				{Text: row.text, Size: 20, Font: docFont},
				{Text: fmt.Sprintf(" [%d]", row.marks), Size: 16, Font: docFont, Color: "666666"},
			},
		})
	}
}
