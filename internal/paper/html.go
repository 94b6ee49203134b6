package paper

import (
	"fmt"
	"strconv"
	"strings"
)

// RenderPreviewHTML produces the on-screen/print HTML artifact. Output is
// byte-deterministic: no timestamps or generated ids beyond caller data.
func RenderPreviewHTML(settings Settings, layout LayoutSettings, mcqs []MCQQuestion, shorts []ShortQuestion, longs []LongQuestion, rules *AttemptRules, custom *CustomMarks, showBubbles bool) string {
	marks := CalculateMarks(mcqs, shorts, longs, rules, custom)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("  <meta charset=\"UTF-8\">\n")
	b.WriteString("  <meta name=\"viewport\" content=\"width=794, initial-scale=1.0\">\n")
	fmt.Fprintf(&b, "  <title>%s - Class %s</title>\n", escapeHTML(settings.Subject), escapeHTML(settings.ClassID))
	b.WriteString("  <link rel=\"stylesheet\" href=\"https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.css\">\n")
	b.WriteString("  <style>\n")
	b.WriteString(previewCSS(layout))
	if layout.CustomCSS != "" {
		b.WriteString(layout.CustomCSS)
		b.WriteString("\n")
	}
	b.WriteString("  </style>\n</head>\n<body>\n")

	writeHeader(&b, settings, layout, marks.Total)

	sec := 0
	var mcqOverride, shortOverride, longOverride int
	if custom != nil {
		mcqOverride, shortOverride, longOverride = custom.MCQ, custom.Short, custom.Long
	}

	if len(mcqs) > 0 {
		sec++
		writeMCQSection(&b, sec, mcqs, layout.McqStyle, marks.MCQ, mcqOverride)
	}
	if len(shorts) > 0 {
		sec++
		writeShortSection(&b, sec, shorts, rules, marks.Short, shortOverride, answerLines(layout, 3))
	}
	if len(longs) > 0 {
		sec++
		writeLongSection(&b, sec, longs, rules, marks.Long, longOverride, answerLines(layout, 5))
	}

	if showBubbles && len(mcqs) > 0 {
		writeBubbleSheet(&b, len(mcqs))
	}

	if layout.ShowWatermark == nil || *layout.ShowWatermark {
		b.WriteString("  <div class=\"watermark\">Generated with PaperPress</div>\n")
	}

	b.WriteString(katexScript)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func answerLines(layout LayoutSettings, n int) int {
	if layout.ShowAnswerLines != nil && !*layout.ShowAnswerLines {
		return 0
	}
	return n
}

func writeHeader(b *strings.Builder, settings Settings, layout LayoutSettings, totalMarks int) {
	b.WriteString("  <div class=\"header\">\n")
	if settings.LogoVisible() {
		px := LogoSizePx(layout.LogoSize, layout.CustomLogoSize)
		fmt.Fprintf(b, "    <div class=\"h-logo\"><img src=\"%s\" alt=\"Logo\" class=\"logo\" width=\"%d\" height=\"%d\"></div>\n",
			escapeAttr(settings.InstituteLogo), px, px)
	}
	if h := strings.TrimSpace(settings.CustomHeader); h != "" {
		fmt.Fprintf(b, "    <div class=\"h-custom\">%s</div>\n", escapeHTML(h))
	}
	fmt.Fprintf(b, "    <div class=\"h-school\">%s</div>\n", escapeHTML(strings.ToUpper(settings.InstituteName)))
	if h := strings.TrimSpace(settings.CustomSubHeader); h != "" {
		fmt.Fprintf(b, "    <div class=\"h-sub\">%s</div>\n", escapeHTML(h))
	}
	fmt.Fprintf(b, "    <div class=\"h-subject\">%s - CLASS %s</div>\n",
		escapeHTML(strings.ToUpper(settings.Subject)), escapeHTML(strings.ToUpper(settings.ClassID)))
	if settings.ExamType != "" {
		fmt.Fprintf(b, "    <div class=\"h-exam-type\">%s</div>\n", escapeHTML(settings.ExamType))
	}
	b.WriteString("  </div>\n")

	b.WriteString("  <div class=\"info-grid\">\n    <div class=\"info-row\">\n")
	writeInfoCell(b, "Subject:", escapeHTML(settings.Subject))
	writeInfoCell(b, "Class:", escapeHTML(settings.ClassID))
	writeInfoCell(b, "Time:", escapeHTML(settings.TimeAllowed))
	writeInfoCell(b, "Marks:", strconv.Itoa(totalMarks))
	b.WriteString("    </div>\n    <div class=\"info-row\">\n")
	writeInfoCell(b, "Date:", escapeHTML(settings.Date))
	writeInfoCell(b, "Name:", "")
	writeInfoCell(b, "Roll No:", "")
	writeInfoCell(b, "Signature:", "")
	b.WriteString("    </div>\n  </div>\n")
}

func writeInfoCell(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "      <div class=\"info-cell\"><span class=\"info-label\">%s</span><span class=\"info-value\">%s</span></div>\n", label, value)
}

func sectionHead(b *strings.Builder, class, title, marksText string) {
	fmt.Fprintf(b, "  <section class=\"section %s\">\n    <div class=\"sec-head\"><span class=\"sec-title\">%s</span><span class=\"sec-marks\">%s</span></div>\n",
		class, title, marksText)
}

func sectionMarksText(s SectionMarks, override int) string {
	if override > 0 {
		return fmt.Sprintf("%d × %d = %d Marks", s.AttemptCount, override, s.Total)
	}
	return fmt.Sprintf("%d Marks", s.Total)
}

func writeMCQSection(b *strings.Builder, num int, mcqs []MCQQuestion, style McqStyle, s SectionMarks, override int) {
	sectionHead(b, "mcq-section", fmt.Sprintf("Q%d: Objective (MCQs)", num), sectionMarksText(s, override))
	switch style {
	case McqGrid:
		for i, q := range mcqs {
			fmt.Fprintf(b, "    <div class=\"mcq-row\" data-question-id=\"%s\">\n", escapeAttr(q.ID))
			fmt.Fprintf(b, "      <div class=\"mq-stem\"><span class=\"mq-num\">%d.</span><span class=\"mq-text\">%s</span></div>\n", i+1, processMathInText(q.QuestionText))
			b.WriteString("      <table class=\"mq-grid\"><tr>")
			for oi := 0; oi < 2; oi++ {
				fmt.Fprintf(b, "<td>(%c) %s</td>", 'A'+oi, processMathInText(opt(q.Options, oi)))
			}
			b.WriteString("</tr><tr>")
			for oi := 2; oi < 4; oi++ {
				fmt.Fprintf(b, "<td>(%c) %s</td>", 'A'+oi, processMathInText(opt(q.Options, oi)))
			}
			b.WriteString("</tr></table>\n    </div>\n")
		}
	case McqLettersOnly:
		for i, q := range mcqs {
			fmt.Fprintf(b, "    <div class=\"mcq-row\" data-question-id=\"%s\">\n", escapeAttr(q.ID))
			fmt.Fprintf(b, "      <span class=\"mq-num\">%d.</span><span class=\"mq-text\">%s</span>\n", i+1, processMathInText(q.QuestionText))
			b.WriteString("      <span class=\"mq-opts\"><span class=\"mo\">(A)</span> <span class=\"mo\">(B)</span> <span class=\"mo\">(C)</span> <span class=\"mo\">(D)</span></span>\n    </div>\n")
		}
	default: // inline
		for i, q := range mcqs {
			fmt.Fprintf(b, "    <div class=\"mcq-row\" data-question-id=\"%s\">\n", escapeAttr(q.ID))
			fmt.Fprintf(b, "      <span class=\"mq-num\">%d.</span><span class=\"mq-text\">%s</span>\n", i+1, processMathInText(q.QuestionText))
			b.WriteString("      <span class=\"mq-opts\">")
			for oi := 0; oi < 4; oi++ {
				fmt.Fprintf(b, "<span class=\"mo\">(%c) %s</span> ", 'A'+oi, processMathInText(opt(q.Options, oi)))
			}
			b.WriteString("</span>\n    </div>\n")
		}
	}
	b.WriteString("  </section>\n")
}

func opt(options []string, i int) string {
	if i < len(options) {
		return options[i]
	}
	return ""
}

func writeShortSection(b *strings.Builder, num int, shorts []ShortQuestion, rules *AttemptRules, s SectionMarks, override, lines int) {
	marksText := sectionMarksText(s, override)
	if rules != nil && rules.ShortAttempt > 0 {
		marksText = AttemptText(s.AttemptCount, s.Count, s.Total)
	}
	sectionHead(b, "short-section", fmt.Sprintf("Q%d: Short Questions", num), marksText)
	for i, q := range shorts {
		writeQuestionRow(b, i+1, q.ID, q.QuestionText, PerQuestionMark(q.Marks, override), lines)
	}
	b.WriteString("  </section>\n")
}

func writeLongSection(b *strings.Builder, num int, longs []LongQuestion, rules *AttemptRules, s SectionMarks, override, lines int) {
	marksText := sectionMarksText(s, override)
	if rules != nil && rules.LongAttempt > 0 {
		marksText = AttemptText(s.AttemptCount, s.Count, s.Total)
	}
	sectionHead(b, "long-section", fmt.Sprintf("Q%d: Long Questions", num), marksText)
	for i, q := range longs {
		writeQuestionRow(b, i+1, q.ID, q.QuestionText, PerQuestionMark(q.Marks, override), lines)
	}
	b.WriteString("  </section>\n")
}

func writeQuestionRow(b *strings.Builder, num int, id, text string, marks, lines int) {
	fmt.Fprintf(b, "    <div class=\"q-row\" data-question-id=\"%s\"><span class=\"q-n\">%d.</span><span class=\"q-t\">%s</span><span class=\"q-m\">[%d]</span></div>\n",
		escapeAttr(id), num, processMathInText(text), marks)
	for i := 0; i < lines; i++ {
		b.WriteString("    <div class=\"answer-line\"></div>\n")
	}
}

func writeBubbleSheet(b *strings.Builder, mcqCount int) {
	b.WriteString("  <section class=\"section bubble-section\">\n    <div class=\"sec-head\"><span class=\"sec-title\">Answer Sheet</span></div>\n")
	for i := 1; i <= mcqCount; i++ {
		fmt.Fprintf(b, "    <div class=\"bubble-row\"><span class=\"bq-num\">%d</span>", i)
		for oi := 0; oi < 4; oi++ {
			fmt.Fprintf(b, "<span class=\"b-opt\"><span class=\"b-circle\"></span><span class=\"b-letter\">%c</span></span>", 'A'+oi)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("  </section>\n")
}

var headerPaddingPt = map[HeaderLayout]int{
	HeaderCompact:  2,
	HeaderNormal:   4,
	HeaderSpacious: 8,
}

func borderCSS(style BorderStyle) string {
	switch style {
	case BorderNone:
		return "none"
	case BorderMedium:
		return "1.5pt solid #000"
	default:
		return "0.5pt solid #000"
	}
}

func previewCSS(layout LayoutSettings) string {
	pad := headerPaddingPt[layout.HeaderLayout]
	if pad == 0 {
		pad = headerPaddingPt[HeaderNormal]
	}
	gap := SpacingPt(layout.QuestionSpacing)
	border := borderCSS(layout.BorderStyle)

	return fmt.Sprintf(`    * { margin: 0; padding: 0; box-sizing: border-box; }
    @page { size: A4; margin: 10mm 12mm; }
    body { font-family: 'Times New Roman', Times, serif; font-size: %dpt; line-height: 1.25; color: #000; background: #fff; }
    .header { text-align: center; padding: %dpt 6pt; }
    .h-logo { margin-bottom: 2pt; }
    .logo { object-fit: contain; }
    .h-school { font-size: 18pt; font-weight: bold; letter-spacing: 0.5pt; }
    .h-custom, .h-sub { font-size: 9pt; font-weight: bold; margin-top: 1pt; }
    .h-subject { font-size: 13pt; font-weight: 600; margin-top: 1pt; }
    .h-exam-type { font-size: 10pt; font-style: italic; margin-top: 1pt; }
    .info-grid { border: %s; margin-bottom: 4pt; }
    .info-row { display: flex; border-bottom: %s; }
    .info-row:last-child { border-bottom: none; }
    .info-cell { flex: 1; display: flex; border-right: %s; }
    .info-cell:last-child { border-right: none; }
    .info-label { background: #f0f0f0; padding: 2pt 4pt; font-size: 8pt; font-weight: bold; min-width: 38pt; }
    .info-value { flex: 1; padding: 2pt 4pt; font-size: 9pt; min-height: 12pt; }
    .section { page-break-inside: avoid; }
    .sec-head { display: flex; justify-content: space-between; align-items: baseline; padding: 3pt 0; margin-bottom: 3pt; }
    .sec-title { font-size: 12pt; font-weight: bold; }
    .sec-marks { font-size: 9pt; font-weight: bold; }
    .mcq-row { display: flex; flex-wrap: wrap; align-items: flex-start; margin-bottom: %dpt; border-bottom: 0.25pt solid #ccc; }
    .mcq-row:last-child { border-bottom: none; }
    .mq-stem { flex-basis: 100%%; }
    .mq-num { font-weight: bold; min-width: 12pt; flex-shrink: 0; }
    .mq-text { margin-right: 4pt; }
    .mq-opts { display: flex; flex-wrap: wrap; gap: 1pt 6pt; flex: 1; }
    .mq-grid { width: 100%%; border-collapse: collapse; }
    .mq-grid td { width: 50%%; padding: 1pt 4pt; }
    .q-row { display: flex; align-items: flex-start; margin-bottom: %dpt; }
    .q-n { font-weight: bold; min-width: 14pt; flex-shrink: 0; }
    .q-t { flex: 1; text-align: justify; }
    .q-m { color: #333; margin-left: 3pt; flex-shrink: 0; font-weight: bold; font-size: 0.85em; }
    .answer-line { border-bottom: 0.5pt solid #999; height: 14pt; margin: 0 14pt 2pt 14pt; }
    .bubble-section { border: 0.5pt solid #000; padding: 3pt; margin-top: 6pt; }
    .bubble-row { display: flex; align-items: center; gap: 6pt; margin-bottom: 2pt; }
    .bq-num { font-size: 8pt; font-weight: bold; min-width: 14pt; text-align: right; }
    .b-opt { display: inline-flex; align-items: center; gap: 1pt; }
    .b-circle { display: inline-block; width: 8pt; height: 8pt; border: 0.5pt solid #000; border-radius: 50%%; }
    .b-letter { font-size: 6pt; font-weight: bold; }
    .watermark { position: fixed; bottom: 0; left: 0; right: 0; text-align: center; font-size: 6pt; color: #666; padding: 1pt 0; border-top: 0.25pt solid #ccc; background: #fff; }
    .math-inline { display: inline; margin: 0 1pt; }
    .math-display { display: block; text-align: center; margin: 3pt 0; }
    @media print {
      body { print-color-adjust: exact; -webkit-print-color-adjust: exact; }
      .q-row, .mcq-row { page-break-inside: avoid; }
    }
`, layout.FontSize, pad, border, border, border, gap, gap)
}

const katexScript = `  <script src="https://cdn.jsdelivr.net/npm/katex@0.16.9/dist/katex.min.js"></script>
  <script>
    (function() {
      function renderMath() {
        if (typeof katex === 'undefined') return;
        document.querySelectorAll('[data-katex]').forEach(function(el) {
          var latex = el.getAttribute('data-katex');
          if (!latex || latex.trim() === '') return;
          try {
            katex.render(latex, el, { displayMode: el.classList.contains('math-display'), throwOnError: false, output: 'html', strict: false });
          } catch (e) {
            el.textContent = '[Math: ' + latex + ']';
          }
        });
      }
      if (document.readyState === 'complete') { renderMath(); }
      else { window.addEventListener('load', renderMath); }
    })();
  </script>
`
