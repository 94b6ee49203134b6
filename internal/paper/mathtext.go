package paper

import (
	"regexp"
	"strings"
)

// Question text may embed LaTeX between $..$, $$..$$, \(..\) or \[..\]
// delimiters. Those fragments become katex placeholder spans rendered
// client-side; everything else is HTML-escaped.

// Alternation order matters: $$..$$ must win over $..$.
var mathDelims = regexp.MustCompile(`\$\$([^$]+)\$\$|\\\[([\s\S]+?)\\\]|\$([^$]+)\$|\\\(([^)]+)\\\)`)

// processMathInText walks the text once, escaping plain segments and wrapping
// math fragments in data-katex spans. Pure and deterministic.
func processMathInText(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	last := 0
	for _, m := range mathDelims.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(escapeHTML(text[last:m[0]]))

		latex, display := "", false
		switch {
		case m[2] >= 0: // $$..$$
			latex, display = text[m[2]:m[3]], true
		case m[4] >= 0: // \[..\]
			latex, display = text[m[4]:m[5]], true
		case m[6] >= 0: // $..$
			latex = text[m[6]:m[7]]
		case m[8] >= 0: // \(..\)
			latex = text[m[8]:m[9]]
		}
		class := "math-inline"
		if display {
			class = "math-display"
		}
		b.WriteString(`<span class="` + class + `" data-katex="` + escapeAttr(latex) + `"></span>`)
		last = m[1]
	}
	b.WriteString(escapeHTML(text[last:]))
	return b.String()
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
