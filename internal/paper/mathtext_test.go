package paper

import "testing"

func TestProcessMathInText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"a < b & c", "a &lt; b &amp; c"},
		{
			"solve $x^2$ now",
			`solve <span class="math-inline" data-katex="x^2"></span> now`,
		},
		{
			"$$\\frac{a}{b}$$",
			`<span class="math-display" data-katex="\frac{a}{b}"></span>`,
		},
		{
			`\(e^x\)`,
			`<span class="math-inline" data-katex="e^x"></span>`,
		},
		{
			`before \[\sum_i i\] after`,
			`before <span class="math-display" data-katex="\sum_i i"></span> after`,
		},
	}
	for _, c := range cases {
		if got := processMathInText(c.in); got != c.want {
			t.Errorf("processMathInText(%q)\n got  %q\n want %q", c.in, got, c.want)
		}
	}
}

// Inline and display fragments must keep their source order.
func TestProcessMathInTextMixedOrder(t *testing.T) {
	got := processMathInText("a $x$ b $$y$$ c")
	want := `a <span class="math-inline" data-katex="x"></span> b <span class="math-display" data-katex="y"></span> c`
	if got != want {
		t.Fatalf("got  %q\nwant %q", got, want)
	}
}

func TestEscapeAttrQuotes(t *testing.T) {
	got := processMathInText(`$a"b$`)
	want := `<span class="math-inline" data-katex="a&quot;b"></span>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
