package paper_test

import (
	"testing"

	"github.com/paperpress/paperpress-server/internal/paper"
)

func TestResolveLayoutDefaults(t *testing.T) {
	l := paper.ResolveLayout(nil)
	if l.HeaderLayout != paper.HeaderNormal || l.LogoSize != paper.LogoMedium ||
		l.FontSize != 12 || l.QuestionSpacing != paper.SpacingNormal ||
		l.McqStyle != paper.McqInline || l.BorderStyle != paper.BorderThin {
		t.Fatalf("unexpected defaults: %+v", l)
	}
	if l.ShowWatermark == nil || !*l.ShowWatermark {
		t.Error("watermark should default on")
	}
	if l.ShowBubbleSheet == nil || *l.ShowBubbleSheet {
		t.Error("bubble sheet should default off")
	}
	if l.ShowAnswerLines == nil || !*l.ShowAnswerLines {
		t.Error("answer lines should default on")
	}
}

func TestResolveLayoutPartialMerge(t *testing.T) {
	f := false
	partial := &paper.LayoutSettings{
		FontSize:      14,
		McqStyle:      paper.McqGrid,
		ShowWatermark: &f,
	}
	l := paper.ResolveLayout(partial)
	if l.FontSize != 14 || l.McqStyle != paper.McqGrid {
		t.Fatalf("caller fields lost: %+v", l)
	}
	if l.ShowWatermark == nil || *l.ShowWatermark {
		t.Error("explicit false must override the default")
	}
	if l.QuestionSpacing != paper.SpacingNormal || l.BorderStyle != paper.BorderThin {
		t.Errorf("untouched fields must keep defaults: %+v", l)
	}
}

func TestResolveLayoutClampsFontSize(t *testing.T) {
	if l := paper.ResolveLayout(&paper.LayoutSettings{FontSize: 4}); l.FontSize != 8 {
		t.Errorf("font 4 → %d, want clamp to 8", l.FontSize)
	}
	if l := paper.ResolveLayout(&paper.LayoutSettings{FontSize: 40}); l.FontSize != 18 {
		t.Errorf("font 40 → %d, want clamp to 18", l.FontSize)
	}
}

func TestLogoSizePx(t *testing.T) {
	cases := []struct {
		size   paper.LogoSize
		custom int
		want   int
	}{
		{paper.LogoSmall, 0, 30},
		{paper.LogoMedium, 0, 45},
		{paper.LogoLarge, 0, 60},
		{paper.LogoCustom, 52, 52},
		{paper.LogoCustom, 0, 45},
		{paper.LogoSize("bogus"), 0, 45},
	}
	for _, c := range cases {
		if got := paper.LogoSizePx(c.size, c.custom); got != c.want {
			t.Errorf("LogoSizePx(%q, %d) = %d, want %d", c.size, c.custom, got, c.want)
		}
	}
}

func TestSpacingPt(t *testing.T) {
	cases := []struct {
		spacing paper.QuestionSpacing
		want    int
	}{
		{paper.SpacingCompact, 2},
		{paper.SpacingNormal, 4},
		{paper.SpacingSpacious, 8},
		{paper.QuestionSpacing("bogus"), 4},
	}
	for _, c := range cases {
		if got := paper.SpacingPt(c.spacing); got != c.want {
			t.Errorf("SpacingPt(%q) = %d, want %d", c.spacing, got, c.want)
		}
	}
}
