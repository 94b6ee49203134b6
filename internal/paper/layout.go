package paper

// HeaderLayout controls header block density.
type HeaderLayout string

const (
	HeaderCompact  HeaderLayout = "compact"
	HeaderNormal   HeaderLayout = "normal"
	HeaderSpacious HeaderLayout = "spacious"
)

// LogoSize selects a named logo size or a custom pixel value.
type LogoSize string

const (
	LogoSmall  LogoSize = "small"
	LogoMedium LogoSize = "medium"
	LogoLarge  LogoSize = "large"
	LogoCustom LogoSize = "custom"
)

// QuestionSpacing controls the vertical gap between question items.
type QuestionSpacing string

const (
	SpacingCompact  QuestionSpacing = "compact"
	SpacingNormal   QuestionSpacing = "normal"
	SpacingSpacious QuestionSpacing = "spacious"
)

// McqStyle selects how MCQ options are laid out.
type McqStyle string

const (
	McqInline      McqStyle = "inline"
	McqGrid        McqStyle = "grid"
	McqLettersOnly McqStyle = "letters_only"
)

// BorderStyle applies to the header info grid.
type BorderStyle string

const (
	BorderNone   BorderStyle = "none"
	BorderThin   BorderStyle = "thin"
	BorderMedium BorderStyle = "medium"
)

// LayoutSettings is the fully resolved set of rendering parameters. Any subset
// may be supplied by the caller; ResolveLayout fills the rest.
type LayoutSettings struct {
	HeaderLayout    HeaderLayout    `json:"headerLayout,omitempty"`
	LogoSize        LogoSize        `json:"logoSize,omitempty"`
	CustomLogoSize  int             `json:"customLogoSize,omitempty"` // pixels
	FontSize        int             `json:"fontSize,omitempty"`       // points, 8-18
	QuestionSpacing QuestionSpacing `json:"questionSpacing,omitempty"`
	McqStyle        McqStyle        `json:"mcqStyle,omitempty"`
	BorderStyle     BorderStyle     `json:"borderStyle,omitempty"`
	ShowWatermark   *bool           `json:"showWatermark,omitempty"`
	ShowBubbleSheet *bool           `json:"showBubbleSheet,omitempty"`
	ShowAnswerLines *bool           `json:"showAnswerLines,omitempty"`
	CustomCSS       string          `json:"customCSS,omitempty"`
}

// DefaultLayout returns the fixed defaults every paper starts from.
func DefaultLayout() LayoutSettings {
	t, f := true, false
	return LayoutSettings{
		HeaderLayout:    HeaderNormal,
		LogoSize:        LogoMedium,
		FontSize:        12,
		QuestionSpacing: SpacingNormal,
		McqStyle:        McqInline,
		BorderStyle:     BorderThin,
		ShowWatermark:   &t,
		ShowBubbleSheet: &f,
		ShowAnswerLines: &t,
	}
}

// ResolveLayout merges caller-supplied fields over the defaults. Pure; nil
// input yields the defaults.
func ResolveLayout(partial *LayoutSettings) LayoutSettings {
	out := DefaultLayout()
	if partial == nil {
		return out
	}
	if partial.HeaderLayout != "" {
		out.HeaderLayout = partial.HeaderLayout
	}
	if partial.LogoSize != "" {
		out.LogoSize = partial.LogoSize
	}
	if partial.CustomLogoSize > 0 {
		out.CustomLogoSize = partial.CustomLogoSize
	}
	if partial.FontSize != 0 {
		out.FontSize = clampFont(partial.FontSize)
	}
	if partial.QuestionSpacing != "" {
		out.QuestionSpacing = partial.QuestionSpacing
	}
	if partial.McqStyle != "" {
		out.McqStyle = partial.McqStyle
	}
	if partial.BorderStyle != "" {
		out.BorderStyle = partial.BorderStyle
	}
	if partial.ShowWatermark != nil {
		out.ShowWatermark = partial.ShowWatermark
	}
	if partial.ShowBubbleSheet != nil {
		out.ShowBubbleSheet = partial.ShowBubbleSheet
	}
	if partial.ShowAnswerLines != nil {
		out.ShowAnswerLines = partial.ShowAnswerLines
	}
	if partial.CustomCSS != "" {
		out.CustomCSS = partial.CustomCSS
	}
	return out
}

func clampFont(pt int) int {
	if pt < 8 {
		return 8
	}
	if pt > 18 {
		return 18
	}
	return pt
}

var logoPx = map[LogoSize]int{
	LogoSmall:  30,
	LogoMedium: 45,
	LogoLarge:  60,
}

// LogoSizePx maps a logo size to pixels. Both renderers use this table; they
// must never diverge.
func LogoSizePx(size LogoSize, custom int) int {
	if size == LogoCustom {
		if custom > 0 {
			return custom
		}
		return logoPx[LogoMedium]
	}
	if px, ok := logoPx[size]; ok {
		return px
	}
	return logoPx[LogoMedium]
}

var spacingPt = map[QuestionSpacing]int{
	SpacingCompact:  2,
	SpacingNormal:   4,
	SpacingSpacious: 8,
}

// SpacingPt maps question spacing to points of vertical margin.
func SpacingPt(spacing QuestionSpacing) int {
	if pt, ok := spacingPt[spacing]; ok {
		return pt
	}
	return spacingPt[SpacingNormal]
}
