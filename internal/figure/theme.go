package figure

// Margin is the plot margin in pixels.
type Margin struct {
	Top    int `json:"t"`
	Bottom int `json:"b"`
	Left   int `json:"l"`
	Right  int `json:"r"`
}

// Theme is the visual style shared by every chart on the dashboard.
type Theme struct {
	PaperBackground string   `json:"paper_bgcolor"`
	PlotBackground  string   `json:"plot_bgcolor"`
	Margin          Margin   `json:"margin"`
	Palette         []string `json:"palette"`
	LineColor       string   `json:"line_color"`
	LineWidth       float64  `json:"line_width"`
	ColorScale      string   `json:"color_scale"`
}

// DefaultTheme returns the dashboard theme: transparent backgrounds, tight
// margins, a dark slate line colour and the "Blues" continuous scale.
func DefaultTheme() Theme {
	return Theme{
		PaperBackground: "rgba(0,0,0,0)",
		PlotBackground:  "rgba(0,0,0,0)",
		Margin:          Margin{Top: 20, Bottom: 20, Left: 40, Right: 20},
		Palette: []string{
			"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
			"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
			"#14B8A6", "#A855F7",
		},
		LineColor:  "#2c3e50",
		LineWidth:  2,
		ColorScale: "Blues",
	}
}

// color returns palette entry i, wrapping around.
func (t Theme) color(i int) string {
	if len(t.Palette) == 0 {
		return ""
	}
	return t.Palette[i%len(t.Palette)]
}

// clone returns a copy that shares no slices with t.
func (t Theme) clone() *Theme {
	cp := t
	cp.Palette = append([]string(nil), t.Palette...)
	return &cp
}
