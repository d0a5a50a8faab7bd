package checkout

// CardStyleRules is one styling variant for the card-input widget.
type CardStyleRules struct {
	FontWeight       string `json:"fontWeight,omitempty"`
	FontFamily       string `json:"fontFamily,omitempty"`
	FontSize         string `json:"fontSize,omitempty"`
	Color            string `json:"color,omitempty"`
	PlaceholderColor string `json:"placeholderColor,omitempty"`
}

// CardStyle is the styling configuration injected into the card-input
// widget at construction. The widget renders in an isolated iframe and
// cannot read the page's style variables, so the brand values are
// duplicated here as plain data.
type CardStyle struct {
	Base    CardStyleRules `json:"base"`
	Invalid CardStyleRules `json:"invalid"`
}

// DefaultCardStyle carries the storefront brand values.
var DefaultCardStyle = CardStyle{
	Base: CardStyleRules{
		FontWeight:       "500",
		FontFamily:       "system-ui, sans-serif",
		FontSize:         "14px",
		Color:            "#080808",
		PlaceholderColor: "#ccc",
	},
	Invalid: CardStyleRules{
		Color: "#e44138",
	},
}
