// Package cardtemplate maps business-card data and a template name to a
// concrete style descriptor. Rendering is a pure function: same input, same
// output, no state.
package cardtemplate

import (
	"fmt"
	"math"

	"chinetonusine-backend/models"
)

// Base card dimensions in pixels before scaling (standard 85.6x54mm ratio).
const (
	BaseWidth  = 350
	BaseHeight = 200
)

// RenderedCard is the resolved visual treatment for one card.
type RenderedCard struct {
	Template string `json:"template"`

	Width  int `json:"width"`
	Height int `json:"height"`

	Background  string `json:"background"`
	TextColor   string `json:"textColor"`
	AccentColor string `json:"accentColor"`

	FontSizePx int `json:"fontSizePx"`
	LogoSizePx int `json:"logoSizePx"`

	// Optional fields present in the data, in display order.
	OptionalFields []string `json:"optionalFields"`

	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`
	LogoURL            string `json:"logoUrl,omitempty"`
}

var fontSizes = map[string]int{
	models.SizeSmall:  12,
	models.SizeMedium: 14,
	models.SizeLarge:  16,
}

var logoSizes = map[string]int{
	models.SizeSmall:  40,
	models.SizeMedium: 56,
	models.SizeLarge:  72,
}

// Render resolves data into a style descriptor at the given scale. Unknown
// template and size values fall back to the modern template and medium sizes.
func Render(data models.BusinessCardData, scale float64) RenderedCard {
	if scale <= 0 {
		scale = 1
	}

	out := RenderedCard{
		Template:           data.Template,
		Width:              scaled(BaseWidth, scale),
		Height:             scaled(BaseHeight, scale),
		Background:         background(data),
		TextColor:          data.TextColor,
		AccentColor:        data.SecondaryColor,
		FontSizePx:         scaled(sizeOrMedium(fontSizes, data.FontSize), scale),
		LogoSizePx:         scaled(sizeOrMedium(logoSizes, data.LogoSize), scale),
		OptionalFields:     optionalFields(data),
		BackgroundImageURL: data.BackgroundImageURL,
		LogoURL:            data.LogoURL,
	}
	if !models.ValidTemplate(out.Template) {
		out.Template = models.TemplateModern
	}
	if out.TextColor == "" {
		out.TextColor = "#ffffff"
	}
	return out
}

// background picks the CSS treatment for the card's template. Six fixed
// variants, all derived from the card's own palette.
func background(data models.BusinessCardData) string {
	p, s, t := data.PrimaryColor, data.SecondaryColor, data.TextColor
	switch data.Template {
	case models.TemplateClassic:
		return fmt.Sprintf("%s solid, border 2px %s", p, s)
	case models.TemplateMinimal:
		return fmt.Sprintf("#ffffff solid, accent-bar %s", p)
	case models.TemplateCreative:
		return fmt.Sprintf("radial-gradient(circle at 20%% 20%%, %s, %s 60%%, %s)", s, p, t)
	case models.TemplateProfessional:
		return fmt.Sprintf("linear-gradient(to right, %s 35%%, %s 35%%)", p, s)
	case models.TemplateTech:
		return fmt.Sprintf("linear-gradient(160deg, #0b1120, %s), grid-overlay %s", p, s)
	default: // modern
		return fmt.Sprintf("linear-gradient(135deg, %s, %s)", p, s)
	}
}

// optionalFields lists which optional data fields should be rendered.
func optionalFields(data models.BusinessCardData) []string {
	fields := []string{}
	if data.Tagline != "" {
		fields = append(fields, "tagline")
	}
	if data.Website != "" {
		fields = append(fields, "website")
	}
	if data.Address != "" {
		fields = append(fields, "address")
	}
	if data.WeChat != "" {
		fields = append(fields, "wechat")
	}
	if data.WhatsApp != "" {
		fields = append(fields, "whatsapp")
	}
	if data.LinkedIn != "" {
		fields = append(fields, "linkedin")
	}
	if data.BackgroundImageURL != "" {
		fields = append(fields, "backgroundImage")
	}
	return fields
}

func sizeOrMedium(table map[string]int, size string) int {
	if px, ok := table[size]; ok {
		return px
	}
	return table[models.SizeMedium]
}

func scaled(base int, scale float64) int {
	return int(math.Round(float64(base) * scale))
}
