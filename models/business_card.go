package models

import "time"

// Visual templates a business card can be rendered with.
const (
	TemplateModern       = "modern"
	TemplateClassic      = "classic"
	TemplateMinimal      = "minimal"
	TemplateCreative     = "creative"
	TemplateProfessional = "professional"
	TemplateTech         = "tech"
)

// Layout size options for fonts and logos.
const (
	SizeSmall  = "small"
	SizeMedium = "medium"
	SizeLarge  = "large"
)

// CardTemplates lists every valid template value.
var CardTemplates = []string{
	TemplateModern,
	TemplateClassic,
	TemplateMinimal,
	TemplateCreative,
	TemplateProfessional,
	TemplateTech,
}

// ValidTemplate reports whether t names a known card template.
func ValidTemplate(t string) bool {
	for _, known := range CardTemplates {
		if t == known {
			return true
		}
	}
	return false
}

// ValidSize reports whether s is one of small, medium or large.
func ValidSize(s string) bool {
	return s == SizeSmall || s == SizeMedium || s == SizeLarge
}

// BusinessCardData holds the printable content and styling of a card.
// It is a value object: the store never mutates it in place.
type BusinessCardData struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	JobTitle    string `json:"jobTitle"`
	Tagline     string `json:"tagline,omitempty"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`

	WeChat   string `json:"wechat,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`

	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	TextColor      string `json:"textColor"`

	LogoURL            string `json:"logoUrl,omitempty"`
	BackgroundImageURL string `json:"backgroundImageUrl,omitempty"`

	Template string `json:"template"`
	FontSize string `json:"fontSize"`
	LogoSize string `json:"logoSize"`
}

// SavedBusinessCard is a card persisted in the card store. At most one card
// per supplier may have IsDefault set; the store enforces this on every write.
type SavedBusinessCard struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	Data       BusinessCardData `json:"data"`
	SupplierID string           `json:"supplierId"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	IsDefault  bool             `json:"isDefault"`
	IsPublic   bool             `json:"isPublic"`
	Downloads  int              `json:"downloads"`
	Shares     int              `json:"shares"`
	Tags       []string         `json:"tags"`
}
