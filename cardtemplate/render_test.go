package cardtemplate

import (
	"testing"

	"chinetonusine-backend/models"

	"github.com/stretchr/testify/assert"
)

func baseData() models.BusinessCardData {
	return models.BusinessCardData{
		CompanyName:    "Ningbo Precision Tools",
		ContactName:    "Zhang Hua",
		Email:          "zhang@nbtools.example",
		Phone:          "+86 574 0000 0000",
		PrimaryColor:   "#1e3a8a",
		SecondaryColor: "#f59e0b",
		TextColor:      "#ffffff",
		Template:       models.TemplateModern,
		FontSize:       models.SizeMedium,
		LogoSize:       models.SizeMedium,
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	data := baseData()
	assert.Equal(t, Render(data, 1), Render(data, 1))
	assert.Equal(t, Render(data, 2.5), Render(data, 2.5))
}

func TestEachTemplateHasDistinctBackground(t *testing.T) {
	seen := make(map[string]string)
	for _, tpl := range models.CardTemplates {
		data := baseData()
		data.Template = tpl
		bg := Render(data, 1).Background
		if prev, dup := seen[bg]; dup {
			t.Fatalf("templates %s and %s share background %q", prev, tpl, bg)
		}
		seen[bg] = tpl
	}
}

func TestScaling(t *testing.T) {
	data := baseData()

	r := Render(data, 1)
	assert.Equal(t, BaseWidth, r.Width)
	assert.Equal(t, BaseHeight, r.Height)
	assert.Equal(t, 14, r.FontSizePx)
	assert.Equal(t, 56, r.LogoSizePx)

	doubled := Render(data, 2)
	assert.Equal(t, BaseWidth*2, doubled.Width)
	assert.Equal(t, 28, doubled.FontSizePx)
	assert.Equal(t, 112, doubled.LogoSizePx)

	// Non-positive scales fall back to 1.
	assert.Equal(t, r, Render(data, 0))
	assert.Equal(t, r, Render(data, -3))
}

func TestSizeEnums(t *testing.T) {
	data := baseData()

	data.FontSize = models.SizeSmall
	data.LogoSize = models.SizeLarge
	r := Render(data, 1)
	assert.Equal(t, 12, r.FontSizePx)
	assert.Equal(t, 72, r.LogoSizePx)

	// Unknown sizes resolve to medium.
	data.FontSize = "gigantic"
	data.LogoSize = ""
	r = Render(data, 1)
	assert.Equal(t, 14, r.FontSizePx)
	assert.Equal(t, 56, r.LogoSizePx)
}

func TestUnknownTemplateFallsBackToModern(t *testing.T) {
	data := baseData()
	data.Template = "baroque"

	r := Render(data, 1)
	assert.Equal(t, models.TemplateModern, r.Template)
	modern := baseData()
	assert.Equal(t, Render(modern, 1).Background, r.Background)
}

func TestOptionalFields(t *testing.T) {
	data := baseData()
	r := Render(data, 1)
	assert.Empty(t, r.OptionalFields)

	data.Tagline = "Quality first"
	data.WeChat = "nbtools"
	data.BackgroundImageURL = "https://cdn.example/bg.png"
	r = Render(data, 1)
	assert.Equal(t, []string{"tagline", "wechat", "backgroundImage"}, r.OptionalFields)
	assert.Equal(t, "https://cdn.example/bg.png", r.BackgroundImageURL)
}
