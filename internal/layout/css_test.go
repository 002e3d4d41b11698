package layout

import (
	"testing"

	"sitegen-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestCSS_MapsStyleEnums(t *testing.T) {
	vars := CSSForID("warm")

	assert.Equal(t, "16px", vars.Radius)
	assert.Equal(t, "0 4px 16px rgba(0, 0, 0, 0.12)", vars.Shadow)
	assert.Equal(t, "5rem", vars.SectionSpacing)
	assert.Equal(t, "12px", vars.CardRadius)
}

func TestCSS_SoftShadow(t *testing.T) {
	assert.Equal(t, "0 2px 8px rgba(0, 0, 0, 0.08)", CSSForID("modern").Shadow)
}

func TestCSS_UnmappedValuesAreNone(t *testing.T) {
	l := models.LayoutConfig{Style: models.LayoutStyle{
		BorderRadius: "huge",
		Shadows:      "glow",
		Spacing:      "",
		CardStyle:    "neon",
	}}

	vars := CSS(l)
	assert.Equal(t, CSSVars{Radius: "none", Shadow: "none", SectionSpacing: "none", CardRadius: "none"}, vars)
}

func TestCSSForID_UnknownUsesDefault(t *testing.T) {
	assert.Equal(t, CSS(Default()), CSSForID("nope"))
}

func TestCSSVars_StringIsDeterministic(t *testing.T) {
	vars := CSSForID("minimal")
	want := ":root {\n" +
		"  --radius: 0;\n" +
		"  --shadow: none;\n" +
		"  --section-spacing: 7rem;\n" +
		"  --card-radius: 0;\n" +
		"}\n"

	assert.Equal(t, want, vars.String())
	assert.Equal(t, vars.String(), CSSForID("minimal").String())
	assert.Len(t, vars.Map(), 4)
	assert.Equal(t, "7rem", vars.Map()[VarSectionSpacing])
}

func TestColorCSS(t *testing.T) {
	css := ColorCSS(models.ColorTokens{Primary: "#111", Secondary: "#222", Accent: "#333", Background: "#fff", Text: "#000"})
	assert.Contains(t, css, "--color-primary: #111;")
	assert.Contains(t, css, "--color-text: #000;")
}
