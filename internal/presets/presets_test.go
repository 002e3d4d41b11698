package presets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sitegen-workers/internal/common/errors"
	"sitegen-workers/internal/models"
)

func TestBuiltin_AllValidAndUnique(t *testing.T) {
	seen := map[string]bool{}
	modes := map[string]bool{}
	for _, p := range Builtin() {
		require.NoError(t, Validate(p), p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		modes[p.Mode] = true
	}
	assert.True(t, modes[models.ModeAIDetection])
	assert.True(t, modes[models.ModeQuickstart])
	assert.True(t, modes[models.ModeRebuild])
}

func TestRegistry_GetReturnsCopies(t *testing.T) {
	r := Default()

	p, ok := r.Get("restaurant-l2")
	require.True(t, ok)
	p.Data.Pages[0] = "mutated"

	again, _ := r.Get("restaurant-l2")
	assert.Equal(t, "home", again.Data.Pages[0])

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_MustGet(t *testing.T) {
	_, err := Default().MustGet("missing")
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnknownPreset))
}

func TestRegistry_ListSorted(t *testing.T) {
	ids := Default().IDs()
	require.NotEmpty(t, ids)
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestRegistry_AddRejectsInvalid(t *testing.T) {
	r, err := NewRegistry()
	require.NoError(t, err)

	err = r.Add(models.GenerationPreset{ID: "x", Mode: "teleport", Data: models.PresetData{BusinessName: "X"}})
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, r.List())
}

func TestValidate(t *testing.T) {
	valid := models.GenerationPreset{ID: "ok", Mode: models.ModeQuickstart, Tier: "l3", Data: models.PresetData{BusinessName: "Ok"}}
	require.NoError(t, Validate(valid))

	cases := map[string]func(p *models.GenerationPreset){
		"empty id":           func(p *models.GenerationPreset) { p.ID = "" },
		"uppercase id":       func(p *models.GenerationPreset) { p.ID = "Bad" },
		"unknown mode":       func(p *models.GenerationPreset) { p.Mode = "magic" },
		"bad tier":           func(p *models.GenerationPreset) { p.Tier = "L9" },
		"missing name":       func(p *models.GenerationPreset) { p.Data.BusinessName = "" },
		"empty page":         func(p *models.GenerationPreset) { p.Data.Pages = []string{""} },
		"inspired no url":    func(p *models.GenerationPreset) { p.Mode = models.ModeInspired },
		"rebuild no url":     func(p *models.GenerationPreset) { p.Mode = models.ModeRebuild },
		"non-http reference": func(p *models.GenerationPreset) { p.Data.InspirationURL = "ftp://x" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := valid.Clone()
			mutate(&p)
			assert.True(t, apperrors.IsValidation(Validate(p)))
		})
	}
}

const presetYAML = `
presets:
  - id: corner-deli
    mode: quickstart
    tier: L2
    data:
      businessName: Corner Deli
      industry: restaurant
      pages: [home, menu]
      theme:
        primary: "#123456"
  - id: deli-inspired
    mode: inspired
    data:
      businessName: Corner Deli
      inspirationUrl: https://example.com/deli
`

func TestDecode(t *testing.T) {
	list, err := Decode(strings.NewReader(presetYAML))
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "corner-deli", list[0].ID)
	assert.Equal(t, []string{"home", "menu"}, list[0].Data.Pages)
	require.NotNil(t, list[0].Data.Theme)
	assert.Equal(t, "#123456", list[0].Data.Theme.Primary)
	assert.Equal(t, "https://example.com/deli", list[1].Data.InspirationURL)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader("presets:\n  - id: a\n    mode: quickstart\n    colour: red\n    data: {businessName: A}\n"))
	assert.True(t, apperrors.IsValidation(err), "unknown field")

	_, err = Decode(strings.NewReader("presets:\n  - {id: a, mode: quickstart, data: {businessName: A}}\n  - {id: a, mode: instant, data: {businessName: B}}\n"))
	assert.True(t, apperrors.IsValidation(err), "duplicate id")

	list, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLoadInto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(presetYAML), 0o644))
	r := Default()
	before := len(r.List())

	n, err := LoadInto(r, path)
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	assert.Len(t, r.List(), before+2)
	_, ok := r.Get("deli-inspired")
	assert.True(t, ok)

	n, err = LoadInto(r, "")
	assert.NoError(t, err)
	assert.Zero(t, n)

	_, err = LoadInto(r, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
