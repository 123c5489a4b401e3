package styles_test

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/lnlst/pkg/ui/output/styles"
)

// loadDefaultStyles resets the registry to the shipped style sheet.
func loadDefaultStyles(t *testing.T) {
	t.Helper()
	data, err := os.ReadFile("styles.yaml")
	require.NoError(t, err)
	require.NoError(t, styles.LoadStylesFromData(data))
}

func TestStyleRegistry(t *testing.T) {
	loadDefaultStyles(t)

	expectedStyles := []string{
		"Success", "Warning", "Error", "Info", "Muted",
		"Bold", "Italic", "FilePath", "LinkName", "Summary",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := styles.StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle(t *testing.T) {
	loadDefaultStyles(t)

	assert.True(t, styles.GetStyle("Success").GetBold())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#cf222e", Dark: "#f85149"}, styles.GetStyle("Error").GetForeground())

	unknown := styles.GetStyle("DoesNotExist")
	assert.False(t, unknown.GetBold())
	assert.Equal(t, "plain", unknown.Render("plain"))
}

func TestMergeStyles(t *testing.T) {
	loadDefaultStyles(t)

	merged := styles.MergeStyles("Italic", "Error")
	assert.True(t, merged.GetItalic())
	assert.True(t, merged.GetBold())
}

func TestRenderHonoursColorProfile(t *testing.T) {
	loadDefaultStyles(t)

	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.TrueColor)
	colored := styles.GetStyle("Success").Renderer(renderer).Render("OK")
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "OK")

	renderer.SetColorProfile(termenv.Ascii)
	plain := styles.GetStyle("Success").Renderer(renderer).Render("OK")
	assert.NotContains(t, plain, "\x1b[3")
}

func TestLoadStylesErrors(t *testing.T) {
	t.Cleanup(func() { loadDefaultStyles(t) })

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [unclosed")))
	assert.Error(t, styles.LoadStylesFromData([]byte("colors: {}\n")))

	custom := []byte("colors:\n  c:\n    light: \"#000000\"\n    dark: \"#ffffff\"\nstyles:\n  Only:\n    underline: true\n    foreground: c\n    paddingLeft: 2\n")
	require.NoError(t, styles.LoadStylesFromData(custom))
	assert.True(t, styles.GetStyle("Only").GetUnderline())
	assert.Equal(t, 2, styles.GetStyle("Only").GetPaddingLeft())
}
