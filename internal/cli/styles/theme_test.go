package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestNewThemeFromPalette(t *testing.T) {
	p := DefaultDarkPalette()
	p.Accent = "#00ff00"
	theme := NewThemeFromPalette(p)

	assert.Equal(t, lipgloss.Color("#00ff00"), theme.Accent)
	assert.Equal(t, theme.Accent, theme.Success)
	assert.Equal(t, lipgloss.Color(p.Background), theme.Badge.GetForeground())
	assert.Equal(t, theme.Accent, theme.Badge.GetBackground())
	assert.Equal(t, theme.Accent, theme.InputFocused.GetBorderTopForeground())
	assert.Equal(t, theme.Border, theme.Input.GetBorderTopForeground())
}
