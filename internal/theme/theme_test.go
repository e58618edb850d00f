package theme_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/context-game/internal/model"
	"github.com/nhle/context-game/internal/theme"
)

func TestApply_Mono(t *testing.T) {
	t.Cleanup(func() { _ = theme.Apply(model.ThemeDefault) })
	accent := theme.ColorOrange

	require.NoError(t, theme.Apply(model.ThemeMono))
	assert.Equal(t, theme.ColorWhite, theme.ColorOrange)
	assert.Equal(t, theme.ColorWhite, theme.ItemColor(model.ItemTypeTool))
	assert.Equal(t, theme.ColorWhite, theme.FocusedPaneStyle.GetBorderTopForeground())

	require.NoError(t, theme.Apply(model.ThemeDefault))
	assert.Equal(t, accent, theme.ColorOrange)
	assert.Equal(t, theme.ColorOrange, theme.FocusedPaneStyle.GetBorderTopForeground())
}

func TestApply_Unknown(t *testing.T) {
	before := theme.ColorBlue
	err := theme.Apply("neon")
	assert.True(t, errors.Is(err, theme.ErrUnknownTheme))
	assert.Equal(t, before, theme.ColorBlue)
}
