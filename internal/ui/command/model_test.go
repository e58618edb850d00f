package command_test

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/context-game/internal/ui/command"
)

func TestParse(t *testing.T) {
	cases := map[string]command.Command{
		"tasks":            {Name: command.Tasks},
		"task code-review": {Name: command.Task, Arg: "code-review"},
		"  add  cs-faq  ":  {Name: command.Add, Arg: "cs-faq"},
		"rm cs-faq":        {Name: command.Remove, Arg: "cs-faq"},
		"CLEAR":            {Name: command.Clear},
		"q":                {Name: command.Quit},
		"report":           {Name: command.Report},
		"?":                {Name: command.Help},
	}

	for line, want := range cases {
		t.Run(line, func(t *testing.T) {
			got, err := command.Parse(line)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := command.Parse("configure")
	assert.True(t, errors.Is(err, command.ErrUnknownCommand))

	_, err = command.Parse("   ")
	assert.True(t, errors.Is(err, command.ErrUnknownCommand))

	_, err = command.Parse("add")
	assert.ErrorContains(t, err, "missing id")

	_, err = command.Parse("add a b")
	assert.ErrorContains(t, err, "too many arguments")
}

func TestUpdate_EnterEmitsCommand(t *testing.T) {
	m := command.New(80, 10)
	for _, r := range "clear" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, command.CommandMsg("clear"), cmd())
}

func TestUpdate_EscCancels(t *testing.T) {
	m := command.New(80, 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, command.CancelMsg{}, cmd())
}
