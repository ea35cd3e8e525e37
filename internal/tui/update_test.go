package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func heroClass(m Model) string {
	for i, item := range m.items {
		if item.Name == "hero" {
			return m.classes[i]
		}
	}
	return ""
}

func TestWindowResizeMarksPending(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	m = updated.(Model)
	require.True(t, m.pending)
	require.Equal(t, 120, m.width)
	require.Equal(t, 50, m.height)
}

func TestSettledWidthRecompiles(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	updated, cmd := m.Update(widthMsg(500))
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, 500, m.Measured())
	require.False(t, m.pending)
	narrow := heroClass(m)
	require.NotEmpty(t, narrow)

	updated, _ = m.Update(widthMsg(1200))
	m = updated.(Model)
	wide := heroClass(m)
	require.NotEqual(t, narrow, wide)
	require.Contains(t, m.CSS(), "box-sizing:border-box")
}

func TestQuitKeyStopsProgram(t *testing.T) {
	m := NewModel(Options{})

	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	require.True(t, m.quitting)
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	updated, _ := m.Update(keyPress('?'))
	m = updated.(Model)
	require.True(t, m.help.ShowAll)

	updated, _ = m.Update(keyPress('?'))
	m = updated.(Model)
	require.False(t, m.help.ShowAll)
}

func TestNudgeAdjustsManualWidth(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	m = m.nudge(nudgeStep)
	w, ok := m.manual.BoxWidth()
	require.True(t, ok)
	require.Equal(t, float64(nudgeStep), w)
	require.True(t, m.pending)
}

func TestNudgeClampsAtZero(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	m = m.nudge(-nudgeStep)
	w, _ := m.manual.BoxWidth()
	require.Equal(t, float64(0), w)
}

func TestReloadRecompilesAtCurrentWidth(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	updated, _ := m.Update(widthMsg(800))
	m = updated.(Model)

	updated, cmd := m.Update(ReloadMsg{})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, "theme reloaded", m.notice)
	require.Equal(t, 800, m.Measured())
}

func TestNoticeExpires(t *testing.T) {
	m := NewModel(Options{})
	defer m.obs.Close()

	m.notice = "copied 42 bytes of css"
	updated, _ := m.Update(noticeExpiredMsg{})
	m = updated.(Model)
	require.Empty(t, m.notice)
}
