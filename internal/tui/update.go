package tui

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const noticeTTL = 2 * time.Second

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.pending = true
		m.manual.Set(float64(msg.Width))
		return m, nil

	case widthMsg:
		m.measured = int(msg)
		m.pending = false
		m.recompile(m.measured)
		return m, m.nextWidth()

	case ReloadMsg:
		m.recompile(m.measured)
		m.notice = "theme reloaded"
		return m, expireNotice()

	case noticeExpiredMsg:
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.obs.Close()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			return m.copyCSS()

		case key.Matches(msg, m.keys.Narrower):
			return m.nudge(-nudgeStep), nil

		case key.Matches(msg, m.keys.Wider):
			return m.nudge(nudgeStep), nil
		}
	}

	return m, nil
}

// nudge moves the simulated container width and lets the observer debounce
// the change like any other resize.
func (m Model) nudge(delta int) Model {
	current, _ := m.manual.BoxWidth()
	next := int(current) + delta
	if next < 0 {
		next = 0
	}
	m.pending = true
	m.manual.Set(float64(next))
	return m
}

func (m Model) copyCSS() (tea.Model, tea.Cmd) {
	if err := clipboard.WriteAll(m.css); err != nil {
		m.notice = "clipboard unavailable"
		m.log.Warn().Err(err).Msg("clipboard write failed")
	} else {
		m.notice = fmt.Sprintf("copied %d bytes of css", len(m.css))
	}
	return m, expireNotice()
}

func expireNotice() tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg { return noticeExpiredMsg{} })
}
