// Package tui renders the demo gallery in the terminal. Window resizes are
// fed into a manual measurement element behind a real observer, so the
// debounce and recompile pipeline runs exactly as it would against a browser
// container.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/boxkit/boxkit/internal/gallery"
	"github.com/boxkit/boxkit/pkg/measure"
	"github.com/boxkit/boxkit/pkg/style"
)

// displayDebounce is deliberately longer than the library default so the
// "measuring" state is visible while a resize drag settles.
const displayDebounce = 120 * time.Millisecond

// nudgeStep is the width change applied by the narrower/wider keys.
const nudgeStep = 40

// Options configures the gallery model.
type Options struct {
	// Gallery builds the components to show. The builder receives the
	// model's compiler so the css dump matches the rendered classes.
	// Nil means gallery.Default.
	Gallery func(*style.Compiler) []gallery.Item

	// Debounce is the observer's quiet window. Zero means displayDebounce.
	Debounce time.Duration

	Logger zerolog.Logger
}

// widthMsg delivers a settled width from the observer into the program.
type widthMsg int

// noticeExpiredMsg clears the transient footer notice.
type noticeExpiredMsg struct{}

// ReloadMsg forces a recompile at the current width. Send it through the
// program when the theme changes underneath a running gallery.
type ReloadMsg struct{}

// Model is the Bubbletea state for the gallery.
type Model struct {
	items    []gallery.Item
	sheet    *style.StyleSheet
	compiler *style.Compiler

	manual *measure.Manual
	obs    *measure.Observer
	widths chan int

	keys keyMap
	help help.Model

	width    int
	height   int
	measured int
	pending  bool

	classes []string
	css     string

	notice   string
	quitting bool

	log zerolog.Logger
}

// NewModel builds the gallery model and starts observing a manual element.
// The element's width follows the terminal width until the narrower/wider
// keys take over.
func NewModel(opt Options) Model {
	build := opt.Gallery
	if build == nil {
		build = gallery.Default
	}
	deb := opt.Debounce
	if deb == 0 {
		deb = displayDebounce
	}

	sheet := style.NewStyleSheet()
	compiler := style.NewCompiler(sheet)

	manual := measure.NewManual(0)
	widths := make(chan int, 1)
	obs := measure.Observe(manual, measure.Options{
		Debounce: deb,
		OnChange: func(w int) {
			// Keep only the latest settled width.
			select {
			case <-widths:
			default:
			}
			widths <- w
		},
		Logger: opt.Logger,
	})

	m := Model{
		items:    build(compiler),
		sheet:    sheet,
		compiler: compiler,
		manual:   manual,
		obs:      obs,
		widths:   widths,
		keys:     defaultKeyMap(),
		help:     help.New(),
		width:    80,
		height:   24,
		log:      opt.Logger,
	}
	m.recompile(0)
	return m
}

// Init arms the width listener.
func (m Model) Init() tea.Cmd {
	return m.nextWidth()
}

// nextWidth returns a command that blocks until the observer reports a
// settled width.
func (m Model) nextWidth() tea.Cmd {
	widths := m.widths
	return func() tea.Msg {
		w, ok := <-widths
		if !ok {
			return nil
		}
		return widthMsg(w)
	}
}

// Measured returns the last settled container width.
func (m Model) Measured() int {
	return m.measured
}

// CSS returns the current stylesheet dump.
func (m Model) CSS() string {
	return m.css
}

func (m *Model) recompile(width int) {
	classes := make([]string, len(m.items))
	for i, item := range m.items {
		classes[i] = item.Target.Class(width)
	}
	m.classes = classes
	m.css = m.sheet.CSS()
}

// NewProgram wraps the model in a full-screen Bubbletea program. The
// returned program accepts ReloadMsg via Send.
func NewProgram(opt Options) *tea.Program {
	return tea.NewProgram(NewModel(opt), tea.WithAltScreen())
}

// Run drives the gallery until the user quits.
func Run(opt Options) error {
	_, err := NewProgram(opt).Run()
	return err
}
