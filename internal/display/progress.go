package display

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/pokerodds/analysis"
)

// ProgressMsg reports evaluation progress to the progress model.
type ProgressMsg struct {
	Done  uint64
	Total uint64
}

// finishedMsg ends the progress program.
type finishedMsg struct{ err error }

// ProgressModel is a bubbletea model that draws a single progress bar.
type ProgressModel struct {
	title   string
	bar     progress.Model
	done    uint64
	total   uint64
	started time.Time
	err     error
	quit    bool
}

// NewProgressModel creates a progress bar with a title.
func NewProgressModel(title string) ProgressModel {
	return ProgressModel{
		title:   title,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		started: time.Now(),
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		if msg.Done > m.done {
			m.done = msg.Done
		}
		m.total = msg.Total
		return m, nil
	case finishedMsg:
		m.err = msg.err
		m.quit = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.bar.Width = max(10, min(60, msg.Width-len(m.title)-20))
		return m, nil
	}
	return m, nil
}

// Percent returns the completed fraction.
func (m ProgressModel) Percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s %s %d/%d\n", m.title, m.bar.ViewAs(m.Percent()), m.done, m.total)
}

// WithProgress runs fn while drawing a progress bar on out. fn receives the
// callback to hand to analysis.Calculator.Progress.
func WithProgress(out io.Writer, title string, fn func(report analysis.ProgressFunc) error) error {
	p := tea.NewProgram(NewProgressModel(title), tea.WithOutput(out), tea.WithInput(nil))

	go func() {
		err := fn(func(done, total uint64) {
			p.Send(ProgressMsg{Done: done, Total: total})
		})
		p.Send(finishedMsg{err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("progress display: %w", err)
	}
	return final.(ProgressModel).err
}
