// internal/tui/preview.go
//
// Interactive confirmation shown by `mlscaffold init --interactive`. The plan
// is listed with bubbles/list; nothing touches the filesystem until the user
// confirms and the program exits.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/mlscaffold/internal/scaffold"
)

// stepItem implements list.Item for one planned entry
type stepItem struct {
	step scaffold.Step
}

func (i stepItem) Title() string { return string(i.step.Entry) }

func (i stepItem) Description() string {
	desc := stepLabel(i.step).text
	if i.step.DirMissing {
		desc += fmt.Sprintf(" · new directory %s/", i.step.Dir)
	}
	return desc
}

func (i stepItem) FilterValue() string { return string(i.step.Entry) }

// Preview is the bubbletea model for the confirmation screen.
type Preview struct {
	list      list.Model
	steps     []scaffold.Step
	confirmed bool
	done      bool
}

// NewPreview builds the confirmation screen for steps.
func NewPreview(steps []scaffold.Step) *Preview {
	items := make([]list.Item, len(steps))
	for i, step := range steps {
		items[i] = stepItem{step: step}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "mlscaffold · planned layout"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	return &Preview{list: l, steps: steps}
}

// Confirmed reports whether the user accepted the plan.
func (p *Preview) Confirmed() bool {
	return p.confirmed
}

// Init is called once when the program starts.
func (p *Preview) Init() tea.Cmd {
	return nil
}

// Update handles resize and the confirm/abort keys; everything else goes to the list.
func (p *Preview) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.list.SetSize(max(0, msg.Width-2), max(0, msg.Height-3))
		return p, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "y":
			p.confirmed = true
			p.done = true
			return p, tea.Quit
		case "q", "esc", "ctrl+c", "n":
			p.done = true
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// View renders the list and the key hint.
func (p *Preview) View() string {
	if p.done {
		return ""
	}
	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render(fmt.Sprintf("%d entries · enter/y: create · q/esc: abort", len(p.steps)))
	return lipgloss.JoinVertical(lipgloss.Left, p.list.View(), hint)
}
