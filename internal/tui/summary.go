package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/mlscaffold/internal/scaffold"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	createdStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	existsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	countsStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
)

// RenderSummary formats the outcome of a scaffolding run.
func RenderSummary(result scaffold.Result) string {
	lines := []string{headerStyle.Render("mlscaffold · init")}
	for _, dir := range result.CreatedDirs {
		lines = append(lines, dirStyle.Render("+ "+dir+"/"))
	}
	for _, entry := range result.CreatedFiles {
		lines = append(lines, createdStyle.Render("+ "+string(entry)))
	}
	for _, entry := range result.Existing {
		lines = append(lines, existsStyle.Render("= "+string(entry)))
	}
	lines = append(lines, countsStyle.Render(fmt.Sprintf(
		"%d directories created, %d files created, %d already existed",
		len(result.CreatedDirs), len(result.CreatedFiles), len(result.Existing),
	)))
	return strings.Join(lines, "\n") + "\n"
}

// RenderPlan formats what a run would do, one line per entry.
func RenderPlan(steps []scaffold.Step) string {
	lines := []string{headerStyle.Render("mlscaffold · plan")}
	var creates int
	for _, step := range steps {
		lines = append(lines, planLine(step))
		if step.Action == scaffold.ActionCreate {
			creates++
		}
	}
	lines = append(lines, countsStyle.Render(fmt.Sprintf(
		"%d of %d entries would be created", creates, len(steps),
	)))
	return strings.Join(lines, "\n") + "\n"
}

func planLine(step scaffold.Step) string {
	label := stepLabel(step)
	line := label.style.Render(label.text) + " " + string(step.Entry)
	if step.DirMissing {
		line += " " + dirStyle.Render("(new "+step.Dir+"/)")
	}
	return line
}

type stepLabelText struct {
	text  string
	style lipgloss.Style
}

func stepLabel(step scaffold.Step) stepLabelText {
	if step.Action == scaffold.ActionCreate {
		return stepLabelText{text: "create", style: createdStyle}
	}
	return stepLabelText{text: "exists", style: existsStyle}
}
