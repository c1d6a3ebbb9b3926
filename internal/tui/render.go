// internal/tui/render.go
package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/mealdb/mcp/tools"
)

var (
	toolNameStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	argStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// resultStatus classifies a tool result for display.
type resultStatus string

const (
	statusOK       resultStatus = "ok"
	statusError    resultStatus = "error"
	statusNotFound resultStatus = "not found"
)

func classify(res tools.Result) resultStatus {
	switch {
	case res.IsError:
		return statusError
	case res.NotFound:
		return statusNotFound
	default:
		return statusOK
	}
}

// renderStatusBadge returns a Lipgloss-styled badge string for a result status.
func renderStatusBadge(status resultStatus) string {
	bg := lipgloss.Color("40")
	switch status {
	case statusError:
		bg = lipgloss.Color("196")
	case statusNotFound:
		bg = lipgloss.Color("229")
	}
	badgeStyle := lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0")).Padding(0, 1)
	return badgeStyle.Render(strings.ToUpper(string(status)))
}

// renderToolBadge returns the badge naming the selected tool.
func renderToolBadge(name string) string {
	badgeStyle := lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")).Padding(0, 1).MarginLeft(1)
	return badgeStyle.Render("Tool: " + name)
}

// RenderResult renders a tool result with a status badge above its text.
func RenderResult(res tools.Result) string {
	return renderStatusBadge(classify(res)) + "\n\n" + res.Text()
}

// RenderTools renders the tool registry as an aligned listing with each
// tool's arguments beneath it.
func RenderTools(defs []tools.Definition) string {
	width := 0
	for _, def := range defs {
		if len(def.Name) > width {
			width = len(def.Name)
		}
	}

	var b strings.Builder
	for i, def := range defs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(toolNameStyle.Width(width + 2).Render(def.Name))
		b.WriteString(def.Description)
		b.WriteString("\n")

		required := make(map[string]bool, len(def.InputSchema.Required))
		for _, name := range def.InputSchema.Required {
			required[name] = true
		}
		names := make([]string, 0, len(def.InputSchema.Properties))
		for name := range def.InputSchema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) == 0 {
			b.WriteString(dimStyle.Render("    (no arguments)"))
			b.WriteString("\n")
			continue
		}
		for _, name := range names {
			prop := def.InputSchema.Properties[name]
			label := name + " (" + prop.Type
			if required[name] {
				label += ", required"
			}
			label += ")"
			b.WriteString("    " + argStyle.Render(label) + "  " + prop.Description + "\n")
		}
	}
	return b.String()
}
