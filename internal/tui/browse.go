// internal/tui/browse.go
// Package tui renders tool output for the terminal and hosts the interactive
// browse program.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/mealdb/internal/util"
	"github.com/mwiater/mealdb/mcp/tools"
)

// resultMsg carries a finished tool call back into the update loop.
type resultMsg struct {
	tool   string
	result tools.Result
}

// Browser is a bubbletea model for running tools interactively. Tab cycles
// through tools, enter runs the selected tool with the typed argument.
type Browser struct {
	ctx        context.Context
	dispatcher *tools.Dispatcher
	defs       []tools.Definition
	selected   int
	input      textinput.Model
	spinner    spinner.Model
	viewport   viewport.Model
	loading    bool
	lastTool   string
	width      int
	height     int
}

// NewBrowser builds the browse model over a dispatcher.
func NewBrowser(ctx context.Context, d *tools.Dispatcher) *Browser {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Focus()

	b := &Browser{
		ctx:        ctx,
		dispatcher: d,
		defs:       d.ListTools(),
		input:      ti,
		spinner:    s,
		viewport:   viewport.New(100, 20),
	}
	b.syncPlaceholder()
	return b
}

// argumentName returns the single required argument of the selected tool,
// or "" when it takes none.
func (b *Browser) argumentName() string {
	required := b.defs[b.selected].InputSchema.Required
	if len(required) == 0 {
		return ""
	}
	return required[0]
}

func (b *Browser) syncPlaceholder() {
	arg := b.argumentName()
	if arg == "" {
		b.input.Placeholder = "(no argument, press enter)"
		return
	}
	b.input.Placeholder = b.defs[b.selected].InputSchema.Properties[arg].Description
}

// runCmd returns the command that performs the selected tool call.
func (b *Browser) runCmd() tea.Cmd {
	name := b.defs[b.selected].Name
	args := map[string]any{}
	if arg := b.argumentName(); arg != "" {
		args[arg] = strings.TrimSpace(b.input.Value())
	}
	ctx, d := b.ctx, b.dispatcher
	return func() tea.Msg {
		return resultMsg{tool: name, result: d.Call(ctx, tools.CallRequest{Name: name, Arguments: args})}
	}
}

func (b *Browser) Init() tea.Cmd {
	return textinput.Blink
}

func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.viewport.Width = msg.Width
		if h := msg.Height - 6; h > 3 {
			b.viewport.Height = h
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return b, tea.Quit
		case "tab":
			if !b.loading {
				b.selected = (b.selected + 1) % len(b.defs)
				b.input.Reset()
				b.syncPlaceholder()
			}
			return b, nil
		case "shift+tab":
			if !b.loading {
				b.selected = (b.selected + len(b.defs) - 1) % len(b.defs)
				b.input.Reset()
				b.syncPlaceholder()
			}
			return b, nil
		case "enter":
			if b.loading {
				return b, nil
			}
			b.loading = true
			return b, tea.Batch(b.spinner.Tick, b.runCmd())
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			b.viewport, cmd = b.viewport.Update(msg)
			return b, cmd
		}
	case resultMsg:
		b.loading = false
		b.lastTool = msg.tool
		b.viewport.SetContent(renderStatusBadge(classify(msg.result)) + "\n\n" + util.WrapToWidth(msg.result.Text(), b.viewport.Width))
		b.viewport.GotoTop()
		return b, nil
	case spinner.TickMsg:
		if b.loading {
			var cmd tea.Cmd
			b.spinner, cmd = b.spinner.Update(msg)
			return b, cmd
		}
		return b, nil
	}

	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	cmds = append(cmds, cmd)
	return b, tea.Batch(cmds...)
}

func (b *Browser) View() string {
	var sb strings.Builder
	sb.WriteString(renderToolBadge(b.defs[b.selected].Name))
	sb.WriteString(" ")
	sb.WriteString(dimStyle.Render(b.defs[b.selected].Description))
	sb.WriteString("\n\n")
	sb.WriteString(b.input.View())
	sb.WriteString("\n\n")
	if b.loading {
		sb.WriteString(fmt.Sprintf("  %s Calling %s...\n", b.spinner.View(), b.defs[b.selected].Name))
	} else if b.lastTool != "" {
		sb.WriteString(b.viewport.View())
		sb.WriteString("\n")
	}
	sb.WriteString(dimStyle.Render(" (tab to change tool, enter to run, esc to quit)"))
	return sb.String()
}

// RunBrowser starts the interactive program and blocks until it exits.
func RunBrowser(ctx context.Context, d *tools.Dispatcher) error {
	p := tea.NewProgram(NewBrowser(ctx, d), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
