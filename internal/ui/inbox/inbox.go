// Package inbox is the interactive notification screen: a list of pending
// notifications with per-category action keys. Decision actions settle in
// place; screen actions assemble their bundle and hand control back to the
// CLI, which renders the next screen outside the TUI.
package inbox

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/footballhub/cli/internal/api"
	"github.com/footballhub/cli/internal/model"
	"github.com/footballhub/cli/internal/workflow"
)

// Dispatcher is the slice of the workflow router the inbox needs.
type Dispatcher interface {
	Dispatch(ctx context.Context, actor *model.Player, n model.Notification, action workflow.Action) (workflow.Outcome, error)
}

type item struct {
	n model.Notification
}

func (i item) Title() string { return i.n.Title }
func (i item) Description() string {
	if i.n.Date == "" {
		return i.n.Message
	}
	return i.n.Message + " · " + i.n.Date
}
func (i item) FilterValue() string { return i.n.Title + " " + i.n.Message }

// resultMsg carries a dispatch result back onto the update loop.
type resultMsg struct {
	n       model.Notification
	action  workflow.Action
	outcome workflow.Outcome
	err     error
}

var (
	statusOKStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the bubbletea model for the inbox.
type Model struct {
	list    list.Model
	router  Dispatcher
	actor   *model.Player
	status  string
	statusE bool

	outcome *workflow.Outcome
	busy    bool
}

// New builds the inbox over the actor's current notification list. The
// actor pointer is shared with the CLI so settled notifications reconcile
// the same list the rest of the process sees.
func New(actor *model.Player, router Dispatcher) Model {
	items := make([]list.Item, len(actor.Notifications))
	for i, n := range actor.Notifications {
		items[i] = item{n: n}
	}
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notifications"
	l.SetShowStatusBar(false)
	return Model{list: l, router: router, actor: actor}
}

// Outcome returns the screen bundle that ended the session, if any.
func (m Model) Outcome() *workflow.Outcome { return m.outcome }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-3)
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter", "a":
			return m.act(positive)
		case "r":
			return m.act(negative)
		}

	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.status, m.statusE = errorText(msg.err), true
			return m, nil
		}
		if msg.outcome.Removed {
			m.list.RemoveItem(m.list.Index())
			m.status, m.statusE = fmt.Sprintf("%s: %s", msg.n.Title, msg.action), false
			return m, nil
		}
		// A screen bundle was assembled; leave the TUI and let the CLI
		// render the next screen.
		out := msg.outcome
		m.outcome = &out
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

type polarity int

const (
	positive polarity = iota
	negative
)

// act dispatches the selected notification's positive or negative action.
func (m Model) act(p polarity) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil // the in-flight action is the only concurrency guard
	}
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return m, nil
	}
	actions := workflow.ActionsFor(it.n.Title)
	if len(actions) == 0 {
		m.status, m.statusE = "This notification has no actions", true
		return m, nil
	}
	var action workflow.Action
	switch p {
	case positive:
		action = actions[0]
	case negative:
		if len(actions) < 2 {
			m.status, m.statusE = "This notification cannot be rejected", true
			return m, nil
		}
		action = actions[1]
	}

	m.busy = true
	m.status, m.statusE = "Working…", false
	n := it.n
	router, actor := m.router, m.actor
	return m, func() tea.Msg {
		out, err := router.Dispatch(context.Background(), actor, n, action)
		return resultMsg{n: n, action: action, outcome: out, err: err}
	}
}

func (m Model) View() string {
	view := m.list.View() + "\n"
	if m.status != "" {
		if m.statusE {
			view += statusErrStyle.Render(m.status) + "\n"
		} else {
			view += statusOKStyle.Render(m.status) + "\n"
		}
	}
	view += helpStyle.Render("enter/a accept · r reject · q quit")
	return view
}

func errorText(err error) string {
	if msg := api.Message(err); msg != "" {
		return msg
	}
	return err.Error()
}
