package cli

import (
	"fmt"
	"strings"

	"github.com/caregrid/intake/internal/cli/formatter"
	"github.com/caregrid/intake/internal/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Live session dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Store.Active() {
				return session.ErrNoSession
			}
			events := make(chan session.Event, 16)
			unsubscribe := app.Store.Subscribe(func(ev session.Event) {
				select {
				case events <- ev:
				default: // dashboard lagging; drop rather than block the store
				}
			})
			defer unsubscribe()

			model := newDashboardModel(app, events)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type dashboardKeyMap struct {
	Quit key.Binding
}

var dashboardKeys = dashboardKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// storeEventMsg wraps a store event for the bubbletea loop.
type storeEventMsg session.Event

type dashboardModel struct {
	app    *App
	events chan session.Event

	notice string // last milestone or save-failure line
}

func newDashboardModel(app *App, events chan session.Event) dashboardModel {
	return dashboardModel{app: app, events: events}
}

func (m dashboardModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return storeEventMsg(<-m.events)
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.waitForEvent()
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, dashboardKeys.Quit) {
			return m, tea.Quit
		}
	case storeEventMsg:
		switch msg.Kind {
		case session.EventMilestone:
			m.notice = formatter.StyleGreen.Render(
				fmt.Sprintf("✦ %d%% complete!", msg.Threshold))
		case session.EventSaveFailed:
			m.notice = formatter.StyleRed.Render(
				fmt.Sprintf("save failed: %v (edits kept in memory)", msg.Err))
		case session.EventSubmittedNoOp:
			m.notice = formatter.StyleYellow.Render(
				fmt.Sprintf("ignored edit to %s: session already submitted", msg.Module))
		}
		return m, m.waitForEvent()
	}
	return m, nil
}

func (m dashboardModel) View() string {
	sess, ok := m.app.Store.Snapshot()
	if !ok {
		return formatter.StyleDim.Render("No active session.\n")
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render("Assessment intake"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Session %s %s\n",
		formatter.StyleBold.Render(sess.ID), formatter.StatusLabel(sess.Status)))
	b.WriteString(fmt.Sprintf("%s %s (%s)\n\n",
		formatter.StyleDim.Render("Clinician"), sess.Clinician.Name, sess.Clinician.Clinic))

	b.WriteString(formatter.RenderProgressReport(m.app.Store.Progress()))

	if m.notice != "" {
		b.WriteString("\n" + m.notice + "\n")
	}
	b.WriteString("\n" + formatter.StyleDim.Render("q to quit"))
	return b.String()
}
