package cli

import (
	"fmt"
	"strings"

	"github.com/RoyalhillsFarm/trayflow-app/internal/cli/formatter"
	"github.com/RoyalhillsFarm/trayflow-app/internal/domain"
	"github.com/RoyalhillsFarm/trayflow-app/internal/schedule"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type boardKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Quit key.Binding
}

var boardKeys = boardKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("k", "up", "h", "left"),
		key.WithHelp("k/↑", "previous day"),
	),
	Next: key.NewBinding(
		key.WithKeys("j", "down", "l", "right"),
		key.WithHelp("j/↓", "next day"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// boardModel pages through the synced window one day at a time. Tasks are
// loaded up front; the board is a viewer, all mutation goes through the
// regular commands.
type boardModel struct {
	days   []domain.Day
	byDay  map[string][]*domain.Task
	cursor int
	width  int
	height int
}

func newBoardModel(start domain.Day, numDays int, tasks []*domain.Task) *boardModel {
	byDay := make(map[string][]*domain.Task)
	for _, t := range tasks {
		key := t.DueDate.String()
		byDay[key] = append(byDay[key], t)
	}
	return &boardModel{
		days:  domain.DayRange(start, numDays),
		byDay: byDay,
	}
}

func (m *boardModel) Init() tea.Cmd {
	return nil
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, boardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, boardKeys.Prev):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, boardKeys.Next):
			if m.cursor < len(m.days)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *boardModel) View() string {
	if len(m.days) == 0 {
		return formatter.Dim("Empty window.") + "\n"
	}

	day := m.days[m.cursor]
	var b strings.Builder

	title := fmt.Sprintf("%s  %s", day, day.Weekday())
	b.WriteString(formatter.StyleHeader.Render(title))
	b.WriteString(formatter.Dim(fmt.Sprintf("   day %d/%d", m.cursor+1, len(m.days))))
	b.WriteString("\n\n")

	tasks := m.byDay[day.String()]
	if len(tasks) == 0 {
		b.WriteString(formatter.Dim("  nothing scheduled\n"))
	}
	for _, phase := range domain.AllPhases {
		for _, t := range tasks {
			if !t.IsGenerated() || t.Phase != phase || t.Kind != domain.KindDetail {
				continue
			}
			label := schedule.PhaseLabel(phase)
			body := strings.TrimPrefix(t.Title, schedule.DetailTitlePrefix+label+" — ")
			b.WriteString("  " + formatter.PhaseStyle(phase).Render("● "+label) + "\n")
			b.WriteString(formatter.StyleFg.Render("      "+body) + "\n")
		}
	}
	for _, t := range tasks {
		if t.IsGenerated() {
			continue
		}
		b.WriteString("  " + formatter.TaskStatusPill(t.Status) + " " + t.Title + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("j/k: change day   q: quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}
