package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/pegflow/daxport/pkg/workflow"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// JobListModel - Interactive job browser
// =============================================================================

// JobListModel is the bubbletea model for browsing the jobs of a workflow
// graph. Jobs are listed in native graph order with their artifact and
// dependency counts.
type JobListModel struct {
	graph  *workflow.Graph
	jobs   []*workflow.Vertex
	Cursor int
	Height int
	Offset int
}

// NewJobListModel creates a job browser over the graph's vertices.
func NewJobListModel(g *workflow.Graph) JobListModel {
	return JobListModel{
		graph:  g,
		jobs:   g.Vertices(),
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m JobListModel) Init() tea.Cmd {
	return nil
}

func (m JobListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc", "enter":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.jobs)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m JobListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Workflow Jobs"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.jobs) {
		end = len(m.jobs)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		v := m.jobs[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		label := ""
		if v.Label != "" {
			label = v.Label
		}

		rows = append(rows, []string{
			cursor,
			v.ID,
			label,
			artifactSummary(v.Task.Inputs),
			artifactSummary(v.Task.Outputs),
			fmt.Sprintf("%d", len(m.graph.Predecessors(v.ID))),
			fmt.Sprintf("%d", len(m.graph.Successors(v.ID))),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Job", "Label", "Inputs", "Outputs", "Up", "Down").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.jobs) {
				return lipgloss.NewStyle()
			}
			isCurrent := actualIdx == m.Cursor

			base := lipgloss.NewStyle()
			if col >= 5 {
				base = base.Foreground(colorDim)
			}

			if isCurrent {
				if col < 5 {
					return base.Foreground(colorCyan).Bold(true)
				}
				return base.Bold(true)
			}
			if col < 5 {
				return base.Foreground(colorWhite)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.jobs))))

	return b.String()
}

// artifactSummary formats an artifact list for a table cell. Long lists
// collapse to a count so the table stays readable.
func artifactSummary(as []workflow.Artifact) string {
	switch {
	case len(as) == 0:
		return "—"
	case len(as) <= 2:
		names := make([]string, len(as))
		for i, a := range as {
			names[i] = a.Name
		}
		return strings.Join(names, ", ")
	default:
		return fmt.Sprintf("%d files", len(as))
	}
}
