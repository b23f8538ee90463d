// Package render formats solve results for terminals.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/arloliu/teamsplit/duration"
	"github.com/arloliu/teamsplit/types"
)

// Plan writes a team table followed by a one-line summary.
//
// Colors are chosen from w's terminal profile; plain writers such as files
// and buffers get unstyled text.
//
// Parameters:
//   - w: Output writer
//   - res: Solve result
//
// Returns:
//   - error: Write error
func Plan(w io.Writer, res *types.Result) error {
	r := lipgloss.NewRenderer(w)

	titleStyle := r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	headerStyle := r.NewStyle().Foreground(lipgloss.Color("12")).Bold(true).Padding(0, 1)
	cellStyle := r.NewStyle().Padding(0, 1)
	busiestStyle := cellStyle.Foreground(lipgloss.Color("214"))
	labelStyle := r.NewStyle().Foreground(lipgloss.Color("8"))

	busiest := res.MakespanMinutes
	rows := make([][]string, 0, len(res.Teams))
	for _, team := range res.Teams {
		rows = append(rows, []string{
			strconv.Itoa(team.Index),
			jobLines(team.Jobs),
			duration.Format(team.TotalMinutes),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("8"))).
		Headers("Team", "Jobs", "Total").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(res.Teams) && res.Teams[row].TotalMinutes == busiest:
				return busiestStyle
			default:
				return cellStyle
			}
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Plan %s", res.ID)))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(Summary(res)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// Summary returns a one-line description of the result.
func Summary(res *types.Result) string {
	parts := []string{
		"strategy " + res.Strategy,
		"quantum " + duration.Format(res.Quantum),
		"makespan " + duration.Format(res.MakespanMinutes),
		"gap " + duration.Format(res.GapMinutes),
	}

	switch {
	case res.Stats.Optimal:
		parts = append(parts, "optimal")
	case res.Stats.Exhausted:
		parts = append(parts, "budget exhausted")
	}
	if res.Stats.Nodes > 0 {
		parts = append(parts, fmt.Sprintf("%d nodes in %s", res.Stats.Nodes, res.Stats.Elapsed.Round(time.Microsecond)))
	}

	return strings.Join(parts, ", ")
}

func jobLines(jobs []types.JobPlan) string {
	if len(jobs) == 0 {
		return "-"
	}

	lines := make([]string, len(jobs))
	for i, j := range jobs {
		lines[i] = fmt.Sprintf("%s (%s", j.Name, duration.Format(j.DurationMinutes))
		if j.Fixed {
			lines[i] += ", fixed"
		}
		lines[i] += ")"
	}

	return strings.Join(lines, "\n")
}
