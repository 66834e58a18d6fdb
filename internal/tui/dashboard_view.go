package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-study-planner/internal/service"
	"github.com/MKhiriev/go-study-planner/models"
)

func renderDashboard(s service.DashboardSummary, loc *time.Location) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s, %s!\n\n", s.Greeting, s.DisplayName)
	fmt.Fprintf(&b, "Notes: %d   Open tasks: %d   Upcoming events: %d\n\n", s.NoteCount, s.ActiveTaskCount, s.UpcomingCount)

	b.WriteString(titleStyle.Render("Next up"))
	b.WriteString("\n")
	writeDashboardTasks(&b, s.CompactTasks, loc)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("To do"))
	b.WriteString("\n")
	writeDashboardTasks(&b, s.Tasks, loc)

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Upcoming events"))
	b.WriteString("\n")
	if len(s.Upcoming) == 0 {
		b.WriteString(helpStyle.Render("  no upcoming events"))
		b.WriteString("\n")
	}
	for _, e := range s.Upcoming {
		fmt.Fprintf(&b, "  %s  %s [%s]\n", e.Start.In(loc).Format(dateTimeLayout), fitText(e.Title, 40), e.Type)
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Recent notes"))
	b.WriteString("\n")
	if len(s.RecentNotes) == 0 {
		b.WriteString(helpStyle.Render("  no notes yet"))
		b.WriteString("\n")
	}
	for _, n := range s.RecentNotes {
		fmt.Fprintf(&b, "  %s  %s (%s)\n", n.UpdatedAt.In(loc).Format(dateTimeLayout), fitText(n.Title, 40), n.Category)
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeDashboardTasks(b *strings.Builder, todos []models.Todo, loc *time.Location) {
	if len(todos) == 0 {
		b.WriteString(helpStyle.Render("  nothing to do"))
		b.WriteString("\n")
	}
	for _, t := range todos {
		line := fmt.Sprintf("  [ ] %s (%s)", fitText(t.Title, 40), t.Priority)
		if t.DueDate != nil {
			line += "  due " + t.DueDate.In(loc).Format(dateLayout)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
}
