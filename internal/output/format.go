// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"htask/internal/service"
)

// bucketTitles maps buckets to their section headers.
var bucketTitles = map[service.DueBucket]string{
	service.Overdue:     "Overdue",
	service.DueToday:    "Today",
	service.DueTomorrow: "Tomorrow",
	service.DueLater:    "Later",
	service.NoDueDate:   "No due date",
}

// FormatByDue renders a grouped listing with one section per non-empty
// bucket, in canonical bucket order.
func FormatByDue(w io.Writer, g service.TasksByDue) {
	first := true
	for _, b := range service.Buckets() {
		tasks := g.Bucket(b)
		if len(tasks) == 0 {
			continue
		}
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintf(w, "%s:\n", bucketTitles[b])
		for _, t := range tasks {
			FormatTaskLine(w, t)
		}
	}
}

// FormatTaskLine renders a single task line.
// Format: "{ID:>6}  {MARKER} {TEXT}{ANNOTATIONS}\n"
func FormatTaskLine(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "%6d  %s %s%s\n", t.ID, marker(t), normalizeText(t.Text), annotations(t))
}

// FormatFlat renders a flat task listing, one line per task.
func FormatFlat(w io.Writer, tasks []service.Task) {
	for _, t := range tasks {
		FormatTaskLine(w, t)
	}
}

// FormatDetail renders a full task description.
func FormatDetail(w io.Writer, t service.Task) {
	fmt.Fprintf(w, "task %d\n", t.ID)
	fmt.Fprintf(w, "  text:        %s\n", normalizeText(t.Text))
	if t.DueDate != nil {
		fmt.Fprintf(w, "  due:         %s\n", t.DueDate)
	}
	fmt.Fprintf(w, "  responsible: %d\n", t.Responsible)
	fmt.Fprintf(w, "  private:     %t\n", t.Private)
	fmt.Fprintf(w, "  started:     %t\n", t.Started)
	fmt.Fprintf(w, "  completed:   %t\n", t.Completed)
	if t.CompletedOn != nil {
		fmt.Fprintf(w, "  completed on: %s\n", t.CompletedOn.Format("2006-01-02 15:04"))
	}
	if t.Ref != nil {
		fmt.Fprintf(w, "  attached to: %s %d\n", t.Ref.Type, t.Ref.ID)
	}
}

// FormatResponsible renders per-user sections of an in-space listing.
func FormatResponsible(w io.Writer, groups []service.TasksWithResponsible) {
	for i, g := range groups {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "user %d:\n", g.Responsible)
		for _, t := range g.Tasks {
			FormatTaskLine(w, t)
		}
	}
}

// FormatTotals renders aggregate task counts.
func FormatTotals(w io.Writer, totals service.TaskTotals) {
	fmt.Fprintf(w, "own:       %d\n", totals.Own)
	fmt.Fprintf(w, "delegated: %d\n", totals.Delegated)
	fmt.Fprintf(w, "total:     %d\n", totals.Total)
}

// marker returns the state marker for a task line.
func marker(t service.Task) string {
	switch {
	case t.Completed:
		return "[x]"
	case t.Started:
		return "[>]"
	default:
		return "[ ]"
	}
}

// annotations returns the trailing annotations for a task line.
func annotations(t service.Task) string {
	var parts []string
	if t.DueDate != nil && !t.Completed {
		parts = append(parts, fmt.Sprintf("due %s", t.DueDate))
	}
	if t.Completed && t.CompletedOn != nil {
		parts = append(parts, fmt.Sprintf("done %s", t.CompletedOn.Format("2006-01-02")))
	}
	if t.Private {
		parts = append(parts, "private")
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, ", ") + ")"
}

// normalizeText normalizes task text for display.
// - Empty or whitespace-only text becomes "(untitled)"
// - Newlines are replaced with spaces
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")
	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}
