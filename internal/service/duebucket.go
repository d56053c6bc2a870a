package service

import "sort"

// DueBucket classifies a task by its due date relative to a reference day.
type DueBucket string

const (
	Overdue     DueBucket = "overdue"
	DueToday    DueBucket = "due_today"
	DueTomorrow DueBucket = "due_tomorrow"
	DueLater    DueBucket = "due_later"
	NoDueDate   DueBucket = "no_due_date"
)

// Buckets returns all buckets in canonical display order.
func Buckets() []DueBucket {
	return []DueBucket{Overdue, DueToday, DueTomorrow, DueLater, NoDueDate}
}

// BucketFor returns the bucket for a due date relative to today. The buckets
// are disjoint and exhaustive: every date lands in exactly one of them, and a
// nil due date always lands in NoDueDate.
func BucketFor(due *Date, today Date) DueBucket {
	switch {
	case due == nil:
		return NoDueDate
	case due.Before(today):
		return Overdue
	case *due == today:
		return DueToday
	case *due == today.AddDays(1):
		return DueTomorrow
	default:
		return DueLater
	}
}

// TasksByDue holds task collections keyed by due-status bucket.
type TasksByDue struct {
	Overdue     []Task `json:"overdue,omitempty"`
	DueToday    []Task `json:"due_today,omitempty"`
	DueTomorrow []Task `json:"due_tomorrow,omitempty"`
	DueLater    []Task `json:"due_later,omitempty"`
	NoDueDate   []Task `json:"no_due_date,omitempty"`
}

// Bucket returns the tasks in the given bucket.
func (g TasksByDue) Bucket(b DueBucket) []Task {
	switch b {
	case Overdue:
		return g.Overdue
	case DueToday:
		return g.DueToday
	case DueTomorrow:
		return g.DueTomorrow
	case DueLater:
		return g.DueLater
	default:
		return g.NoDueDate
	}
}

// Empty reports whether no bucket holds any task.
func (g TasksByDue) Empty() bool {
	return len(g.Overdue)+len(g.DueToday)+len(g.DueTomorrow)+len(g.DueLater)+len(g.NoDueDate) == 0
}

// GroupByDue partitions tasks into due-status buckets relative to today and
// sorts each bucket by due date ascending, then creation time ascending.
// It is a read-side view; the input slice is not modified.
func GroupByDue(tasks []Task, today Date) TasksByDue {
	var g TasksByDue
	for _, t := range tasks {
		switch BucketFor(t.DueDate, today) {
		case Overdue:
			g.Overdue = append(g.Overdue, t)
		case DueToday:
			g.DueToday = append(g.DueToday, t)
		case DueTomorrow:
			g.DueTomorrow = append(g.DueTomorrow, t)
		case DueLater:
			g.DueLater = append(g.DueLater, t)
		case NoDueDate:
			g.NoDueDate = append(g.NoDueDate, t)
		}
	}
	SortByDue(g.Overdue)
	SortByDue(g.DueToday)
	SortByDue(g.DueTomorrow)
	SortByDue(g.DueLater)
	SortByDue(g.NoDueDate)
	return g
}

// SortByDue sorts tasks in place by due date ascending, then creation time
// ascending. Tasks without a due date sort after tasks with one.
func SortByDue(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case a == nil && b != nil:
			return false
		case a != nil && b == nil:
			return true
		case a != nil && b != nil && *a != *b:
			return a.Before(*b)
		}
		return tasks[i].CreatedOn.Before(tasks[j].CreatedOn)
	})
}

// SortCompleted sorts tasks in place by completion time descending, most
// recently completed first. Tasks without a completion time sort last.
func SortCompleted(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].CompletedOn, tasks[j].CompletedOn
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		return a.After(*b)
	})
}
