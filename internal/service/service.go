package service

import "context"

// Service defines the interface for task operations against the remote
// service. All methods map to exactly one remote command or query; there is
// no client-side caching or retrying, so the implementation is stateless and
// safe for concurrent use. Commands never import the HTTP backend directly.
type Service interface {
	// Get returns the task with the given id.
	Get(ctx context.Context, taskID int64) (Task, error)

	// Create creates a stand-alone task and returns its id.
	// The payload is validated locally before the remote call.
	Create(ctx context.Context, create TaskCreate) (int64, error)

	// CreateWithReference creates a task attached to the referenced entity
	// and returns its id. The reference is validated locally.
	CreateWithReference(ctx context.Context, create TaskCreate, ref Reference) (int64, error)

	// ListByReference returns all tasks, active and completed, attached to
	// the referenced entity. The reference is not set on the returned tasks.
	ListByReference(ctx context.Context, ref Reference) ([]Task, error)

	// Active returns the caller's active tasks grouped by due status.
	Active(ctx context.Context) (TasksByDue, error)

	// AssignedActive returns the active tasks the caller has assigned to
	// other users, grouped by due status.
	AssignedActive(ctx context.Context) (TasksByDue, error)

	// AssignedCompleted returns the completed tasks the caller has assigned
	// to other users, ordered by completion time descending.
	AssignedCompleted(ctx context.Context) ([]Task, error)

	// Completed returns the caller's completed tasks, ordered by completion
	// time descending.
	Completed(ctx context.Context) ([]Task, error)

	// Started returns the caller's active started tasks grouped by due
	// status.
	Started(ctx context.Context) (TasksByDue, error)

	// InSpaceByDue returns all tasks related to the space, directly or
	// indirectly, grouped by due status.
	InSpaceByDue(ctx context.Context, spaceID int64) (TasksByDue, error)

	// InSpaceByResponsible returns all tasks related to the space, grouped
	// by responsible user.
	InSpaceByResponsible(ctx context.Context, spaceID int64) ([]TasksWithResponsible, error)

	// Totals returns task counts across all spaces the caller can see.
	Totals(ctx context.Context) (TaskTotals, error)

	// TotalsInSpace returns task counts scoped to the given space.
	TotalsInSpace(ctx context.Context, spaceID int64) (TaskTotals, error)

	// Assign reassigns the task to another user, making that user
	// responsible for it. Does not change the completed or started state.
	Assign(ctx context.Context, taskID, responsible int64) error

	// Complete marks the task as completed. Completing an already-completed
	// task is a no-op success.
	Complete(ctx context.Context, taskID int64) error

	// Incomplete marks a completed task as no longer completed. The service
	// rejects the transition for a task that is not completed.
	Incomplete(ctx context.Context, taskID int64) error

	// Start indicates that work has started on the task. The service
	// rejects the transition for a completed task.
	Start(ctx context.Context, taskID int64) error

	// Stop indicates that work has stopped on the task.
	Stop(ctx context.Context, taskID int64) error

	// UpdateDueDate replaces the task's due date. A nil date clears it.
	UpdateDueDate(ctx context.Context, taskID int64, due *Date) error

	// UpdatePrivate replaces the task's private flag.
	UpdatePrivate(ctx context.Context, taskID int64, private bool) error

	// UpdateText replaces the task's text.
	UpdateText(ctx context.Context, taskID int64, text string) error
}
