// Package hoistapi implements the service.Service interface over the
// remote HTTP API.
package hoistapi

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"

	"htask/internal/service"
	"htask/internal/transport"
)

// Client implements service.Service. It is stateless: every method is a
// single request/response exchange through the transport, so a Client can be
// shared freely between goroutines.
type Client struct {
	t transport.Transport
}

// New creates a client over the given transport.
func New(t transport.Transport) *Client {
	return &Client{t: t}
}

// empty is the body posted with bare lifecycle commands.
type empty struct{}

type createResponse struct {
	TaskID int64 `json:"task_id"`
}

type assignValue struct {
	Responsible int64 `json:"responsible"`
}

type taskDueDate struct {
	// No omitempty: null clears the due date.
	DueDate *service.Date `json:"due_date"`
}

type taskPrivate struct {
	Private bool `json:"private"`
}

type taskText struct {
	Text string `json:"text"`
}

// spaceListOptions selects the grouping of an in-space listing.
type spaceListOptions struct {
	SortBy string `url:"sort_by"`
}

type totalsOptions struct {
	SpaceID int64 `url:"space_id,omitempty"`
}

// Get returns the task with the given id.
func (c *Client) Get(ctx context.Context, taskID int64) (service.Task, error) {
	var task service.Task
	if err := c.t.Do(ctx, "GET", fmt.Sprintf("/task/%d", taskID), nil, nil, &task); err != nil {
		return service.Task{}, err
	}
	return task, nil
}

// Create creates a stand-alone task and returns its id.
func (c *Client) Create(ctx context.Context, create service.TaskCreate) (int64, error) {
	if err := create.Validate(); err != nil {
		return 0, err
	}
	var resp createResponse
	if err := c.t.Do(ctx, "POST", "/task/", nil, create, &resp); err != nil {
		return 0, err
	}
	return resp.TaskID, nil
}

// CreateWithReference creates a task attached to the referenced entity.
func (c *Client) CreateWithReference(ctx context.Context, create service.TaskCreate, ref service.Reference) (int64, error) {
	if err := create.Validate(); err != nil {
		return 0, err
	}
	refPath, err := ref.Path()
	if err != nil {
		return 0, err
	}
	var resp createResponse
	if err := c.t.Do(ctx, "POST", "/task/"+refPath+"/", nil, create, &resp); err != nil {
		return 0, err
	}
	return resp.TaskID, nil
}

// ListByReference returns all tasks attached to the referenced entity, both
// active and completed. The reference is not set on the returned tasks.
func (c *Client) ListByReference(ctx context.Context, ref service.Reference) ([]service.Task, error) {
	refPath, err := ref.Path()
	if err != nil {
		return nil, err
	}
	var tasks []service.Task
	if err := c.t.Do(ctx, "GET", "/task/"+refPath+"/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Active returns the caller's active tasks grouped by due status.
func (c *Client) Active(ctx context.Context) (service.TasksByDue, error) {
	var g service.TasksByDue
	if err := c.t.Do(ctx, "GET", "/task/active/", nil, nil, &g); err != nil {
		return service.TasksByDue{}, err
	}
	return g, nil
}

// AssignedActive returns the active tasks the caller assigned to others.
func (c *Client) AssignedActive(ctx context.Context) (service.TasksByDue, error) {
	var g service.TasksByDue
	if err := c.t.Do(ctx, "GET", "/task/assigned/active/", nil, nil, &g); err != nil {
		return service.TasksByDue{}, err
	}
	return g, nil
}

// AssignedCompleted returns the completed tasks the caller assigned to
// others, ordered by completion time descending.
func (c *Client) AssignedCompleted(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.t.Do(ctx, "GET", "/task/assigned/completed/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Completed returns the caller's completed tasks, ordered by completion time
// descending.
func (c *Client) Completed(ctx context.Context) ([]service.Task, error) {
	var tasks []service.Task
	if err := c.t.Do(ctx, "GET", "/task/completed/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Started returns the caller's active started tasks grouped by due status.
func (c *Client) Started(ctx context.Context) (service.TasksByDue, error) {
	var g service.TasksByDue
	if err := c.t.Do(ctx, "GET", "/task/started/", nil, nil, &g); err != nil {
		return service.TasksByDue{}, err
	}
	return g, nil
}

// InSpaceByDue returns all tasks related to the space grouped by due status.
func (c *Client) InSpaceByDue(ctx context.Context, spaceID int64) (service.TasksByDue, error) {
	q, err := query.Values(spaceListOptions{SortBy: "due_date"})
	if err != nil {
		return service.TasksByDue{}, err
	}
	var g service.TasksByDue
	if err := c.t.Do(ctx, "GET", fmt.Sprintf("/task/in_space/%d/", spaceID), q, nil, &g); err != nil {
		return service.TasksByDue{}, err
	}
	return g, nil
}

// InSpaceByResponsible returns all tasks related to the space grouped by
// responsible user.
func (c *Client) InSpaceByResponsible(ctx context.Context, spaceID int64) ([]service.TasksWithResponsible, error) {
	q, err := query.Values(spaceListOptions{SortBy: "responsible"})
	if err != nil {
		return nil, err
	}
	var groups []service.TasksWithResponsible
	if err := c.t.Do(ctx, "GET", fmt.Sprintf("/task/in_space/%d/", spaceID), q, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Totals returns task counts across all spaces the caller can see.
func (c *Client) Totals(ctx context.Context) (service.TaskTotals, error) {
	var totals service.TaskTotals
	if err := c.t.Do(ctx, "GET", "/task/total", nil, nil, &totals); err != nil {
		return service.TaskTotals{}, err
	}
	return totals, nil
}

// TotalsInSpace returns task counts scoped to the given space.
func (c *Client) TotalsInSpace(ctx context.Context, spaceID int64) (service.TaskTotals, error) {
	q, err := query.Values(totalsOptions{SpaceID: spaceID})
	if err != nil {
		return service.TaskTotals{}, err
	}
	var totals service.TaskTotals
	if err := c.t.Do(ctx, "GET", "/task/total", q, nil, &totals); err != nil {
		return service.TaskTotals{}, err
	}
	return totals, nil
}

// Assign reassigns the task to another user.
func (c *Client) Assign(ctx context.Context, taskID, responsible int64) error {
	return c.t.Do(ctx, "POST", fmt.Sprintf("/task/%d/assign", taskID), nil, assignValue{Responsible: responsible}, nil)
}

// Complete marks the task as completed.
func (c *Client) Complete(ctx context.Context, taskID int64) error {
	return c.t.Do(ctx, "POST", fmt.Sprintf("/task/%d/complete", taskID), nil, empty{}, nil)
}

// Incomplete marks a completed task as no longer completed.
func (c *Client) Incomplete(ctx context.Context, taskID int64) error {
	return c.t.Do(ctx, "POST", fmt.Sprintf("/task/%d/incomplete", taskID), nil, empty{}, nil)
}

// Start indicates that work has started on the task.
func (c *Client) Start(ctx context.Context, taskID int64) error {
	return c.t.Do(ctx, "POST", fmt.Sprintf("/task/%d/start", taskID), nil, empty{}, nil)
}

// Stop indicates that work has stopped on the task.
func (c *Client) Stop(ctx context.Context, taskID int64) error {
	return c.t.Do(ctx, "POST", fmt.Sprintf("/task/%d/stop", taskID), nil, empty{}, nil)
}

// UpdateDueDate replaces the task's due date. A nil date clears it.
func (c *Client) UpdateDueDate(ctx context.Context, taskID int64, due *service.Date) error {
	return c.t.Do(ctx, "PUT", fmt.Sprintf("/task/%d/due_date", taskID), nil, taskDueDate{DueDate: due}, nil)
}

// UpdatePrivate replaces the task's private flag.
func (c *Client) UpdatePrivate(ctx context.Context, taskID int64, private bool) error {
	return c.t.Do(ctx, "PUT", fmt.Sprintf("/task/%d/private", taskID), nil, taskPrivate{Private: private}, nil)
}

// UpdateText replaces the task's text.
func (c *Client) UpdateText(ctx context.Context, taskID int64, text string) error {
	return c.t.Do(ctx, "PUT", fmt.Sprintf("/task/%d/text", taskID), nil, taskText{Text: text}, nil)
}

var _ service.Service = (*Client)(nil)
