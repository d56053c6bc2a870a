// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"htask/internal/service"
)

// FakeService is an in-memory implementation of service.Service. It models
// the rules the remote service is documented to enforce: lifecycle
// transitions, due-status grouping, private-task visibility and the
// reference asymmetry on list-by-reference queries.
type FakeService struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]*service.Task

	// UserID is the calling user, normally carried by the session.
	UserID int64

	// Clock supplies "now"; defaults to time.Now.
	Clock func() time.Time

	// Loc is the zone used for due-status bucketing; defaults to UTC.
	Loc *time.Location

	// Error injection for testing.
	GetErr      error
	CreateErr   error
	ListErr     error
	MutationErr error
	TotalsErr   error
}

// NewFakeService creates an empty fake for user 1.
func NewFakeService() *FakeService {
	return &FakeService{
		nextID: 1,
		tasks:  make(map[int64]*service.Task),
		UserID: 1,
	}
}

func (f *FakeService) now() time.Time {
	if f.Clock != nil {
		return f.Clock()
	}
	return time.Now()
}

func (f *FakeService) today() service.Date {
	loc := f.Loc
	if loc == nil {
		loc = time.UTC
	}
	if f.Clock == nil {
		return service.Today(loc)
	}
	return service.DateOf(f.Clock().In(loc))
}

// AddTask seeds a task and returns its assigned id. Zero CreatedBy and
// Responsible default to the fake's user; a zero CreatedOn is stamped from
// the clock.
func (f *FakeService) AddTask(t service.Task) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(t)
}

func (f *FakeService) add(t service.Task) int64 {
	t.ID = f.nextID
	f.nextID++
	if t.CreatedBy == 0 {
		t.CreatedBy = f.UserID
	}
	if t.Responsible == 0 {
		t.Responsible = f.UserID
	}
	if t.CreatedOn.IsZero() {
		t.CreatedOn = f.now()
	}
	f.tasks[t.ID] = &t
	return t.ID
}

// visible reports whether the calling user may see the task.
// Private tasks are visible only to the creator, assignor and responsible.
func (f *FakeService) visible(t *service.Task) bool {
	if !t.Private {
		return true
	}
	return t.CreatedBy == f.UserID || t.Responsible == f.UserID
}

// Get implements service.Service.
func (f *FakeService) Get(ctx context.Context, taskID int64) (service.Task, error) {
	if f.GetErr != nil {
		return service.Task{}, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	t, ok := f.tasks[taskID]
	if !ok || !f.visible(t) {
		return service.Task{}, fmt.Errorf("%w: task %d", service.ErrNotFound, taskID)
	}
	return *t, nil
}

// Create implements service.Service.
func (f *FakeService) Create(ctx context.Context, create service.TaskCreate) (int64, error) {
	if f.CreateErr != nil {
		return 0, f.CreateErr
	}
	if err := create.Validate(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.add(f.fromCreate(create)), nil
}

// CreateWithReference implements service.Service. The reference is recorded
// so list-by-reference queries can find the task, but it is stripped from
// those query results.
func (f *FakeService) CreateWithReference(ctx context.Context, create service.TaskCreate, ref service.Reference) (int64, error) {
	if f.CreateErr != nil {
		return 0, f.CreateErr
	}
	if err := create.Validate(); err != nil {
		return 0, err
	}
	if err := ref.Validate(); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t := f.fromCreate(create)
	t.Ref = &ref
	if ref.Type == service.RefSpace {
		t.SpaceID = ref.ID
	}
	return f.add(t), nil
}

func (f *FakeService) fromCreate(create service.TaskCreate) service.Task {
	responsible := create.Responsible
	if responsible == 0 {
		responsible = f.UserID
	}
	return service.Task{
		Text:        create.Text,
		DueDate:     create.DueDate,
		Private:     create.Private,
		Responsible: responsible,
		CreatedBy:   f.UserID,
		CreatedOn:   f.now(),
	}
}

// ListByReference implements service.Service.
func (f *FakeService) ListByReference(ctx context.Context, ref service.Reference) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var tasks []service.Task
	for _, t := range f.sorted() {
		if t.Ref == nil || *t.Ref != ref || !f.visible(t) {
			continue
		}
		copied := *t
		copied.Ref = nil // never echoed back
		tasks = append(tasks, copied)
	}
	return tasks, nil
}

// Active implements service.Service.
func (f *FakeService) Active(ctx context.Context) (service.TasksByDue, error) {
	return f.grouped(func(t *service.Task) bool {
		return !t.Completed && t.Responsible == f.UserID
	})
}

// AssignedActive implements service.Service.
func (f *FakeService) AssignedActive(ctx context.Context) (service.TasksByDue, error) {
	return f.grouped(func(t *service.Task) bool {
		return !t.Completed && t.CreatedBy == f.UserID && t.Responsible != f.UserID
	})
}

// AssignedCompleted implements service.Service.
func (f *FakeService) AssignedCompleted(ctx context.Context) ([]service.Task, error) {
	return f.flatCompleted(func(t *service.Task) bool {
		return t.Completed && t.CreatedBy == f.UserID && t.Responsible != f.UserID
	})
}

// Completed implements service.Service.
func (f *FakeService) Completed(ctx context.Context) ([]service.Task, error) {
	return f.flatCompleted(func(t *service.Task) bool {
		return t.Completed && t.Responsible == f.UserID
	})
}

// Started implements service.Service.
func (f *FakeService) Started(ctx context.Context) (service.TasksByDue, error) {
	return f.grouped(func(t *service.Task) bool {
		return !t.Completed && t.Started && t.Responsible == f.UserID
	})
}

// InSpaceByDue implements service.Service.
func (f *FakeService) InSpaceByDue(ctx context.Context, spaceID int64) (service.TasksByDue, error) {
	return f.grouped(func(t *service.Task) bool {
		return t.SpaceID == spaceID && !t.Completed
	})
}

// InSpaceByResponsible implements service.Service.
func (f *FakeService) InSpaceByResponsible(ctx context.Context, spaceID int64) ([]service.TasksWithResponsible, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	byUser := make(map[int64][]service.Task)
	for _, t := range f.sorted() {
		if t.SpaceID != spaceID || t.Completed || !f.visible(t) {
			continue
		}
		byUser[t.Responsible] = append(byUser[t.Responsible], *t)
	}
	users := make([]int64, 0, len(byUser))
	for u := range byUser {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i] < users[j] })
	groups := make([]service.TasksWithResponsible, 0, len(users))
	for _, u := range users {
		tasks := byUser[u]
		service.SortByDue(tasks)
		groups = append(groups, service.TasksWithResponsible{Responsible: u, Tasks: tasks})
	}
	return groups, nil
}

// Totals implements service.Service.
func (f *FakeService) Totals(ctx context.Context) (service.TaskTotals, error) {
	return f.totals(func(t *service.Task) bool { return true })
}

// TotalsInSpace implements service.Service.
func (f *FakeService) TotalsInSpace(ctx context.Context, spaceID int64) (service.TaskTotals, error) {
	return f.totals(func(t *service.Task) bool { return t.SpaceID == spaceID })
}

func (f *FakeService) totals(match func(*service.Task) bool) (service.TaskTotals, error) {
	if f.TotalsErr != nil {
		return service.TaskTotals{}, f.TotalsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var totals service.TaskTotals
	for _, t := range f.tasks {
		if t.Completed || !match(t) {
			continue
		}
		switch {
		case t.Responsible == f.UserID:
			totals.Own++
		case t.CreatedBy == f.UserID:
			totals.Delegated++
		}
	}
	totals.Total = totals.Own + totals.Delegated
	return totals, nil
}

// Assign implements service.Service.
func (f *FakeService) Assign(ctx context.Context, taskID, responsible int64) error {
	return f.mutate(taskID, func(t *service.Task) error {
		if responsible <= 0 {
			return fmt.Errorf("%w: unknown user %d", service.ErrRemoteRejected, responsible)
		}
		t.Responsible = responsible
		return nil
	})
}

// Complete implements service.Service. Completing an already-completed task
// is a no-op success.
func (f *FakeService) Complete(ctx context.Context, taskID int64) error {
	return f.mutate(taskID, func(t *service.Task) error {
		if t.Completed {
			return nil
		}
		now := f.now()
		t.Completed = true
		t.CompletedOn = &now
		return nil
	})
}

// Incomplete implements service.Service. The transition is rejected for a
// task that is not completed.
func (f *FakeService) Incomplete(ctx context.Context, taskID int64) error {
	return f.mutate(taskID, func(t *service.Task) error {
		if !t.Completed {
			return fmt.Errorf("%w: task %d is not completed", service.ErrRemoteRejected, taskID)
		}
		t.Completed = false
		t.CompletedOn = nil
		return nil
	})
}

// Start implements service.Service. The transition is rejected for a
// completed task.
func (f *FakeService) Start(ctx context.Context, taskID int64) error {
	return f.mutate(taskID, func(t *service.Task) error {
		if t.Completed {
			return fmt.Errorf("%w: task %d is completed", service.ErrRemoteRejected, taskID)
		}
		t.Started = true
		return nil
	})
}

// Stop implements service.Service.
func (f *FakeService) Stop(ctx context.Context, taskID int64) error {
	return f.mutate(taskID, func(t *service.Task) error {
		t.Started = false
		return nil
	})
}

// UpdateDueDate implements service.Service.
func (f *FakeService) UpdateDueDate(ctx context.Context, taskID int64, due *service.Date) error {
	return f.mutate(taskID, func(t *service.Task) error {
		t.DueDate = due
		return nil
	})
}

// UpdatePrivate implements service.Service.
func (f *FakeService) UpdatePrivate(ctx context.Context, taskID int64, private bool) error {
	return f.mutate(taskID, func(t *service.Task) error {
		t.Private = private
		return nil
	})
}

// UpdateText implements service.Service.
func (f *FakeService) UpdateText(ctx context.Context, taskID int64, text string) error {
	return f.mutate(taskID, func(t *service.Task) error {
		if text == "" {
			return fmt.Errorf("%w: text must not be empty", service.ErrValidationFailed)
		}
		t.Text = text
		return nil
	})
}

// mutate applies fn to the task under the write lock. Each transition either
// succeeds or fails atomically.
func (f *FakeService) mutate(taskID int64, fn func(*service.Task) error) error {
	if f.MutationErr != nil {
		return f.MutationErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tasks[taskID]
	if !ok || !f.visible(t) {
		return fmt.Errorf("%w: task %d", service.ErrNotFound, taskID)
	}
	return fn(t)
}

// grouped filters visible tasks and groups them by due status.
func (f *FakeService) grouped(match func(*service.Task) bool) (service.TasksByDue, error) {
	if f.ListErr != nil {
		return service.TasksByDue{}, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var tasks []service.Task
	for _, t := range f.tasks {
		if match(t) && f.visible(t) {
			tasks = append(tasks, *t)
		}
	}
	return service.GroupByDue(tasks, f.today()), nil
}

// flatCompleted filters visible tasks and sorts them by completion time
// descending.
func (f *FakeService) flatCompleted(match func(*service.Task) bool) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	var tasks []service.Task
	for _, t := range f.tasks {
		if match(t) && f.visible(t) {
			tasks = append(tasks, *t)
		}
	}
	service.SortCompleted(tasks)
	return tasks, nil
}

// sorted returns all tasks in id order for stable iteration.
func (f *FakeService) sorted() []*service.Task {
	ids := make([]int64, 0, len(f.tasks))
	for id := range f.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	tasks := make([]*service.Task, 0, len(ids))
	for _, id := range ids {
		tasks = append(tasks, f.tasks[id])
	}
	return tasks
}

var _ service.Service = (*FakeService)(nil)
