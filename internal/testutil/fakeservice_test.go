package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htask/internal/service"
)

var ctx = context.Background()

func fixedClock(f *FakeService, start time.Time) *time.Time {
	now := start
	f.Clock = func() time.Time {
		now = now.Add(time.Minute)
		return now
	}
	return &now
}

func TestCreateThenGet(t *testing.T) {
	f := NewFakeService()
	due := service.NewDate(2024, time.March, 1)

	id, err := f.Create(ctx, service.TaskCreate{Text: "Ship report", DueDate: &due})
	require.NoError(t, err)

	task, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ship report", task.Text)
	assert.Equal(t, &due, task.DueDate)
	assert.False(t, task.Completed)
	assert.False(t, task.Started)
	assert.False(t, task.Private)
	assert.Equal(t, f.UserID, task.Responsible)
}

func TestCreateRejectsEmptyText(t *testing.T) {
	f := NewFakeService()
	_, err := f.Create(ctx, service.TaskCreate{})
	assert.ErrorIs(t, err, service.ErrValidationFailed)
}

func TestGetUnknownTask(t *testing.T) {
	f := NewFakeService()
	_, err := f.Get(ctx, 999)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCompleteIncompleteRoundTrip(t *testing.T) {
	f := NewFakeService()
	due := service.NewDate(2024, time.March, 1)
	id, err := f.Create(ctx, service.TaskCreate{Text: "Ship report", DueDate: &due, Private: true})
	require.NoError(t, err)
	before, err := f.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, f.Complete(ctx, id))
	completed, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, completed.Completed)
	assert.NotNil(t, completed.CompletedOn)

	require.NoError(t, f.Incomplete(ctx, id))
	after, err := f.Get(ctx, id)
	require.NoError(t, err)

	// back to completed=false with all other fields unchanged
	assert.Equal(t, before, after)
}

func TestCompleteIsIdempotent(t *testing.T) {
	f := NewFakeService()
	id, err := f.Create(ctx, service.TaskCreate{Text: "x"})
	require.NoError(t, err)

	require.NoError(t, f.Complete(ctx, id))
	first, err := f.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, f.Complete(ctx, id))
	second, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, first.CompletedOn, second.CompletedOn)
}

func TestIncompleteOnNeverCompletedIsRejected(t *testing.T) {
	f := NewFakeService()
	id, err := f.Create(ctx, service.TaskCreate{Text: "x"})
	require.NoError(t, err)

	err = f.Incomplete(ctx, id)
	assert.ErrorIs(t, err, service.ErrRemoteRejected)
}

func TestStartStopRoundTrip(t *testing.T) {
	f := NewFakeService()
	id, err := f.Create(ctx, service.TaskCreate{Text: "x"})
	require.NoError(t, err)
	before, err := f.Get(ctx, id)
	require.NoError(t, err)

	require.NoError(t, f.Start(ctx, id))
	started, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, started.Started)
	assert.False(t, started.Completed)

	require.NoError(t, f.Stop(ctx, id))
	after, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStartOnCompletedIsRejected(t *testing.T) {
	f := NewFakeService()
	id, err := f.Create(ctx, service.TaskCreate{Text: "x"})
	require.NoError(t, err)
	require.NoError(t, f.Complete(ctx, id))

	assert.ErrorIs(t, f.Start(ctx, id), service.ErrRemoteRejected)
}

func TestAssignDoesNotTouchLifecycle(t *testing.T) {
	f := NewFakeService()
	id, err := f.Create(ctx, service.TaskCreate{Text: "x"})
	require.NoError(t, err)
	require.NoError(t, f.Start(ctx, id))

	require.NoError(t, f.Assign(ctx, id, 7))

	task, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), task.Responsible)
	assert.True(t, task.Started)
	assert.False(t, task.Completed)
}

func TestUpdateDueDateClears(t *testing.T) {
	f := NewFakeService()
	due := service.NewDate(2024, time.March, 1)
	id, err := f.Create(ctx, service.TaskCreate{Text: "x", DueDate: &due})
	require.NoError(t, err)

	require.NoError(t, f.UpdateDueDate(ctx, id, nil))
	task, err := f.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, task.DueDate)
}

func TestReferenceAsymmetry(t *testing.T) {
	f := NewFakeService()
	ref := service.Reference{Type: service.RefItem, ID: 7}

	id, err := f.CreateWithReference(ctx, service.TaskCreate{Text: "Attached"}, ref)
	require.NoError(t, err)

	// direct get exposes the attachment
	task, err := f.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, task.Ref)
	assert.Equal(t, ref, *task.Ref)

	// list-by-reference finds the task but never echoes the reference back
	tasks, err := f.ListByReference(ctx, ref)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, id, tasks[0].ID)
	assert.Nil(t, tasks[0].Ref)
}

func TestListByReferenceIncludesCompleted(t *testing.T) {
	f := NewFakeService()
	ref := service.Reference{Type: service.RefItem, ID: 7}

	id1, err := f.CreateWithReference(ctx, service.TaskCreate{Text: "a"}, ref)
	require.NoError(t, err)
	_, err = f.CreateWithReference(ctx, service.TaskCreate{Text: "b"}, ref)
	require.NoError(t, err)
	require.NoError(t, f.Complete(ctx, id1))

	tasks, err := f.ListByReference(ctx, ref)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)
}

func TestActiveGroupsByDueStatus(t *testing.T) {
	f := NewFakeService()
	start := time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)
	fixedClock(f, start)

	today := service.NewDate(2024, time.March, 15)
	yesterday := today.AddDays(-1)

	f.AddTask(service.Task{Text: "late", DueDate: &yesterday})
	f.AddTask(service.Task{Text: "now", DueDate: &today})
	f.AddTask(service.Task{Text: "whenever"})
	doneID := f.AddTask(service.Task{Text: "done"})
	require.NoError(t, f.Complete(ctx, doneID))
	f.AddTask(service.Task{Text: "someone else's", Responsible: 9, CreatedBy: 9})

	g, err := f.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, g.Overdue, 1)
	assert.Len(t, g.DueToday, 1)
	assert.Len(t, g.NoDueDate, 1)
	assert.Empty(t, g.DueTomorrow)
	assert.Empty(t, g.DueLater)
}

func TestActiveBucketsInConfiguredZone(t *testing.T) {
	f := NewFakeService()
	// 23:30 UTC is already the next calendar day two hours east.
	f.Clock = func() time.Time {
		return time.Date(2024, time.March, 15, 23, 30, 0, 0, time.UTC)
	}
	f.Loc = time.FixedZone("UTC+2", 2*60*60)

	due := service.NewDate(2024, time.March, 15)
	f.AddTask(service.Task{Text: "late there", DueDate: &due})

	g, err := f.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, g.Overdue, 1)
	assert.Empty(t, g.DueToday)
}

func TestStartedListsOnlyStarted(t *testing.T) {
	f := NewFakeService()
	id1 := f.AddTask(service.Task{Text: "a"})
	f.AddTask(service.Task{Text: "b"})
	require.NoError(t, f.Start(ctx, id1))

	g, err := f.Started(ctx)
	require.NoError(t, err)
	require.Len(t, g.NoDueDate, 1)
	assert.Equal(t, id1, g.NoDueDate[0].ID)
}

func TestAssignedSplit(t *testing.T) {
	f := NewFakeService()
	f.AddTask(service.Task{Text: "mine"})
	delegated := f.AddTask(service.Task{Text: "theirs", Responsible: 9})
	doneID := f.AddTask(service.Task{Text: "theirs done", Responsible: 9})
	require.NoError(t, f.Complete(ctx, doneID))

	g, err := f.AssignedActive(ctx)
	require.NoError(t, err)
	require.Len(t, g.NoDueDate, 1)
	assert.Equal(t, delegated, g.NoDueDate[0].ID)

	completed, err := f.AssignedCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, doneID, completed[0].ID)
}

func TestCompletedOrderedMostRecentFirst(t *testing.T) {
	f := NewFakeService()
	fixedClock(f, time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC))

	first := f.AddTask(service.Task{Text: "first"})
	second := f.AddTask(service.Task{Text: "second"})
	require.NoError(t, f.Complete(ctx, first))
	require.NoError(t, f.Complete(ctx, second))

	tasks, err := f.Completed(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, second, tasks[0].ID)
	assert.Equal(t, first, tasks[1].ID)
}

func TestInSpaceByResponsibleGroups(t *testing.T) {
	f := NewFakeService()
	f.AddTask(service.Task{Text: "a", SpaceID: 5, Responsible: 2})
	f.AddTask(service.Task{Text: "b", SpaceID: 5, Responsible: 1})
	f.AddTask(service.Task{Text: "c", SpaceID: 5, Responsible: 2})
	f.AddTask(service.Task{Text: "other space", SpaceID: 6, Responsible: 2})

	groups, err := f.InSpaceByResponsible(ctx, 5)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(1), groups[0].Responsible)
	assert.Len(t, groups[0].Tasks, 1)
	assert.Equal(t, int64(2), groups[1].Responsible)
	assert.Len(t, groups[1].Tasks, 2)
}

func TestPrivateTasksHiddenFromOthers(t *testing.T) {
	f := NewFakeService()
	f.AddTask(service.Task{Text: "secret", SpaceID: 5, Private: true, Responsible: 9, CreatedBy: 9})
	f.AddTask(service.Task{Text: "public", SpaceID: 5, Responsible: 9, CreatedBy: 9})

	g, err := f.InSpaceByDue(ctx, 5)
	require.NoError(t, err)
	require.Len(t, g.NoDueDate, 1)
	assert.Equal(t, "public", g.NoDueDate[0].Text)
}

func TestTotalsAreIndependentQueries(t *testing.T) {
	f := NewFakeService()
	f.AddTask(service.Task{Text: "a", SpaceID: 5})
	f.AddTask(service.Task{Text: "b"})
	f.AddTask(service.Task{Text: "delegated", SpaceID: 5, Responsible: 9})

	all, err := f.Totals(ctx)
	require.NoError(t, err)
	scoped, err := f.TotalsInSpace(ctx, 5)
	require.NoError(t, err)

	assert.Equal(t, service.TaskTotals{Own: 2, Delegated: 1, Total: 3}, all)
	assert.Equal(t, service.TaskTotals{Own: 1, Delegated: 1, Total: 2}, scoped)

	// repeating either query yields the same answer: no shared mutable state
	again, err := f.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, again)
}

func TestErrorInjection(t *testing.T) {
	f := NewFakeService()
	f.AddTask(service.Task{Text: "x"})

	f.ListErr = service.ErrRemoteUnavailable
	_, err := f.Active(ctx)
	assert.ErrorIs(t, err, service.ErrRemoteUnavailable)

	f.MutationErr = service.ErrRemoteUnavailable
	assert.ErrorIs(t, f.Complete(ctx, 1), service.ErrRemoteUnavailable)
}
