// Package service defines the task domain model and the backend-agnostic
// interface for task operations.
package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Task is a unit of work tracked by the service.
//
// Started and completed are independent axes: a task may be started and not
// completed, or completed without ever having been started. A private task is
// visible only to its creator, assignor and responsible; that rule is
// enforced by the service, the client only carries the flag.
type Task struct {
	ID          int64      `json:"task_id"`
	Text        string     `json:"text"`
	DueDate     *Date      `json:"due_date,omitempty"`
	Private     bool       `json:"private"`
	Completed   bool       `json:"completed"`
	Started     bool       `json:"started"`
	Responsible int64      `json:"responsible"`
	CreatedBy   int64      `json:"created_by"`
	SpaceID     int64      `json:"space_id,omitempty"`
	CreatedOn   time.Time  `json:"created_on"`
	CompletedOn *time.Time `json:"completed_on,omitempty"`

	// Ref is the entity the task is attached to. It is never set on tasks
	// returned by a list-by-reference query.
	Ref *Reference `json:"ref,omitempty"`
}

// TaskCreate is the payload for creating a task.
type TaskCreate struct {
	Text        string `json:"text" validate:"required"`
	DueDate     *Date  `json:"due_date,omitempty"`
	Private     bool   `json:"private,omitempty"`
	Responsible int64  `json:"responsible,omitempty" validate:"gte=0"`
}

var validate = validator.New()

// Validate checks the payload locally, before any remote call.
func (c TaskCreate) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	return nil
}

// TasksWithResponsible groups the tasks assigned to a single user.
type TasksWithResponsible struct {
	Responsible int64  `json:"responsible"`
	Tasks       []Task `json:"tasks"`
}

// TaskTotals holds aggregate task counts for the calling user, optionally
// scoped to a space. Own counts tasks the user is responsible for, delegated
// counts tasks the user assigned to others; both cover active tasks only.
type TaskTotals struct {
	Own       int `json:"own"`
	Delegated int `json:"delegated"`
	Total     int `json:"total"`
}
