package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskCreateValidate(t *testing.T) {
	due := NewDate(2024, time.March, 1)
	valid := TaskCreate{Text: "Ship report", DueDate: &due}
	assert.NoError(t, valid.Validate())

	err := TaskCreate{}.Validate()
	assert.ErrorIs(t, err, ErrValidationFailed)

	err = TaskCreate{Text: "x", Responsible: -1}.Validate()
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestTaskJSONShape(t *testing.T) {
	due := NewDate(2024, time.March, 1)
	task := Task{
		ID:          42,
		Text:        "Ship report",
		DueDate:     &due,
		Responsible: 7,
		CreatedBy:   1,
		CreatedOn:   time.Date(2024, time.February, 20, 9, 30, 0, 0, time.UTC),
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, float64(42), decoded["task_id"])
	assert.Equal(t, "2024-03-01", decoded["due_date"])
	assert.Equal(t, false, decoded["completed"])
	assert.NotContains(t, decoded, "completed_on")
	assert.NotContains(t, decoded, "ref")
}

func TestTasksByDueJSONKeys(t *testing.T) {
	g := TasksByDue{
		Overdue:  []Task{{ID: 1}},
		DueToday: []Task{{ID: 2}},
	}

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "overdue")
	assert.Contains(t, decoded, "due_today")
	assert.NotContains(t, decoded, "due_later")
}
