package domain

import (
	"fmt"
	"time"
)

// DueDateLayout is the DD/MM/YYYY layout the console surface speaks.
const DueDateLayout = "02/01/2006"

// Task is one unit of work. IDs are allocated by the task manager,
// monotonically increasing and never reused.
type Task struct {
	ID          uint64
	Title       string
	Description string
	Priority    int
	DueDate     time.Time
}

// TaskInput carries already-validated fields for creating or modifying a
// task: Priority in 1..3, DueDate a valid calendar date.
type TaskInput struct {
	Title       string
	Description string
	Priority    int
	DueDate     time.Time
}

// TaskSnapshot is a value copy of a task's mutable fields, taken before and
// after a modification so the history engine can move between both states.
type TaskSnapshot struct {
	Title       string
	Description string
	Priority    int
	DueDate     time.Time
}

func (t *Task) Snapshot() TaskSnapshot {
	return TaskSnapshot{
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
	}
}

// Restore overwrites the task's mutable fields with the snapshot values.
// The ID is not part of a snapshot and never changes.
func (t *Task) Restore(s TaskSnapshot) {
	t.Title = s.Title
	t.Description = s.Description
	t.Priority = s.Priority
	t.DueDate = s.DueDate
}

// Apply replaces the task's mutable fields wholesale with the input values.
func (t *Task) Apply(in TaskInput) {
	t.Title = in.Title
	t.Description = in.Description
	t.Priority = in.Priority
	t.DueDate = in.DueDate
}

func (t *Task) String() string {
	return fmt.Sprintf("%s - %s - Priority: %d - Due: %s",
		t.Title, t.Description, t.Priority, t.DueDate.Format(DueDateLayout))
}
