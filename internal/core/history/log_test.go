package history_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"tasktree/internal/core/domain"
	"tasktree/internal/core/history"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestUndoRedo_EmptyStacks(t *testing.T) {
	log := history.NewLog()

	_, err := log.Undo()
	require.ErrorIs(t, err, domain.ErrNothingToUndo)

	_, err = log.Redo()
	require.ErrorIs(t, err, domain.ErrNothingToRedo)

	require.False(t, log.CanUndo())
	require.False(t, log.CanRedo())
}

func TestUndoRedo_Added(t *testing.T) {
	cat := domain.NewCategory(1, "Work")
	task := &domain.Task{ID: 1, Title: "report"}
	cat.AppendTask(task)

	log := history.NewLog()
	log.Push(history.Added(task, cat))

	record, err := log.Undo()
	require.NoError(t, err)
	require.Equal(t, history.ActionAdded, record.Kind)
	require.Empty(t, cat.Tasks)
	require.True(t, log.CanRedo())

	_, err = log.Redo()
	require.NoError(t, err)
	require.Equal(t, []*domain.Task{task}, cat.Tasks)
	require.True(t, log.CanUndo())
}

func TestUndo_Removed_ReappendsAtTail(t *testing.T) {
	cat := domain.NewCategory(1, "Work")
	removed := &domain.Task{ID: 1, Title: "first"}
	kept := &domain.Task{ID: 2, Title: "second"}
	cat.AppendTask(removed)
	cat.AppendTask(kept)

	log := history.NewLog()
	cat.RemoveTask(removed)
	log.Push(history.Removed(removed, cat))

	_, err := log.Undo()
	require.NoError(t, err)
	// The task comes back at the end, not at its original index.
	require.Equal(t, []*domain.Task{kept, removed}, cat.Tasks)

	_, err = log.Redo()
	require.NoError(t, err)
	require.Equal(t, []*domain.Task{kept}, cat.Tasks)
}

func TestUndoRedo_Modified_UsesBothSnapshots(t *testing.T) {
	cat := domain.NewCategory(1, "Work")
	task := &domain.Task{
		ID:       1,
		Title:    "original",
		Priority: 3,
		DueDate:  date(2025, time.January, 1),
	}
	cat.AppendTask(task)

	log := history.NewLog()
	before := task.Snapshot()
	task.Apply(domain.TaskInput{
		Title:       "updated",
		Description: "now with details",
		Priority:    1,
		DueDate:     date(2026, time.June, 15),
	})
	log.Push(history.Modified(task, cat, before, task.Snapshot()))

	_, err := log.Undo()
	require.NoError(t, err)
	require.Equal(t, "original", task.Title)
	require.Equal(t, "", task.Description)
	require.Equal(t, 3, task.Priority)
	require.Equal(t, date(2025, time.January, 1), task.DueDate)

	_, err = log.Redo()
	require.NoError(t, err)
	require.Equal(t, "updated", task.Title)
	require.Equal(t, "now with details", task.Description)
	require.Equal(t, 1, task.Priority)
	require.Equal(t, date(2026, time.June, 15), task.DueDate)
}

func TestUndoOrder_LIFO(t *testing.T) {
	cat := domain.NewCategory(1, "Work")
	first := &domain.Task{ID: 1}
	second := &domain.Task{ID: 2}
	cat.AppendTask(first)
	cat.AppendTask(second)

	log := history.NewLog()
	log.Push(history.Added(first, cat))
	log.Push(history.Added(second, cat))

	record, err := log.Undo()
	require.NoError(t, err)
	require.Same(t, second, record.Task)

	record, err = log.Undo()
	require.NoError(t, err)
	require.Same(t, first, record.Task)
}

func TestPush_DoesNotClearRedoStack(t *testing.T) {
	cat := domain.NewCategory(1, "Work")
	first := &domain.Task{ID: 1}
	cat.AppendTask(first)

	log := history.NewLog()
	log.Push(history.Added(first, cat))

	_, err := log.Undo()
	require.NoError(t, err)
	require.True(t, log.CanRedo())

	// A fresh operation lands on the undo stack only; the parked redo entry
	// survives and stays replayable.
	second := &domain.Task{ID: 2}
	cat.AppendTask(second)
	log.Push(history.Added(second, cat))
	require.True(t, log.CanRedo())

	record, err := log.Redo()
	require.NoError(t, err)
	require.Same(t, first, record.Task)
	require.Equal(t, []*domain.Task{second, first}, cat.Tasks)
}
