// Package history implements the paired-stack undo/redo engine over the
// three mutating task operations. Undo pops a record, reverses its effect on
// the owning category and pushes the same record onto the redo stack; redo
// mirrors it. Urgent-queue traffic never reaches this package.
package history

import "tasktree/internal/core/domain"

// ActionKind tags a record with the mutating operation it captured.
type ActionKind string

const (
	ActionAdded    ActionKind = "added"
	ActionRemoved  ActionKind = "removed"
	ActionModified ActionKind = "modified"
)

// Record captures one mutating operation. Task and Category reference the
// live objects; Before and After are field snapshots populated only for
// modifications. Both snapshots are taken at modify time, so redo restores
// the post-modification values even after the live task was reverted by an
// undo.
type Record struct {
	Kind     ActionKind
	Task     *domain.Task
	Category *domain.Category
	Before   domain.TaskSnapshot
	After    domain.TaskSnapshot
}

func Added(task *domain.Task, category *domain.Category) Record {
	return Record{Kind: ActionAdded, Task: task, Category: category}
}

func Removed(task *domain.Task, category *domain.Category) Record {
	return Record{Kind: ActionRemoved, Task: task, Category: category}
}

func Modified(task *domain.Task, category *domain.Category, before, after domain.TaskSnapshot) Record {
	return Record{Kind: ActionModified, Task: task, Category: category, Before: before, After: after}
}

// Log holds the undo and redo stacks. Both slices are used strictly LIFO:
// push and pop happen at the tail.
type Log struct {
	undo []Record
	redo []Record
}

func NewLog() *Log {
	return &Log{}
}

// Push records a fresh mutating operation on the undo stack. The redo stack
// is left untouched, so records parked there by earlier undos stay until
// redone — including after a fresh operation has made them stale.
func (l *Log) Push(r Record) {
	l.undo = append(l.undo, r)
}

// Undo pops the most recent record, applies its inverse effect and moves the
// record to the redo stack.
func (l *Log) Undo() (Record, error) {
	if len(l.undo) == 0 {
		return Record{}, domain.ErrNothingToUndo
	}
	r := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	r.revert()
	l.redo = append(l.redo, r)
	return r, nil
}

// Redo pops the most recent undone record, re-applies its forward effect and
// moves the record back to the undo stack.
func (l *Log) Redo() (Record, error) {
	if len(l.redo) == 0 {
		return Record{}, domain.ErrNothingToRedo
	}
	r := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	r.apply()
	l.undo = append(l.undo, r)
	return r, nil
}

func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

func (l *Log) CanRedo() bool { return len(l.redo) > 0 }

// revert applies the inverse of the recorded operation. An undone removal
// re-appends the task at the tail; the original position is not restored.
func (r Record) revert() {
	switch r.Kind {
	case ActionAdded:
		r.Category.RemoveTask(r.Task)
	case ActionRemoved:
		r.Category.AppendTask(r.Task)
	case ActionModified:
		r.Task.Restore(r.Before)
	}
}

// apply re-applies the recorded operation after an undo.
func (r Record) apply() {
	switch r.Kind {
	case ActionAdded:
		r.Category.AppendTask(r.Task)
	case ActionRemoved:
		r.Category.RemoveTask(r.Task)
	case ActionModified:
		r.Task.Restore(r.After)
	}
}
