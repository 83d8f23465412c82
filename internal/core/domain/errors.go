package domain

import "errors"

// Category errors
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrParentNotFound   = errors.New("parent category not found")
	ErrCategoryExists   = errors.New("category already exists")
)

// Task and history errors
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrNoUrgentTasks = errors.New("no urgent tasks queued")
)
