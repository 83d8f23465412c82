package ports

import "tasktree/internal/core/domain"

// TaskManager is the full operation set the core exposes to its caller. The
// console adapter talks only to this interface.
type TaskManager interface {
	FindCategory(id uint64, name string) (*domain.Category, error)
	AddCategory(name string) (*domain.Category, error)
	AddSubcategory(name, parentName string) (*domain.Category, error)

	AddTask(in domain.TaskInput, categoryName string) (*domain.Task, error)
	RemoveTask(taskID uint64, categoryName string) error
	ModifyTask(taskID uint64, in domain.TaskInput, categoryName string) (*domain.Task, error)

	Undo() error
	Redo() error

	EnqueueUrgent(in domain.TaskInput, categoryName string) (*domain.Task, error)
	DequeueUrgent(categoryName string) (*domain.Task, error)
	PeekAllUrgent(categoryName string) ([]*domain.Task, error)

	ListSorted(categoryName string) ([]*domain.Task, error)
	RenderTree() string
}
