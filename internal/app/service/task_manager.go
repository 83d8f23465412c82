package service

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"tasktree/internal/core/domain"
	"tasktree/internal/core/history"
	"tasktree/internal/core/ports"
)

// TaskManager owns the category forest, the monotonic id counters and the
// undo/redo history. It is single-threaded by contract: every operation runs
// to completion before the next is accepted, so no locking is done here.
type TaskManager struct {
	categories     []*domain.Category
	nextCategoryID uint64
	nextTaskID     uint64
	history        *history.Log
	logger         *zap.Logger
}

func NewTaskManager(logger *zap.Logger) *TaskManager {
	if logger == nil {
		logger = zap.L()
	}
	return &TaskManager{
		nextCategoryID: 1,
		nextTaskID:     1,
		history:        history.NewLog(),
		logger:         logger,
	}
}

var _ ports.TaskManager = (*TaskManager)(nil)

// Categories

// FindCategory searches the whole forest depth-first in pre-order and
// returns the first category matching the id or the name, whichever is hit
// first in traversal order. A zero id or empty name is ignored as a
// criterion.
func (m *TaskManager) FindCategory(id uint64, name string) (*domain.Category, error) {
	for _, root := range m.categories {
		if found := root.FindInSubtree(id, name); found != nil {
			return found, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *TaskManager) AddCategory(name string) (*domain.Category, error) {
	if _, err := m.FindCategory(0, name); err == nil {
		return nil, domain.ErrCategoryExists
	}

	category := domain.NewCategory(m.nextCategoryID, name)
	m.nextCategoryID++
	m.categories = append(m.categories, category)

	m.logger.Info("category added", zap.Uint64("category_id", category.ID), zap.String("name", name))
	return category, nil
}

func (m *TaskManager) AddSubcategory(name, parentName string) (*domain.Category, error) {
	parent, err := m.FindCategory(0, parentName)
	if err != nil {
		return nil, domain.ErrParentNotFound
	}

	sub := parent.AddSubcategory(m.nextCategoryID, name)
	m.nextCategoryID++

	m.logger.Info("subcategory added",
		zap.Uint64("category_id", sub.ID),
		zap.String("name", name),
		zap.String("parent", parentName),
	)
	return sub, nil
}

// Tasks

func (m *TaskManager) AddTask(in domain.TaskInput, categoryName string) (*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}

	task := m.newTask(in)
	category.AppendTask(task)
	m.history.Push(history.Added(task, category))

	m.logger.Info("task added",
		zap.Uint64("task_id", task.ID),
		zap.String("title", task.Title),
		zap.String("category", categoryName),
	)
	return task, nil
}

func (m *TaskManager) RemoveTask(taskID uint64, categoryName string) error {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return err
	}

	task := category.TaskByID(taskID)
	if task == nil {
		return domain.ErrTaskNotFound
	}

	category.RemoveTask(task)
	m.history.Push(history.Removed(task, category))

	m.logger.Info("task removed", zap.Uint64("task_id", taskID), zap.String("category", categoryName))
	return nil
}

func (m *TaskManager) ModifyTask(taskID uint64, in domain.TaskInput, categoryName string) (*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}

	task := category.TaskByID(taskID)
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	before := task.Snapshot()
	task.Apply(in)
	m.history.Push(history.Modified(task, category, before, task.Snapshot()))

	m.logger.Info("task modified", zap.Uint64("task_id", taskID), zap.String("category", categoryName))
	return task, nil
}

// History

func (m *TaskManager) Undo() error {
	record, err := m.history.Undo()
	if err != nil {
		return err
	}

	m.logger.Info("action undone", zap.String("kind", string(record.Kind)), zap.Uint64("task_id", record.Task.ID))
	return nil
}

func (m *TaskManager) Redo() error {
	record, err := m.history.Redo()
	if err != nil {
		return err
	}

	m.logger.Info("action redone", zap.String("kind", string(record.Kind)), zap.Uint64("task_id", record.Task.ID))
	return nil
}

// Urgent queue. Urgent tasks share the task id counter but live in the
// per-category FIFO queue and are never recorded in the history.

func (m *TaskManager) EnqueueUrgent(in domain.TaskInput, categoryName string) (*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}

	task := m.newTask(in)
	category.EnqueueUrgent(task)

	m.logger.Info("urgent task queued",
		zap.Uint64("task_id", task.ID),
		zap.String("title", task.Title),
		zap.String("category", categoryName),
	)
	return task, nil
}

func (m *TaskManager) DequeueUrgent(categoryName string) (*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}

	task := category.DequeueUrgent()
	if task == nil {
		return nil, domain.ErrNoUrgentTasks
	}

	m.logger.Info("urgent task dequeued", zap.Uint64("task_id", task.ID), zap.String("category", categoryName))
	return task, nil
}

func (m *TaskManager) PeekAllUrgent(categoryName string) ([]*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}
	return category.UrgentTasks(), nil
}

// Listing

// ListSorted returns the category's direct tasks ordered by priority first
// (1 before 3), earlier due date breaking ties, stable otherwise. The stored
// insertion order is not touched.
func (m *TaskManager) ListSorted(categoryName string) ([]*domain.Task, error) {
	category, err := m.FindCategory(0, categoryName)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, len(category.Tasks))
	copy(tasks, category.Tasks)
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Priority != tasks[j].Priority {
			return tasks[i].Priority < tasks[j].Priority
		}
		return tasks[i].DueDate.Before(tasks[j].DueDate)
	})
	return tasks, nil
}

// RenderTree renders the whole forest depth-first in pre-order: each
// category's name, its direct tasks, then its subcategories with increasing
// indentation. It returns the text; printing is the caller's concern. An
// empty forest renders as an empty string.
func (m *TaskManager) RenderTree() string {
	var b strings.Builder
	for _, root := range m.categories {
		fmt.Fprintf(&b, "Category: %s\n", root.Name)
		renderTasks(&b, root, 0)
		renderSubcategories(&b, root, 1)
	}
	return b.String()
}

func renderSubcategories(b *strings.Builder, category *domain.Category, level int) {
	for _, sub := range category.Subcategories {
		fmt.Fprintf(b, "%s- Subcategory: %s\n", indent(level), sub.Name)
		renderTasks(b, sub, level+1)
		renderSubcategories(b, sub, level+1)
	}
}

func renderTasks(b *strings.Builder, category *domain.Category, level int) {
	if len(category.Tasks) == 0 {
		fmt.Fprintf(b, "%sNo tasks in %s.\n", indent(level), category.Name)
		return
	}
	fmt.Fprintf(b, "%sTasks in %s:\n", indent(level), category.Name)
	for _, task := range category.Tasks {
		fmt.Fprintf(b, "%s* ID: %d - %s\n", indent(level+2), task.ID, task)
	}
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}

func (m *TaskManager) newTask(in domain.TaskInput) *domain.Task {
	task := &domain.Task{
		ID:          m.nextTaskID,
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
	}
	m.nextTaskID++
	return task
}
