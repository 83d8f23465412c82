package domain

// Category is a node in the task-organization tree. It exclusively owns its
// direct tasks, its subcategories, and a FIFO queue of urgent tasks that is
// disjoint from the task list. Categories are never deleted.
type Category struct {
	ID            uint64
	Name          string
	Tasks         []*Task
	Subcategories []*Category

	// urgent is used strictly FIFO: enqueue at the tail, dequeue from the
	// head. Kept unexported so the ordering contract stays in this file.
	urgent []*Task
}

func NewCategory(id uint64, name string) *Category {
	return &Category{ID: id, Name: name}
}

// AddSubcategory appends a new child category and returns it. Sibling name
// collisions are not checked here; uniqueness is only enforced for roots at
// creation through the manager.
func (c *Category) AddSubcategory(id uint64, name string) *Category {
	sub := NewCategory(id, name)
	c.Subcategories = append(c.Subcategories, sub)
	return sub
}

// FindInSubtree walks this category and its subcategories depth-first in
// pre-order and returns the first node whose ID equals id or whose name
// equals name. A zero id and an empty name never match, so callers can
// search by either criterion alone. When both are supplied, an id match on
// one category satisfies the search even if the name points elsewhere.
func (c *Category) FindInSubtree(id uint64, name string) *Category {
	if c.matches(id, name) {
		return c
	}
	for _, sub := range c.Subcategories {
		if found := sub.FindInSubtree(id, name); found != nil {
			return found
		}
	}
	return nil
}

func (c *Category) matches(id uint64, name string) bool {
	return (id != 0 && c.ID == id) || (name != "" && c.Name == name)
}

func (c *Category) AppendTask(t *Task) {
	c.Tasks = append(c.Tasks, t)
}

// RemoveTask removes the task from the task list by identity and reports
// whether it was present.
func (c *Category) RemoveTask(t *Task) bool {
	for i, candidate := range c.Tasks {
		if candidate == t {
			c.Tasks = append(c.Tasks[:i], c.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// TaskByID linear-searches the direct task list. Subcategories are not
// searched.
func (c *Category) TaskByID(id uint64) *Task {
	for _, t := range c.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// EnqueueUrgent appends the task to the urgent queue tail.
func (c *Category) EnqueueUrgent(t *Task) {
	c.urgent = append(c.urgent, t)
}

// DequeueUrgent removes and returns the head of the urgent queue, or nil
// when the queue is empty.
func (c *Category) DequeueUrgent() *Task {
	if len(c.urgent) == 0 {
		return nil
	}
	head := c.urgent[0]
	c.urgent = c.urgent[1:]
	return head
}

// UrgentTasks returns a copy of the urgent queue in FIFO order without
// draining it.
func (c *Category) UrgentTasks() []*Task {
	queued := make([]*Task, len(c.urgent))
	copy(queued, c.urgent)
	return queued
}

func (c *Category) UrgentCount() int {
	return len(c.urgent)
}
