// Package console is the interactive menu surface. It parses and validates
// raw input, calls the core through the TaskManager port and renders the
// outcome as localized text. The core itself never prints.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tasktree/internal/core/domain"
	"tasktree/internal/core/ports"
	"tasktree/pkg/uimsg"
)

type Options struct {
	Lang        string
	DateFormat  string
	ClearScreen bool
}

type Console struct {
	manager ports.TaskManager
	in      *bufio.Scanner
	out     io.Writer
	opts    Options
}

func New(manager ports.TaskManager, in io.Reader, out io.Writer, opts Options) *Console {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	if opts.DateFormat == "" {
		opts.DateFormat = domain.DueDateLayout
	}
	return &Console{
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
		opts:    opts,
	}
}

// Run loops over the menu until the user exits or input ends.
func (c *Console) Run() error {
	for {
		c.clear()
		c.println(c.msg(uimsg.MsgMenu))
		c.print(c.msg(uimsg.MsgPromptOption))

		option, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}

		switch strings.TrimSpace(option) {
		case "1":
			c.addCategory()
		case "2":
			c.addSubcategory()
		case "3":
			c.addTask()
		case "4":
			c.modifyTask()
		case "5":
			c.removeTask()
		case "6":
			c.showSorted()
		case "7":
			c.undo()
		case "8":
			c.redo()
		case "9":
			c.addUrgent()
		case "10":
			c.processUrgent()
		case "11":
			c.showUrgent()
		case "12":
			c.showTree()
		case "13":
			c.println(c.msg(uimsg.MsgGoodbye))
			return nil
		default:
			c.println(c.msg(uimsg.MsgInvalidOption))
		}

		c.println("")
		c.println(c.msg(uimsg.MsgPressEnter))
		if _, ok := c.readLine(); !ok {
			return c.in.Err()
		}
	}
}

// Menu actions

func (c *Console) addCategory() {
	name, ok := c.promptNonEmpty(uimsg.MsgPromptCategoryName)
	if !ok {
		return
	}

	if _, err := c.manager.AddCategory(name); err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgCategoryAdded, map[string]any{"Name": name}))
}

func (c *Console) addSubcategory() {
	parent, ok := c.promptNonEmpty(uimsg.MsgPromptParentCategory)
	if !ok {
		return
	}
	name, ok := c.promptNonEmpty(uimsg.MsgPromptSubcategoryName)
	if !ok {
		return
	}

	if _, err := c.manager.AddSubcategory(name, parent); err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgSubcategoryAdded, map[string]any{"Name": name, "Parent": parent}))
}

func (c *Console) addTask() {
	category, input, ok := c.promptTaskInput()
	if !ok {
		return
	}

	task, err := c.manager.AddTask(input, category)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgTaskAdded, map[string]any{"Title": task.Title, "Category": category}))
}

func (c *Console) modifyTask() {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return
	}
	taskID, ok := c.promptID()
	if !ok {
		return
	}
	input, ok := c.promptTaskFields()
	if !ok {
		return
	}

	task, err := c.manager.ModifyTask(taskID, input, category)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgTaskModified, map[string]any{"Title": task.Title}))
}

func (c *Console) removeTask() {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return
	}
	taskID, ok := c.promptID()
	if !ok {
		return
	}

	if err := c.manager.RemoveTask(taskID, category); err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgTaskRemoved, map[string]any{"ID": taskID}))
}

func (c *Console) showSorted() {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return
	}

	tasks, err := c.manager.ListSorted(category)
	if err != nil {
		c.printError(err)
		return
	}
	if len(tasks) == 0 {
		c.println(c.msg(uimsg.MsgNoTasksInList))
		return
	}
	for _, task := range tasks {
		c.println(task.String())
	}
}

func (c *Console) undo() {
	if err := c.manager.Undo(); err != nil {
		c.printError(err)
		return
	}
	c.println(c.msg(uimsg.MsgActionUndone))
}

func (c *Console) redo() {
	if err := c.manager.Redo(); err != nil {
		c.printError(err)
		return
	}
	c.println(c.msg(uimsg.MsgActionRedone))
}

func (c *Console) addUrgent() {
	category, input, ok := c.promptTaskInput()
	if !ok {
		return
	}

	task, err := c.manager.EnqueueUrgent(input, category)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgUrgentAdded, map[string]any{"Task": task.String()}))
}

func (c *Console) processUrgent() {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return
	}

	task, err := c.manager.DequeueUrgent(category)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(c.msgf(uimsg.MsgUrgentProcessing, map[string]any{"Task": task.String()}))
}

func (c *Console) showUrgent() {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return
	}

	tasks, err := c.manager.PeekAllUrgent(category)
	if err != nil {
		c.printError(err)
		return
	}
	if len(tasks) == 0 {
		c.println(c.msg(uimsg.MsgErrNoUrgentTasks))
		return
	}
	c.println(c.msgf(uimsg.MsgUrgentHeader, map[string]any{"Category": category}))
	for _, task := range tasks {
		c.println(fmt.Sprintf("* ID: %d - %s", task.ID, task))
	}
}

func (c *Console) showTree() {
	tree := c.manager.RenderTree()
	if tree == "" {
		c.println(c.msg(uimsg.MsgNoCategories))
		return
	}
	c.print(tree)
}

// Prompt helpers. Each validates one raw value and reports failure after
// printing the matching error message, mirroring the core's contract that it
// only ever receives already-validated arguments.

func (c *Console) promptTaskInput() (string, domain.TaskInput, bool) {
	category, ok := c.promptNonEmpty(uimsg.MsgPromptTaskCategory)
	if !ok {
		return "", domain.TaskInput{}, false
	}
	input, ok := c.promptTaskFields()
	if !ok {
		return "", domain.TaskInput{}, false
	}
	return category, input, true
}

func (c *Console) promptTaskFields() (domain.TaskInput, bool) {
	title, ok := c.promptNonEmpty(uimsg.MsgPromptTitle)
	if !ok {
		return domain.TaskInput{}, false
	}

	c.print(c.msg(uimsg.MsgPromptDescription))
	description, ok := c.readLine()
	if !ok {
		return domain.TaskInput{}, false
	}

	c.print(c.msg(uimsg.MsgPromptPriority))
	rawPriority, ok := c.readLine()
	if !ok {
		return domain.TaskInput{}, false
	}
	priority, err := strconv.Atoi(strings.TrimSpace(rawPriority))
	if err != nil || priority < 1 || priority > 3 {
		c.println(c.msg(uimsg.MsgErrInvalidPriority))
		return domain.TaskInput{}, false
	}

	c.print(c.msg(uimsg.MsgPromptDueDate))
	rawDate, ok := c.readLine()
	if !ok {
		return domain.TaskInput{}, false
	}
	dueDate, err := time.Parse(c.opts.DateFormat, strings.TrimSpace(rawDate))
	if err != nil {
		c.println(c.msg(uimsg.MsgErrInvalidDate))
		return domain.TaskInput{}, false
	}

	return domain.TaskInput{
		Title:       title,
		Description: strings.TrimSpace(description),
		Priority:    priority,
		DueDate:     dueDate,
	}, true
}

func (c *Console) promptNonEmpty(msgKey string) (string, bool) {
	c.print(c.msg(msgKey))
	value, ok := c.readLine()
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value == "" {
		c.println(c.msg(uimsg.MsgErrEmptyName))
		return "", false
	}
	return value, true
}

func (c *Console) promptID() (uint64, bool) {
	c.print(c.msg(uimsg.MsgPromptTaskID))
	raw, ok := c.readLine()
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		c.println(c.msg(uimsg.MsgErrInvalidID))
		return 0, false
	}
	return id, true
}

// printError maps a domain sentinel to its localized message. Errors outside
// the taxonomy are printed as-is.
func (c *Console) printError(err error) {
	if key, ok := messageKey(err); ok {
		c.println(c.msg(key))
		return
	}
	c.println(err.Error())
}

func messageKey(err error) (string, bool) {
	switch {
	case errors.Is(err, domain.ErrCategoryExists):
		return uimsg.MsgErrCategoryExists, true
	case errors.Is(err, domain.ErrParentNotFound):
		return uimsg.MsgErrParentNotFound, true
	case errors.Is(err, domain.ErrCategoryNotFound):
		return uimsg.MsgErrCategoryNotFound, true
	case errors.Is(err, domain.ErrTaskNotFound):
		return uimsg.MsgErrTaskNotFound, true
	case errors.Is(err, domain.ErrNothingToUndo):
		return uimsg.MsgErrNothingToUndo, true
	case errors.Is(err, domain.ErrNothingToRedo):
		return uimsg.MsgErrNothingToRedo, true
	case errors.Is(err, domain.ErrNoUrgentTasks):
		return uimsg.MsgErrNoUrgentTasks, true
	default:
		return "", false
	}
}

// I/O helpers

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) msg(key string) string {
	return uimsg.Localize(key, c.opts.Lang, nil)
}

func (c *Console) msgf(key string, data map[string]any) string {
	return uimsg.Localize(key, c.opts.Lang, data)
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, "\033[2J\033[H")
	}
}
