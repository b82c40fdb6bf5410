// Package command wraps order edits as undoable actions.
package command

import (
	"errors"
	"slices"
)

var (
	ErrAlreadyExecuted = errors.New("command: already executed")
	ErrNotExecuted     = errors.New("command: not executed")
	ErrItemMissing     = errors.New("command: item no longer in order")
)

// Command is an action that can be applied once and reverted once.
type Command interface {
	Execute() error
	Undo() error
}

// AddItemCommand appends an item to an order and records what it did.
type AddItemCommand struct {
	order    *[]string
	item     string
	logs     *[]string
	executed bool
}

// NewAddItemCommand edits the slice behind order. logs may be nil, in which
// case entries are kept on the command itself.
func NewAddItemCommand(order *[]string, item string, logs *[]string) *AddItemCommand {
	if logs == nil {
		logs = new([]string)
	}
	return &AddItemCommand{order: order, item: item, logs: logs}
}

func (c *AddItemCommand) Execute() error {
	if c.executed {
		return ErrAlreadyExecuted
	}
	*c.order = append(*c.order, c.item)
	*c.logs = append(*c.logs, "added "+c.item)
	c.executed = true
	return nil
}

// Undo removes the item Execute appended. If the order was edited in between,
// the last occurrence of the item is removed instead of the tail.
func (c *AddItemCommand) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	i := lastIndex(*c.order, c.item)
	if i < 0 {
		return ErrItemMissing
	}
	*c.order = slices.Delete(*c.order, i, i+1)
	*c.logs = append(*c.logs, "removed "+c.item)
	c.executed = false
	return nil
}

func lastIndex(items []string, item string) int {
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == item {
			return i
		}
	}
	return -1
}

// Logs returns the entries recorded so far.
func (c *AddItemCommand) Logs() []string {
	return *c.logs
}

var _ Command = (*AddItemCommand)(nil)
