// Package menu holds the numbered action table the console dispatches on.
package menu

import (
	"context"
)

// HandlerFunc runs one console action. Errors bubble up to the console loop,
// which decides between a refusal notice and an error line.
type HandlerFunc func(ctx context.Context) error

// Item is one selectable menu entry.
type Item struct {
	Code  string
	Label string
	Run   HandlerFunc
}

type Menu struct {
	items []Item
}

func New() *Menu {
	return &Menu{}
}

// Add appends items in presentation order. Codes are not checked for
// duplicates; the first registration wins on dispatch.
func (m *Menu) Add(items ...Item) {
	m.items = append(m.items, items...)
}

// Items returns the entries in registration order for rendering.
func (m *Menu) Items() []Item {
	return m.items
}

// Dispatch runs the item registered under code. The boolean reports whether
// the code matched anything.
func (m *Menu) Dispatch(ctx context.Context, code string) (bool, error) {
	for _, item := range m.items {
		if item.Code == code {
			return true, item.Run(ctx)
		}
	}

	return false, nil
}
