// Package state holds the application state owned by the root view: the todo
// collection, the counter, and the pending task text.
package state

// DefaultTodos are the entries a fresh collection is seeded with.
var DefaultTodos = []string{"Learn React", "Build a project"}

// NewTodoText is the literal appended by AddTodo.
const NewTodoText = "New todo"

// todoData is the backing storage for one collection value. Its address is
// the collection's identity.
type todoData struct {
	items []string
}

// TodoCollection is an immutable, ordered list of todo strings. Append never
// modifies the receiver; it returns a new collection with a new Identity.
// The zero value is an empty collection.
type TodoCollection struct {
	data *todoData
}

// Identity is a comparable token distinguishing collection values. Two
// collections share an Identity only if one was copied from the other.
type Identity *todoData

// NewTodoCollection creates a collection holding a copy of items.
func NewTodoCollection(items ...string) TodoCollection {
	cp := make([]string, len(items))
	copy(cp, items)
	return TodoCollection{data: &todoData{items: cp}}
}

// Append returns a new collection with item added at the end.
func (c TodoCollection) Append(item string) TodoCollection {
	n := c.Len()
	items := make([]string, n, n+1)
	if c.data != nil {
		copy(items, c.data.items)
	}
	items = append(items, item)
	return TodoCollection{data: &todoData{items: items}}
}

// Len returns the number of entries.
func (c TodoCollection) Len() int {
	if c.data == nil {
		return 0
	}
	return len(c.data.items)
}

// Items returns a copy of the entries in display order.
func (c TodoCollection) Items() []string {
	if c.data == nil {
		return nil
	}
	cp := make([]string, len(c.data.items))
	copy(cp, c.data.items)
	return cp
}

// All calls fn for each entry in order until fn returns false.
func (c TodoCollection) All(fn func(i int, item string) bool) {
	if c.data == nil {
		return
	}
	for i, item := range c.data.items {
		if !fn(i, item) {
			return
		}
	}
}

// Identity returns the collection's identity token.
func (c TodoCollection) Identity() Identity {
	return c.data
}
