package state

import (
	"slices"
	"testing"
)

func TestTodoCollection(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var c TodoCollection
		if c.Len() != 0 {
			t.Errorf("Len() = %d, want 0", c.Len())
		}
		if c.Items() != nil {
			t.Errorf("Items() = %v, want nil", c.Items())
		}
		if c.Identity() != nil {
			t.Error("zero value Identity() should be nil")
		}
	})

	t.Run("append on zero value", func(t *testing.T) {
		var c TodoCollection
		next := c.Append("first")
		if next.Len() != 1 || next.Items()[0] != "first" {
			t.Errorf("Append() = %v", next.Items())
		}
	})

	t.Run("append does not modify receiver", func(t *testing.T) {
		base := NewTodoCollection("a", "b")
		x := base.Append("x")
		y := base.Append("y")

		if !slices.Equal(base.Items(), []string{"a", "b"}) {
			t.Errorf("base = %v", base.Items())
		}
		if !slices.Equal(x.Items(), []string{"a", "b", "x"}) {
			t.Errorf("x = %v", x.Items())
		}
		if !slices.Equal(y.Items(), []string{"a", "b", "y"}) {
			t.Errorf("y = %v", y.Items())
		}
	})

	t.Run("identity", func(t *testing.T) {
		a := NewTodoCollection("a")
		copied := a
		b := NewTodoCollection("a")

		if a.Identity() != copied.Identity() {
			t.Error("copies must share identity")
		}
		if a.Identity() == b.Identity() {
			t.Error("separately built collections must not share identity")
		}
		if a.Identity() == a.Append("z").Identity() {
			t.Error("Append must produce a new identity")
		}
	})

	t.Run("constructor copies input", func(t *testing.T) {
		items := []string{"a", "b"}
		c := NewTodoCollection(items...)
		items[0] = "changed"
		if got := c.Items()[0]; got != "a" {
			t.Errorf("first entry = %q, want %q", got, "a")
		}
	})

	t.Run("items returns a copy", func(t *testing.T) {
		c := NewTodoCollection("a")
		items := c.Items()
		items[0] = "changed"
		if got := c.Items()[0]; got != "a" {
			t.Errorf("first entry = %q, want %q", got, "a")
		}
	})

	t.Run("all visits in order and stops early", func(t *testing.T) {
		c := NewTodoCollection("a", "b", "c")
		var seen []string
		c.All(func(i int, item string) bool {
			seen = append(seen, item)
			return i < 1
		})
		if !slices.Equal(seen, []string{"a", "b"}) {
			t.Errorf("visited %v, want [a b]", seen)
		}
	})
}
