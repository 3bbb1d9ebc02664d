package picker

import "testing"

func TestCellCachePutGet(t *testing.T) {
	c := NewCellCache()
	pos := Position{Section: 2, Cell: 14}

	if _, ok := c.Get(pos); ok {
		t.Fatal("empty cache should miss")
	}

	vm := CellViewModel{Label: "15", Selected: true}
	c.Put(pos, vm)

	got, ok := c.Get(pos)
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if got != vm {
		t.Errorf("Get = %+v, want %+v", got, vm)
	}
}

func TestCellCacheDistinctPositions(t *testing.T) {
	c := NewCellCache()
	c.Put(Position{Section: 0, Cell: 1}, CellViewModel{Label: "1"})
	c.Put(Position{Section: 1, Cell: 1}, CellViewModel{Label: "1", Today: true})

	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	got, _ := c.Get(Position{Section: 1, Cell: 1})
	if !got.Today {
		t.Error("positions in different sections must not collide")
	}
}

func TestCellCacheInvalidateAll(t *testing.T) {
	c := NewCellCache()
	for i := 0; i < 42; i++ {
		c.Put(Position{Section: 0, Cell: i}, CellViewModel{Label: "x"})
	}

	c.InvalidateAll()

	if c.Len() != 0 {
		t.Errorf("Len after InvalidateAll = %d, want 0", c.Len())
	}
	if _, ok := c.Get(Position{Section: 0, Cell: 0}); ok {
		t.Error("invalidated cache should miss")
	}
}
