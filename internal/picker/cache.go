package picker

// Position identifies a grid cell: the month section within the visible
// window and the cell index within that month's grid.
type Position struct {
	Section int
	Cell    int
}

// CellViewModel is the derived visual state of one grid cell. It is a
// pure memoization of label formatting and flags; the controller's value
// stays the source of truth.
type CellViewModel struct {
	Label    string
	Selected bool
	Today    bool
	Disabled bool
}

// CellCache memoizes per-cell view-models between selection changes.
// It is rebuilt from scratch on every invalidation rather than patched.
type CellCache struct {
	cells map[Position]CellViewModel
}

// NewCellCache returns an empty cache.
func NewCellCache() *CellCache {
	return &CellCache{cells: make(map[Position]CellViewModel)}
}

// Get returns the cached view-model for a position, if present.
func (c *CellCache) Get(pos Position) (CellViewModel, bool) {
	vm, ok := c.cells[pos]
	return vm, ok
}

// Put stores a view-model for a position.
func (c *CellCache) Put(pos Position, vm CellViewModel) {
	c.cells[pos] = vm
}

// Len returns the number of cached cells.
func (c *CellCache) Len() int {
	return len(c.cells)
}

// InvalidateAll discards every cached cell.
func (c *CellCache) InvalidateAll() {
	c.cells = make(map[Position]CellViewModel)
}
