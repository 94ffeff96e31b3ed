package logic

// Navigator moves a cursor over a grid of cards laid out row by row
// and keeps the cursor's row inside the viewport.
type Navigator struct {
	selectedIndex int
	rowOffset     int // first visible row
	viewportRows  int
	columns       int
	total         int
}

// NewNavigator creates a navigator for a single column
func NewNavigator() *Navigator {
	return &Navigator{columns: 1, viewportRows: 1}
}

// UpdateState updates the navigator's layout and clamps the cursor to it
func (n *Navigator) UpdateState(total, columns, viewportRows int) {
	if columns < 1 {
		columns = 1
	}
	if viewportRows < 1 {
		viewportRows = 1
	}
	n.total = total
	n.columns = columns
	n.viewportRows = viewportRows
	n.SetSelectedIndex(n.selectedIndex)
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetRowOffset returns the first visible row
func (n *Navigator) GetRowOffset() int {
	return n.rowOffset
}

func (n *Navigator) Columns() int { return n.columns }

func (n *Navigator) ViewportRows() int { return n.viewportRows }

// Rows returns the number of rows needed for all items
func (n *Navigator) Rows() int {
	if n.total == 0 {
		return 0
	}
	return (n.total + n.columns - 1) / n.columns
}

// SetSelectedIndex sets the selected index and ensures it's visible
func (n *Navigator) SetSelectedIndex(index int) int {
	if index >= n.total {
		index = n.total - 1
	}
	if index < 0 {
		index = 0
	}
	n.selectedIndex = index
	n.ensureSelectedVisible()
	return n.selectedIndex
}

// Move applies a direction: up, down, left, right, pageup, pagedown, home or end
func (n *Navigator) Move(direction string) int {
	if n.total == 0 {
		return 0
	}
	i := n.selectedIndex
	switch direction {
	case "left":
		if i%n.columns > 0 {
			i--
		}
	case "right":
		if i%n.columns < n.columns-1 && i+1 < n.total {
			i++
		}
	case "up":
		if i-n.columns >= 0 {
			i -= n.columns
		}
	case "down":
		if i+n.columns < n.total {
			i += n.columns
		} else if i/n.columns < n.Rows()-1 {
			// Short last row: land on its final card
			i = n.total - 1
		}
	case "pageup":
		i -= n.columns * n.viewportRows
	case "pagedown":
		i += n.columns * n.viewportRows
	case "home":
		i = 0
	case "end":
		i = n.total - 1
	}
	return n.SetSelectedIndex(i)
}

// ensureSelectedVisible adjusts the row offset to keep the selected card visible
func (n *Navigator) ensureSelectedVisible() {
	row := n.selectedIndex / n.columns
	if row < n.rowOffset {
		n.rowOffset = row
	}
	if row >= n.rowOffset+n.viewportRows {
		n.rowOffset = row - n.viewportRows + 1
	}
	maxOffset := n.Rows() - n.viewportRows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.rowOffset > maxOffset {
		n.rowOffset = maxOffset
	}
	if n.rowOffset < 0 {
		n.rowOffset = 0
	}
}
