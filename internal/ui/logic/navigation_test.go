package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorGridMoves(t *testing.T) {
	n := NewNavigator()
	// 10 cards, 4 columns: rows of 4, 4, 2
	n.UpdateState(10, 4, 10)

	assert.Equal(t, 3, n.Rows())
	assert.Equal(t, 1, n.Move("right"))
	assert.Equal(t, 5, n.Move("down"))
	assert.Equal(t, 6, n.Move("right"))
	assert.Equal(t, 7, n.Move("right"))
	assert.Equal(t, 9, n.Move("down"), "short last row lands on the final card")
	assert.Equal(t, 9, n.Move("down"))
	assert.Equal(t, 9, n.Move("right"))
	assert.Equal(t, 8, n.Move("left"))
	assert.Equal(t, 8, n.Move("left"), "left stops at the row start")
	assert.Equal(t, 4, n.Move("up"))
	assert.Equal(t, 9, n.Move("end"))
	assert.Equal(t, 0, n.Move("home"))
	assert.Equal(t, 0, n.Move("up"))
}

func TestNavigatorScrollsRows(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(30, 3, 2)

	assert.Equal(t, 0, n.GetRowOffset())
	n.Move("down")
	n.Move("down")
	assert.Equal(t, 6, n.GetSelectedIndex())
	assert.Equal(t, 1, n.GetRowOffset())

	n.Move("end")
	assert.Equal(t, 8, n.GetRowOffset())
	n.Move("pageup")
	assert.Equal(t, 23, n.GetSelectedIndex())
	assert.Equal(t, 7, n.GetRowOffset())
}

func TestNavigatorClampsOnShrink(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(20, 2, 3)
	n.Move("end")

	n.UpdateState(3, 2, 3)
	assert.Equal(t, 2, n.GetSelectedIndex())
	assert.Equal(t, 0, n.GetRowOffset())

	n.UpdateState(0, 2, 3)
	assert.Equal(t, 0, n.GetSelectedIndex())
	assert.Equal(t, 0, n.Move("down"))
}
