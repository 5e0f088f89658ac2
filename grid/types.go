package grid

import "fmt"

// Point is a (row, column) coordinate. Row grows downwards, Col to the right.
type Point struct {
	Row, Col int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Sub returns the offset that takes q to p.
func (p Point) Sub(q Point) Point {
	return Point{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Scale multiplies both components by k.
func (p Point) Scale(k int) Point {
	return Point{Row: p.Row * k, Col: p.Col * k}
}

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four compass headings, cyclically ordered
// Up → Right → Down → Left → Up.
type Direction uint8

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Right moves towards higher columns.
	Right
	// Down moves towards higher rows.
	Down
	// Left moves towards column 0.
	Left
)

// turnRight is the clockwise successor of each heading.
var turnRight = [...]Direction{Up: Right, Right: Down, Down: Left, Left: Up}

// deltas is the single-step offset of each heading.
var deltas = [...]Point{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

// TurnRight rotates the heading 90° clockwise.
func (d Direction) TurnRight() Direction {
	return turnRight[d&3]
}

// Delta returns the offset of one step in direction d.
func (d Direction) Delta() Point {
	return deltas[d&3]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Right:
		return ">"
	case Down:
		return "v"
	case Left:
		return "<"
	}
	return "?"
}

// Compass8 lists the unit offsets of all eight neighbors:
// E, W, S, N, SE, NW, SW, NE.
var Compass8 = [8]Point{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 1, Col: 1},
	{Row: -1, Col: -1},
	{Row: 1, Col: -1},
	{Row: -1, Col: 1},
}
