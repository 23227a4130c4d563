package tui

// Direction is the axis along which Split divides an area.
type Direction int

const (
	// Vertical stacks regions top to bottom.
	Vertical Direction = iota
	// Horizontal places regions left to right.
	Horizontal
)

// Unit says how a Constraint's value is interpreted.
type Unit int

const (
	// UnitFixed is an absolute number of cells.
	UnitFixed Unit = iota
	// UnitPercent is a percentage of the available length.
	UnitPercent
)

// Constraint sizes one region produced by Split.
type Constraint struct {
	Amount int
	Unit   Unit
}

// Fixed creates a constraint of exactly n cells.
func Fixed(n int) Constraint {
	return Constraint{Amount: n, Unit: UnitFixed}
}

// Percent creates a constraint of p percent of the available length.
func Percent(p int) Constraint {
	return Constraint{Amount: p, Unit: UnitPercent}
}

// Split divides area along dir into one region per constraint.
// Regions are laid out in order and clamped to the space that remains, so
// the union never exceeds area. Percent(100) alone yields area itself.
func Split(area Rect, dir Direction, constraints ...Constraint) []Rect {
	total := area.Height
	if dir == Horizontal {
		total = area.Width
	}

	rects := make([]Rect, 0, len(constraints))
	offset := 0
	for _, c := range constraints {
		size := c.Amount
		if c.Unit == UnitPercent {
			size = total * c.Amount / 100
		}
		size = max(0, min(size, total-offset))

		if dir == Horizontal {
			rects = append(rects, NewRect(area.X+offset, area.Y, size, area.Height))
		} else {
			rects = append(rects, NewRect(area.X, area.Y+offset, area.Width, size))
		}
		offset += size
	}
	return rects
}
