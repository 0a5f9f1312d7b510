package core

// Pos is a screen position.
type Pos struct {
	Row, Col int
}

// Rect is a screen region. Top and Left are inclusive, Bottom and Right
// exclusive.
type Rect struct {
	Top, Left, Bottom, Right int
}

// NewRect returns the height x width region whose top-left corner is at
// (top, left).
func NewRect(top, left, height, width int) Rect {
	return Rect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

func (r Rect) Width() int  { return max(r.Right-r.Left, 0) }
func (r Rect) Height() int { return max(r.Bottom-r.Top, 0) }

// IsEmpty reports whether r covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Inset shrinks r by n cells on every side. A region too small to shrink
// collapses to an empty one at the inset corner.
func (r Rect) Inset(n int) Rect {
	in := Rect{Top: r.Top + n, Left: r.Left + n, Bottom: r.Bottom - n, Right: r.Right - n}
	if in.IsEmpty() {
		in.Bottom, in.Right = in.Top, in.Left
	}
	return in
}
