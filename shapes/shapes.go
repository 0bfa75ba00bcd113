// Package shapes demonstrates a Liskov Substitution Principle violation.
//
// Square embeds Rectangle and overrides both mutators so that setting either
// dimension sets the other. Code written against Rectangle's contract
// ("width and height can be set independently; area is width × height")
// breaks when handed a Square:
//
//	var s shapes.Resizable = shapes.NewSquare(5)
//	s.SetHeight(5)
//	s.SetWidth(4)
//	s.Area() // 16, a Rectangle would give 20
//
// The mismatch is the point of the example and is not fixed here.
//
// Whether a subtype honors a supertype's contract cannot be decided from
// method sets alone. CheckIndependentDimensions encodes one concrete contract
// as a behavioral probe; the tests run it over a grid of inputs in the style
// of a property test rather than pretending to verify substitutability in
// general.
package shapes

import "strconv"

// Resizable is the contract Rectangle callers rely on.
type Resizable interface {
	SetWidth(w int)
	SetHeight(h int)
	Area() int
}

// Rectangle has independently settable width and height.
type Rectangle struct {
	width  int
	height int
}

// NewRectangle returns a w×h rectangle.
func NewRectangle(w, h int) *Rectangle { return &Rectangle{width: w, height: h} }

// SetWidth sets the width only.
func (r *Rectangle) SetWidth(w int) { r.width = w }

// SetHeight sets the height only.
func (r *Rectangle) SetHeight(h int) { r.height = h }

// Width returns the width.
func (r *Rectangle) Width() int { return r.width }

// Height returns the height.
func (r *Rectangle) Height() int { return r.height }

// Area returns width × height.
func (r *Rectangle) Area() int { return r.width * r.height }

// Square is a Rectangle whose sides are always equal.
type Square struct {
	Rectangle
}

// NewSquare returns a square with the given side.
func NewSquare(side int) *Square {
	s := &Square{}
	s.SetSide(side)
	return s
}

// SetWidth sets both sides.
func (s *Square) SetWidth(w int) { s.SetSide(w) }

// SetHeight sets both sides.
func (s *Square) SetHeight(h int) { s.SetSide(h) }

// SetSide sets width and height to side.
func (s *Square) SetSide(side int) {
	s.width = side
	s.height = side
}

// ContractViolationError reports a shape whose area did not follow from the
// dimensions that were set on it.
type ContractViolationError struct {
	Height int
	Width  int
	Want   int
	Got    int
}

// Error implements the error interface.
func (e ContractViolationError) Error() string {
	return "shapes: after SetHeight(" + strconv.Itoa(e.Height) + ") and SetWidth(" + strconv.Itoa(e.Width) +
		") area is " + strconv.Itoa(e.Got) + ", want " + strconv.Itoa(e.Want)
}

// CheckIndependentDimensions sets height h then width w on a fresh shape and
// verifies the area is h × w.
func CheckIndependentDimensions(newShape func() Resizable, h, w int) error {
	s := newShape()
	s.SetHeight(h)
	s.SetWidth(w)
	if got, want := s.Area(), h*w; got != want {
		return ContractViolationError{Height: h, Width: w, Want: want, Got: got}
	}
	return nil
}
