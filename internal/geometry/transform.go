package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned when an input axis range has zero width or a
// non-finite endpoint.
var ErrInvalidRange = errors.New("invalid axis range")

// AxisRange is a coordinate range along one axis. From and To may be given
// in either order.
type AxisRange struct {
	From float64 `json:"from"`
	To   float64 `json:"to"`
}

// Width returns To - From, which is negative for a reversed range.
func (r AxisRange) Width() float64 {
	return r.To - r.From
}

// Point is a 2D point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Transformation maps points from one coordinate system to another.
type Transformation struct {
	inX, inY   AxisRange
	outX, outY AxisRange
}

// NewTransformation builds a transformation from the input x/y ranges to the
// output x/y ranges.
//
// Input ranges must have a finite, non-zero width; otherwise the returned
// error wraps ErrInvalidRange. Output ranges may be degenerate, in which case
// every input maps to the same output coordinate.
func NewTransformation(inX, inY, outX, outY AxisRange) (*Transformation, error) {
	if err := checkInput("x", inX); err != nil {
		return nil, err
	}
	if err := checkInput("y", inY); err != nil {
		return nil, err
	}
	if !finite(outX) || !finite(outY) {
		return nil, fmt.Errorf("%w: output range has a non-finite endpoint", ErrInvalidRange)
	}

	return &Transformation{inX: inX, inY: inY, outX: outX, outY: outY}, nil
}

func checkInput(axis string, r AxisRange) error {
	if !finite(r) {
		return fmt.Errorf("%w: input %s range (%g, %g) has a non-finite endpoint", ErrInvalidRange, axis, r.From, r.To)
	}
	if r.Width() == 0 {
		return fmt.Errorf("%w: input %s range (%g, %g) has zero width", ErrInvalidRange, axis, r.From, r.To)
	}
	return nil
}

func finite(r AxisRange) bool {
	return !math.IsInf(r.From, 0) && !math.IsNaN(r.From) && !math.IsInf(r.To, 0) && !math.IsNaN(r.To)
}

// X returns the output x coordinate for an input x.
func (t *Transformation) X(x float64) float64 {
	return interpolate(x, t.inX, t.outX)
}

// Y returns the output y coordinate for an input y.
func (t *Transformation) Y(y float64) float64 {
	return interpolate(y, t.inY, t.outY)
}

// Apply transforms a single point into the output coordinate system.
func (t *Transformation) Apply(p Point) Point {
	return Point{X: t.X(p.X), Y: t.Y(p.Y)}
}

// interpolate uses explicit conversions so the result does not depend on
// fused multiply-add being available.
func interpolate(v float64, in, out AxisRange) float64 {
	percent := (v - in.From) / in.Width()
	return float64(percent*out.Width()) + out.From
}
