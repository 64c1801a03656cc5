// Package geometry maps points between 2D coordinate ranges.
//
// A Transformation is built from four axis ranges: the input x and y ranges
// and the output x and y ranges. Each axis is mapped independently by
// linear interpolation. Range endpoints are used exactly as given, so a
// range written as (max, min) flips the axis:
//
//	t, err := geometry.NewTransformation(
//	    geometry.AxisRange{From: 5, To: 12}, geometry.AxisRange{From: 4, To: 9},
//	    geometry.AxisRange{From: 10, To: 3}, geometry.AxisRange{From: 8, To: 3},
//	)
//	p := t.Apply(geometry.Point{X: 7, Y: 8}) // {8 4}
//
// Transformations are immutable and safe for concurrent use.
package geometry
