package sweep

import (
	"evogamesim/interfaces"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const DEFAULT_POINTS = 50

// segment is the straight line in the (T,S) plane a family is sampled on
type segment struct {
	from interfaces.GamePoint
	to   interfaces.GamePoint
}

var FAMILY_MAP = map[interfaces.FamilyKind]segment{
	interfaces.FAMILY_WEAK_PRISONERS_DILEMMA: {from: interfaces.GamePoint{T: 1, S: 0}, to: interfaces.GamePoint{T: 2, S: 0}},
	interfaces.FAMILY_HAWK_DOVE:              {from: interfaces.GamePoint{T: 2, S: 1}, to: interfaces.GamePoint{T: 3, S: 2}},
	interfaces.FAMILY_STAG_HUNT:              {from: interfaces.GamePoint{T: 0, S: 0}, to: interfaces.GamePoint{T: 1, S: -1}},
	interfaces.FAMILY_SNOWDRIFT:              {from: interfaces.GamePoint{T: 1, S: 1}, to: interfaces.GamePoint{T: 2, S: 0}},
}

// All lists the game families in a fixed order.
func All() []interfaces.FamilyKind {
	return []interfaces.FamilyKind{
		interfaces.FAMILY_WEAK_PRISONERS_DILEMMA,
		interfaces.FAMILY_HAWK_DOVE,
		interfaces.FAMILY_STAG_HUNT,
		interfaces.FAMILY_SNOWDRIFT,
	}
}

// Family is an immutable ordered sequence of game points.
type Family struct {
	kind   interfaces.FamilyKind
	points []interfaces.GamePoint
}

func (f *Family) Kind() interfaces.FamilyKind {
	return f.kind
}

// Points returns a copy, callers cannot change the family.
func (f *Family) Points() []interfaces.GamePoint {
	return append([]interfaces.GamePoint(nil), f.points...)
}

func (f *Family) Len() int {
	return len(f.points)
}

func (f *Family) Point(i int) interfaces.GamePoint {
	return f.points[i]
}

// Generate samples n equally spaced points of the family, the first one at the segment start.
func Generate(kind interfaces.FamilyKind, n int) (*Family, error) {
	s, ok := FAMILY_MAP[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", interfaces.ErrUnknownFamily, kind)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: a family needs at least one point, got %v", interfaces.ErrInvalidParameters, n)
	}
	points := make([]interfaces.GamePoint, n)
	if n == 1 {
		points[0] = s.from
		return &Family{kind: kind, points: points}, nil
	}
	ts := floats.Span(make([]float64, n), s.from.T, s.to.T)
	ss := floats.Span(make([]float64, n), s.from.S, s.to.S)
	for i := range points {
		points[i] = interfaces.GamePoint{T: ts[i], S: ss[i]}
	}
	return &Family{kind: kind, points: points}, nil
}

// Label formats a point the way result curves are labelled.
func Label(point interfaces.GamePoint) string {
	return fmt.Sprintf("T,S = (%.3f,%.3f)", point.T, point.S)
}
