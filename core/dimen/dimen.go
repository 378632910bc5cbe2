// Package dimen implements dimensions and units.
//
// All distances of the typesetting engine are measured in scaled points:
// integer values, with 65536 scaled points to a (big/PDF) point. Keeping
// positions, widths, stretch and shrink integral makes layout arithmetic
// deterministic; floating point only ever enters at unit-conversion
// boundaries.
//
// ______________________________________________________________________
//
// # License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
package dimen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/npillmayer/typeset/core"
)

// Dimen is a dimension type. Values are in scaled points.
type Dimen int64

// Some pre-defined dimensions.
const (
	Zero Dimen = 0
	SP   Dimen = 1          // scaled point
	PT   Dimen = 65536      // point (PDF) = 1/72 inch
	PC   Dimen = 12 * 65536 // pica = 12 pt
	IN   Dimen = 72 * 65536 // inch
)

// Infinity is the largest possible dimension.
const Infinity Dimen = math.MaxInt64

// Unit is a unit of 1-dimensional space. Every unit stores how many of it
// make an inch; conversions go through scaled points per inch and round
// half away from zero, so that metric and imperial identities hold exactly
// (2.54 cm == 1 in).
type Unit struct {
	name   string
	perInh float64 // units per inch
}

// The closed set of units understood by ParseDistance.
var (
	UnitSP = Unit{"sp", 72 * 65536}
	UnitPT = Unit{"pt", 72}
	UnitPC = Unit{"pc", 6}
	UnitIN = Unit{"in", 1}
	UnitCM = Unit{"cm", 2.54}
	UnitMM = Unit{"mm", 25.4}
)

var units = []Unit{UnitSP, UnitPT, UnitPC, UnitIN, UnitCM, UnitMM}

// UnitByName returns the unit for a (case-insensitive) abbreviation, e.g.
// "pt" or "CM". Only abbreviations are recognized.
func UnitByName(name string) (Unit, bool) {
	name = strings.ToLower(name)
	for _, u := range units {
		if u.name == name {
			return u, true
		}
	}
	return Unit{}, false
}

func (u Unit) String() string {
	return u.name
}

// spPerUnit returns the number of scaled points per unit u.
func (u Unit) spPerUnit() float64 {
	return float64(IN) / u.perInh
}

// ToSP converts a distance in unit u to scaled points, rounding half away
// from zero.
func (u Unit) ToSP(distance float64) Dimen {
	return Dimen(math.Round(distance * u.spPerUnit()))
}

// FromSP converts a distance in scaled points to unit u.
func (u Unit) FromSP(d Dimen) float64 {
	return float64(d) / u.spPerUnit()
}

// Stringer implementation.
func (d Dimen) String() string {
	return fmt.Sprintf("%dsp", int64(d))
}

// Points returns a dimension in big (PDF) points.
func (d Dimen) Points() float64 {
	return float64(d) / float64(PT)
}

// ---------------------------------------------------------------------------

var distancePattern = regexp.MustCompile(
	`^\s*([+-]?[0-9]*\.?[0-9]+(?:[eE][+-]?[0-9]+)?)\s*([A-Za-z]*)\s*$`)

// ParseDistance parses a distance literal, such as "2in", "3.5 in" or
// "-2 mm": a signed decimal followed by optional whitespace and one of the
// units sp, pt, pc, in, cm, mm (case-insensitive).
//
// A missing or unknown unit is an error with code EINVALID.
func ParseDistance(s string) (Dimen, error) {
	m := distancePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, core.Error(core.EINVALID, "not a distance: %q", s)
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID, "not a distance: %q", s)
	}
	if m[2] == "" {
		return 0, core.Error(core.EINVALID, "missing unit")
	}
	unit, ok := UnitByName(m[2])
	if !ok {
		return 0, core.Error(core.EINVALID, "unknown unit %s", m[2])
	}
	return unit.ToSP(value), nil
}

// FormatDistance formats a dimension in the given unit, such that
// ParseDistance returns the original dimension.
func FormatDistance(d Dimen, u Unit) string {
	return strconv.FormatFloat(u.FromSP(d), 'f', -1, 64) + u.name
}

// ---------------------------------------------------------------------------

// Point is a point on a page.
type Point struct {
	X, Y Dimen
}

// Origin is origin.
var Origin = Point{0, 0}

// Shift a point along a vector.
func (p *Point) Shift(vector Point) *Point {
	p.X += vector.X
	p.Y += vector.Y
	return p
}

// Rect is a rectangle (on a page).
type Rect struct {
	TopL, BotR Point
}

// Width returns the width of a rectangle, i.e. the difference between
// x-coordinates of bottom-right and top-left corner.
func (r Rect) Width() Dimen {
	return r.BotR.X - r.TopL.X
}

// Height returns the height of a rectangle, i.e. the difference between
// y-coordinates of bottom-right and top-left corner.
func (r Rect) Height() Dimen {
	return r.BotR.Y - r.TopL.Y
}

// Some common paper sizes.
var (
	DINA4    = Point{UnitMM.ToSP(210), UnitMM.ToSP(297)}
	DINA5    = Point{UnitMM.ToSP(148), UnitMM.ToSP(210)}
	USLetter = Point{UnitIN.ToSP(8.5), UnitIN.ToSP(11)}
)

// ---------------------------------------------------------------------------

// Min returns the smaller of two dimensions.
func Min(a, b Dimen) Dimen {
	if a < b {
		return a
	}
	return b
}

// Max returns the greater of two dimensions.
func Max(a, b Dimen) Dimen {
	if a > b {
		return a
	}
	return b
}
