/*
Package parameters holds the typesetting registers: the run-time knobs of
the engine, with TeX-style grouped scoping. Pushing a value inside a
group shadows the base value until the group ends.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package parameters

import (
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/engine/linebreak"
)

type TypesettingParameter int

const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_LOCALE
	P_BASELINESKIP
	P_HYPHENPENALTY
	P_LINEPENALTY
	P_DOUBLEHYPHENDEMERITS
	P_MINHYPHENLENGTH
	P_STOPPER
)

type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_US"                     // hyphenation pattern language
	p[P_LOCALE] = "en_US"                       // punctuation locale
	p[P_BASELINESKIP] = dimen.UnitPT.ToSP(13.2) // dimension
	p[P_HYPHENPENALTY] = 50                     // a numeric penalty (int)
	p[P_LINEPENALTY] = 10                       // per-line demerit base (int)
	p[P_DOUBLEHYPHENDEMERITS] = 10000           // flagged-pair demerits (int)
	p[P_MINHYPHENLENGTH] = 4                    // # of runes for hyphenation
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= 0 || key == P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}

// Breaker configures a line/page breaker from the registers.
func (regs *TypesettingRegisters) Breaker() *linebreak.Breaker {
	br := linebreak.NewBreaker()
	br.LinePenalty = regs.N(P_LINEPENALTY)
	br.DoubleHyphenDemerits = int64(regs.N(P_DOUBLEHYPHENDEMERITS))
	return br
}
