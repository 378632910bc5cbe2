package parameters

import (
	"testing"

	"github.com/npillmayer/typeset/core/dimen"
)

func TestDefaults(t *testing.T) {
	regs := NewTypesettingRegisters()
	if regs.S(P_LANGUAGE) != "en_US" {
		t.Errorf("default language should be en_US, is %s", regs.S(P_LANGUAGE))
	}
	if regs.D(P_BASELINESKIP) != dimen.UnitPT.ToSP(13.2) {
		t.Errorf("default baseline skip should be 13.2pt")
	}
}

func TestGroupedPush(t *testing.T) {
	regs := NewTypesettingRegisters()
	regs.Begingroup()
	regs.Push(P_HYPHENPENALTY, 200)
	if regs.N(P_HYPHENPENALTY) != 200 {
		t.Error("pushed value should shadow the base value")
	}
	regs.Endgroup()
	if regs.N(P_HYPHENPENALTY) != 50 {
		t.Errorf("ending the group should restore the base value, got %d",
			regs.N(P_HYPHENPENALTY))
	}
}

func TestBreakerFromRegisters(t *testing.T) {
	regs := NewTypesettingRegisters()
	regs.Push(P_LINEPENALTY, 20)
	br := regs.Breaker()
	if br.LinePenalty != 20 {
		t.Errorf("breaker should take its line penalty from the registers")
	}
	if br.DoubleHyphenDemerits != 10000 {
		t.Error("breaker should take the flagged-pair demerits from the registers")
	}
}
