package hyphen

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typeset/core"
	"github.com/stretchr/testify/assert"
)

const testPatterns = `
% Test pattern excerpt.
UTF-8
LEFTHYPHENMIN 2
RIGHTHYPHENMIN 3
COMPOUNDLEFTHYPHENMIN 2
COMPOUNDRIGHTHYPHENMIN 3
NEXTLEVEL
f1f
i1c
1ba
o1d
.su2
`

func testDictionary(t *testing.T) *Dictionary {
	d, err := FromReader(strings.NewReader(testPatterns))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestPatternNormalization(t *testing.T) {
	assert.Equal(t, "ff", removeDigits("f1f"))
	assert.Equal(t, ".ab", removeDigits(".a1b"))
	assert.Equal(t, "010", digitValues("f1f"))
	assert.Equal(t, "010", digitValues(".a1b"))
	assert.Equal(t, "414", digitValues("4l1l4"))
}

func TestHeader(t *testing.T) {
	d := testDictionary(t)
	if d.LeftHyphenMin() != 2 || d.RightHyphenMin() != 3 {
		t.Errorf("hyphen minima not read from header: %d/%d",
			d.LeftHyphenMin(), d.RightHyphenMin())
	}
}

func TestUnknownHeaderKey(t *testing.T) {
	_, err := FromReader(strings.NewReader("WHATISTHIS 2\nNEXTLEVEL\na1b\n"))
	if assert.Error(t, err, "unknown header key should not load") {
		assert.Equal(t, core.EINVALID, core.Code(err))
	}
}

func TestHyphenate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	d := testDictionary(t)
	segments := d.Hyphenate("difficult")
	assert.Equal(t, []string{"dif", "fi", "cult"}, segments)
	if got := strings.Join(segments, ""); got != "difficult" {
		t.Errorf("segments should concatenate to the word, got %q", got)
	}
}

func TestHyphenateMinima(t *testing.T) {
	d := testDictionary(t)
	// 'o1d' would cut "body" after two letters, violating RIGHTHYPHENMIN.
	assert.Equal(t, []string{"body"}, d.Hyphenate("body"))
	// '1ba' would cut before the first letter of "bat".
	assert.Equal(t, []string{"bat"}, d.Hyphenate("bat"))
}

func TestHyphenateConcatenation(t *testing.T) {
	d := testDictionary(t)
	for _, word := range []string{"difficult", "sufficient", "Offices", "a", ""} {
		segments := d.Hyphenate(word)
		assert.Equal(t, word, strings.Join(segments, ""),
			"fragments of %q must concatenate to the word", word)
	}
}

func TestSegmentFixups(t *testing.T) {
	assert.Equal(t, []string{"super-", "confort"},
		mergeSingleHyphens([]string{"super", "-", "confort"}))
	assert.Equal(t, []string{"back-", "end"},
		moveHyphenPrefixes([]string{"back", "-end"}))
}

func TestSegmentsToString(t *testing.T) {
	assert.Equal(t, "dif-fi-cult", SegmentsToString([]string{"dif", "fi", "cult"}))
}
