/*
Package hyphen implements Liang-style pattern hyphenation, driven by
TeX '.dic' pattern files.

A dictionary is immutable after loading and may be shared freely between
typesetting jobs and goroutines.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package hyphen

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/typeset/core"
)

// tracer traces with key 'typeset.hyphen'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.hyphen")
}

// Dictionary is a set of Liang hyphenation patterns for one language.
type Dictionary struct {
	leftHyphenMin          int
	rightHyphenMin         int
	compoundLeftHyphenMin  int
	compoundRightHyphenMin int
	patterns               *trie.Trie
}

func newDictionary() *Dictionary {
	return &Dictionary{
		// Descent defaults.
		leftHyphenMin:          2,
		rightHyphenMin:         3,
		compoundLeftHyphenMin:  2,
		compoundRightHyphenMin: 3,
		patterns:               trie.New(),
	}
}

// LeftHyphenMin is the minimum number of letters in the first fragment.
func (d *Dictionary) LeftHyphenMin() int {
	return d.leftHyphenMin
}

// RightHyphenMin is the minimum number of letters in the last fragment.
func (d *Dictionary) RightHyphenMin() int {
	return d.rightHyphenMin
}

// FromReader reads a '.dic' pattern file from a UTF-8 reader.
//
// The file starts with header lines (LEFTHYPHENMIN, RIGHTHYPHENMIN,
// COMPOUNDLEFTHYPHENMIN, COMPOUNDRIGHTHYPHENMIN, UTF-8), followed by a
// NEXTLEVEL delimiter and one pattern per line. Lines starting with '%'
// and blank lines are comments. An unknown header key is an error with
// code EINVALID.
func FromReader(r io.Reader) (*Dictionary, error) {
	d := newDictionary()
	scanner := bufio.NewScanner(r)
	started := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue // comment
		}
		if started {
			d.addPattern(line)
			continue
		}
		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "LEFTHYPHENMIN":
			d.leftHyphenMin, err = headerValue(fields)
		case "RIGHTHYPHENMIN":
			d.rightHyphenMin, err = headerValue(fields)
		case "COMPOUNDLEFTHYPHENMIN":
			d.compoundLeftHyphenMin, err = headerValue(fields)
		case "COMPOUNDRIGHTHYPHENMIN":
			d.compoundRightHyphenMin, err = headerValue(fields)
		case "UTF-8":
			// Good.
		case "NEXTLEVEL":
			started = true
		default:
			return nil, core.Error(core.EINVALID,
				"invalid hyphen dictionary header: %s", fields[0])
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read hyphen dictionary")
	}
	return d, nil
}

func headerValue(fields []string) (int, error) {
	if len(fields) < 2 {
		return 0, core.Error(core.EINVALID, "hyphen dictionary header %s lacks a value", fields[0])
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, core.WrapError(err, core.EINVALID,
			"hyphen dictionary header %s: not a number", fields[0])
	}
	return n, nil
}

// addPattern adds a TeX pattern to the trie, keyed by the pattern with
// digits removed, holding the interleaved digit string.
func (d *Dictionary) addPattern(pattern string) {
	d.patterns.Add(removeDigits(pattern), digitValues(pattern))
}

// removeDigits strips the digits from a pattern, preserving '.' anchors.
func removeDigits(pattern string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, pattern)
}

// digitValues extracts the per-position digit string of a pattern: one
// digit before each letter plus one trailing, with implicit zeros where
// the pattern has none. Anchor dots are stripped first.
func digitValues(pattern string) string {
	pattern = strings.Trim(pattern, ".")
	value := make([]byte, 0, len(pattern)+1)
	pending := byte('0')
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			pending = byte(r)
			continue
		}
		value = append(value, pending)
		pending = '0'
	}
	return string(append(value, pending))
}

// Hyphenate splits a word into fragments between which hyphenation may
// happen. If the word already contains a hyphen, the hyphen ends up at
// the end of a fragment; don't add another one after it.
func (d *Dictionary) Hyphenate(word string) []string {
	runes := []rune(word)

	// A sequence of possible cut points, one per position between runes.
	cutPoints := make([]byte, len(runes)+1)
	for i := range cutPoints {
		cutPoints[i] = '0'
	}

	// Sentinel periods represent begin and end of the word.
	wrapped := []rune("." + strings.ToLower(word) + ".")

	// Match every substring of every length against the pattern trie and
	// keep the maximum digit per cut point.
	for seqLength := 1; seqLength <= len(wrapped); seqLength++ {
		for start := 0; start+seqLength <= len(wrapped); start++ {
			seq := string(wrapped[start : start+seqLength])
			node, ok := d.patterns.Find(seq)
			if !ok {
				continue
			}
			value := node.Meta().(string)
			// At the beginning of the word the period isn't counted.
			offset := -1
			if strings.HasPrefix(seq, ".") {
				offset = 0
			}
			for i := 0; i < len(value); i++ {
				pos := start + i + offset
				if pos >= 0 && pos < len(cutPoints) && value[i] > cutPoints[pos] {
					cutPoints[pos] = value[i]
				}
			}
		}
	}

	// Prevent hyphenation at start and end of the word.
	for i := 0; i < d.leftHyphenMin && i < len(cutPoints); i++ {
		cutPoints[i] = 0
	}
	for i := 0; i < d.rightHyphenMin && i < len(cutPoints); i++ {
		cutPoints[len(cutPoints)-1-i] = 0
	}

	// Odd cut points split the word.
	var segments []string
	lastStart := 0
	for i := range cutPoints {
		if cutPoints[i]%2 != 0 {
			segments = append(segments, string(runes[lastStart:i]))
			lastStart = i
		}
	}
	if lastStart < len(runes) {
		segments = append(segments, string(runes[lastStart:]))
	}

	segments = mergeSingleHyphens(segments)
	segments = moveHyphenPrefixes(segments)
	return segments
}

// mergeSingleHyphens merges a bare "-" segment onto its predecessor.
// Seen with the word "super-confort", where the hyphen ended up as its
// own segment.
func mergeSingleHyphens(segments []string) []string {
	found := false
	for _, s := range segments {
		if s == "-" {
			found = true
			break
		}
	}
	if !found {
		return segments
	}
	newSegments := make([]string, 0, len(segments))
	for i := 0; i < len(segments); i++ {
		if i+1 < len(segments) && segments[i+1] == "-" {
			newSegments = append(newSegments, segments[i]+"-")
			i++ // skip the hyphen
		} else {
			newSegments = append(newSegments, segments[i])
		}
	}
	return newSegments
}

// moveHyphenPrefixes moves a leading "-" to the tail of the previous
// segment. Seen with "back-end", hyphenated as "back" and "-end".
func moveHyphenPrefixes(segments []string) []string {
	newSegments := make([]string, 0, len(segments))
	for i := 0; i < len(segments); i++ {
		if i+1 < len(segments) && strings.HasPrefix(segments[i+1], "-") {
			newSegments = append(newSegments, segments[i]+"-")
			newSegments = append(newSegments, segments[i+1][1:])
			i++
		} else {
			newSegments = append(newSegments, segments[i])
		}
	}
	return newSegments
}

// SegmentsToString joins hyphenation fragments with hyphens, for tracing
// and tests.
func SegmentsToString(segments []string) string {
	return strings.Join(segments, "-")
}
