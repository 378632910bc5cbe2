package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphs(t *testing.T) {
	text := "First paragraph\nstill first.\n\nSecond paragraph.\n\n\n"
	paras := paragraphs(text)
	if assert.Len(t, paras, 2) {
		assert.Equal(t, "First paragraph still first.", paras[0])
		assert.Equal(t, "Second paragraph.", paras[1])
	}
}

func TestRunOnSampleText(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "sample.txt")
	err := os.WriteFile(input, []byte(
		"The quick brown fox jumps over the lazy dog. "+
			"Pack my box with five dozen liquor jugs.\n\n"+
			"Sphinx of black quartz, judge my vow.\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	cmd := rootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{input})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("typeset run failed: %v", err)
	}
	assert.Contains(t, out.String(), "--- page 1 ---")
	assert.Contains(t, out.String(), "glyphs")
}
