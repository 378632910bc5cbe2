package hyphen

import (
	"os"
	"path/filepath"

	"github.com/npillmayer/typeset/core"
)

// DictionaryFileName returns the conventional file name for a language's
// pattern file, e.g. "hyph_en_US.dic".
func DictionaryFileName(language string) string {
	return "hyph_" + language + ".dic"
}

// FromFile reads a '.dic' pattern file.
func FromFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"cannot open hyphenation dictionary %s", path)
	}
	defer f.Close()
	return FromReader(f)
}

// ForLanguage locates and loads the pattern file for a language in a list
// of search directories. Loading fails with code EMISSING if no directory
// contains the file.
func ForLanguage(language string, searchPaths []string) (*Dictionary, error) {
	filename := DictionaryFileName(language)
	for _, dir := range searchPaths {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			tracer().Infof("loading hyphenation patterns from %s", path)
			return FromFile(path)
		}
	}
	return nil, core.Error(core.EMISSING,
		"no hyphenation dictionary for language %q", language)
}
