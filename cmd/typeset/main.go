/*
Command typeset runs the typesetting engine over a plain UTF-8 text
file: paragraphs separated by blank lines are justified against the
configured page geometry and broken into pages, which are dumped through
the debugging back-end.

A document profile in TOML configures page geometry, locale, fonts and
hyphenation:

	title       = "My Book"
	locale      = "fr"
	language    = "fr"
	typeface    = "Georgia"
	font-size   = 11.0
	page-width  = "6 in"
	page-height = "9 in"
	margin      = "0.75 in"

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/npillmayer/typeset/backend"
	"github.com/npillmayer/typeset/core"
	"github.com/npillmayer/typeset/core/dimen"
	"github.com/npillmayer/typeset/core/font"
	"github.com/npillmayer/typeset/core/hyphen"
	"github.com/npillmayer/typeset/engine/hlist"
	"github.com/npillmayer/typeset/engine/vlist"
	"github.com/npillmayer/typeset/input/block"
)

// profile is the TOML document profile.
type profile struct {
	Title      string  `toml:"title"`
	Locale     string  `toml:"locale"`
	Language   string  `toml:"language"`
	Typeface   string  `toml:"typeface"`
	FontSize   float64 `toml:"font-size"`
	PageWidth  string  `toml:"page-width"`
	PageHeight string  `toml:"page-height"`
	Margin     string  `toml:"margin"`
}

func defaultProfile() profile {
	return profile{
		Locale:     "en_US",
		Language:   "en_US",
		FontSize:   11,
		PageWidth:  "6 in",
		PageHeight: "9 in",
		Margin:     "0.75 in",
	}
}

// tracer traces with key 'typeset.app'.
func tracer() tracing.Trace {
	return tracing.Select("typeset.app")
}

func main() {
	gtrace.CoreTracer = gologadapter.New()
	if err := rootCommand().Execute(); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var profilePath string
	var dictDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:          "typeset [flags] input.txt",
		Short:        "typeset breaks a text into book pages",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				tracer().SetTraceLevel(tracing.LevelDebug)
			}
			prof := defaultProfile()
			if profilePath != "" {
				if _, err := toml.DecodeFile(profilePath, &prof); err != nil {
					return core.WrapError(err, core.EINVALID,
						"cannot read profile %s", profilePath)
				}
			}
			return run(cmd, args[0], prof, dictDir)
		},
	}
	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "TOML document profile")
	cmd.Flags().StringVarP(&dictDir, "dictionaries", "d", ".",
		"directory holding hyph_<language>.dic pattern files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose tracing")
	return cmd
}

func run(cmd *cobra.Command, inputPath string, prof profile, dictDir string) error {
	pageWidth, err := dimen.ParseDistance(prof.PageWidth)
	if err != nil {
		return err
	}
	pageHeight, err := dimen.ParseDistance(prof.PageHeight)
	if err != nil {
		return err
	}
	margin, err := dimen.ParseDistance(prof.Margin)
	if err != nil {
		return err
	}
	textWidth := pageWidth - 2*margin
	textHeight := pageHeight - 2*margin

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read %s", inputPath)
	}

	f, err := loadFont(prof)
	if err != nil {
		return err
	}

	dict, err := hyphen.ForLanguage(prof.Language, []string{dictDir})
	if err != nil {
		tracer().Infof("no hyphenation: %s", core.UserMessage(err))
		dict = nil
	}

	vl := vlist.New()
	for _, para := range paragraphs(string(data)) {
		b := block.FromText(para)
		b.PostProcessText(prof.Locale)

		hl := hlist.New()
		hl.AddText(b.Text(), f, dict)
		hl.AddEndOfParagraph()
		lines, err := hl.BreakIntoLines(textWidth)
		if err != nil {
			return err
		}
		for _, line := range lines {
			vl.AddElement(line)
		}
	}
	vl.EjectPage()

	pages, err := vl.BreakIntoPages(textHeight, 1)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, page := range pages {
		fmt.Fprintf(out, "--- page %d ---\n", page.PhysicalPageNumber)
		rec := &backend.Recorder{}
		if err := page.LayOut(margin, margin, rec); err != nil {
			return err
		}
		fmt.Fprintln(out, rec.String())
	}
	return nil
}

// loadFont resolves the profile's typeface on the system via findfont,
// falling back to the built-in face.
func loadFont(prof profile) (*font.SizedFont, error) {
	base := font.FallbackFont()
	if prof.Typeface != "" {
		if path, err := findfont.Find(prof.Typeface + ".ttf"); err == nil {
			if f, err := font.LoadOpenTypeFont(path); err == nil {
				base = f
			} else {
				tracer().Errorf("cannot parse %s: %v", path, err)
			}
		} else {
			tracer().Infof("typeface %s not found, using built-in face",
				prof.Typeface)
		}
	}
	return font.NewSizedFont(base, prof.FontSize), nil
}

// paragraphs splits text into paragraphs at blank lines.
func paragraphs(text string) []string {
	var paras []string
	for _, chunk := range strings.Split(text, "\n\n") {
		para := strings.TrimSpace(strings.ReplaceAll(chunk, "\n", " "))
		if para != "" {
			paras = append(paras, para)
		}
	}
	return paras
}
