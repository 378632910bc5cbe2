package block

import (
	"strings"

	"golang.org/x/text/language"
)

// PostProcessText converts apostrophes, quotes, dashes and ellipses in
// the block's text spans to their typographic forms, following the
// conventions of the locale ("en_US", "fr", …). Quotation state is
// carried across span boundaries, so style changes inside a quotation do
// not confuse the quotes.
//
// Code blocks are left untouched. A block ending inside an open
// quotation emits a warning naming the source line, but does not fail.
//
// The pass is idempotent for already-converted characters: typographic
// quotes, guillemets and no-break spaces pass through unchanged. The one
// ambiguous case is a plain ASCII '"' produced by a previous pass's
// input; it toggles quotation state again.
func (b *Block) PostProcessText(locale string) {
	if b.Type == CodeBlock {
		return
	}
	french := isFrench(locale)

	insideQuotation := false
	var previousCh rune

	for i, span := range b.Spans {
		ts, ok := span.(TextSpan)
		if !ok {
			continue
		}
		var sb strings.Builder
		text := []rune(ts.Text)

		for j := 0; j < len(text); j++ {
			ch := text[j]

			switch {
			case ch == '~':
				// No-break space.
				sb.WriteRune(' ')
			case ch == '\'':
				sb.WriteRune('’')
			case ch == '"':
				if french {
					if insideQuotation {
						sb.WriteString(" »")
					} else {
						sb.WriteString("« ")
					}
				} else {
					if insideQuotation {
						sb.WriteRune('”')
					} else {
						sb.WriteRune('“')
					}
				}
				insideQuotation = !insideQuotation
			case french && ch == '-' && i == 0 && j == 0 &&
				len(text) >= 2 && text[j+1] == ' ':
				// Em-dash for the start of a dialog line; the following
				// space is dropped.
				sb.WriteRune('—')
				j++
			case ch == '.' && j+2 < len(text) && text[j+1] == '.' && text[j+2] == '.':
				// Ellipsis, with no-break spaces between the dots.
				sb.WriteString(" . . .")
				j += 2
			case french && (ch == ':' || ch == ';' || ch == '!' || ch == '?'):
				// In French there's a space before two-part punctuation.
				switch previousCh {
				case '.':
					// After a period use a full-width space (it's
					// probably after an ellipsis).
					sb.WriteRune(' ')
				case ' ', ' ':
					// Already spaced by a previous pass.
				default:
					sb.WriteRune(' ')
				}
				sb.WriteRune(ch)
			default:
				sb.WriteRune(ch)
			}

			previousCh = ch
		}

		b.Spans[i] = TextSpan{Text: sb.String(), Flags: ts.Flags}
	}

	if insideQuotation {
		tracer().Infof("warning (line %d): block ends without closing quotation: %v",
			b.LineNumber, b)
	}
}

// isFrench tells whether a locale names a French-speaking language.
func isFrench(locale string) bool {
	if tag, err := language.Parse(locale); err == nil {
		base, _ := tag.Base()
		return base.String() == "fr"
	}
	return strings.EqualFold(locale, "fr") ||
		strings.HasPrefix(strings.ToLower(locale), "fr_")
}
