// Package roman renders Roman numerals, as used for front-matter page
// folios.
package roman

import "strings"

var numerals = []struct {
	value int
	digit string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

// Lower returns n as a lowercase Roman numeral. Numbers below 1 have no
// Roman representation and yield the empty string.
func Lower(n int) string {
	var sb strings.Builder
	for _, num := range numerals {
		for n >= num.value {
			sb.WriteString(num.digit)
			n -= num.value
		}
	}
	return sb.String()
}

// Upper returns n as an uppercase Roman numeral.
func Upper(n int) string {
	return strings.ToUpper(Lower(n))
}
