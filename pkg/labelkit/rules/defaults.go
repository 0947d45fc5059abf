package rules

import "regexp"

var eanPattern = regexp.MustCompile(`\b\d{13}\b`)

// MatchPattern builds a rule from a compiled regular expression.
func MatchPattern(re *regexp.Regexp, label string) Rule {
	return Rule{
		Match: func(text string) bool { return re.MatchString(text) },
		Label: label,
	}
}

// Defaults returns the built-in product-identifier rule set.
//
// Generic brand/series hints come first and identifier-shaped rules
// last, so under last-match-wins an explicit "S/N" or a 13-digit run
// beats a brand keyword appearing in the same token.
func Defaults() []Rule {
	return []Rule{
		Contains("AMD", "brand"),
		Contains("NVIDIA", "brand"),
		Contains("INTEL", "brand"),
		Contains("RADEON", "series"),
		Contains("GEFORCE", "series"),
		Contains("RYZEN", "series"),
		Contains("MODEL", "model_number"),
		Contains("MOD.", "model_number"),
		Contains("P/N", "part_number"),
		Contains("PART NO", "part_number"),
		Contains("S/N", "serial_number"),
		Contains("SERIAL", "serial_number"),
		Contains("SER. NO", "serial_number"),
		MatchPattern(eanPattern, "ean"),
	}
}
