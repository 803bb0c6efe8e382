package estimate

import "unicode"

// IsGibberish reports whether text is too broken to estimate: shorter
// than 3 characters, more than 30% non-alphanumeric characters, or any
// character repeated 5+ times in a row. Gibberish short-circuits both
// estimation paths and is surfaced as a request to rephrase.
func IsGibberish(text string) bool {
	runes := []rune(text)

	var meaningful []rune
	for _, r := range runes {
		if !unicode.IsSpace(r) {
			meaningful = append(meaningful, r)
		}
	}
	if len(meaningful) < 3 {
		return true
	}

	junk := 0
	for _, r := range meaningful {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			junk++
		}
	}
	if float64(junk)/float64(len(meaningful)) > 0.3 {
		return true
	}

	repeat := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			repeat++
			if repeat >= 5 {
				return true
			}
		} else {
			repeat = 1
		}
	}
	return false
}
