// Package quantity extracts an amount in grams from free-form meal
// descriptions such as "200г риса" or "2 яйца и кофе".
package quantity

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// DefaultGrams is the portion assumed when the user explicitly accepts
	// logging without a quantity.
	DefaultGrams = 100

	// SanityCeilingGrams marks amounts that are almost certainly a typo.
	// Such amounts are still accepted but flagged for display.
	SanityCeilingGrams = 10000
)

// Parsed is the result of scanning one message for a quantity.
type Parsed struct {
	// Grams is the normalized amount, always > 0 when found.
	Grams float64
	// RawUnit is the unit token as the user typed it ("кг", "шт", ...).
	RawUnit string
	// Converted reports that the amount was not taken verbatim in grams
	// (kilograms, litres, pieces and servings all convert).
	Converted bool
	// Oversized flags amounts above SanityCeilingGrams.
	Oversized bool
}

// Unit tokens, longest variants first. Millilitres are treated 1:1 as
// grams (water-density approximation); kilograms and litres multiply by
// 1000; pieces and servings use a per-category default weight.
// Note: \b is ASCII-only in RE2 and useless after Cyrillic letters, so
// token boundaries are verified in code instead.
var quantityRe = regexp.MustCompile(`(?i)(\d+)\s*(граммов|граммах|грамма|грамм|гр|г|grams|gram|g|миллилитров|мл|ml|килограммов|килограмма|килограмм|кг|kg|литров|литра|литр|л|liters|liter|l|штучки|штуки|штук|шт|pieces|piece|pcs|порциях|порции|порций|порцию|порция|servings|serving)`)

// countableRe catches counted foods with no explicit unit: "2 яйца",
// "3 яблока". The noun doubles as the category keyword.
var countableRe = regexp.MustCompile(`(?i)(\d+)\s+(яйца|яиц|яйцо|яблока|яблок|яблоко|банана|бананов|банан|апельсина|апельсинов|апельсин|груши|груш|груша|куска|кусков|кусочка|ломтика|ломтиков)`)

var digitsRe = regexp.MustCompile(`\d+`)

// Per-piece default weights by category keyword, grams.
var pieceWeights = []struct {
	keywords []string
	grams    float64
}{
	{[]string{"яйц", "яиц", "яичн"}, 50},
	{[]string{"яблок", "банан", "апельсин", "груш", "персик", "мандарин", "фрукт"}, 150},
	{[]string{"хлеб", "батон", "тост", "ломтик", "кусок", "кусоч", "куска"}, 30},
}

const defaultPieceGrams = 100

// Extract scans text for the first quantity pattern and normalizes it to
// grams. The second return value reports whether a quantity was found at
// all; zero or negative amounts count as not found.
func Extract(text string) (Parsed, bool) {
	if m := findToken(quantityRe, text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil || amount <= 0 {
			return Parsed{}, false
		}
		p := Parsed{RawUnit: strings.ToLower(m[2])}
		switch {
		case isMass(p.RawUnit), isMillilitres(p.RawUnit):
			p.Grams = float64(amount)
		case isThousandfold(p.RawUnit):
			p.Grams = float64(amount) * 1000
			p.Converted = true
		default:
			// pieces or servings
			p.Grams = float64(amount) * pieceWeightFor(text)
			p.Converted = true
		}
		p.Oversized = p.Grams > SanityCeilingGrams
		return p, true
	}

	if m := findToken(countableRe, text); m != nil {
		amount, err := strconv.Atoi(m[1])
		if err != nil || amount <= 0 {
			return Parsed{}, false
		}
		p := Parsed{
			RawUnit:   "шт",
			Grams:     float64(amount) * pieceWeightFor(m[2]),
			Converted: true,
		}
		p.Oversized = p.Grams > SanityCeilingGrams
		return p, true
	}

	return Parsed{}, false
}

// Default returns the 100 g fallback portion. Callers must only use it
// after the user has accepted the default explicitly.
func Default() Parsed {
	return Parsed{Grams: DefaultGrams, RawUnit: "г"}
}

// Strip removes the quantity expression and any leftover digits from text
// so the remainder can be matched against food names.
func Strip(text string) string {
	out := text
	if loc := findTokenIndex(quantityRe, out); loc != nil {
		out = out[:loc[0]] + " " + out[loc[1]:]
	}
	out = digitsRe.ReplaceAllString(out, " ")
	return strings.Join(strings.Fields(out), " ")
}

// findToken returns the first regexp match whose unit token is not glued
// to a following letter ("100 гр" matches, the "гр" inside "100 гречки"
// does not).
func findToken(re *regexp.Regexp, text string) []string {
	if loc := findTokenIndex(re, text); loc != nil {
		groups := make([]string, 0, len(loc)/2)
		for i := 0; i < len(loc); i += 2 {
			groups = append(groups, text[loc[i]:loc[i+1]])
		}
		return groups
	}
	return nil
}

func findTokenIndex(re *regexp.Regexp, text string) []int {
	rest := text
	offset := 0
	for {
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil {
			return nil
		}
		if !letterFollows(rest, loc[1]) {
			out := make([]int, len(loc))
			for i, v := range loc {
				out[i] = v + offset
			}
			return out
		}
		advance := loc[0] + 1
		rest = rest[advance:]
		offset += advance
	}
}

func letterFollows(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return unicode.IsLetter(r)
}

func isMass(unit string) bool {
	switch unit {
	case "г", "гр", "грамм", "грамма", "граммов", "граммах", "g", "gram", "grams":
		return true
	}
	return false
}

func isMillilitres(unit string) bool {
	switch unit {
	case "мл", "ml", "миллилитров":
		return true
	}
	return false
}

func isThousandfold(unit string) bool {
	switch unit {
	case "кг", "kg", "килограмм", "килограмма", "килограммов",
		"л", "l", "литр", "литра", "литров", "liter", "liters":
		return true
	}
	return false
}

func pieceWeightFor(text string) float64 {
	lower := strings.ToLower(text)
	for _, pw := range pieceWeights {
		for _, kw := range pw.keywords {
			if strings.Contains(lower, kw) {
				return pw.grams
			}
		}
	}
	return defaultPieceGrams
}
