// Package resolver maps free-form food descriptions onto nutrition table
// entries using a fixed cascade of matching strategies. Earlier stages
// are cheaper and stricter; the first stage that produces a candidate
// wins, so results are deterministic.
package resolver

import (
	"sort"
	"strings"

	"github.com/kcalbot-dev/kcalbot/internal/nutrition"
)

// Method identifies the strategy that produced a match.
type Method int

const (
	None Method = iota
	Exact
	Substring
	AllWords
	PartialWords
	Permutation
	EditDistance
)

func (m Method) String() string {
	switch m {
	case Exact:
		return "exact"
	case Substring:
		return "substring"
	case AllWords:
		return "all_words"
	case PartialWords:
		return "partial_words"
	case Permutation:
		return "permutation"
	case EditDistance:
		return "edit_distance"
	default:
		return "none"
	}
}

// Match is the single best result for one input. Entry is nil when
// Method is None. Distance is only set for EditDistance matches.
type Match struct {
	Entry    *nutrition.Entry
	Method   Method
	Distance int
}

const (
	// maxEditDistance bounds stage 6. Anything farther than 3 edits from
	// every entry name is treated as unknown.
	maxEditDistance = 3
	// maxPermutationTokens bounds the combinatorial cost of stage 5.
	maxPermutationTokens = 4
	// minTokenLen filters out prepositions and grammatical debris.
	minTokenLen = 3
)

// Resolve runs the strategy cascade over the table. The input is expected
// to be lowercase with quantity expressions already stripped.
func Resolve(text string, table *nutrition.Table) Match {
	text = strings.TrimSpace(text)
	if text == "" {
		return Match{Method: None}
	}

	// Stage 1: exact name match.
	if e := table.Get(text); e != nil {
		return Match{Entry: e, Method: Exact}
	}

	// Stage 2: substring containment in either direction. Ties go to the
	// longest entry name so "рис" cannot shadow a compound dish name.
	if e := bySubstring(text, table); e != nil {
		return Match{Entry: e, Method: Substring}
	}

	tokens := tokenize(text)

	// Stage 3: entry name contains every token, order-independent.
	if len(tokens) > 0 {
		if e := byAllWords(tokens, table); e != nil {
			return Match{Entry: e, Method: AllWords}
		}
	}

	// Stage 4: best partial token overlap, first-seen entry wins ties.
	if len(tokens) > 0 {
		if e := byPartialWords(tokens, table); e != nil {
			return Match{Entry: e, Method: PartialWords}
		}
	}

	// Stage 5: token-order permutations, bounded by token count.
	if n := len(tokens); n > 1 && n <= maxPermutationTokens {
		if e := byPermutation(tokens, table); e != nil {
			return Match{Entry: e, Method: Permutation}
		}
	}

	// Stage 6: nearest neighbour by Levenshtein distance.
	if e, d := byEditDistance(text, table); e != nil {
		return Match{Entry: e, Method: EditDistance, Distance: d}
	}

	return Match{Method: None}
}

func tokenize(text string) []string {
	var tokens []string
	for _, f := range strings.Fields(text) {
		if len([]rune(f)) > minTokenLen-1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func bySubstring(text string, table *nutrition.Table) *nutrition.Entry {
	var best *nutrition.Entry
	table.Each(func(e *nutrition.Entry) bool {
		if strings.Contains(text, e.Name) || strings.Contains(e.Name, text) {
			if best == nil || len(e.Name) > len(best.Name) {
				best = e
			}
		}
		return true
	})
	return best
}

func byAllWords(tokens []string, table *nutrition.Table) *nutrition.Entry {
	var found *nutrition.Entry
	table.Each(func(e *nutrition.Entry) bool {
		for _, tok := range tokens {
			if !strings.Contains(e.Name, tok) {
				return true
			}
		}
		found = e
		return false
	})
	return found
}

func byPartialWords(tokens []string, table *nutrition.Table) *nutrition.Entry {
	var best *nutrition.Entry
	bestScore := 0
	table.Each(func(e *nutrition.Entry) bool {
		score := 0
		for _, tok := range tokens {
			if strings.Contains(e.Name, tok) {
				score++
			}
		}
		// strictly greater keeps the first-seen entry on ties
		if score > bestScore {
			best, bestScore = e, score
		}
		return true
	})
	return best
}

func byPermutation(tokens []string, table *nutrition.Table) *nutrition.Entry {
	for _, perm := range permutations(tokens) {
		// check the full permutation and every contiguous token window
		for width := len(perm); width >= 1; width-- {
			for start := 0; start+width <= len(perm); start++ {
				candidate := strings.Join(perm[start:start+width], " ")
				if len([]rune(candidate)) < minTokenLen {
					continue
				}
				var found *nutrition.Entry
				table.Each(func(e *nutrition.Entry) bool {
					if strings.Contains(e.Name, candidate) || strings.Contains(candidate, e.Name) {
						found = e
						return false
					}
					return true
				})
				if found != nil {
					return found
				}
			}
		}
	}
	return nil
}

// permutations returns all orderings of tokens in a deterministic
// sequence (Heap's algorithm output order is stable for a given input).
func permutations(tokens []string) [][]string {
	var out [][]string
	n := len(tokens)
	work := make([]string, n)
	copy(work, tokens)

	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			perm := make([]string, n)
			copy(perm, work)
			out = append(out, perm)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				work[i], work[k-1] = work[k-1], work[i]
			} else {
				work[0], work[k-1] = work[k-1], work[0]
			}
		}
	}
	generate(n)
	return out
}

func byEditDistance(text string, table *nutrition.Table) (*nutrition.Entry, int) {
	var best *nutrition.Entry
	bestDist := maxEditDistance + 1
	table.Each(func(e *nutrition.Entry) bool {
		// strictly smaller keeps the first-seen entry on ties
		if d := levenshtein(text, e.Name); d < bestDist {
			best, bestDist = e, d
		}
		return true
	})
	if best == nil {
		return nil, 0
	}
	return best, bestDist
}

// SuggestClosest returns up to n entry names ranked by edit distance,
// used by the database-search flow to offer alternatives.
func SuggestClosest(text string, table *nutrition.Table, n int) []string {
	type scored struct {
		name string
		dist int
	}
	var all []scored
	table.Each(func(e *nutrition.Entry) bool {
		all = append(all, scored{e.Name, levenshtein(text, e.Name)})
		return true
	})
	sort.SliceStable(all, func(i, j int) bool { return all[i].dist < all[j].dist })
	if n > len(all) {
		n = len(all)
	}
	names := make([]string, 0, n)
	for _, s := range all[:n] {
		names = append(names, s.name)
	}
	return names
}
