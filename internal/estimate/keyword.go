package estimate

import "strings"

// KeywordResult is a density-table estimate for an unmatched description.
type KeywordResult struct {
	// CaloriesPer100g is the assumed energy density.
	CaloriesPer100g float64
	// Category names the keyword group that matched ("суп", "мясо", ...),
	// or "другое" for the global default.
	Category string
}

// densityTable maps keyword groups to approximate kcal per 100 g.
// Ordered: the first group with a matching keyword wins.
var densityTable = []struct {
	category string
	keywords []string
	calories float64
}{
	{"суп", []string{"суп", "борщ", "щи", "бульон", "солянка", "харчо"}, 50},
	{"салат", []string{"салат", "овощ"}, 30},
	{"мясо", []string{"мясо", "котлет", "стейк", "шашлык", "гуляш", "отбивн"}, 200},
	{"рыба", []string{"рыб", "морепродукт"}, 150},
	{"гарнир", []string{"каша", "гарнир", "пюре"}, 110},
	{"выпечка", []string{"пирог", "пирож", "булк", "выпечк", "кекс", "маффин"}, 350},
	{"сладкое", []string{"десерт", "сладк", "торт", "мороженое"}, 400},
	{"орехи", []string{"орех", "семечк"}, 600},
	{"напиток", []string{"сок", "напиток", "смузи", "коктейль", "лимонад"}, 45},
	{"фрукты", []string{"фрукт", "ягод"}, 55},
}

// defaultDensity is used when no keyword group matches.
const defaultDensity = 100

// ByKeyword estimates the calorie density of a description. It always
// succeeds; the global default covers anything unrecognized.
func ByKeyword(text string) KeywordResult {
	lower := strings.ToLower(text)
	for _, group := range densityTable {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return KeywordResult{CaloriesPer100g: group.calories, Category: group.category}
			}
		}
	}
	return KeywordResult{CaloriesPer100g: defaultDensity, Category: "другое"}
}
