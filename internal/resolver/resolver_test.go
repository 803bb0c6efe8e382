package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcalbot-dev/kcalbot/internal/nutrition"
)

func TestResolveExactForEveryEntry(t *testing.T) {
	table := nutrition.Default()
	for _, name := range table.Names() {
		m := Resolve(name, table)
		require.Equal(t, Exact, m.Method, "entry %q must resolve exactly", name)
		require.Equal(t, name, m.Entry.Name)
	}
}

func TestResolveCascade(t *testing.T) {
	table := nutrition.Default()

	tests := []struct {
		name       string
		text       string
		wantMethod Method
		wantEntry  string
	}{
		{"exact beats everything", "рис", Exact, "рис"},
		{"substring in description", "вкусная гречка", Substring, "гречка"},
		{"substring tie goes to longest name", "плов с рисом", Substring, "плов"},
		{"all words reordered", "грудка куриная", AllWords, "куриная грудка"},
		{"partial word overlap", "цезарь с курицей", PartialWords, "салат цезарь"},
		{"typo within edit distance", "курицо", EditDistance, "курица"},
		{"empty input", "", None, ""},
		{"unmatched gibberish", "qwzx", None, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Resolve(tt.text, table)
			assert.Equal(t, tt.wantMethod, m.Method)
			if tt.wantMethod == None {
				assert.Nil(t, m.Entry)
				return
			}
			require.NotNil(t, m.Entry)
			assert.Equal(t, tt.wantEntry, m.Entry.Name)
		})
	}
}

func TestResolveEditDistanceBound(t *testing.T) {
	table := nutrition.Default()

	m := Resolve("курицо", table)
	require.Equal(t, EditDistance, m.Method)
	assert.Equal(t, 1, m.Distance)
	assert.LessOrEqual(t, m.Distance, maxEditDistance)

	// four edits away from everything
	m = Resolve("abcdefghij", table)
	assert.Equal(t, None, m.Method)
}

func TestByPermutation(t *testing.T) {
	table := nutrition.Default()

	e := byPermutation([]string{"сливочное", "масло"}, table)
	require.NotNil(t, e)
	assert.Equal(t, "масло сливочное", e.Name)
}

func TestPermutationsCount(t *testing.T) {
	perms := permutations([]string{"a", "b", "c"})
	assert.Len(t, perms, 6)
	seen := make(map[string]bool)
	for _, p := range perms {
		seen[p[0]+p[1]+p[2]] = true
	}
	assert.Len(t, seen, 6, "all permutations must be distinct")
}

func TestTokenizeDropsShortWords(t *testing.T) {
	tokens := tokenize("суп с мясом и хлебом")
	assert.Equal(t, []string{"суп", "мясом", "хлебом"}, tokens)
}

func TestSuggestClosest(t *testing.T) {
	table := nutrition.Default()
	names := SuggestClosest("греча", table, 3)
	require.Len(t, names, 3)
	assert.Equal(t, "гречка", names[0])
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"рис", "рис", 0},
		{"рис", "", 3},
		{"курицо", "курица", 1},
		{"гречка", "греча", 1},
		{"молоко", "масло", 4},
		{"кот", "ток", 2},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
