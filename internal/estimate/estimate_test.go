package estimate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsGibberish(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", true},
		{"too short", "ед", true},
		{"spaces only", "   ", true},
		{"normal food", "домашний суп с фрикадельками", false},
		{"short but valid", "щи и хлеб", false},
		{"mostly punctuation", "?!., еда", true},
		{"keyboard mash repeat", "ааааааа", true},
		{"four repeats pass", "аааа еда", false},
		{"digits are fine", "салат 123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGibberish(tt.text), "IsGibberish(%q)", tt.text)
		})
	}
}

func TestByKeyword(t *testing.T) {
	tests := []struct {
		text         string
		wantCalories float64
		wantCategory string
	}{
		{"домашний суп", 50, "суп"},
		{"борщ со сметаной", 50, "суп"},
		{"овощной салатик", 30, "салат"},
		{"котлета по-киевски", 200, "мясо"},
		{"жареная рыба", 150, "рыба"},
		{"манная каша", 110, "гарнир"},
		{"пирожок с капустой", 350, "выпечка"},
		{"шоколадный торт", 400, "сладкое"},
		{"грецкие орехи", 600, "орехи"},
		{"апельсиновый сок", 45, "напиток"},
		{"лесные ягоды", 55, "фрукты"},
		{"нечто неведомое", 100, "другое"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := ByKeyword(tt.text)
			assert.Equal(t, tt.wantCalories, got.CaloriesPer100g)
			assert.Equal(t, tt.wantCategory, got.Category)
		})
	}
}

func TestByKeywordFirstGroupWins(t *testing.T) {
	// both "суп" and "мясо" match; the table order decides
	got := ByKeyword("суп с мясом")
	assert.Equal(t, "суп", got.Category)
}

func TestEstimationAcceptable(t *testing.T) {
	tests := []struct {
		name string
		est  *Estimation
		want bool
	}{
		{"nil", nil, false},
		{"valid", &Estimation{Calories: 250, QuantityGrams: 300, Confidence: 0.8}, true},
		{"at threshold", &Estimation{Calories: 250, QuantityGrams: 300, Confidence: 0.5}, true},
		{"below threshold", &Estimation{Calories: 250, QuantityGrams: 300, Confidence: 0.49}, false},
		{"zero calories", &Estimation{Calories: 0, QuantityGrams: 300, Confidence: 0.9}, false},
		{"zero quantity", &Estimation{Calories: 250, QuantityGrams: 0, Confidence: 0.9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.est.Acceptable())
		})
	}
}

type staticEstimator struct{ est *Estimation }

func (s staticEstimator) Estimate(ctx context.Context, text string) (*Estimation, error) {
	return s.est, nil
}
func (s staticEstimator) Name() string { return "static" }

func TestFactoryRegistry(t *testing.T) {
	RegisterFactory("static", func(config map[string]any) (Estimator, error) {
		return staticEstimator{est: &Estimation{Calories: 1}}, nil
	})

	e, err := New("static", nil)
	require.NoError(t, err)
	assert.Equal(t, "static", e.Name())

	_, err = New("no-such-provider", nil)
	assert.Error(t, err)
}
