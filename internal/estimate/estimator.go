// Package estimate assigns calorie values to food descriptions the
// resolver could not match. It has two sub-paths: an optional external
// AI estimator and a keyword density table. Both produce low-confidence
// results that the UI marks as estimates.
package estimate

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MinConfidence is the acceptance threshold for AI results. Responses
// below it (or with missing calories/quantity) fall through to the
// keyword path.
const MinConfidence = 0.5

// KeywordConfidence is the fixed confidence assigned to keyword-table
// estimates. Low on purpose so the UI can visually distinguish them.
const KeywordConfidence = 0.4

// Estimation is a structured result from the external AI estimator.
type Estimation struct {
	FoodName      string  `json:"food_name"`
	QuantityGrams float64 `json:"quantity_grams"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbs         float64 `json:"carbs"`
	Confidence    float64 `json:"confidence"`
}

// Acceptable reports whether the estimation passes the validity gate:
// positive calories, a positive quantity and enough confidence.
func (e *Estimation) Acceptable() bool {
	if e == nil {
		return false
	}
	return e.Calories > 0 && e.QuantityGrams > 0 && e.Confidence >= MinConfidence
}

// Estimator is the optional external collaborator. Implementations must
// respect the context deadline; a timeout or malformed response is
// treated by callers as "no result".
type Estimator interface {
	// Estimate returns a structured nutrition guess for free-form text.
	Estimate(ctx context.Context, text string) (*Estimation, error)

	// Name returns the provider name ("openai", "gemini").
	Name() string
}

// Factory creates an estimator from provider-specific configuration.
type Factory func(config map[string]any) (Estimator, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// RegisterFactory registers an estimator factory under a provider name.
// Called from provider init functions.
func RegisterFactory(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[name] = f
}

// New creates an estimator by provider name.
func New(name string, config map[string]any) (Estimator, error) {
	factoriesMu.RLock()
	f, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown estimator provider %q (have %v)", name, providerNames())
	}
	return f(config)
}

func providerNames() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
