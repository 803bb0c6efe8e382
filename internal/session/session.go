// Package session holds per-user state: the daily calorie goal, the
// current day's food ledger and the conversation position. Sessions live
// for the process lifetime only.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Source records where a logged item's nutrition values came from.
type Source string

const (
	SourceDatabase Source = "database"
	SourceEstimate Source = "estimate"
	SourceAI       Source = "ai"
	SourceManual   Source = "manual"
)

// Step is the conversation state machine position.
type Step int

const (
	StepAwaitingGoal Step = iota
	StepMainMenu
	StepAddingFood
	StepRemindingQuantity
	StepConfirmingFood
	StepCorrectingCalories
	StepSearchingFood
	StepConfirmingSearchResult
	StepChangingGoal
)

func (s Step) String() string {
	switch s {
	case StepAwaitingGoal:
		return "awaiting_goal"
	case StepMainMenu:
		return "main_menu"
	case StepAddingFood:
		return "adding_food"
	case StepRemindingQuantity:
		return "reminding_quantity"
	case StepConfirmingFood:
		return "confirming_food"
	case StepCorrectingCalories:
		return "correcting_calories"
	case StepSearchingFood:
		return "searching_food"
	case StepConfirmingSearchResult:
		return "confirming_search_result"
	case StepChangingGoal:
		return "changing_goal"
	default:
		return "unknown"
	}
}

// Draft is a proposed ledger entry awaiting user confirmation.
type Draft struct {
	Name          string
	QuantityGrams float64
	Calories      int
	Protein       float64
	Fat           float64
	Carbs         float64
	Source        Source
	Confidence    float64
	// Oversized marks amounts above the quantity sanity ceiling.
	Oversized bool
	// Method names the resolver strategy (or "keyword"/"ai") for logging.
	Method string
}

// Pending is the per-step working data. Each step that carries data has
// its own type, so one step cannot misread another step's bag.
type Pending interface {
	pendingKind() string
}

// PendingFood is a draft entry shown for confirmation.
type PendingFood struct {
	Draft        Draft
	OriginalText string
}

// PendingQuantity is the original food text held while the user is asked
// for a quantity.
type PendingQuantity struct {
	OriginalText string
}

// PendingSearch is a database search hit awaiting quantity confirmation.
type PendingSearch struct {
	Draft Draft
}

func (PendingFood) pendingKind() string     { return "food" }
func (PendingQuantity) pendingKind() string { return "quantity" }
func (PendingSearch) pendingKind() string   { return "search" }

// ConversationState is the machine position plus its pending data.
type ConversationState struct {
	Step        Step
	Pending     Pending
	LastUpdated time.Time
}

// StaleAfter reports whether the pending data has expired. States without
// pending data never go stale.
func (c *ConversationState) StaleAfter(ttl time.Duration, now time.Time) bool {
	return c.Pending != nil && now.Sub(c.LastUpdated) > ttl
}

// LoggedFoodItem is one accepted ledger entry. Immutable once appended.
type LoggedFoodItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantity_grams"`
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein"`
	Fat           float64 `json:"fat"`
	Carbs         float64 `json:"carbs"`
	Source        Source  `json:"source"`
	Confidence    float64 `json:"confidence"`
	Timestamp     string  `json:"timestamp"`
}

// NewLoggedFoodItem builds a ledger entry from an accepted draft.
func NewLoggedFoodItem(d Draft) LoggedFoodItem {
	return LoggedFoodItem{
		ID:            uuid.New().String(),
		Name:          d.Name,
		QuantityGrams: d.QuantityGrams,
		Calories:      d.Calories,
		Protein:       d.Protein,
		Fat:           d.Fat,
		Carbs:         d.Carbs,
		Source:        d.Source,
		Confidence:    d.Confidence,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
}

// UserSession is all state for one user.
type UserSession struct {
	UserID    string
	DailyGoal int
	Consumed  int
	Foods     []LoggedFoodItem
	State     ConversationState
	CreatedAt time.Time
}

// NewUserSession creates a session at the initial conversation step.
func NewUserSession(userID string) *UserSession {
	now := time.Now().UTC()
	return &UserSession{
		UserID:    userID,
		State:     ConversationState{Step: StepAwaitingGoal, LastUpdated: now},
		CreatedAt: now,
	}
}

// Append commits an accepted item to the daily ledger. The only mutation
// of Consumed besides ClearDay.
func (s *UserSession) Append(item LoggedFoodItem) {
	s.Foods = append(s.Foods, item)
	s.Consumed += item.Calories
}

// ClearDay resets the ledger. The goal is retained.
func (s *UserSession) ClearDay() {
	s.Consumed = 0
	s.Foods = nil
}

// Remaining returns calories left for the day, never negative.
func (s *UserSession) Remaining() int {
	if r := s.DailyGoal - s.Consumed; r > 0 {
		return r
	}
	return 0
}

// SetStep moves the machine to a step, replacing pending data and
// refreshing the staleness clock.
func (s *UserSession) SetStep(step Step, pending Pending) {
	s.State = ConversationState{Step: step, Pending: pending, LastUpdated: time.Now().UTC()}
}
