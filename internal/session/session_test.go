package session

import (
	"testing"
	"time"
)

func TestNewUserSessionStartsAtGoal(t *testing.T) {
	s := NewUserSession("u1")
	if s.State.Step != StepAwaitingGoal {
		t.Errorf("initial step = %v, want StepAwaitingGoal", s.State.Step)
	}
	if s.DailyGoal != 0 || s.Consumed != 0 {
		t.Errorf("fresh session has goal=%d consumed=%d, want zeros", s.DailyGoal, s.Consumed)
	}
}

func TestAppendCountsDuplicates(t *testing.T) {
	s := NewUserSession("u1")
	s.DailyGoal = 2000

	item := NewLoggedFoodItem(Draft{Name: "рис", QuantityGrams: 100, Calories: 130, Source: SourceDatabase})
	s.Append(item)
	s.Append(NewLoggedFoodItem(Draft{Name: "рис", QuantityGrams: 100, Calories: 130, Source: SourceDatabase}))

	if s.Consumed != 260 {
		t.Errorf("Consumed = %d, want 260: identical entries must both count", s.Consumed)
	}
	if len(s.Foods) != 2 {
		t.Errorf("len(Foods) = %d, want 2", len(s.Foods))
	}
	if s.Foods[0].ID == s.Foods[1].ID {
		t.Error("ledger items must have distinct ids")
	}
}

func TestClearDayKeepsGoal(t *testing.T) {
	s := NewUserSession("u1")
	s.DailyGoal = 1800
	s.Append(NewLoggedFoodItem(Draft{Name: "борщ", Calories: 150}))

	s.ClearDay()

	if s.Consumed != 0 || len(s.Foods) != 0 {
		t.Errorf("after ClearDay: consumed=%d foods=%d, want zeros", s.Consumed, len(s.Foods))
	}
	if s.DailyGoal != 1800 {
		t.Errorf("ClearDay dropped the goal: %d", s.DailyGoal)
	}
}

func TestRemainingNeverNegative(t *testing.T) {
	s := NewUserSession("u1")
	s.DailyGoal = 500
	s.Append(NewLoggedFoodItem(Draft{Name: "торт", Calories: 900}))
	if got := s.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0 when over goal", got)
	}
}

func TestStaleAfter(t *testing.T) {
	now := time.Now().UTC()
	ttl := 5 * time.Minute

	withPending := ConversationState{
		Step:        StepConfirmingFood,
		Pending:     PendingFood{Draft: Draft{Name: "рис"}},
		LastUpdated: now.Add(-6 * time.Minute),
	}
	if !withPending.StaleAfter(ttl, now) {
		t.Error("pending older than ttl must be stale")
	}

	withPending.LastUpdated = now.Add(-time.Minute)
	if withPending.StaleAfter(ttl, now) {
		t.Error("pending within ttl must not be stale")
	}

	noPending := ConversationState{Step: StepMainMenu, LastUpdated: now.Add(-time.Hour)}
	if noPending.StaleAfter(ttl, now) {
		t.Error("states without pending data never go stale")
	}
}

func TestSetStepReplacesPending(t *testing.T) {
	s := NewUserSession("u1")
	s.SetStep(StepConfirmingFood, PendingFood{OriginalText: "200г риса"})
	if _, ok := s.State.Pending.(PendingFood); !ok {
		t.Fatalf("pending = %T, want PendingFood", s.State.Pending)
	}

	s.SetStep(StepMainMenu, nil)
	if s.State.Pending != nil {
		t.Error("SetStep must clear pending data")
	}
}

func TestNewLoggedFoodItemTimestamp(t *testing.T) {
	item := NewLoggedFoodItem(Draft{Name: "чай", Calories: 2})
	if item.ID == "" {
		t.Error("item id must be set")
	}
	if _, err := time.Parse(time.RFC3339, item.Timestamp); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", item.Timestamp, err)
	}
}
