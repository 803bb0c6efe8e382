// Package engine drives the guided food-entry conversation: goal setup,
// food entry, quantity clarification, confirmation and manual correction.
// One Handle call processes one inbound message to completion.
package engine

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/kcalbot-dev/kcalbot/internal/estimate"
	"github.com/kcalbot-dev/kcalbot/internal/nutrition"
	"github.com/kcalbot-dev/kcalbot/internal/quantity"
	"github.com/kcalbot-dev/kcalbot/internal/resolver"
	"github.com/kcalbot-dev/kcalbot/internal/session"
	"github.com/kcalbot-dev/kcalbot/pkg/observability"
)

const (
	minGoal       = 500
	maxGoal       = 10000
	minManualKcal = 1
	maxManualKcal = 5000

	// DefaultPendingTTL bounds how long a confirmation may sit unanswered.
	DefaultPendingTTL = 5 * time.Minute

	// DefaultAITimeout bounds the external estimator call.
	DefaultAITimeout = 30 * time.Second
)

// Options configures an Engine. The zero value works: no estimator, no
// rate limiting, default TTL and timeout.
type Options struct {
	// Estimator is the optional external AI collaborator. Nil disables
	// the AI path entirely without changing anything else.
	Estimator estimate.Estimator
	// AITimeout bounds each estimator call.
	AITimeout time.Duration
	// PendingTTL is the staleness bound for pending confirmations.
	PendingTTL time.Duration
	// RateLimitPerSecond enables per-user inbound rate limiting when > 0.
	RateLimitPerSecond float64
	// RateLimitBurst is the per-user burst size (default 5).
	RateLimitBurst int
}

// Engine is the conversation state machine over a session store.
type Engine struct {
	table      *nutrition.Table
	store      session.Store
	estimator  estimate.Estimator
	aiTimeout  time.Duration
	pendingTTL time.Duration
	limiter    *userLimiter
}

// New creates an engine over the given table and store.
func New(table *nutrition.Table, store session.Store, opts Options) *Engine {
	e := &Engine{
		table:      table,
		store:      store,
		estimator:  opts.Estimator,
		aiTimeout:  opts.AITimeout,
		pendingTTL: opts.PendingTTL,
	}
	if e.aiTimeout <= 0 {
		e.aiTimeout = DefaultAITimeout
	}
	if e.pendingTTL <= 0 {
		e.pendingTTL = DefaultPendingTTL
	}
	if opts.RateLimitPerSecond > 0 {
		burst := opts.RateLimitBurst
		if burst <= 0 {
			burst = 5
		}
		e.limiter = newUserLimiter(opts.RateLimitPerSecond, burst)
	}
	observability.SetNutritionEntries(table.Len())
	return e
}

// Handle processes one inbound message and returns the outbound reply.
// Validation problems and resolution misses are normal outcomes, not
// errors; the error return covers the store only.
func (e *Engine) Handle(ctx context.Context, userID, text string) (Reply, error) {
	text = strings.TrimSpace(text)
	if e.limiter != nil && !e.limiter.Allow(userID) {
		return Reply{Text: rateLimitText}, nil
	}

	ctx, span := observability.StartSpan(ctx, "engine.handle")
	defer span.End()

	started := time.Now()
	var reply Reply
	err := e.store.Update(ctx, userID, func(sess *session.UserSession) error {
		step := sess.State.Step
		span.SetAttributes(attribute.String("conversation.step", step.String()))
		defer func() { observability.RecordMessage(step.String(), time.Since(started)) }()

		if r, ok := e.handleCommand(ctx, sess, text); ok {
			reply = r
			return nil
		}

		if sess.State.StaleAfter(e.pendingTTL, time.Now().UTC()) {
			log.Printf("[ENGINE] user=%s stale pending in step=%s, resetting", userID, step)
			sess.SetStep(session.StepMainMenu, nil)
			reply = Reply{Text: staleText, Choices: mainMenuChoices}
			return nil
		}

		reply = e.handleStep(ctx, sess, text)
		return nil
	})
	if err != nil {
		return Reply{}, err
	}

	e.publishGauges(ctx)
	return reply, nil
}

// handleCommand dispatches slash commands and main-menu buttons. These
// work from any state and discard pending data.
func (e *Engine) handleCommand(ctx context.Context, sess *session.UserSession, text string) (Reply, bool) {
	switch text {
	case "/start":
		if sess.DailyGoal == 0 {
			sess.SetStep(session.StepAwaitingGoal, nil)
			return Reply{Text: welcomeText + "\n\n" + askGoalText}, true
		}
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: welcomeText, Choices: mainMenuChoices}, true

	case "/help", btnHelp:
		return Reply{Text: helpText, Choices: mainMenuChoices}, true

	case "/setgoal", btnChangeGoal:
		if sess.DailyGoal == 0 {
			sess.SetStep(session.StepAwaitingGoal, nil)
		} else {
			sess.SetStep(session.StepChangingGoal, nil)
		}
		return Reply{Text: askGoalText}, true

	case "/add", btnAddFood:
		if sess.DailyGoal == 0 {
			return Reply{Text: needGoalFirstText}, true
		}
		sess.SetStep(session.StepAddingFood, nil)
		return Reply{Text: askFoodText}, true

	case "/today", btnStats:
		if sess.DailyGoal == 0 {
			return Reply{Text: needGoalFirstText}, true
		}
		// immediate, no state change
		return Reply{Text: statsText(sess), Choices: mainMenuChoices}, true

	case "/clear", btnClearDay:
		if sess.DailyGoal == 0 {
			return Reply{Text: needGoalFirstText}, true
		}
		sess.ClearDay()
		return Reply{Text: dayClearedText, Choices: mainMenuChoices}, true
	}
	return Reply{}, false
}

func (e *Engine) handleStep(ctx context.Context, sess *session.UserSession, text string) Reply {
	switch sess.State.Step {
	case session.StepAwaitingGoal:
		return e.handleGoal(sess, text, false)
	case session.StepChangingGoal:
		return e.handleGoal(sess, text, true)
	case session.StepMainMenu:
		return Reply{Text: useMenuText, Choices: mainMenuChoices}
	case session.StepAddingFood:
		return e.handleFoodText(ctx, sess, text)
	case session.StepRemindingQuantity:
		return e.handleQuantityReminder(ctx, sess, text)
	case session.StepConfirmingFood:
		return e.handleConfirmation(sess, text)
	case session.StepCorrectingCalories:
		return e.handleManualCalories(sess, text)
	case session.StepSearchingFood:
		return e.handleSearch(sess, text)
	case session.StepConfirmingSearchResult:
		return e.handleSearchConfirmation(sess, text)
	default:
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: useMenuText, Choices: mainMenuChoices}
	}
}

func (e *Engine) handleGoal(sess *session.UserSession, text string, changeOnly bool) Reply {
	goal, err := strconv.Atoi(text)
	if err != nil || goal < minGoal || goal > maxGoal {
		return Reply{Text: badGoalText}
	}

	sess.DailyGoal = goal
	sess.SetStep(session.StepMainMenu, nil)
	if changeOnly {
		// ledger untouched
		return Reply{Text: goalChangedText(goal), Choices: mainMenuChoices}
	}
	return Reply{Text: goalSetText(goal), Choices: mainMenuChoices}
}

// handleFoodText is the AddingFood step: extract a quantity, then match
// the description against the table with the estimation fallback behind.
func (e *Engine) handleFoodText(ctx context.Context, sess *session.UserSession, text string) Reply {
	if text == btnCancel {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: cancelledText, Choices: mainMenuChoices}
	}

	parsed, found := quantity.Extract(text)
	if !found {
		sess.SetStep(session.StepRemindingQuantity, session.PendingQuantity{OriginalText: text})
		return Reply{Text: reminderText, Choices: reminderChoices}
	}
	return e.proposeFood(ctx, sess, text, parsed)
}

// proposeFood builds a draft from a description with a known quantity and
// moves to confirmation.
func (e *Engine) proposeFood(ctx context.Context, sess *session.UserSession, text string, parsed quantity.Parsed) Reply {
	name := strings.ToLower(quantity.Strip(text))

	match := resolver.Resolve(name, e.table)
	observability.RecordResolverMatch(match.Method.String())

	var draft session.Draft
	switch {
	case match.Method != resolver.None:
		entry := match.Entry
		draft = session.Draft{
			Name:          entry.Name,
			QuantityGrams: parsed.Grams,
			Calories:      entry.CaloriesFor(parsed.Grams),
			Protein:       entry.ProteinFor(parsed.Grams),
			Fat:           entry.FatFor(parsed.Grams),
			Carbs:         entry.CarbsFor(parsed.Grams),
			Source:        session.SourceDatabase,
			Confidence:    1.0,
			Oversized:     parsed.Oversized,
			Method:        match.Method.String(),
		}

	case estimate.IsGibberish(name):
		// unparseable, ask to rephrase rather than guess
		return Reply{Text: rephraseText, Choices: []string{btnCancel}}

	default:
		draft = e.estimateDraft(ctx, name, parsed)
	}

	sess.SetStep(session.StepConfirmingFood, session.PendingFood{Draft: draft, OriginalText: text})
	return Reply{Text: draftText(draft), Choices: confirmChoices}
}

// estimateDraft runs the fallback: AI first when configured, keyword
// density table otherwise. Estimator failures degrade silently.
func (e *Engine) estimateDraft(ctx context.Context, name string, parsed quantity.Parsed) session.Draft {
	if e.estimator != nil {
		aiCtx, cancel := context.WithTimeout(ctx, e.aiTimeout)
		est, err := e.estimator.Estimate(aiCtx, name)
		cancel()
		switch {
		case err != nil:
			observability.RecordEstimatorCall(e.estimator.Name(), "error")
			log.Printf("[ESTIMATE] provider=%s failed, falling back to keywords: %v", e.estimator.Name(), err)
		case !est.Acceptable():
			observability.RecordEstimatorCall(e.estimator.Name(), "rejected")
		default:
			observability.RecordEstimatorCall(e.estimator.Name(), "ok")
			return session.Draft{
				Name:          strings.ToLower(est.FoodName),
				QuantityGrams: est.QuantityGrams,
				Calories:      int(est.Calories + 0.5),
				Protein:       est.Protein,
				Fat:           est.Fat,
				Carbs:         est.Carbs,
				Source:        session.SourceAI,
				Confidence:    est.Confidence,
				Oversized:     parsed.Oversized,
				Method:        "ai",
			}
		}
	}

	kw := estimate.ByKeyword(name)
	return session.Draft{
		Name:          name,
		QuantityGrams: parsed.Grams,
		Calories:      int(kw.CaloriesPer100g*parsed.Grams/100 + 0.5),
		Source:        session.SourceEstimate,
		Confidence:    estimate.KeywordConfidence,
		Oversized:     parsed.Oversized,
		Method:        "keyword",
	}
}

func (e *Engine) handleQuantityReminder(ctx context.Context, sess *session.UserSession, text string) Reply {
	pending, ok := sess.State.Pending.(session.PendingQuantity)
	if !ok {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: staleText, Choices: mainMenuChoices}
	}

	switch text {
	case btnKeepDefault:
		return e.proposeFood(ctx, sess, pending.OriginalText, quantity.Default())
	case btnRewrite:
		sess.SetStep(session.StepAddingFood, nil)
		return Reply{Text: askFoodText}
	case btnCancel:
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: cancelledText, Choices: mainMenuChoices}
	}

	// quantity-bearing follow-up: merge with the original text and
	// re-enter the food flow directly (no synthetic inbound message)
	merged := pending.OriginalText + " " + text
	if parsed, found := quantity.Extract(merged); found {
		return e.proposeFood(ctx, sess, merged, parsed)
	}
	return Reply{Text: quantityRepeatText, Choices: reminderChoices}
}

func (e *Engine) handleConfirmation(sess *session.UserSession, text string) Reply {
	pending, ok := sess.State.Pending.(session.PendingFood)
	if !ok {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: staleText, Choices: mainMenuChoices}
	}

	switch text {
	case btnAccept:
		return e.commit(sess, pending.Draft)
	case btnEditKcal:
		sess.SetStep(session.StepCorrectingCalories, pending)
		return Reply{Text: askManualKcalText}
	case btnSearchDB:
		sess.SetStep(session.StepSearchingFood, session.PendingSearch{Draft: pending.Draft})
		return Reply{Text: askSearchText}
	case btnCancel:
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: cancelledText, Choices: mainMenuChoices}
	}
	return Reply{Text: draftText(pending.Draft), Choices: confirmChoices}
}

func (e *Engine) handleManualCalories(sess *session.UserSession, text string) Reply {
	pending, ok := sess.State.Pending.(session.PendingFood)
	if !ok {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: staleText, Choices: mainMenuChoices}
	}

	kcal, err := strconv.Atoi(text)
	if err != nil || kcal < minManualKcal || kcal > maxManualKcal {
		return Reply{Text: badManualKcalText}
	}

	draft := pending.Draft
	draft.Calories = kcal
	draft.Source = session.SourceManual
	draft.Confidence = 1.0
	return e.commit(sess, draft)
}

func (e *Engine) handleSearch(sess *session.UserSession, text string) Reply {
	pending, ok := sess.State.Pending.(session.PendingSearch)
	if !ok {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: staleText, Choices: mainMenuChoices}
	}
	if text == btnCancel {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: cancelledText, Choices: mainMenuChoices}
	}

	name := strings.ToLower(quantity.Strip(text))
	match := resolver.Resolve(name, e.table)
	observability.RecordResolverMatch(match.Method.String())
	if match.Method == resolver.None {
		// stay in the search step
		return Reply{Text: searchMissText(resolver.SuggestClosest(name, e.table, 3)), Choices: []string{btnCancel}}
	}

	grams := pending.Draft.QuantityGrams
	if parsed, found := quantity.Extract(text); found {
		grams = parsed.Grams
	}
	entry := match.Entry
	draft := session.Draft{
		Name:          entry.Name,
		QuantityGrams: grams,
		Calories:      entry.CaloriesFor(grams),
		Protein:       entry.ProteinFor(grams),
		Fat:           entry.FatFor(grams),
		Carbs:         entry.CarbsFor(grams),
		Source:        session.SourceDatabase,
		Confidence:    1.0,
		Method:        match.Method.String(),
	}
	sess.SetStep(session.StepConfirmingSearchResult, session.PendingSearch{Draft: draft})
	return Reply{Text: draftText(draft), Choices: searchConfirmChoices}
}

func (e *Engine) handleSearchConfirmation(sess *session.UserSession, text string) Reply {
	pending, ok := sess.State.Pending.(session.PendingSearch)
	if !ok {
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: staleText, Choices: mainMenuChoices}
	}

	switch text {
	case btnAccept:
		return e.commit(sess, pending.Draft)
	case btnCancel:
		sess.SetStep(session.StepMainMenu, nil)
		return Reply{Text: cancelledText, Choices: mainMenuChoices}
	}

	// the user may adjust the quantity instead of accepting
	if parsed, found := quantity.Extract(text); found {
		draft := pending.Draft
		entry := e.table.Get(draft.Name)
		if entry != nil {
			draft.QuantityGrams = parsed.Grams
			draft.Calories = entry.CaloriesFor(parsed.Grams)
			draft.Protein = entry.ProteinFor(parsed.Grams)
			draft.Fat = entry.FatFor(parsed.Grams)
			draft.Carbs = entry.CarbsFor(parsed.Grams)
			draft.Oversized = parsed.Oversized
			sess.SetStep(session.StepConfirmingSearchResult, session.PendingSearch{Draft: draft})
			return Reply{Text: draftText(draft), Choices: searchConfirmChoices}
		}
	}
	return Reply{Text: draftText(pending.Draft), Choices: searchConfirmChoices}
}

// commit appends an accepted draft to the daily ledger, the only place
// totals change besides the clear-day operation.
func (e *Engine) commit(sess *session.UserSession, draft session.Draft) Reply {
	item := session.NewLoggedFoodItem(draft)
	sess.Append(item)
	sess.SetStep(session.StepMainMenu, nil)
	observability.RecordLedgerItem(string(item.Source))
	log.Printf("[LEDGER] user=%s +%d kcal (%s, %s)", sess.UserID, item.Calories, item.Name, item.Source)
	return Reply{Text: addedText(sess, item), Choices: mainMenuChoices}
}

// Stats snapshots the read-only counters for the health endpoint.
func (e *Engine) Stats(ctx context.Context) observability.Stats {
	users, _ := e.store.Count(ctx)
	active, _ := e.store.ActiveCount(ctx)
	return observability.Stats{
		Users:          users,
		ActiveUsers:    active,
		NutritionItems: e.table.Len(),
	}
}

func (e *Engine) publishGauges(ctx context.Context) {
	if users, err := e.store.Count(ctx); err == nil {
		observability.SetActiveSessions(users)
	}
}

// ResetAllDays clears every user's daily ledger, used by the scheduled
// midnight reset. Goals are retained.
func (e *Engine) ResetAllDays(ctx context.Context) (int, error) {
	n := 0
	err := e.store.Each(ctx, func(sess *session.UserSession) {
		if sess.Consumed > 0 || len(sess.Foods) > 0 {
			sess.ClearDay()
			n++
		}
	})
	return n, err
}

// SweepStale drops expired pending data so abandoned confirmations do
// not linger between messages.
func (e *Engine) SweepStale(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	n := 0
	err := e.store.Each(ctx, func(sess *session.UserSession) {
		if sess.State.StaleAfter(e.pendingTTL, now) {
			sess.SetStep(session.StepMainMenu, nil)
			n++
		}
	})
	return n, err
}
