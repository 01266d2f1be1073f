package convention

import (
	"testing"
	"time"
)

func amendContext(now time.Time) AmendContext {
	return AmendContext{
		PreviousType:      "PATCH",
		PreviousTimestamp: now.Add(-2 * time.Hour),
		AmendCountToday:   0,
		ProposedType:      "PATCH",
		Now:               now,
	}
}

func TestCanAmendAllowed(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	decision := CanAmend(amendContext(now), rules)
	if !decision.Allowed {
		t.Errorf("expected allowed, got reason %q", decision.Reason)
	}
	if decision.Reason != "" {
		t.Errorf("Reason = %q, want empty on allow", decision.Reason)
	}
}

func TestCanAmendDisabled(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	rules.Amend.Enabled = false
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	decision := CanAmend(amendContext(now), rules)
	if decision.Allowed {
		t.Fatal("expected denial when policy disabled")
	}
	if decision.Reason != "amend disabled" {
		t.Errorf("Reason = %q, want %q", decision.Reason, "amend disabled")
	}
}

func TestCanAmendTypeNotAllowed(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet() // RELEASE not in AllowedForTypes by default
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	ctx := amendContext(now)
	ctx.ProposedType = "RELEASE"

	decision := CanAmend(ctx, rules)
	if decision.Allowed {
		t.Fatal("expected denial for non-amendable type")
	}
	if decision.Reason != "type not amendable" {
		t.Errorf("Reason = %q, want %q", decision.Reason, "type not amendable")
	}
}

func TestCanAmendRequiresSameDay(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	now := time.Date(2026, 8, 30, 0, 30, 0, 0, time.UTC)

	ctx := amendContext(now)
	ctx.PreviousTimestamp = now.Add(-2 * time.Hour) // crosses midnight

	decision := CanAmend(ctx, rules)
	if decision.Allowed {
		t.Fatal("expected denial across day boundary")
	}
	if decision.Reason != "not same day" {
		t.Errorf("Reason = %q, want %q", decision.Reason, "not same day")
	}
}

func TestCanAmendSameDayUsesNowLocation(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()

	// 23:30 UTC on the 29th is 08:30 on the 30th in UTC+9; with now in
	// UTC+9 both instants fall on the 30th.
	loc := time.FixedZone("UTC+9", 9*3600)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, loc)

	ctx := amendContext(now)
	ctx.PreviousTimestamp = time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)

	if decision := CanAmend(ctx, rules); !decision.Allowed {
		t.Errorf("expected allowed in now's location, got reason %q", decision.Reason)
	}
}

func TestCanAmendSameDayNotRequired(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	rules.Amend.RequireSameDay = false
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	ctx := amendContext(now)
	ctx.PreviousTimestamp = now.Add(-72 * time.Hour)

	if decision := CanAmend(ctx, rules); !decision.Allowed {
		t.Errorf("expected allowed when same-day not required, got reason %q", decision.Reason)
	}
}

func TestCanAmendLimit(t *testing.T) {
	t.Parallel()

	rules := DefaultRuleSet()
	rules.Amend.MaxAmends = 10
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	// Nine amends done today: the tenth is still allowed.
	ctx := amendContext(now)
	ctx.AmendCountToday = 9
	if decision := CanAmend(ctx, rules); !decision.Allowed {
		t.Errorf("10th amend denied: %q", decision.Reason)
	}

	// Ten amends done today: the eleventh is denied.
	ctx.AmendCountToday = 10
	decision := CanAmend(ctx, rules)
	if decision.Allowed {
		t.Fatal("11th amend allowed, want denial")
	}
	if decision.Reason != "amend limit reached" {
		t.Errorf("Reason = %q, want %q", decision.Reason, "amend limit reached")
	}
}

func TestCanAmendNilRuleSetPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("CanAmend(nil RuleSet) expected panic")
		}
	}()
	CanAmend(AmendContext{}, nil)
}
