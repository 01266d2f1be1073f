package convention

import "time"

// Amend denial reasons, stable strings consumed by the CLI layer.
const (
	reasonAmendDisabled    = "amend disabled"
	reasonTypeNotAmendable = "type not amendable"
	reasonNotSameDay       = "not same day"
	reasonLimitReached     = "amend limit reached"
)

// CanAmend decides whether the proposed commit may amend the previous one.
// Rules evaluate in order: policy enabled, type allowed, same calendar day
// (when required, using the context's clock and location), and the daily
// amend limit. Denials are structured results, never errors.
//
// KeepVersion and AutoIncrementPatch are not checked here; they only inform
// the version the caller passes to Generate afterwards.
func CanAmend(ctx AmendContext, rules *RuleSet) AmendDecision {
	if rules == nil {
		panic("convention: CanAmend called with nil RuleSet")
	}

	policy := rules.Amend

	if !policy.Enabled {
		return AmendDecision{Reason: reasonAmendDisabled}
	}

	if !policy.Allows(ctx.ProposedType) {
		return AmendDecision{Reason: reasonTypeNotAmendable}
	}

	if policy.RequireSameDay && !sameDay(ctx.PreviousTimestamp, ctx.Now) {
		return AmendDecision{Reason: reasonNotSameDay}
	}

	if ctx.AmendCountToday >= policy.MaxAmends {
		return AmendDecision{Reason: reasonLimitReached}
	}

	return AmendDecision{Allowed: true}
}

// sameDay reports whether both instants fall on the same calendar day in
// now's location.
func sameDay(prev, now time.Time) bool {
	py, pm, pd := prev.In(now.Location()).Date()
	ny, nm, nd := now.Date()
	return py == ny && pm == nm && pd == nd
}
