package reminder

import (
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

// LeadEligible: follow-up marcado e já vencido. Data ilegível degrada para
// "nunca vence".
func LeadEligible(l entity.Lead, now time.Time) bool {
	followUp, ok := entity.ParseTime(l.NextFollowUp)
	if !ok {
		return false
	}
	return !followUp.After(now)
}

func LeadDueAt(l entity.Lead) (time.Time, bool) {
	return entity.ParseTime(l.NextFollowUp)
}

// BoletoEligible: pendente, vencendo hoje ou antes (comparação só de data) e
// sem snooze vigente.
func BoletoEligible(b entity.ClientBoleto, now time.Time) bool {
	if b.Status != entity.BoletoPending {
		return false
	}

	if until, ok := entity.ParseTime(b.SnoozeUntil); ok && until.After(now) {
		return false
	}

	due, ok := entity.ParseTime(b.DueDate)
	if !ok {
		return false
	}
	return !entity.DateOnly(due).After(entity.DateOnly(now))
}

func BoletoDueAt(b entity.ClientBoleto) (time.Time, bool) {
	return entity.ParseTime(b.DueDate)
}
