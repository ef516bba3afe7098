package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
}

func newLeadPoller(onShow func(entity.Lead)) *Poller[entity.Lead] {
	return NewPoller(Config[entity.Lead]{
		Eligible: LeadEligible,
		DueAt:    LeadDueAt,
		OnShow:   onShow,
		Now:      fixedNow,
	})
}

func lead(id, followUp string) entity.Lead {
	return entity.Lead{
		ID:           id,
		Name:         "Lead " + id,
		Status:       entity.LeadNovo,
		NextFollowUp: followUp,
		CreatedAt:    "2026-08-01T00:00:00Z",
		UpdatedAt:    "2026-08-01T00:00:00Z",
	}
}

func TestPollerShowsOverdueLead(t *testing.T) {
	var shown []string
	p := newLeadPoller(func(l entity.Lead) { shown = append(shown, l.ID) })

	p.SetRecords([]entity.Lead{
		lead("ana", "2026-08-28T09:30:00Z"),
		lead("futuro", "2026-08-28T11:00:00Z"),
	})

	active, ok := p.Active()
	require.True(t, ok)
	assert.Equal(t, "ana", active.ID)
	assert.Equal(t, []string{"ana"}, shown)
}

func TestPollerIdleWhenNothingDue(t *testing.T) {
	p := newLeadPoller(nil)
	p.SetRecords([]entity.Lead{
		lead("1", "2026-08-28T11:00:00Z"),
		lead("2", ""),
		lead("3", "data-invalida"),
	})

	_, ok := p.Active()
	assert.False(t, ok)
}

func TestPollerPicksEarliestDue(t *testing.T) {
	p := newLeadPoller(nil)
	p.SetRecords([]entity.Lead{
		lead("tarde", "2026-08-28T09:45:00Z"),
		lead("cedo", "2026-08-28T08:00:00Z"),
	})

	active, ok := p.Active()
	require.True(t, ok)
	assert.Equal(t, "cedo", active.ID)
}

func TestPollerDoesNotPreemptActiveReminder(t *testing.T) {
	var shown []string
	p := newLeadPoller(func(l entity.Lead) { shown = append(shown, l.ID) })

	p.SetRecords([]entity.Lead{lead("primeiro", "2026-08-28T09:00:00Z")})

	// Chega um registro ainda mais atrasado enquanto o primeiro está na tela.
	p.SetRecords([]entity.Lead{
		lead("primeiro", "2026-08-28T09:00:00Z"),
		lead("mais-atrasado", "2026-08-28T07:00:00Z"),
	})
	p.Check()

	active, ok := p.Active()
	require.True(t, ok)
	assert.Equal(t, "primeiro", active.ID)
	assert.Equal(t, []string{"primeiro"}, shown)
}

func TestPollerDismissThenNextCheckSelectsAgain(t *testing.T) {
	var shown []string
	p := newLeadPoller(func(l entity.Lead) { shown = append(shown, l.ID) })

	p.SetRecords([]entity.Lead{
		lead("a", "2026-08-28T08:00:00Z"),
		lead("b", "2026-08-28T09:00:00Z"),
	})
	p.Dismiss()

	// Dismiss não checa sozinho. Só o próximo tick (ou SetRecords) reseleciona.
	_, ok := p.Active()
	assert.False(t, ok)

	p.Check()
	active, ok := p.Active()
	require.True(t, ok)
	assert.Equal(t, "a", active.ID)
	assert.Equal(t, []string{"a", "a"}, shown)
}

func TestPollerDismissStaysIdleWhenRecordUpdated(t *testing.T) {
	p := newLeadPoller(nil)
	p.SetRecords([]entity.Lead{lead("ana", "2026-08-28T09:00:00Z")})
	p.Dismiss()

	// O follow-up foi adiado: o snapshot novo não tem mais nada elegível.
	p.SetRecords([]entity.Lead{lead("ana", "2026-08-28T12:00:00Z")})

	_, ok := p.Active()
	assert.False(t, ok)
}

func TestPollerStartChecksOnTicks(t *testing.T) {
	shown := make(chan entity.Lead, 1)
	p := NewPoller(Config[entity.Lead]{
		Interval: 10 * time.Millisecond,
		Eligible: LeadEligible,
		DueAt:    LeadDueAt,
		OnShow:   func(l entity.Lead) { shown <- l },
		Now:      fixedNow,
	})
	p.SetRecords([]entity.Lead{lead("futuro", "2026-08-28T11:00:00Z")})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Start(ctx)

	// Torna o registro elegível depois que o loop já está rodando.
	p.SetRecords([]entity.Lead{lead("ana", "2026-08-28T09:00:00Z")})

	select {
	case l := <-shown:
		assert.Equal(t, "ana", l.ID)
	case <-time.After(time.Second):
		t.Fatal("lembrete não disparou")
	}
}
