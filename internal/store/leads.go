package store

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/storage"
)

// Chaves fixas das coleções. Exportações antigas usam as mesmas chaves e são
// lidas sem migração.
const (
	leadsStorageKey   = "lembrete-consorcio-leads"
	boletosStorageKey = "lembrete-consorcio-client-boletos"
)

// CreateLeadInput são os campos que o chamador controla na criação; ID e
// timestamps são atribuídos aqui.
type CreateLeadInput struct {
	Name         string            `json:"name"`
	Phone        string            `json:"phone"`
	Notes        string            `json:"notes"`
	Status       entity.LeadStatus `json:"status"`
	NextFollowUp string            `json:"nextFollowUp,omitempty"`
}

// LeadPatch é uma atualização parcial: campo nil fica como está. Patch vazio
// ainda é aplicado e só avança o UpdatedAt.
type LeadPatch struct {
	Name         *string            `json:"name,omitempty"`
	Phone        *string            `json:"phone,omitempty"`
	Notes        *string            `json:"notes,omitempty"`
	Status       *entity.LeadStatus `json:"status,omitempty"`
	NextFollowUp *string            `json:"nextFollowUp,omitempty"`
}

// LeadStore é o dono da lista de leads em memória. Toda mutação atualiza a
// memória e persiste na coleção antes de retornar, e dispara o listener de
// mudança (o poller de lembretes se inscreve nele).
type LeadStore struct {
	mu       sync.Mutex
	col      *storage.Collection[entity.Lead]
	leads    []entity.Lead
	onChange func([]entity.Lead)
	now      func() time.Time
}

func NewLeadStore(ctx context.Context, kv storage.KV) *LeadStore {
	col := storage.NewCollection(kv, leadsStorageKey, entity.CheckLead,
		func(l entity.Lead) string { return l.ID })
	return &LeadStore{
		col:   col,
		leads: col.GetAll(ctx),
		now:   time.Now,
	}
}

// OnChange registra o listener chamado com a lista nova após cada mutação.
func (s *LeadStore) OnChange(fn func([]entity.Lead)) {
	s.mu.Lock()
	s.onChange = fn
	leads := s.snapshot()
	s.mu.Unlock()
	if fn != nil {
		fn(leads)
	}
}

// All devolve uma cópia da lista atual.
func (s *LeadStore) All() []entity.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *LeadStore) Get(id string) (entity.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.leads {
		if l.ID == id {
			return l, true
		}
	}
	return entity.Lead{}, false
}

func (s *LeadStore) Create(ctx context.Context, input CreateLeadInput) entity.Lead {
	lead := entity.NewLead(input.Name, input.Phone, input.Notes, input.Status, input.NextFollowUp)

	s.mu.Lock()
	s.col.Add(ctx, *lead)
	s.leads = append(s.leads, *lead)
	fn, leads := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, leads)
	return *lead
}

// Update aplica o patch e avança UpdatedAt. Id desconhecido é no-op.
func (s *LeadStore) Update(ctx context.Context, id string, patch LeadPatch) (entity.Lead, bool) {
	s.mu.Lock()
	idx := -1
	for i := range s.leads {
		if s.leads[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return entity.Lead{}, false
	}

	// Timestamp capturado uma vez: memória e KV gravam o mesmo valor.
	updatedAt := s.now().Format(time.RFC3339Nano)
	apply := func(l *entity.Lead) {
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Phone != nil {
			l.Phone = *patch.Phone
		}
		if patch.Notes != nil {
			l.Notes = *patch.Notes
		}
		if patch.Status != nil && entity.IsValidLeadStatus(*patch.Status) {
			l.Status = *patch.Status
		}
		if patch.NextFollowUp != nil {
			l.NextFollowUp = *patch.NextFollowUp
		}
		l.UpdatedAt = updatedAt
	}

	apply(&s.leads[idx])
	s.col.Update(ctx, id, apply)
	updated := s.leads[idx]
	fn, leads := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, leads)
	return updated, true
}

func (s *LeadStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	filtered := s.leads[:0]
	for _, l := range s.leads {
		if l.ID != id {
			filtered = append(filtered, l)
		}
	}
	s.leads = filtered
	s.col.Remove(ctx, id)
	fn, leads := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, leads)
}

func (s *LeadStore) UpdateStatus(ctx context.Context, id string, status entity.LeadStatus) {
	s.Update(ctx, id, LeadPatch{Status: &status})
}

// Snooze adia o follow-up para agora + minutes. Minutos não positivos ou não
// finitos são ignorados.
func (s *LeadStore) Snooze(ctx context.Context, id string, minutes float64) {
	if !validSnooze(minutes) {
		return
	}
	next := s.now().Add(minutesToDuration(minutes)).Format(time.RFC3339Nano)
	s.Update(ctx, id, LeadPatch{NextFollowUp: &next})
}

// CompleteFollowUp limpa o follow-up agendado; o lead sai do radar do poller.
func (s *LeadStore) CompleteFollowUp(ctx context.Context, id string) {
	empty := ""
	s.Update(ctx, id, LeadPatch{NextFollowUp: &empty})
}

func (s *LeadStore) snapshot() []entity.Lead {
	out := make([]entity.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func notify[T any](fn func([]T), items []T) {
	if fn != nil {
		fn(items)
	}
}

func validSnooze(minutes float64) bool {
	return minutes > 0 && !math.IsNaN(minutes) && !math.IsInf(minutes, 0)
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
