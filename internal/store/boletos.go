package store

import (
	"context"
	"sync"
	"time"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/storage"
)

type CreateBoletoInput struct {
	Name    string              `json:"name"`
	Phone   string              `json:"phone"`
	Notes   string              `json:"notes"`
	DueDate string              `json:"dueDate"`
	Value   float64             `json:"value"`
	Status  entity.BoletoStatus `json:"status"`
}

type BoletoPatch struct {
	Name        *string              `json:"name,omitempty"`
	Phone       *string              `json:"phone,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
	DueDate     *string              `json:"dueDate,omitempty"`
	Value       *float64             `json:"value,omitempty"`
	Status      *entity.BoletoStatus `json:"status,omitempty"`
	SnoozeUntil *string              `json:"snoozeUntil,omitempty"`
}

// BoletoStore é o dono da lista de boletos em memória, com a mesma
// disciplina do LeadStore: mutação = memória + persistência + listener.
type BoletoStore struct {
	mu       sync.Mutex
	col      *storage.Collection[entity.ClientBoleto]
	boletos  []entity.ClientBoleto
	onChange func([]entity.ClientBoleto)
	now      func() time.Time
}

func NewBoletoStore(ctx context.Context, kv storage.KV) *BoletoStore {
	col := storage.NewCollection(kv, boletosStorageKey, entity.CheckClientBoleto,
		func(b entity.ClientBoleto) string { return b.ID })
	return &BoletoStore{
		col:     col,
		boletos: col.GetAll(ctx),
		now:     time.Now,
	}
}

func (s *BoletoStore) OnChange(fn func([]entity.ClientBoleto)) {
	s.mu.Lock()
	s.onChange = fn
	boletos := s.snapshot()
	s.mu.Unlock()
	if fn != nil {
		fn(boletos)
	}
}

func (s *BoletoStore) All() []entity.ClientBoleto {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *BoletoStore) Get(id string) (entity.ClientBoleto, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.boletos {
		if b.ID == id {
			return b, true
		}
	}
	return entity.ClientBoleto{}, false
}

func (s *BoletoStore) Create(ctx context.Context, input CreateBoletoInput) entity.ClientBoleto {
	boleto := entity.NewClientBoleto(input.Name, input.Phone, input.Notes,
		input.DueDate, input.Value, input.Status)

	s.mu.Lock()
	s.col.Add(ctx, *boleto)
	s.boletos = append(s.boletos, *boleto)
	fn, boletos := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, boletos)
	return *boleto
}

func (s *BoletoStore) Update(ctx context.Context, id string, patch BoletoPatch) (entity.ClientBoleto, bool) {
	s.mu.Lock()
	idx := -1
	for i := range s.boletos {
		if s.boletos[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.mu.Unlock()
		return entity.ClientBoleto{}, false
	}

	// Timestamp capturado uma vez: memória e KV gravam o mesmo valor.
	updatedAt := s.now().Format(time.RFC3339Nano)
	apply := func(b *entity.ClientBoleto) {
		if patch.Name != nil {
			b.Name = *patch.Name
		}
		if patch.Phone != nil {
			b.Phone = *patch.Phone
		}
		if patch.Notes != nil {
			b.Notes = *patch.Notes
		}
		if patch.DueDate != nil {
			b.DueDate = *patch.DueDate
		}
		if patch.Value != nil {
			b.Value = *patch.Value
		}
		if patch.Status != nil && entity.IsValidBoletoStatus(*patch.Status) {
			b.Status = *patch.Status
		}
		if patch.SnoozeUntil != nil {
			b.SnoozeUntil = *patch.SnoozeUntil
		}
		b.UpdatedAt = updatedAt
	}

	apply(&s.boletos[idx])
	s.col.Update(ctx, id, apply)
	updated := s.boletos[idx]
	fn, boletos := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, boletos)
	return updated, true
}

func (s *BoletoStore) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	filtered := s.boletos[:0]
	for _, b := range s.boletos {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	s.boletos = filtered
	s.col.Remove(ctx, id)
	fn, boletos := s.onChange, s.snapshot()
	s.mu.Unlock()

	notify(fn, boletos)
}

func (s *BoletoStore) UpdateStatus(ctx context.Context, id string, status entity.BoletoStatus) {
	s.Update(ctx, id, BoletoPatch{Status: &status})
}

// Snooze segura o lembrete até agora + minutes sem mexer no vencimento.
// Minutos não positivos ou não finitos são ignorados.
func (s *BoletoStore) Snooze(ctx context.Context, id string, minutes float64) {
	if !validSnooze(minutes) {
		return
	}
	until := s.now().Add(minutesToDuration(minutes)).Format(time.RFC3339Nano)
	s.Update(ctx, id, BoletoPatch{SnoozeUntil: &until})
}

// MarkSent marca o boleto como enviado e limpa o snooze. Enviado não dispara
// mais lembrete até o status voltar para pending.
func (s *BoletoStore) MarkSent(ctx context.Context, id string) {
	sent := entity.BoletoSent
	empty := ""
	s.Update(ctx, id, BoletoPatch{Status: &sent, SnoozeUntil: &empty})
}

func (s *BoletoStore) snapshot() []entity.ClientBoleto {
	out := make([]entity.ClientBoleto, len(s.boletos))
	copy(out, s.boletos)
	return out
}
