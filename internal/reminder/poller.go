// Package reminder implementa o motor de lembretes: um poller por tipo de
// registro que, a cada tick, escolhe no máximo um registro elegível para
// mostrar e espera o dismiss explícito.
package reminder

import (
	"context"
	"log"
	"sync"
	"time"
)

const DefaultInterval = 30 * time.Second

// Config parametriza um Poller para um tipo de registro.
type Config[T any] struct {
	// Interval é o período do ticker. Zero usa DefaultInterval.
	Interval time.Duration

	// Eligible decide se o registro deve disparar lembrete agora.
	Eligible func(record T, now time.Time) bool

	// DueAt extrai o instante de vencimento usado no desempate (o mais
	// antigo vence). ok=false exclui o registro da seleção.
	DueAt func(record T) (time.Time, bool)

	// OnShow, quando definido, é chamado na transição idle -> showing.
	OnShow func(record T)

	// Now é injetável para testes. Zero usa time.Now.
	Now func() time.Time
}

// Poller mantém dois estados: idle (sem lembrete) e showing (um registro
// ativo). O ticker é o único gatilho recorrente; mudança de lista provoca
// uma checagem imediata adicional via SetRecords. Um lembrete ativo nunca é
// preemptado por outro registro que vença no meio tempo.
type Poller[T any] struct {
	cfg Config[T]

	mu      sync.Mutex
	records []T
	active  *T
}

func NewPoller[T any](cfg Config[T]) *Poller[T] {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Poller[T]{cfg: cfg}
}

// SetRecords troca o snapshot de registros e checa na hora. O tick seguinte
// sempre relê este snapshot: o poller nunca trabalha sobre lista velha.
func (p *Poller[T]) SetRecords(records []T) {
	p.mu.Lock()
	p.records = make([]T, len(records))
	copy(p.records, records)
	p.mu.Unlock()

	p.Check()
}

// Check roda uma avaliação de elegibilidade agora. Sem efeito se já existe
// lembrete ativo.
func (p *Poller[T]) Check() {
	p.mu.Lock()
	if p.active != nil {
		p.mu.Unlock()
		return
	}

	now := p.cfg.Now()
	var (
		best    T
		bestDue time.Time
		found   bool
	)
	for _, rec := range p.records {
		if !p.cfg.Eligible(rec, now) {
			continue
		}
		due, ok := p.cfg.DueAt(rec)
		if !ok {
			// Data ilegível: fora da seleção, nunca ordenada arbitrariamente.
			continue
		}
		if !found || due.Before(bestDue) {
			best, bestDue, found = rec, due, true
		}
	}

	if !found {
		p.mu.Unlock()
		return
	}

	shown := best
	p.active = &shown
	onShow := p.cfg.OnShow
	p.mu.Unlock()

	if onShow != nil {
		onShow(shown)
	}
}

// Active devolve o lembrete ativo, se houver.
func (p *Poller[T]) Active() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.active == nil {
		var zero T
		return zero, false
	}
	return *p.active, true
}

// Dismiss volta para idle. A reseleção fica por conta do próximo tick, que
// pode imediatamente escolher outro registro elegível.
func (p *Poller[T]) Dismiss() {
	p.mu.Lock()
	p.active = nil
	p.mu.Unlock()
}

// Start roda o loop de checagem até o contexto ser cancelado. O ticker é
// parado na saída; nenhum timer fica vazando.
func (p *Poller[T]) Start(ctx context.Context) {
	log.Printf("🕒 Poller de lembretes iniciado (intervalo %s)", p.cfg.Interval)

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	p.Check()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Poller de lembretes encerrado")
			return
		case <-ticker.C:
			p.Check()
		}
	}
}
