// Package logcapture guarda as últimas linhas de log num buffer em memória
// para o endpoint de diagnóstico. A instância é construída e ligada pelo
// main — nada de singleton global: Start instala o interceptador no logger
// padrão e Stop restaura a saída anterior.
package logcapture

import (
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const DefaultMaxEntries = 100

type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

type Capture struct {
	mu      sync.Mutex
	max     int
	entries []Entry
	active  bool
}

func New(max int) *Capture {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	return &Capture{max: max}
}

// Start passa a interceptar o logger padrão, mantendo a escrita no stderr.
func (c *Capture) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return
	}
	c.active = true
	log.SetOutput(c)
}

// Stop remove o interceptador e devolve o logger ao stderr puro.
func (c *Capture) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.active {
		return
	}
	c.active = false
	log.SetOutput(os.Stderr)
}

// Write implementa io.Writer para o logger: repassa ao stderr e guarda a
// linha no buffer circular.
func (c *Capture) Write(p []byte) (int, error) {
	os.Stderr.Write(p)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, Entry{
		Timestamp: time.Now(),
		Message:   strings.TrimRight(string(p), "\n"),
	})
	if len(c.entries) > c.max {
		c.entries = c.entries[len(c.entries)-c.max:]
	}
	return len(p), nil
}

func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
