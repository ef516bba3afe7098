package handlers

import (
	"net/http"

	"github.com/xavierca1/lembrete-consorcio/internal/infra/http/middleware"
	"github.com/xavierca1/lembrete-consorcio/internal/reminder"
)

// ReminderHandler expõe o contrato do poller para a interface:
// { activeReminder, dismiss }.
type ReminderHandler[T any] struct {
	poller *reminder.Poller[T]
	kind   string
}

func NewReminderHandler[T any](poller *reminder.Poller[T], kind string) *ReminderHandler[T] {
	return &ReminderHandler[T]{poller: poller, kind: kind}
}

type activeReminderResponse[T any] struct {
	ActiveReminder *T `json:"activeReminder"`
}

func (h *ReminderHandler[T]) HandleActive(w http.ResponseWriter, r *http.Request) {
	resp := activeReminderResponse[T]{}
	if active, ok := h.poller.Active(); ok {
		resp.ActiveReminder = &active
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleDismiss sempre volta o poller para idle; o próximo tick pode
// selecionar outro registro elegível.
func (h *ReminderHandler[T]) HandleDismiss(w http.ResponseWriter, r *http.Request) {
	h.poller.Dismiss()
	middleware.RecordReminderDismissed(h.kind)
	writeJSON(w, http.StatusOK, activeReminderResponse[T]{})
}
