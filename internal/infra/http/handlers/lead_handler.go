package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/http/middleware"
	"github.com/xavierca1/lembrete-consorcio/internal/store"
	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

type LeadStoreInterface interface {
	All() []entity.Lead
	Get(id string) (entity.Lead, bool)
	Create(ctx context.Context, input store.CreateLeadInput) entity.Lead
	Update(ctx context.Context, id string, patch store.LeadPatch) (entity.Lead, bool)
	Delete(ctx context.Context, id string)
	Snooze(ctx context.Context, id string, minutes float64)
	CompleteFollowUp(ctx context.Context, id string)
}

type LeadHandler struct {
	store       LeadStoreInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(store LeadStoreInterface) *LeadHandler {
	return &LeadHandler{
		store:       store,
		rateLimiter: NewRateLimiter(30, time.Minute), // 30 req/min por IP
	}
}

// HandleList aceita ?bucket=overdue|today|upcoming|none|all e ?q=texto;
// devolve sempre ordenado por follow-up.
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads := h.store.All()
	leads = usecase.FilterLeadsByBucket(leads, r.URL.Query().Get("bucket"), time.Now())
	leads = usecase.SearchLeads(leads, r.URL.Query().Get("q"))
	leads = usecase.SortLeadsByFollowUp(leads)
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, ok := h.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Lead não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "Muitas requisições. Tente de novo em instantes.")
		return
	}

	var input store.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if errs := usecase.ValidateCreateLeadInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	lead := h.store.Create(r.Context(), input)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch store.LeadPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	lead, ok := h.store.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if !ok {
		writeError(w, http.StatusNotFound, "Lead não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

type snoozeRequest struct {
	Minutes float64 `json:"minutes"`
}

// HandleSnooze adia o follow-up. Minutos inválidos são ignorados de
// propósito: a resposta devolve o lead como estiver.
func (h *LeadHandler) HandleSnooze(w http.ResponseWriter, r *http.Request) {
	var req snoozeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	id := chi.URLParam(r, "id")
	h.store.Snooze(r.Context(), id, req.Minutes)
	middleware.RecordSnooze("lead")

	lead, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Lead não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.CompleteFollowUp(r.Context(), id)

	lead, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Lead não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
