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

type BoletoStoreInterface interface {
	All() []entity.ClientBoleto
	Get(id string) (entity.ClientBoleto, bool)
	Create(ctx context.Context, input store.CreateBoletoInput) entity.ClientBoleto
	Update(ctx context.Context, id string, patch store.BoletoPatch) (entity.ClientBoleto, bool)
	Delete(ctx context.Context, id string)
	Snooze(ctx context.Context, id string, minutes float64)
	MarkSent(ctx context.Context, id string)
}

type BoletoHandler struct {
	store BoletoStoreInterface
}

func NewBoletoHandler(store BoletoStoreInterface) *BoletoHandler {
	return &BoletoHandler{store: store}
}

func (h *BoletoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.All())
}

// HandleBuckets devolve os boletos agrupados por janela de vencimento,
// com ?filter=all|pending|sent.
func (h *BoletoHandler) HandleBuckets(w http.ResponseWriter, r *http.Request) {
	buckets := usecase.BucketBoletos(h.store.All(), r.URL.Query().Get("filter"), time.Now())
	writeJSON(w, http.StatusOK, buckets)
}

func (h *BoletoHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	metrics := usecase.CalculateMetrics(h.store.All(), time.Now())
	writeJSON(w, http.StatusOK, metrics)
}

func (h *BoletoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	boleto, ok := h.store.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "Boleto não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, boleto)
}

func (h *BoletoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input store.CreateBoletoInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if errs := usecase.ValidateCreateBoletoInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	boleto := h.store.Create(r.Context(), input)
	writeJSON(w, http.StatusCreated, boleto)
}

func (h *BoletoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var patch store.BoletoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	boleto, ok := h.store.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if !ok {
		writeError(w, http.StatusNotFound, "Boleto não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, boleto)
}

func (h *BoletoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *BoletoHandler) HandleSnooze(w http.ResponseWriter, r *http.Request) {
	var req snoozeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	id := chi.URLParam(r, "id")
	h.store.Snooze(r.Context(), id, req.Minutes)
	middleware.RecordSnooze("boleto")

	boleto, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Boleto não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, boleto)
}

// HandleMarkSent marca como enviado e encerra os lembretes do boleto.
func (h *BoletoHandler) HandleMarkSent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	h.store.MarkSent(r.Context(), id)

	boleto, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Boleto não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, boleto)
}
