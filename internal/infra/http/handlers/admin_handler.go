package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/lembrete-consorcio/internal/infra/integration/gate"
)

// AdminHandler expõe o painel administrativo de contas: listar pedidos de
// aprovação, aprovar/rejeitar e julgar comprovantes de pagamento. Quem decide
// se o chamador é admin é o serviço remoto, que recusa a mutação vinda de
// conta comum.
type AdminHandler struct {
	gate *gate.Client
}

func NewAdminHandler(client *gate.Client) *AdminHandler {
	return &AdminHandler{gate: client}
}

func (h *AdminHandler) HandleListApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := h.gate.ListApprovals(r.Context())
	if err != nil {
		writeGateError(w, err, "Falha ao listar aprovações")
		return
	}
	writeJSON(w, http.StatusOK, approvals)
}

type setApprovalRequest struct {
	Status gate.ApprovalStatus `json:"status"`
}

func (h *AdminHandler) HandleSetApproval(w http.ResponseWriter, r *http.Request) {
	var req setApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal := chi.URLParam(r, "principal")
	if err := h.gate.SetApproval(r.Context(), principal, req.Status); err != nil {
		writeGateError(w, err, "Falha ao atualizar aprovação")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type proofStatusRequest struct {
	Status gate.PaymentProofStatus `json:"status"`
}

func (h *AdminHandler) HandleUpdateProofStatus(w http.ResponseWriter, r *http.Request) {
	proofID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "ID de comprovante inválido")
		return
	}

	var req proofStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	if err := h.gate.UpdateProofStatus(r.Context(), proofID, req.Status); err != nil {
		writeGateError(w, err, "Falha ao atualizar comprovante")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) HandlePaywall(w http.ResponseWriter, r *http.Request) {
	active, err := h.gate.IsPaywallActive(r.Context())
	if err != nil {
		writeGateError(w, err, "Falha ao consultar o paywall")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"paywallActive": active})
}
