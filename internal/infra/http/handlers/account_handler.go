package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/lembrete-consorcio/internal/infra/http/middleware"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/integration/gate"
	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

// AccountHandler repassa para o serviço remoto o fluxo de conta do app:
// perfil, pedido de aprovação e comprovantes de pagamento. O principal vem
// sempre do token, nunca do corpo da requisição.
type AccountHandler struct {
	gate *gate.Client
}

func NewAccountHandler(client *gate.Client) *AccountHandler {
	return &AccountHandler{gate: client}
}

// writeGateError traduz a falha do gate: rejeição de domínio devolve a
// mensagem com 400, falha técnica vira 502 com mensagem genérica.
func writeGateError(w http.ResponseWriter, err error, fallback string) {
	if usecase.IsDomainError(err) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, fallback)
}

func (h *AccountHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r.Context())

	profile, err := h.gate.GetProfile(r.Context(), principal)
	if err != nil {
		writeGateError(w, err, "Falha ao consultar o perfil")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Perfil ainda não cadastrado")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) HandleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var profile gate.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}
	profile.Principal = middleware.Principal(r.Context())

	if err := h.gate.SaveProfile(r.Context(), profile); err != nil {
		writeGateError(w, err, "Falha ao salvar o perfil")
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (h *AccountHandler) HandleRequestApproval(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r.Context())

	if err := h.gate.RequestApproval(r.Context(), principal); err != nil {
		writeGateError(w, err, "Falha ao solicitar aprovação")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (h *AccountHandler) HandleSubmitProof(w http.ResponseWriter, r *http.Request) {
	var proof gate.PaymentProofUpdate
	if err := json.NewDecoder(r.Body).Decode(&proof); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	principal := middleware.Principal(r.Context())
	id, err := h.gate.SubmitPaymentProof(r.Context(), principal, proof)
	if err != nil {
		writeGateError(w, err, "Falha ao enviar comprovante")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func (h *AccountHandler) HandleListProofs(w http.ResponseWriter, r *http.Request) {
	principal := middleware.Principal(r.Context())

	proofs, err := h.gate.ListPaymentProofs(r.Context(), principal)
	if err != nil {
		writeGateError(w, err, "Falha ao listar comprovantes")
		return
	}
	writeJSON(w, http.StatusOK, proofs)
}
