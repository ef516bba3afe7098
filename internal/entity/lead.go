package entity

import (
	"errors"
	"strings"
)

type LeadStatus string

const (
	LeadNovo         LeadStatus = "novo"
	LeadContatoFeito LeadStatus = "contato-feito"
	LeadInteressado  LeadStatus = "interessado"
	LeadNegociacao   LeadStatus = "negociacao"
	LeadGanho        LeadStatus = "ganho"
	LeadPerdido      LeadStatus = "perdido"
)

var LeadStatusLabels = map[LeadStatus]string{
	LeadNovo:         "Novo",
	LeadContatoFeito: "Contato Feito",
	LeadInteressado:  "Interessado",
	LeadNegociacao:   "Negociação",
	LeadGanho:        "Ganho",
	LeadPerdido:      "Perdido",
}

// Lead é um potencial cliente do consórcio, com follow-up opcional.
// Os campos de data são strings RFC 3339, parseadas de forma tolerante via
// ParseTime.
type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Phone        string     `json:"phone"`
	Notes        string     `json:"notes"`
	Status       LeadStatus `json:"status"`
	NextFollowUp string     `json:"nextFollowUp,omitempty"`
	CreatedAt    string     `json:"createdAt"`
	UpdatedAt    string     `json:"updatedAt"`
}

func IsValidLeadStatus(s LeadStatus) bool {
	_, ok := LeadStatusLabels[s]
	return ok
}

// NewLead monta um lead novo com ID e timestamps preenchidos.
func NewLead(name, phone, notes string, status LeadStatus, nextFollowUp string) *Lead {
	now := NowISO()
	if !IsValidLeadStatus(status) {
		status = LeadNovo
	}
	return &Lead{
		ID:           NewID(),
		Name:         name,
		Phone:        phone,
		Notes:        notes,
		Status:       status,
		NextFollowUp: nextFollowUp,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CheckLead valida a forma mínima de um lead vindo do storage.
// Registro reprovado aqui é descartado na leitura, nunca propagado.
func CheckLead(l Lead) error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.New("lead sem id")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("lead sem nome")
	}
	if l.CreatedAt == "" || l.UpdatedAt == "" {
		return errors.New("lead sem timestamps")
	}
	if !IsValidLeadStatus(l.Status) {
		return errors.New("status de lead desconhecido")
	}
	return nil
}
