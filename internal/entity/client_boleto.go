package entity

import (
	"errors"
	"strings"
)

type BoletoStatus string

const (
	BoletoPending BoletoStatus = "pending"
	BoletoSent    BoletoStatus = "sent"
)

var BoletoStatusLabels = map[BoletoStatus]string{
	BoletoPending: "Pendente",
	BoletoSent:    "Enviado",
}

// ClientBoleto é a parcela mensal de um cliente do consórcio: vence em
// DueDate e precisa do boleto enviado (status pending -> sent).
// SnoozeUntil, enquanto no futuro, segura o lembrete mesmo com a parcela
// vencida.
type ClientBoleto struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Phone       string       `json:"phone"`
	DueDate     string       `json:"dueDate"`
	Value       float64      `json:"value"`
	Status      BoletoStatus `json:"status"`
	Notes       string       `json:"notes"`
	SnoozeUntil string       `json:"snoozeUntil,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

func IsValidBoletoStatus(s BoletoStatus) bool {
	_, ok := BoletoStatusLabels[s]
	return ok
}

// NewClientBoleto monta um boleto novo com ID e timestamps preenchidos.
func NewClientBoleto(name, phone, notes, dueDate string, value float64, status BoletoStatus) *ClientBoleto {
	now := NowISO()
	if !IsValidBoletoStatus(status) {
		status = BoletoPending
	}
	return &ClientBoleto{
		ID:        NewID(),
		Name:      name,
		Phone:     phone,
		Notes:     notes,
		DueDate:   dueDate,
		Value:     value,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CheckClientBoleto valida a forma mínima de um boleto vindo do storage.
func CheckClientBoleto(b ClientBoleto) error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("boleto sem id")
	}
	if strings.TrimSpace(b.Name) == "" {
		return errors.New("boleto sem nome")
	}
	if b.DueDate == "" {
		return errors.New("boleto sem vencimento")
	}
	if b.CreatedAt == "" || b.UpdatedAt == "" {
		return errors.New("boleto sem timestamps")
	}
	if !IsValidBoletoStatus(b.Status) {
		return errors.New("status de boleto desconhecido")
	}
	return nil
}
