package mail

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/lembrete-consorcio/internal/infra/queue"
	"github.com/xavierca1/lembrete-consorcio/internal/usecase"
)

// NewEmailSender monta o remetente SMTP. "to" é a caixa do vendedor que
// recebe os avisos de boleto vencendo.
func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

func (s *EmailSender) SendDueNotice(ctx context.Context, payload queue.ReminderPayload) error {
	data := DueNoticeData{
		Name:    payload.Name,
		Value:   usecase.FormatBRL(payload.Value),
		DueDate: payload.DueAt,
	}

	tmplPath := filepath.Join("templates", "lembrete.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Boleto de %s vence hoje ⏰", payload.Name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
