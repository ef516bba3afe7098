// Package notify liga os pollers ao mundo externo: quando um lembrete
// dispara, publica o evento na fila de notificações. Falha aqui nunca trava
// o poller — o lembrete continua ativo na interface de qualquer jeito.
package notify

import (
	"context"
	"log"

	"github.com/xavierca1/lembrete-consorcio/internal/entity"
	"github.com/xavierca1/lembrete-consorcio/internal/infra/queue"
)

type Notifier struct {
	producer queue.ProducerInterface
}

func NewNotifier(producer queue.ProducerInterface) *Notifier {
	return &Notifier{producer: producer}
}

func (n *Notifier) LeadDue(lead entity.Lead) {
	if n.producer == nil {
		return
	}
	payload := queue.ReminderPayload{
		Kind:     "lead",
		RecordID: lead.ID,
		Name:     lead.Name,
		Phone:    lead.Phone,
		DueAt:    lead.NextFollowUp,
	}
	if err := n.producer.PublishReminder(context.Background(), payload); err != nil {
		log.Printf("❌ Erro ao publicar lembrete de lead %s: %v", lead.ID, err)
	}
}

func (n *Notifier) BoletoDue(boleto entity.ClientBoleto) {
	if n.producer == nil {
		return
	}
	payload := queue.ReminderPayload{
		Kind:     "boleto",
		RecordID: boleto.ID,
		Name:     boleto.Name,
		Phone:    boleto.Phone,
		DueAt:    boleto.DueDate,
		Value:    boleto.Value,
	}
	if err := n.producer.PublishReminder(context.Background(), payload); err != nil {
		log.Printf("❌ Erro ao publicar lembrete de boleto %s: %v", boleto.ID, err)
	}
}
