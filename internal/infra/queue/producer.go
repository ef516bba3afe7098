package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload é o evento publicado quando um lembrete dispara. O worker
// de notificações consome daqui para avisar o vendedor fora do app.
type ReminderPayload struct {
	Kind     string  `json:"kind"` // lead | boleto
	RecordID string  `json:"record_id"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	DueAt    string  `json:"due_at"`
	Value    float64 `json:"value,omitempty"` // só para boletos
}

type ProducerInterface interface {
	PublishReminder(ctx context.Context, payload ReminderPayload) error
}

type Producer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *Producer {
	return &Producer{Conn: conn, Ch: ch}
}

func (p *Producer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
