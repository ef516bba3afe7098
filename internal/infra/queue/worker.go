package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WhatsAppSender e EmailSender são os canais de saída do worker de
// notificações. As implementações vivem em infra/integration e infra/mail.
type WhatsAppSender interface {
	SendReminder(ctx context.Context, payload ReminderPayload) error
}

type EmailSender interface {
	SendDueNotice(ctx context.Context, payload ReminderPayload) error
}

// Worker consome os eventos de lembrete e dispara as notificações externas.
// Desacoplado do storage: tudo que precisa vem no payload.
type Worker struct {
	Channel  *amqp.Channel
	WhatsApp WhatsAppSender
	Email    EmailSender
}

func NewWorker(ch *amqp.Channel, whatsApp WhatsAppSender, email EmailSender) *Worker {
	return &Worker{Channel: ch, WhatsApp: whatsApp, Email: email}
}

func (w *Worker) Start(ctx context.Context, queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual é mais seguro)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	log.Printf(" [*] Worker de notificações aguardando na fila '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Worker de notificações encerrado")
			return
		case d, open := <-msgs:
			if !open {
				log.Println("⚠️ Canal RabbitMQ fechado, worker parando")
				return
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var payload ReminderPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("❌ [WORKER] JSON inválido: %s", err)
		// Mensagem podre: rejeita sem requeue para não travar a fila.
		d.Nack(false, false)
		return
	}

	log.Printf("📥 [WORKER] Lembrete %s para %s", payload.Kind, payload.Name)

	if err := w.process(ctx, payload); err != nil {
		log.Printf("❌ [WORKER] Erro ao notificar: %s", err)
		d.Nack(false, false)
		return
	}

	d.Ack(false)
}

func (w *Worker) process(ctx context.Context, payload ReminderPayload) error {
	switch payload.Kind {
	case "boleto":
		// Boleto vencendo: WhatsApp para o cliente e email de aviso.
		if w.WhatsApp != nil && payload.Phone != "" {
			if err := w.WhatsApp.SendReminder(ctx, payload); err != nil {
				return err
			}
		}
		if w.Email != nil {
			return w.Email.SendDueNotice(ctx, payload)
		}
		return nil

	case "lead":
		if w.WhatsApp != nil && payload.Phone != "" {
			return w.WhatsApp.SendReminder(ctx, payload)
		}
		return nil

	default:
		log.Printf("⚠️ Tipo de lembrete desconhecido: %s. Apenas logando.", payload.Kind)
		// Ack mesmo assim: não sabemos tratar e não adianta reentregar.
		return nil
	}
}
