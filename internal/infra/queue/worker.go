package queue

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// WelcomeMailer envia o e-mail de boas-vindas do usuário recém-criado.
type WelcomeMailer interface {
	SendWelcome(to, name, tempPassword string) error
}

// Worker consome a fila de notificações. Desacoplado do banco: só fala com
// o mailer e com o log.
type Worker struct {
	Channel *amqp.Channel
	Mailer  WelcomeMailer
	Logger  *zap.Logger
}

func NewWorker(ch *amqp.Channel, mailer WelcomeMailer, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{
		Channel: ch,
		Mailer:  mailer,
		Logger:  logger,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		w.Logger.Fatal("falha ao registrar consumidor RabbitMQ", zap.Error(err))
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var envelope Envelope
			if err := json.Unmarshal(d.Body, &envelope); err != nil {
				w.Logger.Error("mensagem com JSON inválido", zap.Error(err))
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processMessage(context.Background(), envelope); err != nil {
				w.Logger.Error("erro ao processar mensagem",
					zap.String("kind", envelope.Kind),
					zap.Error(err),
				)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	w.Logger.Info("worker aguardando mensagens", zap.String("queue", queueName))
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, envelope Envelope) error {
	switch envelope.Kind {
	case KindUserProvisioned:
		var payload UserProvisionedPayload
		if err := json.Unmarshal(envelope.Body, &payload); err != nil {
			return err
		}
		w.Logger.Info("enviando e-mail de boas-vindas",
			zap.String("user_id", payload.UserID),
			zap.String("role", payload.Role),
		)
		return w.Mailer.SendWelcome(payload.Email, payload.Name, payload.TempPassword)

	case KindSaleCreated:
		var payload SaleCreatedPayload
		if err := json.Unmarshal(envelope.Body, &payload); err != nil {
			return err
		}
		w.Logger.Info("venda registrada",
			zap.String("sale_id", payload.SaleID),
			zap.String("seller", payload.SellerName),
			zap.String("team", payload.TeamName),
			zap.String("plan", payload.PlanName),
		)
		return nil

	default:
		// Evento desconhecido: Ack para não entupir a fila.
		w.Logger.Warn("evento desconhecido", zap.String("kind", envelope.Kind))
		return nil
	}
}
