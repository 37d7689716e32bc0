package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Kinds roteiam a mensagem dentro da fila única de notificações.
const (
	KindSaleCreated     = "sale.created"
	KindUserProvisioned = "user.provisioned"
)

// Envelope embrulha qualquer evento publicado na fila.
type Envelope struct {
	Kind string          `json:"kind"`
	Body json.RawMessage `json:"body"`
}

type SaleCreatedPayload struct {
	SaleID     string `json:"sale_id"`
	Customer   string `json:"customer"`
	PlanName   string `json:"plan_name"`
	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`
	TeamName   string `json:"team_name"`
}

type UserProvisionedPayload struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	TempPassword string `json:"temp_password"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishSaleCreated(ctx context.Context, payload SaleCreatedPayload) error {
	return p.publish(ctx, KindSaleCreated, payload)
}

func (p *RabbitMQProducer) PublishUserProvisioned(ctx context.Context, payload UserProvisionedPayload) error {
	return p.publish(ctx, KindUserProvisioned, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, kind string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	envelope, err := json.Marshal(Envelope{Kind: kind, Body: body})
	if err != nil {
		return fmt.Errorf("erro ao converter envelope: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         envelope,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
