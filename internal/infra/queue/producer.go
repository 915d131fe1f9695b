package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IntakePayload mirrors the intake form for the automation consumer on
// the other side of the queue.
type IntakePayload struct {
	OrderID                string    `json:"order_id"`
	CustomerName           string    `json:"customer_name"`
	CustomerEmail          string    `json:"customer_email"`
	ProjectType            string    `json:"project_type"`
	ProjectDescription     string    `json:"project_description"`
	Timeline               string    `json:"timeline,omitempty"`
	Budget                 string    `json:"budget,omitempty"`
	AdditionalRequirements string    `json:"additional_requirements,omitempty"`
	SubmittedAt            time.Time `json:"submitted_at"`
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

func (p *RabbitMQProducer) PublishIntake(ctx context.Context, payload IntakePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal intake payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // survives broker restarts
		},
	)
	if err != nil {
		return fmt.Errorf("publish intake to RabbitMQ: %v", err)
	}

	return nil
}
