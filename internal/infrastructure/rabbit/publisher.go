package rabbit

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/jhoicas/biblioteca-api/internal/application/lending"
	"github.com/jhoicas/biblioteca-api/internal/domain/entity"
	"github.com/jhoicas/biblioteca-api/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ensure Publisher implements lending.EventPublisher.
var _ lending.EventPublisher = (*Publisher)(nil)

// Publisher publica eventos de préstamo en un exchange topic de RabbitMQ.
// La publicación es best-effort: un fallo se loguea y no afecta la operación.
type Publisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *logger.Logger
}

// NewPublisher conecta al broker y declara el exchange (topic, durable).
func NewPublisher(url, exchange string, log *logger.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

// Close cierra canal y conexión.
func (p *Publisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// LoanCreated publica loan.created con el préstamo recién registrado.
func (p *Publisher) LoanCreated(loan *entity.Loan) {
	p.publish("loan.created", map[string]any{
		"id":           loan.ID,
		"memberCode":   loan.MemberCode,
		"bookCode":     loan.BookCode,
		"borrowedDate": loan.BorrowedAt,
	})
}

// LoanReturned publica loan.returned indicando si hubo sanción.
func (p *Publisher) LoanReturned(memberCode, bookCode string, penalized bool) {
	p.publish("loan.returned", map[string]any{
		"memberCode": memberCode,
		"bookCode":   bookCode,
		"penalized":  penalized,
		"returnedAt": time.Now(),
	})
}

func (p *Publisher) publish(routingKey string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		p.log.Warn().Err(err).Str("routing_key", routingKey).Msg("serializar evento")
		return
	}
	err = p.ch.PublishWithContext(context.Background(), p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		p.log.Warn().Err(err).Str("routing_key", routingKey).Msg("publicar evento")
	}
}
