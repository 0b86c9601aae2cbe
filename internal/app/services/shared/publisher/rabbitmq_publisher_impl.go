package publisher

import (
	"context"
	"glamslot-service/internal/app/contracts"
	"glamslot-service/internal/pkg/constvars"
	"glamslot-service/internal/pkg/exceptions"
	"glamslot-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Event is the envelope every message on the exchange carries.
type Event struct {
	Type       string      `json:"type"`
	RequestID  string      `json:"requestId,omitempty"`
	OccurredAt time.Time   `json:"occurredAt"`
	Data       interface{} `json:"data"`
}

type rabbitMQPublisher struct {
	mu       sync.Mutex
	Channel  *amqp091.Channel
	Exchange string
	Log      *zap.Logger
}

// NewRabbitMQPublisher opens a channel and declares a durable topic exchange.
func NewRabbitMQPublisher(connection *amqp091.Connection, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, err
	}

	err = channel.ExchangeDeclare(exchange, constvars.EventExchangeKind, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel:  channel,
		Exchange: exchange,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)
	body, err := json.Marshal(Event{
		Type:       routingKey,
		RequestID:  requestID,
		OccurredAt: time.Now().UTC(),
		Data:       payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    utils.GenerateRequestID(),
		Body:         body,
	}

	// amqp091 channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.Channel.PublishWithContext(ctx, p.Exchange, routingKey, false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.Exchange)
	}

	p.Log.Debug("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRoutingKey, routingKey),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Channel.Close()
}
