package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
)

type ExchangePublisher struct {
	writer *kafka.Writer
	newID  func() string
}

func NewExchangePublisher(brokers []string, topic string) (*ExchangePublisher, error) {
	idGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	return &ExchangePublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		newID: idGenerator,
	}, nil
}

// PublishExchange keys events by user id so one user's events stay ordered.
func (p *ExchangePublisher) PublishExchange(ctx context.Context, event ExchangeEvent) error {
	if event.EventID == "" {
		event.EventID = p.newID()
	}

	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: msg,
		Time:  time.Now(),
	})
}

func (p *ExchangePublisher) Close() error {
	return p.writer.Close()
}
