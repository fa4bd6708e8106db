package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"roost/config"
	"roost/infras/kafka"
	"roost/shared/constant"
	"roost/shared/timezone"
)

const (
	TopicCustomers = "roost.customers"
	TopicHotels    = "roost.hotels"
	TopicBookings  = "roost.bookings"

	ActionCreated               = "created"
	ActionUpdated               = "updated"
	ActionDeleted               = "deleted"
	ActionGuestBookingCompleted = "guest_booking_completed"
)

// Envelope is the payload published for every entity lifecycle change.
type Envelope struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	ID         string `json:"id"`
	OccurredAt string `json:"occurred_at"`
}

// Publisher emits entity lifecycle events. Publishing is fire-and-forget:
// a broker failure is logged, never surfaced to the caller.
type Publisher interface {
	Publish(ctx context.Context, topic, entity, action, id string)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
}

func NewPublisher(client kafka.Client, cfg *config.Config) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, topic, entity, action, id string) {
	if !p.cfg.Kafka.Enable {
		return
	}

	message := kafka.Message{
		Key: id,
		Value: Envelope{
			Entity:     entity,
			Action:     action,
			ID:         id,
			OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
		},
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Str("entity", entity).Str("action", action).Msg("failed to publish event")
	}
}
