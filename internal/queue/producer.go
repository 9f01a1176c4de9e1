package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// SponsorEvent is one workflow state transition, published for the
// notification service to consume.
type SponsorEvent struct {
	Action         string
	SponsorID      int64
	FamilyMemberID int64
	RequestID      *int64
	LinkID         *int64
}

type Producer interface {
	Publish(ctx context.Context, event SponsorEvent) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, event SponsorEvent) error {
	fields := map[string]any{
		"action":           event.Action,
		"sponsor_id":       event.SponsorID,
		"family_member_id": event.FamilyMemberID,
	}

	if event.RequestID != nil {
		fields["request_id"] = *event.RequestID
	}
	if event.LinkID != nil {
		fields["link_id"] = *event.LinkID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publish sponsor event: %w", err)
	}

	p.logger.InfoContext(ctx, "published sponsor event", "action", event.Action, "sponsor_id", event.SponsorID, "family_member_id", event.FamilyMemberID)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
