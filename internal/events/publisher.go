package events

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"securereport/internal/domain"
)

const StreamName = "report-events"

// RedisPublisher writes lifecycle events to a Redis stream. Downstream
// consumers (dashboards, notification fan-out) read the stream; this service
// only ever appends.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr string) (*RedisPublisher, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}
	return &RedisPublisher{client: client}, nil
}

func (p *RedisPublisher) Close() error { return p.client.Close() }

func (p *RedisPublisher) ReportCreated(ctx context.Context, r *domain.Report) {
	p.publish(ctx, TypeReportCreated, r.ID, ReportCreatedPayload{
		ReportID:        r.ID,
		AnonymousUserID: r.AnonymousUserID,
		Category:        r.Category,
		CreatedAt:       r.CreatedAt,
	})
}

func (p *RedisPublisher) ReportStatusUpdated(ctx context.Context, r *domain.Report, old domain.Status) {
	p.publish(ctx, TypeReportStatusUpdated, r.ID, ReportStatusUpdatedPayload{
		ReportID:  r.ID,
		OldStatus: old,
		NewStatus: r.Status,
		ChangedAt: r.UpdatedAt,
	})
}

func (p *RedisPublisher) publish(ctx context.Context, eventType, reportID string, payload any) {
	event, err := NewEvent(eventType, reportID, payload)
	if err != nil {
		log.Printf("events: build %s: %v", eventType, err)
		return
	}
	raw, err := event.ToJSON()
	if err != nil {
		log.Printf("events: encode %s: %v", eventType, err)
		return
	}
	err = p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamName,
		Values: map[string]interface{}{
			"event_id":   event.EventID,
			"event_type": event.EventType,
			"report_id":  event.ReportID,
			"payload":    string(raw),
			"timestamp":  event.Timestamp.Format(time.RFC3339),
		},
	}).Err()
	if err != nil {
		// Best-effort: a failed publish never fails the request.
		log.Printf("events: publish %s for %s: %v", eventType, reportID, err)
	}
}

// NoopPublisher drops events; wired when Redis is not configured.
type NoopPublisher struct{}

func (NoopPublisher) ReportCreated(context.Context, *domain.Report) {}

func (NoopPublisher) ReportStatusUpdated(context.Context, *domain.Report, domain.Status) {}
