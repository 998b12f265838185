package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/chainsnap/internal/domain"
)

// DefaultDriftChannel is the pub/sub channel mismatches are published on.
const DefaultDriftChannel = "chainsnap:drift"

// DriftEvent is the message published for a comparison with discrepancies.
type DriftEvent struct {
	ReportID      string    `json:"report_id"`
	LeftID        string    `json:"left_id"`
	RightID       string    `json:"right_id"`
	Discrepancies int       `json:"discrepancies"`
	CreatedAt     time.Time `json:"created_at"`
}

// DriftPublisher publishes mismatch reports on a Redis channel.
type DriftPublisher struct {
	client  *redis.Client
	channel string
}

// NewDriftPublisher creates a new DriftPublisher. An empty channel means
// DefaultDriftChannel.
func NewDriftPublisher(client *redis.Client, channel string) *DriftPublisher {
	if channel == "" {
		channel = DefaultDriftChannel
	}
	return &DriftPublisher{client: client, channel: channel}
}

// Notify publishes a summary of report.
func (p *DriftPublisher) Notify(ctx context.Context, report *domain.ComparisonReport) error {
	payload, err := json.Marshal(DriftEvent{
		ReportID:      report.ID,
		LeftID:        report.LeftID,
		RightID:       report.RightID,
		Discrepancies: len(report.Discrepancies),
		CreatedAt:     report.CreatedAt,
	})
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish drift event: %w", err)
	}
	return nil
}
