package repository

import (
	"context"

	"github.com/diillson/aws-cost-report-go/internal/domain/entity"
)

// NotificationRepository publishes operator notifications to a topic.
type NotificationRepository interface {
	Publish(ctx context.Context, topic string, notification entity.Notification) error
}
