package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/bhawani/internal/metrics"
	"github.com/example/bhawani/internal/models"
)

// ContactNotifier delivers a notification about a stored contact message.
type ContactNotifier interface {
	NotifyContact(ctx context.Context, msg models.ContactMessage) error
}

type channel struct {
	name     string
	notifier ContactNotifier
}

// Notifications fans a contact message out to every configured channel.
type Notifications struct {
	channels []channel
	log      *zap.Logger
}

// NewNotifications returns an empty fan-out; add channels with Add.
func NewNotifications(log *zap.Logger) *Notifications {
	return &Notifications{log: log}
}

// Add registers a channel under name.
func (n *Notifications) Add(name string, notifier ContactNotifier) *Notifications {
	n.channels = append(n.channels, channel{name: name, notifier: notifier})
	return n
}

// Len is the number of registered channels.
func (n *Notifications) Len() int {
	return len(n.channels)
}

// NotifyContact tries every channel and joins their failures.
func (n *Notifications) NotifyContact(ctx context.Context, msg models.ContactMessage) error {
	var errs []error
	for _, ch := range n.channels {
		if err := ch.notifier.NotifyContact(ctx, msg); err != nil {
			metrics.NotificationFailures.WithLabelValues(ch.name).Inc()
			n.log.Warn("contact notification failed",
				zap.String("channel", ch.name),
				zap.Int64("message_id", msg.ID),
				zap.Error(err))
			errs = append(errs, fmt.Errorf("%s: %w", ch.name, err))
		}
	}
	return errors.Join(errs...)
}
