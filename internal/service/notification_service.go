package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/BeldiMariem/ToDo-List-App/internal/apperr"
	dom "github.com/BeldiMariem/ToDo-List-App/internal/domain"
	"github.com/BeldiMariem/ToDo-List-App/internal/repo"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const notificationChannelPrefix = "notifications:"

// Notifier delivers one message to one recipient. Implementations are
// fire-and-forget: the caller has already committed its mutation and
// must not fail because delivery did.
type Notifier interface {
	Send(ctx context.Context, userID int64, message string)
}

// NotificationService persists notifications and pushes them over the
// recipient's Redis channel. The persisted row is the durability
// boundary; the publish is best-effort.
type NotificationService struct {
	repo repo.NotificationRepo
	rdb  *redis.Client
}

// NewNotificationService creates a NotificationService. If rdb is nil,
// the push step is skipped and only the row is written.
func NewNotificationService(r repo.NotificationRepo, rdb *redis.Client) *NotificationService {
	return &NotificationService{repo: r, rdb: rdb}
}

// Send persists a Notification(seen=false) for the user and publishes
// the message on the user's channel. Failures are logged, never
// propagated: the triggering mutation has already committed.
func (s *NotificationService) Send(ctx context.Context, userID int64, message string) {
	if _, err := s.repo.Create(ctx, userID, message); err != nil {
		log.WithError(err).WithField("user_id", userID).Error("persist notification")
		return
	}
	if s.rdb == nil {
		return
	}
	channel := notificationChannelPrefix + strconv.FormatInt(userID, 10)
	if err := s.rdb.Publish(ctx, channel, message).Err(); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("push notification")
	}
}

// GetUserNotifications returns the user's notifications, newest first.
func (s *NotificationService) GetUserNotifications(ctx context.Context, userID int64) ([]dom.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

// MarkAsRead sets seen=true on the notification.
func (s *NotificationService) MarkAsRead(ctx context.Context, id int64) error {
	err := s.repo.MarkSeen(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Notification", "id", id)
	}
	return err
}
