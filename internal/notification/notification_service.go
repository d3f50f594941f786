package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"quickybite-service/internal/cache"
	"quickybite-service/internal/events"
	"quickybite-service/internal/user"
)

// Custom errors
var (
	ErrRecipientNotFound    = errors.New("user not found, only registered users can receive notifications")
	ErrSelfShare            = errors.New("cannot share with yourself")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotRecipient         = errors.New("not authorized for this notification")
)

const defaultShareMessage = "Shared QuickyBite with you!"

type Service interface {
	Share(ctx context.Context, senderID string, req *ShareRequest) (*Notification, error)
	List(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id, userID string) (*Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id, userID string) error
	DeleteAll(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationService struct {
	repo      Repository
	users     user.Repository
	counters  *cache.Counters
	publisher events.Publisher
}

func NewService(repo Repository, users user.Repository, counters *cache.Counters, publisher events.Publisher) Service {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &notificationService{
		repo:      repo,
		users:     users,
		counters:  counters,
		publisher: publisher,
	}
}

// Share resolves the recipient by email and stores a message stamped with
// a snapshot of the sender's current name and email. Non-members are
// never notified.
func (s *notificationService) Share(ctx context.Context, senderID string, req *ShareRequest) (*Notification, error) {
	recipient, err := s.users.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		return nil, ErrRecipientNotFound
	}
	if recipient.ID == senderID {
		return nil, ErrSelfShare
	}

	sender, err := s.users.FindByID(ctx, senderID)
	if err != nil {
		return nil, ErrRecipientNotFound
	}

	message := req.Message
	if message == "" {
		message = defaultShareMessage
	}

	n := &Notification{
		RecipientID: recipient.ID,
		SenderID:    sender.ID,
		SenderName:  sender.Name,
		SenderEmail: sender.Email,
		Type:        TypeShare,
		Message:     fmt.Sprintf("From: %s (%s)\n\n%s", sender.Name, sender.Email, message),
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	s.counters.Invalidate(ctx, cache.UnreadNotificationsKey(recipient.ID))
	if err := s.publisher.Publish(ctx, events.Event{
		Type:      events.TypeShare,
		ActorID:   sender.ID,
		SubjectID: recipient.ID,
	}); err != nil {
		slog.Warn("failed to publish share event", "error", err)
	}

	return n, nil
}

func (s *notificationService) List(ctx context.Context, userID string) ([]Notification, error) {
	return s.repo.ListForRecipient(ctx, userID)
}

// MarkRead sets read=true. Existence and ownership are reported
// separately here: the recipient check guards a record that does exist.
// Re-marking a read notification is a no-op.
func (s *notificationService) MarkRead(ctx context.Context, id, userID string) (*Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrNotificationNotFound
	}
	if n.RecipientID != userID {
		return nil, ErrNotRecipient
	}

	if !n.Read {
		n.Read = true
		if err := s.repo.Save(ctx, n); err != nil {
			return nil, err
		}
		s.counters.Invalidate(ctx, cache.UnreadNotificationsKey(userID))
	}
	return n, nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllReadFor(ctx, userID); err != nil {
		return err
	}
	s.counters.Invalidate(ctx, cache.UnreadNotificationsKey(userID))
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id, userID string) error {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ErrNotificationNotFound
	}
	if n.RecipientID != userID {
		return ErrNotRecipient
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.counters.Invalidate(ctx, cache.UnreadNotificationsKey(userID))
	return nil
}

func (s *notificationService) DeleteAll(ctx context.Context, userID string) error {
	if err := s.repo.DeleteAllFor(ctx, userID); err != nil {
		return err
	}
	s.counters.Invalidate(ctx, cache.UnreadNotificationsKey(userID))
	return nil
}

func (s *notificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	key := cache.UnreadNotificationsKey(userID)
	if v, ok := s.counters.Get(ctx, key); ok {
		return v, nil
	}
	count, err := s.repo.CountUnreadFor(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.counters.Set(ctx, key, count)
	return count, nil
}
