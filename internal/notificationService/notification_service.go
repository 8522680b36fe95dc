package notification

import (
	"fmt"
	"time"

	"auction-spot/internal/auctionerrors"
	"auction-spot/internal/auth"
	"auction-spot/internal/models"
	"auction-spot/internal/repository"
	"auction-spot/utils"
)

// New builds an unread notification with a fresh ID
func New(userID string, typ models.NotificationType, title, message string, payload map[string]any) models.Notification {
	return models.Notification{
		NotificationID: utils.NewID(utils.PrefixNotification),
		UserID:         userID,
		Type:           typ,
		Title:          title,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
		Payload:        payload,
	}
}

// CreateInput holds optional fields of an admin notification
type CreateInput struct {
	UserID  string
	Type    models.NotificationType
	Title   string
	Message string
}

// NotificationService manages user notifications
type NotificationService struct {
	repo repository.NotificationDB
}

// NewNotificationService creates a new NotificationService instance
func NewNotificationService(repo repository.NotificationDB) *NotificationService {
	return &NotificationService{repo: repo}
}

// List returns the notifications visible to the principal, newest first
func (s *NotificationService) List(principal auth.Principal) ([]models.Notification, error) {
	all, err := s.repo.ListNotifications()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list notifications: %w", err)
	}

	visible := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.VisibleTo(principal.UserID) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// Create stores an admin-authored notification, filling defaults for empty fields
func (s *NotificationService) Create(principal auth.Principal, in CreateInput) (models.Notification, error) {
	if err := principal.RequireAdmin(); err != nil {
		return models.Notification{}, fmt.Errorf("service: create notification: %w", err)
	}

	if in.UserID == "" {
		in.UserID = models.BroadcastUserID
	}
	if in.Type == "" {
		in.Type = models.NotificationInfo
	}
	if in.Title == "" {
		in.Title = "Update"
	}
	if in.Message == "" {
		in.Message = "New notification"
	}

	n := New(in.UserID, in.Type, in.Title, in.Message, nil)
	if err := s.repo.AddNotification(n); err != nil {
		return models.Notification{}, fmt.Errorf("service: failed to store notification: %w", err)
	}
	return n, nil
}

// MarkRead flags a notification as read. Only its addressee or an admin may do so.
func (s *NotificationService) MarkRead(principal auth.Principal, notificationID string) (models.Notification, error) {
	if notificationID == "" {
		return models.Notification{}, fmt.Errorf("service: %w - empty notification ID", auctionerrors.ErrInvalidInput)
	}

	n, err := s.repo.GetNotification(notificationID)
	if err != nil {
		return models.Notification{}, fmt.Errorf("service: failed to get notification %s: %w", notificationID, err)
	}
	if !principal.IsAdmin() && !n.VisibleTo(principal.UserID) {
		return models.Notification{}, fmt.Errorf("service: %w - notification %s belongs to another user", auctionerrors.ErrForbidden, notificationID)
	}

	n, err = s.repo.MarkNotificationRead(notificationID)
	if err != nil {
		return models.Notification{}, fmt.Errorf("service: failed to mark notification %s read: %w", notificationID, err)
	}
	return n, nil
}
