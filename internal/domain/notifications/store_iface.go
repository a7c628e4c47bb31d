package notifications

import "context"

type StoreAPI interface {
	CreateNotification(ctx context.Context, n Notification) (bool, error)
	ListNotifications(ctx context.Context, filter Filter, limit, offset int) ([]Notification, error)
	CountNotifications(ctx context.Context, filter Filter) (int, error)
	MarkRead(ctx context.Context, notificationID string) (Notification, error)
}
