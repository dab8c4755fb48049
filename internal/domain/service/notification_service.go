package service

import "context"

// NotificationService sends push notifications to buyers. Buyers subscribe
// client-side to their own order topic; the worker publishes to it on every
// lifecycle event.
type NotificationService interface {
	// SendOrderUpdate pushes a title/body pair to the buyer's order topic.
	SendOrderUpdate(ctx context.Context, buyerUID, title, body string, data map[string]string) error
}
