package notification

import (
	"context"
	"fmt"

	"haven/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates the FCM-backed notification service. Buyers
// subscribe client-side to their own order topic; the worker publishes to it.
func NewFirebaseService(ctx context.Context, app *firebase.App) (service.NotificationService, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendOrderUpdate pushes a title/body pair to the buyer's order topic.
func (s *firebaseService) SendOrderUpdate(ctx context.Context, buyerUID, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Topic: orderTopic(buyerUID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// orderTopic derives the per-buyer FCM topic name. Topic names allow only
// [a-zA-Z0-9-_.~%]; Firebase UIDs already fit that alphabet.
func orderTopic(buyerUID string) string {
	return "orders-" + buyerUID
}
