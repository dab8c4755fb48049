package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"haven/config"
	"haven/internal/domain/service"
	mockSvc "haven/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushHandler(t *testing.T, notificationSvc service.NotificationService) *PushHandler {
	t.Helper()

	return NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.DiscardHandler),
		NotificationSvc: notificationSvc,
	})
}

func pushRequest(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func envelopeFor(t *testing.T, event *service.OrderEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":        base64.StdEncoding.EncodeToString(payload),
			"attributes":  map[string]string{"request_id": "req-1"},
			"messageId":   "m1",
			"publishTime": time.Now().UTC().Format(time.RFC3339),
		},
		"subscription": "projects/local/subscriptions/order-events-sub",
	}

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(raw)
}

func TestHandlePush_OrderCreatedNotifiesBuyer(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	event := &service.OrderEvent{
		EventID:    "evt-1",
		Type:       service.OrderEventCreated,
		OrderID:    "order-1234567890",
		BuyerID:    "buyer-1",
		ArtisanIDs: []string{"artisan-1"},
		Status:     "Packaging",
		OccurredAt: time.Now().UTC(),
	}

	mockNotifier.EXPECT().
		SendOrderUpdate(mock.Anything, "buyer-1", "Order placed", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	c, rec := pushRequest(t, envelopeFor(t, event))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StatusChangedBodyCarriesStatus(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	event := &service.OrderEvent{
		EventID: "evt-2",
		Type:    service.OrderEventStatusChanged,
		OrderID: "order-1",
		BuyerID: "buyer-1",
		Status:  "Shipped",
	}

	var gotBody string
	mockNotifier.EXPECT().
		SendOrderUpdate(mock.Anything, "buyer-1", "Order update", mock.AnythingOfType("string"), mock.Anything).
		Run(func(ctx context.Context, buyerUID string, title string, body string, data map[string]string) {
			gotBody = body
		}).
		Return(nil)

	c, rec := pushRequest(t, envelopeFor(t, event))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, gotBody, "Shipped")
}

func TestHandlePush_DeliveredGetsOwnTitle(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	event := &service.OrderEvent{
		EventID: "evt-3",
		Type:    service.OrderEventStatusChanged,
		OrderID: "order-1",
		BuyerID: "buyer-1",
		Status:  "Delivered",
	}

	mockNotifier.EXPECT().
		SendOrderUpdate(mock.Anything, "buyer-1", "Order delivered", mock.AnythingOfType("string"), mock.Anything).
		Return(nil)

	c, rec := pushRequest(t, envelopeFor(t, event))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_SendFailureNacksForRetry(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	event := &service.OrderEvent{
		EventID: "evt-4",
		Type:    service.OrderEventCreated,
		OrderID: "order-1",
		BuyerID: "buyer-1",
	}

	mockNotifier.EXPECT().
		SendOrderUpdate(mock.Anything, "buyer-1", mock.AnythingOfType("string"), mock.AnythingOfType("string"), mock.Anything).
		Return(assert.AnError)

	c, rec := pushRequest(t, envelopeFor(t, event))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedEventIsAcked(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	// Decodes fine but has no buyer: dropped without retry so Pub/Sub does
	// not loop on it forever.
	event := &service.OrderEvent{EventID: "evt-5", Type: service.OrderEventCreated}

	c, rec := pushRequest(t, envelopeFor(t, event))
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockNotifier.AssertNotCalled(t, "SendOrderUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_BadBase64IsAckedNotRetried(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	body := `{"message":{"data":"%%%not-base64%%%","messageId":"m1"},"subscription":"s"}`

	// A 2xx ACKs the message; anything else would make Pub/Sub redeliver a
	// payload that can never decode.
	c, rec := pushRequest(t, body)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockNotifier.AssertNotCalled(t, "SendOrderUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_BadJSONPayloadIsAckedNotRetried(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	data := base64.StdEncoding.EncodeToString([]byte("not json"))
	body := `{"message":{"data":"` + data + `","messageId":"m1"},"subscription":"s"}`

	c, rec := pushRequest(t, body)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockNotifier.AssertNotCalled(t, "SendOrderUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandlePush_UnbindableBodyIsAckedNotRetried(t *testing.T) {
	mockNotifier := mockSvc.NewMockNotificationService(t)
	h := newPushHandler(t, mockNotifier)

	c, rec := pushRequest(t, `{"message": [not even json`)
	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	mockNotifier.AssertNotCalled(t, "SendOrderUpdate",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
