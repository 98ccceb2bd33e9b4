package public

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	publicdomain "github.com/mashatel/directory-services/api/internal/public/domain"
)

func (h *Handler) notifyContactReceipt(ctx context.Context, message publicdomain.ContactMessage) {
	if ctx == nil {
		ctx = context.Background()
	}

	dest := strings.TrimSpace(h.messengerDestination)
	if dest == "" || strings.TrimSpace(h.messengerEndpoint) == "" {
		return
	}

	body := buildContactNotification(h.adminContactBaseURL, message)
	err := h.sendMessengerWithRetry(ctx, dest, message.Reference, body, 3, 200*time.Millisecond)
	if err == nil {
		return
	}
	h.logger.Error("contact notification failed", "reference", message.Reference, "error", err)
	h.persistNotificationFailure(ctx, message, err, 3)
}

func buildContactNotification(adminBaseURL string, message publicdomain.ContactMessage) string {
	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("رسالة جديدة من %s\n", message.Name))
	if subject := strings.TrimSpace(message.Subject); subject != "" {
		builder.WriteString(fmt.Sprintf("الموضوع: %s\n", subject))
	}
	if message.Phone != "" {
		builder.WriteString(fmt.Sprintf("الهاتف: %s\n", message.Phone))
	}
	if message.Email != "" {
		builder.WriteString(fmt.Sprintf("البريد: %s\n", message.Email))
	}
	builder.WriteString(message.Body)
	builder.WriteString("\n")
	if message.ID != "" && strings.TrimSpace(adminBaseURL) != "" {
		builder.WriteString(fmt.Sprintf("%s/%s\n", strings.TrimRight(adminBaseURL, "/"), message.ID))
	}
	return builder.String()
}

func (h *Handler) sendMessengerWithRetry(ctx context.Context, destination, identifier, text string, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := h.sendMessengerMessage(ctx, destination, identifier, text); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
	return lastErr
}

func (h *Handler) persistNotificationFailure(ctx context.Context, message publicdomain.ContactMessage, cause error, attempts int) {
	if h.failedNotifications == nil || cause == nil {
		return
	}
	doc := bson.M{
		"target": "admin_notification",
		"payload": bson.M{
			"contactId": message.ID,
			"reference": message.Reference,
			"name":      message.Name,
			"subject":   message.Subject,
		},
		"error":       cause.Error(),
		"attempts":    attempts,
		"status":      "pending",
		"createdAt":   time.Now().UTC(),
		"lastTriedAt": time.Now().UTC(),
	}
	if _, err := h.failedNotifications.InsertOne(ctx, doc); err != nil {
		h.logger.Error("failed notification record not saved", "error", err)
	}
}

func (h *Handler) sendMessengerMessage(ctx context.Context, destination, identifier, bodyText string) error {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return errors.New("identifier is required")
	}

	payload := map[string]any{
		"userId": trimmed,
		"text":   bodyText,
	}
	if dest := strings.TrimSpace(destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("building messenger payload: %w", err)
	}

	timeout := h.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := strings.TrimRight(h.messengerEndpoint, "/") + "/messages"
	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building messenger request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending messenger request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("messenger responded with status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}

	return nil
}
