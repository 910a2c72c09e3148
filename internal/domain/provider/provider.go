package provider

import (
	"context"
	"time"
)

// CheckoutProvider is the capability the payment gateway exposes to this
// service: opening a hosted checkout session and authenticating webhook
// callbacks. Tests substitute a fake; nothing above this interface touches
// the gateway SDK.
type CheckoutProvider interface {
	// CreateCheckoutSession opens a hosted session for amountMinor in the
	// smallest currency unit (cents for usd).
	CreateCheckoutSession(ctx context.Context, req *CreateSessionRequest) (*CheckoutSession, error)

	// VerifyWebhook checks the signature header against the raw payload and
	// returns the decoded event. It must be called before any payload field
	// is trusted.
	VerifyWebhook(payload []byte, signatureHeader string) (*WebhookEvent, error)
}

// CreateSessionRequest describes a hosted checkout session to open.
type CreateSessionRequest struct {
	AmountMinor int64
	Currency    string
	Reference   string // internal reference attached to the session
}

// CheckoutSession is the gateway's handle for a hosted session.
type CheckoutSession struct {
	SessionID       string
	PaymentIntentID string
	URL             string
}

// EventTypeCheckoutCompleted is the only event type that mutates state.
const EventTypeCheckoutCompleted = "checkout.session.completed"

// WebhookEvent is a signature-verified gateway notification.
type WebhookEvent struct {
	EventID         string
	EventType       string
	SessionID       string
	PaymentIntentID string
	Raw             map[string]interface{}
	CreatedAt       time.Time
}

// ProviderError carries the gateway's failure message across the boundary.
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *ProviderError) Error() string {
	if e.Code != "" {
		return e.Code + ": " + e.Message
	}
	return e.Message
}
