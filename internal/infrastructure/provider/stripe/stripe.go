package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shoplite/shop-backend/internal/domain/provider"
	stripe "github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
	"go.uber.org/zap"
)

// Provider implements provider.CheckoutProvider against the Stripe API.
type Provider struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	logger        *zap.Logger
}

// NewProvider configures the Stripe SDK and returns the gateway adapter.
func NewProvider(secretKey, webhookSecret, successURL, cancelURL string, logger *zap.Logger) *Provider {
	stripe.Key = secretKey
	return &Provider{
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
		logger:        logger,
	}
}

// CreateCheckoutSession opens a hosted Checkout session in payment mode for a
// single ad-hoc line item priced at req.AmountMinor.
func (p *Provider) CreateCheckoutSession(ctx context.Context, req *provider.CreateSessionRequest) (*provider.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.AmountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Order payment"),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(p.successURL),
		CancelURL:         stripe.String(p.cancelURL),
		ClientReferenceID: stripe.String(req.Reference),
	}

	s, err := checkoutsession.New(params)
	if err != nil {
		p.logger.Error("Error creating checkout session", zap.Error(err))
		return nil, toProviderError(err)
	}

	intentID := ""
	if s.PaymentIntent != nil {
		intentID = s.PaymentIntent.ID
	}

	p.logger.Info("Checkout session created",
		zap.String("session_id", s.ID),
		zap.String("payment_intent_id", intentID))

	return &provider.CheckoutSession{
		SessionID:       s.ID,
		PaymentIntentID: intentID,
		URL:             s.URL,
	}, nil
}

// VerifyWebhook authenticates the raw payload against the Stripe-Signature
// header before decoding anything from it.
func (p *Provider) VerifyWebhook(payload []byte, signatureHeader string) (*provider.WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(
		payload,
		signatureHeader,
		p.webhookSecret,
		webhook.ConstructEventOptions{
			IgnoreAPIVersionMismatch: true,
		},
	)
	if err != nil {
		return nil, err
	}

	out := &provider.WebhookEvent{
		EventID:   event.ID,
		EventType: string(event.Type),
		CreatedAt: time.Unix(event.Created, 0),
	}

	if event.Data == nil {
		return out, nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(event.Data.Raw, &raw); err == nil {
		out.Raw = raw
	}

	if event.Type == stripe.EventTypeCheckoutSessionCompleted {
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			p.logger.Error("Error parsing checkout session", zap.Error(err))
			return nil, err
		}
		out.SessionID = session.ID
		if session.PaymentIntent != nil {
			out.PaymentIntentID = session.PaymentIntent.ID
		}
	}

	return out, nil
}

func toProviderError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		return &provider.ProviderError{
			Code:    string(stripeErr.Code),
			Message: stripeErr.Msg,
		}
	}
	return &provider.ProviderError{Message: err.Error()}
}
