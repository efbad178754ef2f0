package payment

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrInvalidSignature = errors.New("invalid stripe webhook signature")

// Event is the subset of a Stripe webhook event the CRM acts on.
type Event struct {
	ID        string
	Type      stripe.EventType
	AccountID string
}

// AffectsVerification reports whether the event can change an account's verification state.
func (e *Event) AffectsVerification() bool {
	return e.Type == stripe.EventTypeAccountUpdated && e.AccountID != ""
}

type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Parse checks the Stripe-Signature header and decodes the event.
func (v *WebhookVerifier) Parse(payload []byte, signatureHeader string) (*Event, error) {
	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	out := &Event{ID: evt.ID, Type: evt.Type, AccountID: evt.Account}
	if evt.Type == stripe.EventTypeAccountUpdated && out.AccountID == "" && evt.Data != nil {
		var acct stripe.Account
		if err := json.Unmarshal(evt.Data.Raw, &acct); err != nil {
			return nil, fmt.Errorf("decoding account payload: %w", err)
		}
		out.AccountID = acct.ID
	}
	return out, nil
}
