// Package payment wraps the Stripe APIs used to decide whether an organization
// can accept donations.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"givebase.app/crm/core/config"
)

const defaultHTTPTimeout = 10 * time.Second

// Provider answers account verification questions for Stripe Connect accounts.
type Provider struct {
	api *client.API
}

func NewProvider(cfg config.StripeConfig) *Provider {
	backendCfg := &stripe.BackendConfig{
		HTTPClient:        &http.Client{Timeout: defaultHTTPTimeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &slogLeveledLogger{},
	}
	if cfg.APIBaseURL != "" {
		backendCfg.URL = stripe.String(cfg.APIBaseURL)
	}

	return &Provider{
		api: client.New(cfg.SecretKey, &stripe.Backends{
			API:     stripe.GetBackendWithConfig(stripe.APIBackend, backendCfg),
			Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, backendCfg),
			Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, backendCfg),
		}),
	}
}

// IsAccountVerified reports whether the connected account is fully onboarded:
// details submitted with charges and payouts enabled.
func (p *Provider) IsAccountVerified(ctx context.Context, accountID string) (bool, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := p.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return false, fmt.Errorf("retrieving stripe account %s: %w", accountID, err)
	}
	return AccountVerified(acct), nil
}

func AccountVerified(acct *stripe.Account) bool {
	if acct == nil {
		return false
	}
	return acct.DetailsSubmitted && acct.ChargesEnabled && acct.PayoutsEnabled
}

// slogLeveledLogger routes stripe-go's internal logging into slog.
type slogLeveledLogger struct{}

func (l *slogLeveledLogger) Debugf(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Infof(format string, v ...any) {
	slog.Debug(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Warnf(format string, v ...any) {
	slog.Warn(fmt.Sprintf(format, v...), "component", "stripe")
}

func (l *slogLeveledLogger) Errorf(format string, v ...any) {
	slog.Error(fmt.Sprintf(format, v...), "component", "stripe")
}
