package services

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"ollacart_server/structs"
	"ollacart_server/structs/tables"

	"github.com/google/uuid"
)

// ConnectProvider abstracts the payment platform's connected-account API.
// The production deployment swaps in a real provider; this service ships
// with a simulated one.
type ConnectProvider interface {
	// CreateAccount provisions a connected account for the retailer and
	// returns its provider-side id.
	CreateAccount(ctx context.Context, retailer *tables.Retailer) (string, error)
	// OnboardingLink returns the URL the retailer visits to complete
	// onboarding for the given account.
	OnboardingLink(ctx context.Context, accountID string) (string, error)
}

// SimulatedConnectProvider issues deterministic account ids and onboarding
// links without calling out to any payment platform. Account state changes
// arrive through the webhook endpoint like they would in production.
type SimulatedConnectProvider struct {
	cfg *structs.Config
}

func NewSimulatedConnectProvider(cfg *structs.Config) *SimulatedConnectProvider {
	return &SimulatedConnectProvider{cfg: cfg}
}

func (p *SimulatedConnectProvider) CreateAccount(ctx context.Context, retailer *tables.Retailer) (string, error) {
	return fmt.Sprintf("acct_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:16]), nil
}

func (p *SimulatedConnectProvider) OnboardingLink(ctx context.Context, accountID string) (string, error) {
	if accountID == "" {
		return "", fmt.Errorf("onboarding link requires an account id")
	}

	return fmt.Sprintf("%s/%s?return_url=%s",
		p.cfg.Payments.ConnectBaseURL,
		accountID,
		url.QueryEscape(p.cfg.Server.FrontendURL),
	), nil
}
