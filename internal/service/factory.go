package service

import (
	"time"

	"givebase.app/crm/core/config"
	"givebase.app/crm/internal/store"
)

// Deps are the external collaborators services need beyond the database.
type Deps struct {
	Payments     PaymentVerifier
	Events       VisibilityPublisher
	Rechecks     RecheckEnqueuer
	Identity     IdentityProvider
	Tokens       TokenIssuer
	WorkOS       config.WorkOSConfig
	CheckTimeout time.Duration
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	deps     Deps
}

func NewServices(stores *store.Stores, txRunner TxRunner, deps Deps) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		deps:     deps,
	}
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations())
}

func (s *Services) Completeness() CompletenessService {
	return NewCompletenessService(
		s.stores.Organizations(),
		s.stores.Pages(),
		s.deps.Payments,
		NewSubscriptionChecker(s.stores.Subscriptions()),
		s.deps.Events,
		s.deps.CheckTimeout,
	)
}

func (s *Services) Publication() PublicationService {
	return NewPublicationService(s.Completeness(), s.txRunner)
}

func (s *Services) Campaigns() CampaignService {
	return NewCampaignService(s.txRunner)
}

func (s *Services) PaymentEvents() PaymentEventService {
	return NewPaymentEventService(s.stores.Organizations(), s.deps.Rechecks)
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.deps.Identity, s.stores.Staff(), s.deps.Tokens, s.deps.WorkOS)
}
