package ports

import (
	"context"
	"time"
)

// RequestLinkInput carries the parameters for a client requesting a link.
type RequestLinkInput struct {
	ClientID       string
	NutritionistID string
}

// LinkDecisionInput carries the parameters for accept/reject/end operations.
// CallerID is the authenticated identity; ownership is checked by the service.
type LinkDecisionInput struct {
	LinkID   string
	CallerID string
}

// LinkResult is the link record returned to the transport layer.
type LinkResult struct {
	ID             string
	ClientID       string
	NutritionistID string
	Status         string
	RequestedAt    time.Time
	RespondedAt    *time.Time
	EndedAt        *time.Time
}

// LinkedClient is the nutritionist's view of one accepted client.
// LinkedAt is RespondedAt when set, RequestedAt otherwise.
type LinkedClient struct {
	UserID   string
	Name     string
	Email    string
	LinkedAt time.Time
}

// Counterpart is the result of an email search, restricted to the expected role.
type Counterpart struct {
	ID    string
	Name  string
	Email string
}

// LinkService defines the use-case operations on client-nutritionist links.
type LinkService interface {
	RequestLink(ctx context.Context, input RequestLinkInput) (*LinkResult, error)
	AcceptLink(ctx context.Context, input LinkDecisionInput) (*LinkResult, error)
	RejectLink(ctx context.Context, input LinkDecisionInput) (*LinkResult, error)
	EndLink(ctx context.Context, input LinkDecisionInput) (*LinkResult, error)
	ListClients(ctx context.Context, nutritionistID string) ([]LinkedClient, error)
	ListPendingRequests(ctx context.Context, clientID string) ([]LinkResult, error)
	// SearchNutritionist resolves an identity by email and returns it only
	// when its role is nutritionist. Absent and wrong-role are deliberately
	// indistinguishable (both domain.ErrNutritionistNotFound).
	SearchNutritionist(ctx context.Context, email string) (*Counterpart, error)
}
