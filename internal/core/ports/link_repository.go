package ports

import (
	"context"

	"github.com/nutrilink/nutrition-system/internal/core/domain"
)

// LinkRepository defines persistence operations for client-nutritionist links.
//
// Save must enforce the "at most one pending/accepted link per pair"
// invariant at the storage boundary (unique index or equivalent) and return
// domain.ErrDuplicateLink on violation, so concurrent requesters cannot slip
// through the pre-insert existence check.
type LinkRepository interface {
	Save(ctx context.Context, link *domain.Link) error
	FindByID(ctx context.Context, id string) (*domain.Link, error)
	// FindByPair retrieves the link for (clientID, nutritionistID) whose
	// status is in statuses. An empty statuses list matches any status.
	// Returns domain.ErrLinkNotFound when no link matches.
	FindByPair(ctx context.Context, clientID, nutritionistID string, statuses ...domain.LinkStatus) (*domain.Link, error)
	FindPendingByClientID(ctx context.Context, clientID string) ([]*domain.Link, error)
	// FindActiveByNutritionistID returns the accepted links for a
	// nutritionist. Order is repository-defined; the Mongo implementation
	// sorts by responded_at ascending.
	FindActiveByNutritionistID(ctx context.Context, nutritionistID string) ([]*domain.Link, error)
	// Update persists a transition. It must guard against concurrent or
	// terminal overwrites (compare-and-swap on the previous status) and
	// return domain.ErrLinkModified when the guard fails.
	Update(ctx context.Context, link *domain.Link, previous domain.LinkStatus) error
}
