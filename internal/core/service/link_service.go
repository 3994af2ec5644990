package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nutrilink/nutrition-system/internal/api/metrics"
	"github.com/nutrilink/nutrition-system/internal/core/domain"
	"github.com/nutrilink/nutrition-system/internal/core/ports"
)

// LinkService implements the client-nutritionist link use cases.
//
// Role checks happen at the route level (RBAC middleware); this service is
// responsible for ownership: a correct role alone never authorises a
// mutation on a link the caller is not a party to.
type LinkService struct {
	links  ports.LinkRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewLinkService(links ports.LinkRepository, users ports.UserRepository, logger zerolog.Logger) *LinkService {
	return &LinkService{links: links, users: users, logger: logger}
}

// RequestLink creates a pending link from a client to a nutritionist.
// An identity that is absent or not a nutritionist yields the same not-found
// error so the request path leaks no role information. The pre-insert pair
// check returns a fast conflict; the repository's unique index closes the
// race between check and insert.
func (s *LinkService) RequestLink(ctx context.Context, input ports.RequestLinkInput) (*ports.LinkResult, error) {
	target, err := s.users.FindByID(ctx, input.NutritionistID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNutritionistNotFound
		}
		return nil, err
	}
	if target.Role != domain.RoleNutritionist {
		return nil, domain.ErrNutritionistNotFound
	}

	_, err = s.links.FindByPair(ctx, input.ClientID, input.NutritionistID, domain.LinkPending, domain.LinkAccepted)
	if err == nil {
		return nil, domain.ErrDuplicateLink
	}
	if !errors.Is(err, domain.ErrLinkNotFound) {
		return nil, err
	}

	link := domain.NewLinkRequest(uuid.NewString(), input.ClientID, input.NutritionistID, time.Now().UTC())
	if err := s.links.Save(ctx, &link); err != nil {
		s.logger.Error().Err(err).Str("client_id", input.ClientID).Msg("failed to save link request")
		return nil, err
	}

	metrics.LinksRequestedTotal.Inc()
	s.logger.Info().
		Str("link_id", link.ID).
		Str("client_id", link.ClientID).
		Str("nutritionist_id", link.NutritionistID).
		Msg("link requested")

	return toLinkResult(link), nil
}

// AcceptLink transitions a pending link to accepted. Only the addressed
// nutritionist may respond.
func (s *LinkService) AcceptLink(ctx context.Context, input ports.LinkDecisionInput) (*ports.LinkResult, error) {
	return s.respond(ctx, input, domain.Link.Accept, "accepted")
}

// RejectLink transitions a pending link to rejected. Only the addressed
// nutritionist may respond.
func (s *LinkService) RejectLink(ctx context.Context, input ports.LinkDecisionInput) (*ports.LinkResult, error) {
	return s.respond(ctx, input, domain.Link.Reject, "rejected")
}

func (s *LinkService) respond(
	ctx context.Context,
	input ports.LinkDecisionInput,
	transition func(domain.Link, time.Time) (domain.Link, error),
	decision string,
) (*ports.LinkResult, error) {
	link, err := s.links.FindByID(ctx, input.LinkID)
	if err != nil {
		return nil, err
	}
	if link.NutritionistID != input.CallerID {
		return nil, domain.ErrForbidden
	}

	previous := link.Status
	updated, err := transition(*link, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.links.Update(ctx, &updated, previous); err != nil {
		return nil, err
	}

	metrics.LinkDecisionsTotal.WithLabelValues(decision).Inc()
	s.logger.Info().
		Str("link_id", updated.ID).
		Str("decision", decision).
		Msg("link responded")

	return toLinkResult(updated), nil
}

// EndLink transitions an accepted link to ended. Either party may end it;
// nobody may delete it.
func (s *LinkService) EndLink(ctx context.Context, input ports.LinkDecisionInput) (*ports.LinkResult, error) {
	link, err := s.links.FindByID(ctx, input.LinkID)
	if err != nil {
		return nil, err
	}
	if !link.IsParty(input.CallerID) {
		return nil, domain.ErrForbidden
	}

	previous := link.Status
	updated, err := link.End(time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.links.Update(ctx, &updated, previous); err != nil {
		return nil, err
	}

	metrics.LinkDecisionsTotal.WithLabelValues("ended").Inc()
	s.logger.Info().
		Str("link_id", updated.ID).
		Str("ended_by", input.CallerID).
		Msg("link ended")

	return toLinkResult(updated), nil
}

// ListClients returns the nutritionist's accepted clients with their display
// attributes. Identities that can no longer be resolved are skipped rather
// than failing the whole listing.
func (s *LinkService) ListClients(ctx context.Context, nutritionistID string) ([]ports.LinkedClient, error) {
	links, err := s.links.FindActiveByNutritionistID(ctx, nutritionistID)
	if err != nil {
		return nil, err
	}

	clients := make([]ports.LinkedClient, 0, len(links))
	for _, link := range links {
		user, err := s.users.FindByID(ctx, link.ClientID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				s.logger.Warn().
					Str("link_id", link.ID).
					Str("client_id", link.ClientID).
					Msg("linked client identity missing, skipping")
				continue
			}
			return nil, err
		}

		linkedAt := link.RequestedAt
		if link.RespondedAt != nil {
			linkedAt = *link.RespondedAt
		}
		clients = append(clients, ports.LinkedClient{
			UserID:   user.ID,
			Name:     user.Name,
			Email:    user.Email,
			LinkedAt: linkedAt,
		})
	}
	return clients, nil
}

// ListPendingRequests returns the client's outstanding link requests.
func (s *LinkService) ListPendingRequests(ctx context.Context, clientID string) ([]ports.LinkResult, error) {
	links, err := s.links.FindPendingByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	results := make([]ports.LinkResult, 0, len(links))
	for _, link := range links {
		results = append(results, *toLinkResult(*link))
	}
	return results, nil
}

// SearchNutritionist resolves an identity by email, returning it only when
// the role matches. "Absent" and "wrong role" are deliberately conflated.
func (s *LinkService) SearchNutritionist(ctx context.Context, email string) (*ports.Counterpart, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrNutritionistNotFound
		}
		return nil, err
	}
	if user.Role != domain.RoleNutritionist {
		return nil, domain.ErrNutritionistNotFound
	}

	return &ports.Counterpart{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func toLinkResult(link domain.Link) *ports.LinkResult {
	return &ports.LinkResult{
		ID:             link.ID,
		ClientID:       link.ClientID,
		NutritionistID: link.NutritionistID,
		Status:         string(link.Status),
		RequestedAt:    link.RequestedAt,
		RespondedAt:    link.RespondedAt,
		EndedAt:        link.EndedAt,
	}
}
