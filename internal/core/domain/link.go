package domain

import (
	"errors"
	"time"
)

// LinkStatus represents the lifecycle state of a client-nutritionist link.
type LinkStatus string

const (
	LinkPending  LinkStatus = "pending"
	LinkAccepted LinkStatus = "accepted"
	LinkRejected LinkStatus = "rejected"
	LinkEnded    LinkStatus = "ended"
)

// linkTransitions defines the allowed state machine transitions.
// Rejected and ended are terminal.
var linkTransitions = map[LinkStatus][]LinkStatus{
	LinkPending:  {LinkAccepted, LinkRejected},
	LinkAccepted: {LinkEnded},
}

var ErrLinkNotFound = errors.New("link not found")
var ErrDuplicateLink = errors.New("an active link already exists for this pair")
var ErrInvalidTransition = errors.New("invalid link transition")
var ErrLinkModified = errors.New("link was modified concurrently")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s LinkStatus) CanTransitionTo(next LinkStatus) bool {
	for _, allowed := range linkTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Active reports whether the status blocks a new request for the same pair.
func (s LinkStatus) Active() bool {
	return s == LinkPending || s == LinkAccepted
}

// Link is one relationship instance between a client and a nutritionist.
// History is retained: links are never deleted, only transitioned.
type Link struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	ClientID       string     `json:"client_id" bson:"client_id"`
	NutritionistID string     `json:"nutritionist_id" bson:"nutritionist_id"`
	Status         LinkStatus `json:"status" bson:"status"`
	RequestedAt    time.Time  `json:"requested_at" bson:"requested_at"`
	RespondedAt    *time.Time `json:"responded_at,omitempty" bson:"responded_at,omitempty"`
	EndedAt        *time.Time `json:"ended_at,omitempty" bson:"ended_at,omitempty"`
}

// NewLinkRequest creates a pending link. This is the only way a link comes
// into existence; RespondedAt and EndedAt start absent.
func NewLinkRequest(id, clientID, nutritionistID string, now time.Time) Link {
	return Link{
		ID:             id,
		ClientID:       clientID,
		NutritionistID: nutritionistID,
		Status:         LinkPending,
		RequestedAt:    now,
	}
}

// Accept transitions a pending link to accepted, stamping RespondedAt.
// The receiver is not mutated; a new value is returned.
func (l Link) Accept(now time.Time) (Link, error) {
	return l.respond(LinkAccepted, now)
}

// Reject transitions a pending link to rejected, stamping RespondedAt.
func (l Link) Reject(now time.Time) (Link, error) {
	return l.respond(LinkRejected, now)
}

// End transitions an accepted link to ended, stamping EndedAt.
func (l Link) End(now time.Time) (Link, error) {
	if !l.Status.CanTransitionTo(LinkEnded) {
		return l, ErrInvalidTransition
	}
	l.Status = LinkEnded
	l.EndedAt = &now
	return l, nil
}

func (l Link) respond(next LinkStatus, now time.Time) (Link, error) {
	if !l.Status.CanTransitionTo(next) {
		return l, ErrInvalidTransition
	}
	l.Status = next
	l.RespondedAt = &now
	return l, nil
}

// IsParty reports whether userID is one of the two identities on the link.
func (l Link) IsParty(userID string) bool {
	return userID == l.ClientID || userID == l.NutritionistID
}
