package domain

import (
	"errors"
	"testing"
	"time"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		name string
		from LinkStatus
		to   LinkStatus
		want bool
	}{
		{"pending to accepted", LinkPending, LinkAccepted, true},
		{"pending to rejected", LinkPending, LinkRejected, true},
		{"pending to ended", LinkPending, LinkEnded, false},
		{"accepted to ended", LinkAccepted, LinkEnded, true},
		{"accepted to rejected", LinkAccepted, LinkRejected, false},
		{"accepted to pending", LinkAccepted, LinkPending, false},
		{"rejected is terminal", LinkRejected, LinkAccepted, false},
		{"ended is terminal", LinkEnded, LinkAccepted, false},
		{"ended cannot re-end", LinkEnded, LinkEnded, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestActive(t *testing.T) {
	if !LinkPending.Active() {
		t.Error("pending should block a new request")
	}
	if !LinkAccepted.Active() {
		t.Error("accepted should block a new request")
	}
	if LinkRejected.Active() {
		t.Error("rejected should not block a new request")
	}
	if LinkEnded.Active() {
		t.Error("ended should not block a new request")
	}
}

func TestNewLinkRequest(t *testing.T) {
	now := time.Now().UTC()
	link := NewLinkRequest("l1", "c1", "n1", now)

	if link.Status != LinkPending {
		t.Errorf("status = %s, want %s", link.Status, LinkPending)
	}
	if !link.RequestedAt.Equal(now) {
		t.Errorf("requestedAt = %v, want %v", link.RequestedAt, now)
	}
	if link.RespondedAt != nil {
		t.Error("respondedAt must be absent on a new request")
	}
	if link.EndedAt != nil {
		t.Error("endedAt must be absent on a new request")
	}
}

func TestAccept(t *testing.T) {
	requested := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	responded := requested.Add(2 * time.Hour)
	link := NewLinkRequest("l1", "c1", "n1", requested)

	accepted, err := link.Accept(responded)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != LinkAccepted {
		t.Errorf("status = %s, want %s", accepted.Status, LinkAccepted)
	}
	if accepted.RespondedAt == nil || !accepted.RespondedAt.Equal(responded) {
		t.Errorf("respondedAt = %v, want %v", accepted.RespondedAt, responded)
	}
	if accepted.EndedAt != nil {
		t.Error("endedAt must stay absent after accept")
	}

	// transitions return a new value, the receiver is untouched
	if link.Status != LinkPending || link.RespondedAt != nil {
		t.Error("accept mutated the original link")
	}
}

func TestRejectIsTerminal(t *testing.T) {
	now := time.Now().UTC()
	link := NewLinkRequest("l1", "c1", "n1", now)

	rejected, err := link.Reject(now)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != LinkRejected {
		t.Errorf("status = %s, want %s", rejected.Status, LinkRejected)
	}
	if rejected.RespondedAt == nil {
		t.Error("respondedAt must be set on reject")
	}

	if _, err := rejected.Accept(now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("accept after reject: err = %v, want ErrInvalidTransition", err)
	}
	if _, err := rejected.End(now); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("end after reject: err = %v, want ErrInvalidTransition", err)
	}
}

func TestEnd(t *testing.T) {
	now := time.Now().UTC()
	link := NewLinkRequest("l1", "c1", "n1", now)

	if _, err := link.End(now); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("end on pending: err = %v, want ErrInvalidTransition", err)
	}

	accepted, err := link.Accept(now)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}

	endedAt := now.Add(time.Hour)
	ended, err := accepted.End(endedAt)
	if err != nil {
		t.Fatalf("end: %v", err)
	}
	if ended.Status != LinkEnded {
		t.Errorf("status = %s, want %s", ended.Status, LinkEnded)
	}
	if ended.EndedAt == nil || !ended.EndedAt.Equal(endedAt) {
		t.Errorf("endedAt = %v, want %v", ended.EndedAt, endedAt)
	}
	if ended.RespondedAt == nil {
		t.Error("respondedAt from accept must be preserved after end")
	}

	if _, err := ended.End(endedAt); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double end: err = %v, want ErrInvalidTransition", err)
	}
}

func TestIsParty(t *testing.T) {
	link := NewLinkRequest("l1", "c1", "n1", time.Now().UTC())

	if !link.IsParty("c1") {
		t.Error("client must be a party")
	}
	if !link.IsParty("n1") {
		t.Error("nutritionist must be a party")
	}
	if link.IsParty("someone-else") {
		t.Error("a stranger must not be a party")
	}
}
