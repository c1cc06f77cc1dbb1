package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/candles/rsvp-system/internal/core/domain"
	"github.com/candles/rsvp-system/internal/core/ports"
)

type stubInviteRepo struct {
	invites       map[string]*domain.Invite
	alwaysExist   bool
	creates       int
	applied       map[string]domain.RSVP
	findErr       error
	applyFailures int
}

func newStubInviteRepo() *stubInviteRepo {
	return &stubInviteRepo{
		invites: make(map[string]*domain.Invite),
		applied: make(map[string]domain.RSVP),
	}
}

func (r *stubInviteRepo) FindByID(_ context.Context, inviteID string) (*domain.Invite, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.alwaysExist {
		return &domain.Invite{ID: inviteID}, nil
	}
	inv, ok := r.invites[inviteID]
	if !ok {
		return nil, domain.ErrInviteNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *stubInviteRepo) ListByEvent(_ context.Context, eventID string) ([]domain.Invite, error) {
	out := []domain.Invite{}
	for _, inv := range r.invites {
		if inv.EventID == eventID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *stubInviteRepo) Create(_ context.Context, invite *domain.Invite) error {
	r.creates++
	clone := *invite
	r.invites[invite.ID] = &clone
	return nil
}

func (r *stubInviteRepo) ApplyRSVP(_ context.Context, inviteID string, rsvp domain.RSVP) error {
	if r.applyFailures > 0 {
		r.applyFailures--
		return errors.New("store unavailable")
	}
	inv, ok := r.invites[inviteID]
	if !ok {
		return domain.ErrInviteNotFound
	}
	inv.Name = rsvp.Name
	inv.Allergy = rsvp.Allergy
	inv.Allergies = rsvp.Allergies
	inv.Remarks = rsvp.Remarks
	inv.Status = domain.InviteStatusAccepted
	inv.AcceptedAtMs = rsvp.AcceptedAtMs
	r.applied[inviteID] = rsvp
	return nil
}

type stubEventRepo struct {
	events map[string]*domain.Event
}

func (r *stubEventRepo) FindByID(_ context.Context, eventID string) (*domain.Event, error) {
	ev, ok := r.events[eventID]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return ev, nil
}

type stubGuard struct {
	dup    bool
	err    error
	marked []string
}

func (g *stubGuard) IsDuplicate(_ context.Context, inviteID string) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	for _, id := range g.marked {
		if id == inviteID {
			return true, nil
		}
	}
	return g.dup, nil
}

func (g *stubGuard) Mark(_ context.Context, inviteID string) error {
	g.marked = append(g.marked, inviteID)
	return nil
}

func newInviteFixture() (*InviteService, *stubInviteRepo, *stubEventRepo, *stubGuard) {
	invites := newStubInviteRepo()
	events := &stubEventRepo{events: map[string]*domain.Event{
		"event-1": {ID: "event-1", Domain: "jayden", Title: "Housewarming"},
	}}
	guard := &stubGuard{}
	svc := NewInviteService(invites, events, guard, zerolog.Nop())
	return svc, invites, events, guard
}

func TestInviteService_AllocateCode(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()

	code, err := svc.AllocateCode(context.Background(), "event-1")
	if err != nil {
		t.Fatalf("allocate failed: %v", err)
	}
	if !domain.ValidInviteCode(code) {
		t.Fatalf("allocated code %q is not 6 lowercase hex chars", code)
	}

	inv, ok := invites.invites[code]
	if !ok {
		t.Fatalf("no invite record inserted for %q", code)
	}
	if inv.EventID != "event-1" {
		t.Fatalf("invite bound to event %q, want event-1", inv.EventID)
	}
	if inv.Status != domain.InviteStatusPending {
		t.Fatalf("fresh invite status = %d, want pending", inv.Status)
	}
	if inv.Name != "" || inv.AcceptedAtMs != 0 {
		t.Fatalf("fresh invite carries RSVP fields: %+v", inv)
	}
}

func TestInviteService_AllocateCode_CollisionCeiling(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()
	invites.alwaysExist = true // every candidate collides

	if _, err := svc.AllocateCode(context.Background(), "event-1"); !errors.Is(err, domain.ErrCodeSpaceExhausted) {
		t.Fatalf("expected ErrCodeSpaceExhausted, got %v", err)
	}
	if invites.creates != 0 {
		t.Fatalf("insert performed despite exhausted code space (%d creates)", invites.creates)
	}
}

func TestInviteService_AllocateCode_StoreFailure(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()
	invites.findErr = errors.New("store unavailable")

	if _, err := svc.AllocateCode(context.Background(), "event-1"); err == nil {
		t.Fatalf("expected error on collision-check failure")
	}
	if invites.creates != 0 {
		t.Fatalf("insert performed despite store failure")
	}
}

func TestInviteService_SubmitRSVP(t *testing.T) {
	svc, invites, _, guard := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}

	allergies := "peanuts"
	before := time.Now().UTC().UnixMilli()
	err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{
		Name:      "Sam",
		Allergies: &allergies,
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	inv := invites.invites["abc123"]
	if inv.Status != domain.InviteStatusAccepted {
		t.Fatalf("status = %d, want accepted", inv.Status)
	}
	if inv.Name != "Sam" || !inv.Allergy || inv.Allergies != "peanuts" {
		t.Fatalf("rsvp fields not applied: %+v", inv)
	}
	if inv.AcceptedAtMs < before {
		t.Fatalf("accepted timestamp %d predates submission", inv.AcceptedAtMs)
	}
	if len(guard.marked) != 1 || guard.marked[0] != "abc123" {
		t.Fatalf("guard not marked: %v", guard.marked)
	}
}

func TestInviteService_SubmitRSVP_NoAllergies(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}

	if err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if invites.invites["abc123"].Allergy {
		t.Fatalf("allergy flag set without allergies supplied")
	}
}

func TestInviteService_SubmitRSVP_AlreadyAccepted(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{
		ID:      "abc123",
		EventID: "event-1",
		Status:  domain.InviteStatusAccepted,
	}

	err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"})
	if !errors.Is(err, domain.ErrInviteAlreadyAccepted) {
		t.Fatalf("expected ErrInviteAlreadyAccepted, got %v", err)
	}
}

func TestInviteService_SubmitRSVP_GuardDuplicate(t *testing.T) {
	svc, invites, _, guard := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}
	guard.dup = true

	err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"})
	if !errors.Is(err, domain.ErrInviteAlreadyAccepted) {
		t.Fatalf("expected ErrInviteAlreadyAccepted from guard, got %v", err)
	}
}

func TestInviteService_SubmitRSVP_GuardFailureDegrades(t *testing.T) {
	svc, invites, _, guard := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}
	guard.err = errors.New("redis down")

	if err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"}); err != nil {
		t.Fatalf("guard failure blocked submission: %v", err)
	}
}

func TestInviteService_SubmitRSVP_RetryAfterStoreFailure(t *testing.T) {
	svc, invites, _, guard := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}
	invites.applyFailures = 1

	if err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"}); err == nil {
		t.Fatalf("expected error from failed store write")
	}
	if len(guard.marked) != 0 {
		t.Fatalf("guard marked despite failed store write: %v", guard.marked)
	}
	if invites.invites["abc123"].Status != domain.InviteStatusPending {
		t.Fatalf("invite no longer pending after failed write")
	}

	// the store recovered; the guest's retry must go through
	if err := svc.SubmitRSVP(context.Background(), "abc123", ports.RSVPInput{Name: "Sam"}); err != nil {
		t.Fatalf("retry after transient store failure rejected: %v", err)
	}
	if invites.invites["abc123"].Status != domain.InviteStatusAccepted {
		t.Fatalf("retry did not apply the rsvp")
	}
	if len(guard.marked) != 1 || guard.marked[0] != "abc123" {
		t.Fatalf("guard not marked after successful retry: %v", guard.marked)
	}
}

func TestInviteService_SubmitRSVP_UnknownInvite(t *testing.T) {
	svc, _, _, _ := newInviteFixture()

	err := svc.SubmitRSVP(context.Background(), "ffffff", ports.RSVPInput{Name: "Sam"})
	if !errors.Is(err, domain.ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound, got %v", err)
	}
}

func TestInviteService_InviteDetails(t *testing.T) {
	svc, invites, _, _ := newInviteFixture()
	invites.invites["abc123"] = &domain.Invite{ID: "abc123", EventID: "event-1"}

	inv, ev, err := svc.InviteDetails(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("details failed: %v", err)
	}
	if inv.ID != "abc123" {
		t.Fatalf("unexpected invite: %+v", inv)
	}
	if ev.ID != "event-1" || ev.Title != "Housewarming" {
		t.Fatalf("unexpected event: %+v", ev)
	}
}

func TestInviteService_InviteDetails_UnknownInvite(t *testing.T) {
	svc, _, _, _ := newInviteFixture()

	if _, _, err := svc.InviteDetails(context.Background(), "ffffff"); !errors.Is(err, domain.ErrInviteNotFound) {
		t.Fatalf("expected ErrInviteNotFound, got %v", err)
	}
}
