package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

type stubNotificationRepo struct {
	inserted  []*domain.Notification
	insertErr error
}

func (r *stubNotificationRepo) Insert(_ context.Context, n *domain.Notification) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	r.inserted = append(r.inserted, n)
	return nil
}

func (r *stubNotificationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range r.inserted {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(applicationID string, status domain.ApplicationStatus, ts time.Time) string {
	return applicationID + "|" + string(status) + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(applicationID, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, applicationID string, status domain.ApplicationStatus, ts time.Time) error {
	d.seen[d.key(applicationID, status, ts)] = true
	return nil
}

func sampleInput(ts time.Time) ports.NotificationInput {
	return ports.NotificationInput{
		UserID:        "u-1",
		ApplicationID: "app-1",
		JobID:         "job-1",
		Type:          domain.NotificationStatusChanged,
		Status:        domain.ApplicationReviewed,
		Timestamp:     ts,
	}
}

func TestNotificationService_Process(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput(time.Now().UTC())); err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 notification inserted, got %d", len(repo.inserted))
	}
	n := repo.inserted[0]
	if n.Type != domain.NotificationStatusChanged || !strings.Contains(n.Message, "reviewed") {
		t.Fatalf("unexpected notification: %+v", n)
	}
}

func TestNotificationService_Process_DuplicateSkipped(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	in := sampleInput(time.Now().UTC())
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("first process failed: %v", err)
	}
	if err := svc.Process(context.Background(), in); err != nil {
		t.Fatalf("duplicate process must not error: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("duplicate event must not insert again, got %d inserts", len(repo.inserted))
	}
}

func TestNotificationService_Process_DedupErrorIsNonFatal(t *testing.T) {
	repo := &stubNotificationRepo{}
	dedup := newStubDedup()
	dedup.checkErr = errors.New("redis down")
	svc := NewNotificationService(repo, dedup, zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput(time.Now().UTC())); err != nil {
		t.Fatalf("dedup failure must not block delivery: %v", err)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected notification delivered despite dedup error")
	}
}

func TestNotificationService_Process_InsertError(t *testing.T) {
	repo := &stubNotificationRepo{insertErr: errors.New("mongo down")}
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	if err := svc.Process(context.Background(), sampleInput(time.Now().UTC())); err == nil {
		t.Fatalf("expected error when insert fails")
	}
}

func TestNotificationService_ListForUser(t *testing.T) {
	repo := &stubNotificationRepo{}
	svc := NewNotificationService(repo, newStubDedup(), zerolog.Nop())

	first := sampleInput(time.Now().UTC())
	second := first
	second.UserID = "u-2"
	second.ApplicationID = "app-2"
	if err := svc.Process(context.Background(), first); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if err := svc.Process(context.Background(), second); err != nil {
		t.Fatalf("process failed: %v", err)
	}

	got, err := svc.ListForUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListForUser returned error: %v", err)
	}
	if len(got) != 1 || got[0].ApplicationID != "app-1" {
		t.Fatalf("unexpected notifications: %+v", got)
	}
}
