package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobboard-api/internal/core/domain"
	"github.com/jobdeck/jobboard-api/internal/core/ports"
)

type stubJobRepo struct {
	jobs map[string]*domain.Job
}

func newStubJobRepo(jobs ...*domain.Job) *stubJobRepo {
	r := &stubJobRepo{jobs: make(map[string]*domain.Job)}
	for _, j := range jobs {
		r.jobs[j.ID] = j
	}
	return r
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	created := *job
	created.ID = fmt.Sprintf("job-%d", len(r.jobs)+1)
	r.jobs[created.ID] = &created
	return &created, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	if j, ok := r.jobs[id]; ok {
		clone := *j
		return &clone, nil
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) Update(_ context.Context, job *domain.Job) (*domain.Job, error) {
	if _, ok := r.jobs[job.ID]; !ok {
		return nil, domain.ErrJobNotFound
	}
	clone := *job
	r.jobs[job.ID] = &clone
	return job, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrJobNotFound
	}
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) List(_ context.Context, _ ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		clone := *j
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

type stubApplicationRepo struct {
	apps map[string]*domain.Application
	next int
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[string]*domain.Application)}
}

func (r *stubApplicationRepo) Create(_ context.Context, app *domain.Application) (*domain.Application, error) {
	for _, existing := range r.apps {
		if existing.JobID == app.JobID && existing.UserID == app.UserID {
			return nil, domain.ErrDuplicateApplication
		}
	}
	r.next++
	created := *app
	created.ID = fmt.Sprintf("app-%d", r.next)
	r.apps[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id string) (*domain.Application, error) {
	if a, ok := r.apps[id]; ok {
		clone := *a
		return &clone, nil
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	a, ok := r.apps[id]
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	a.Status = status
	clone := *a
	return &clone, nil
}

func (r *stubApplicationRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID string) ([]*domain.Application, error) {
	var out []*domain.Application
	for _, a := range r.apps {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListAll(_ context.Context) ([]*domain.Application, error) {
	out := make([]*domain.Application, 0, len(r.apps))
	for _, a := range r.apps {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

type recordingQueue struct {
	events []ports.NotificationInput
}

func (q *recordingQueue) Enqueue(in ports.NotificationInput) {
	q.events = append(q.events, in)
}

func newApplicationService(jobs ...*domain.Job) (*ApplicationService, *stubApplicationRepo, *recordingQueue) {
	repo := newStubApplicationRepo()
	queue := &recordingQueue{}
	svc := NewApplicationService(repo, newStubJobRepo(jobs...), queue, zerolog.Nop())
	return svc, repo, queue
}

func openJob(id string) *domain.Job {
	return &domain.Job{ID: id, Title: "Backend Engineer", CompanyID: "co-1", Status: domain.JobOpen}
}

var seeker = ports.Requester{UserID: "u-1", Role: domain.RoleJobSeeker}
var employer = ports.Requester{UserID: "u-2", Role: domain.RoleEmployer}

func TestApplicationService_Create(t *testing.T) {
	svc, _, queue := newApplicationService(openJob("job-1"))

	app, err := svc.Create(context.Background(), ports.CreateApplicationInput{
		JobID:     "job-1",
		ResumeURL: "https://cv.example.com/u-1.pdf",
		Requester: seeker,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if app.UserID != "u-1" {
		t.Fatalf("applicant must be the requester, got %s", app.UserID)
	}
	if app.Status != domain.ApplicationApplied {
		t.Fatalf("expected applied status, got %s", app.Status)
	}
	if len(queue.events) != 1 {
		t.Fatalf("expected 1 queued notification, got %d", len(queue.events))
	}
	if queue.events[0].Type != domain.NotificationApplicationReceived {
		t.Fatalf("unexpected notification type: %s", queue.events[0].Type)
	}
	if queue.events[0].ApplicationID != app.ID {
		t.Fatalf("notification references wrong application: %s", queue.events[0].ApplicationID)
	}
}

func TestApplicationService_Create_JobMissing(t *testing.T) {
	svc, _, queue := newApplicationService()

	if _, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "nope", Requester: seeker}); err != domain.ErrJobNotFound {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
	if len(queue.events) != 0 {
		t.Fatalf("no notification should be queued on failure")
	}
}

func TestApplicationService_Create_JobClosed(t *testing.T) {
	closed := openJob("job-1")
	closed.Status = domain.JobClosed
	svc, _, _ := newApplicationService(closed)

	if _, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-1", Requester: seeker}); err != domain.ErrJobClosed {
		t.Fatalf("expected ErrJobClosed, got %v", err)
	}
}

func TestApplicationService_Create_Duplicate(t *testing.T) {
	svc, _, _ := newApplicationService(openJob("job-1"))
	in := ports.CreateApplicationInput{JobID: "job-1", Requester: seeker}

	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); err != domain.ErrDuplicateApplication {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
}

func TestApplicationService_Get_Ownership(t *testing.T) {
	svc, _, _ := newApplicationService(openJob("job-1"))

	app, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-1", Requester: seeker})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.Get(context.Background(), app.ID, seeker); err != nil {
		t.Fatalf("owner should read own application: %v", err)
	}
	if _, err := svc.Get(context.Background(), app.ID, employer); err != nil {
		t.Fatalf("employer should read any application: %v", err)
	}
	other := ports.Requester{UserID: "u-9", Role: domain.RoleJobSeeker}
	if _, err := svc.Get(context.Background(), app.ID, other); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for another jobseeker, got %v", err)
	}
}

func TestApplicationService_List_ScopedByRole(t *testing.T) {
	svc, _, _ := newApplicationService(openJob("job-1"), openJob("job-2"))

	if _, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-1", Requester: seeker}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	otherSeeker := ports.Requester{UserID: "u-3", Role: domain.RoleJobSeeker}
	if _, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-2", Requester: otherSeeker}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.List(context.Background(), seeker)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != "u-1" {
		t.Fatalf("jobseeker list must contain only own applications, got %+v", mine)
	}

	all, err := svc.List(context.Background(), employer)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("employer list must contain all applications, got %d", len(all))
	}
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	svc, _, queue := newApplicationService(openJob("job-1"))

	app, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-1", Requester: seeker})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, "reviewed", seeker); err != domain.ErrForbidden {
		t.Fatalf("jobseeker must not review, got %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, "accepted", employer); err != domain.ErrInvalidTransition {
		t.Fatalf("applied->accepted must be rejected, got %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), app.ID, "reviewed", employer)
	if err != nil {
		t.Fatalf("applied->reviewed failed: %v", err)
	}
	if updated.Status != domain.ApplicationReviewed {
		t.Fatalf("expected reviewed, got %s", updated.Status)
	}

	last := queue.events[len(queue.events)-1]
	if last.Type != domain.NotificationStatusChanged || last.Status != domain.ApplicationReviewed {
		t.Fatalf("unexpected status notification: %+v", last)
	}

	if _, err := svc.UpdateStatus(context.Background(), app.ID, "accepted", employer); err != nil {
		t.Fatalf("reviewed->accepted failed: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), app.ID, "rejected", employer); err != domain.ErrInvalidTransition {
		t.Fatalf("accepted is terminal, got %v", err)
	}
}

func TestApplicationService_Delete(t *testing.T) {
	svc, repo, _ := newApplicationService(openJob("job-1"))

	app, err := svc.Create(context.Background(), ports.CreateApplicationInput{JobID: "job-1", Requester: seeker})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	other := ports.Requester{UserID: "u-9", Role: domain.RoleJobSeeker}
	if err := svc.Delete(context.Background(), app.ID, other); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.Delete(context.Background(), app.ID, seeker); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, ok := repo.apps[app.ID]; ok {
		t.Fatalf("application still present after delete")
	}
}
