package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Harsha9951/travel_management_app/internal/apperrors"
	"github.com/Harsha9951/travel_management_app/internal/core/domain"
	portsrepo "github.com/Harsha9951/travel_management_app/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// ApprovalService drives per-owner approval workflows. Approve and Reject
// simulate the upstream provider's latency and are single-flight per owner:
// a second transition arriving while one is outstanding is refused with
// ErrConflict rather than queued.
type ApprovalService struct {
	BaseService
	workflowRepo portsrepo.WorkflowRepository
	latency      time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
	resetGen map[string]uint64
}

func NewApprovalService(workflowRepo portsrepo.WorkflowRepository, latency time.Duration) *ApprovalService {
	return &ApprovalService{
		workflowRepo: workflowRepo,
		latency:      latency,
		inFlight:     make(map[string]bool),
		resetGen:     make(map[string]uint64),
	}
}

// beginTransition takes the single-flight slot and returns the owner's reset
// generation at entry. A Reset landing while the transition is in flight
// bumps the generation, which invalidates the pending save.
func (s *ApprovalService) beginTransition(ownerID string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[ownerID] {
		return 0, apperrors.ErrConflict
	}
	s.inFlight[ownerID] = true
	return s.resetGen[ownerID], nil
}

func (s *ApprovalService) endTransition(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, ownerID)
}

// saveTransition persists the workflow unless a reset superseded the
// transition. The generation check and the save share the lock so a reset
// can never be overwritten by a stale snapshot.
func (s *ApprovalService) saveTransition(ctx context.Context, ownerID string, gen uint64, wf domain.ApprovalWorkflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resetGen[ownerID] != gen {
		return fmt.Errorf("transition superseded by reset: %w", apperrors.ErrConflict)
	}
	return s.workflowRepo.SaveWorkflow(ctx, wf)
}

func (s *ApprovalService) getOrSeed(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error) {
	wf, err := s.workflowRepo.FindWorkflowByOwner(ctx, ownerID)
	if errors.Is(err, apperrors.ErrNotFound) {
		fresh := domain.NewApprovalWorkflow(uuid.NewString(), ownerID)
		if err := s.workflowRepo.SaveWorkflow(ctx, *fresh); err != nil {
			return nil, fmt.Errorf("failed to seed workflow: %w", err)
		}
		s.LogDebug(ctx, "seeded approval workflow", slog.String("owner_id", ownerID))
		return fresh, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}
	return wf, nil
}

// GetWorkflow returns the owner's workflow, seeding it if absent.
func (s *ApprovalService) GetWorkflow(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error) {
	return s.getOrSeed(ctx, ownerID)
}

// Approve approves the current step on behalf of the given role.
func (s *ApprovalService) Approve(ctx context.Context, ownerID string, role domain.UserRole) (*domain.ApprovalWorkflow, error) {
	gen, err := s.beginTransition(ownerID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(ownerID)

	wf, err := s.getOrSeed(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// Simulated provider round trip. The single-flight slot is held for the
	// duration so concurrent transitions observe ErrConflict instead of
	// interleaving.
	time.Sleep(s.latency)

	if err := wf.Approve(role); err != nil {
		return nil, err
	}
	if err := s.saveTransition(ctx, ownerID, gen, *wf); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "workflow step approved",
		slog.String("owner_id", ownerID),
		slog.String("role", string(role)),
		slog.String("current_step", string(wf.CurrentStep)),
		slog.Int("progress", wf.Progress))
	return wf, nil
}

// Reject flags the named step rejected without moving the current step.
func (s *ApprovalService) Reject(ctx context.Context, ownerID string, step domain.WorkflowStep) (*domain.ApprovalWorkflow, error) {
	gen, err := s.beginTransition(ownerID)
	if err != nil {
		return nil, err
	}
	defer s.endTransition(ownerID)

	wf, err := s.getOrSeed(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	time.Sleep(s.latency)

	wf.Reject(step)
	if err := s.saveTransition(ctx, ownerID, gen, *wf); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "workflow step rejected",
		slog.String("owner_id", ownerID),
		slog.String("step", string(step)))
	return wf, nil
}

// Reset restores the initial workflow state unconditionally. It does not
// take the single-flight slot: a reset must always win, even against an
// outstanding transition, so it bumps the reset generation to invalidate
// any in-flight save.
func (s *ApprovalService) Reset(ctx context.Context, ownerID string) (*domain.ApprovalWorkflow, error) {
	wf, err := s.getOrSeed(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	wf.Reset()
	wf.LastUpdatedAt = time.Now()
	wf.LastUpdatedBy = ownerID

	s.mu.Lock()
	s.resetGen[ownerID]++
	err = s.workflowRepo.SaveWorkflow(ctx, *wf)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to save workflow: %w", err)
	}
	return wf, nil
}
