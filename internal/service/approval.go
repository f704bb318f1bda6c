package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fincadev/fincaledger/internal/metrics"
	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
	"github.com/fincadev/fincaledger/internal/storage"
)

// ErrRequestClosed is returned when approving or rejecting a request
// that already left the pending state. Status transitions are one-way;
// this is what keeps "approved request" and "created user" one-to-one.
var ErrRequestClosed = errors.New("request already resolved")

// ApprovalService turns pending access requests into users. It is the
// only cross-collection logic in the system.
type ApprovalService struct {
	users    *repo.UserRepo
	requests *repo.RequestRepo
}

// NewApprovalService creates an ApprovalService over the given storage
// backend.
func NewApprovalService(store storage.Store) *ApprovalService {
	return &ApprovalService{
		users:    repo.NewUsers(store),
		requests: repo.NewRequests(store),
	}
}

// Approve creates a user from the pending request with the given id and
// marks the request approved. The user's name falls back to the request
// email and the role to RoleProductor when the request left them empty.
//
// The user is created before the status flips: if user creation fails
// the request stays pending, so a request can never be approved without
// its user existing.
func (s *ApprovalService) Approve(ctx context.Context, requestID int) (*models.User, *models.AccessRequest, error) {
	req, err := s.requests.Get(ctx, requestID)
	if err != nil {
		slog.Error("Approve failed - request lookup", "request_id", requestID, "error", err)
		return nil, nil, err
	}
	if req.Status != models.RequestPending {
		return nil, nil, fmt.Errorf("approve request %d (status %s): %w", requestID, req.Status, ErrRequestClosed)
	}

	name := req.Name
	if name == "" {
		name = req.Email
	}
	role := req.RequestedRole
	if role == "" {
		role = models.RoleProductor
	}

	user, err := s.users.Create(ctx, models.User{
		Name:   name,
		Email:  req.Email,
		Role:   role,
		Active: true,
	})
	if err != nil {
		slog.Error("Approve failed - user creation", "request_id", requestID, "error", err)
		return nil, nil, fmt.Errorf("approve request %d: %w", requestID, err)
	}

	status := models.RequestApproved
	updated, err := s.requests.Update(ctx, requestID, models.RequestPatch{Status: &status})
	if err != nil {
		slog.Error("Approve failed - status update", "request_id", requestID, "error", err)
		return nil, nil, fmt.Errorf("approve request %d: %w", requestID, err)
	}

	metrics.RequestResolutions.WithLabelValues("approved").Inc()
	slog.Info("Request approved", "request_id", requestID, "user_id", user.ID, "role", user.Role)
	return user, updated, nil
}

// Reject marks the pending request with the given id rejected. No user
// side effects.
func (s *ApprovalService) Reject(ctx context.Context, requestID int) (*models.AccessRequest, error) {
	req, err := s.requests.Get(ctx, requestID)
	if err != nil {
		slog.Error("Reject failed - request lookup", "request_id", requestID, "error", err)
		return nil, err
	}
	if req.Status != models.RequestPending {
		return nil, fmt.Errorf("reject request %d (status %s): %w", requestID, req.Status, ErrRequestClosed)
	}

	status := models.RequestRejected
	updated, err := s.requests.Update(ctx, requestID, models.RequestPatch{Status: &status})
	if err != nil {
		slog.Error("Reject failed - status update", "request_id", requestID, "error", err)
		return nil, fmt.Errorf("reject request %d: %w", requestID, err)
	}

	metrics.RequestResolutions.WithLabelValues("rejected").Inc()
	slog.Info("Request rejected", "request_id", requestID)
	return updated, nil
}
