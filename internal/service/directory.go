package service

import (
	"context"
	"log/slog"
	"sort"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
	"github.com/fincadev/fincaledger/internal/storage"
)

// CreateUserParams are the fields the admin form supplies when creating
// a user directly. Active defaults to true when nil.
type CreateUserParams struct {
	Name   string
	Email  string
	Role   string
	Active *bool
}

// CreateRequestParams are the fields the "request access" flow
// supplies. Status always starts pending.
type CreateRequestParams struct {
	Email         string
	Name          string
	RequestedRole string
	Note          string
}

// DirectoryService exposes users and access requests to the view layer.
type DirectoryService struct {
	users    *repo.UserRepo
	requests *repo.RequestRepo
}

// NewDirectoryService creates a DirectoryService over the given storage
// backend.
func NewDirectoryService(store storage.Store) *DirectoryService {
	return &DirectoryService{
		users:    repo.NewUsers(store),
		requests: repo.NewRequests(store),
	}
}

// ListUsers returns all users in ascending id order, the order the
// settings page displays.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// CreateUser stores a new user from the admin form.
func (s *DirectoryService) CreateUser(ctx context.Context, p CreateUserParams) (*models.User, error) {
	active := true
	if p.Active != nil {
		active = *p.Active
	}

	created, err := s.users.Create(ctx, models.User{
		Name:   p.Name,
		Email:  p.Email,
		Role:   p.Role,
		Active: active,
	})
	if err != nil {
		slog.Error("CreateUser failed", "error", err)
		return nil, err
	}
	slog.Info("User created", "user_id", created.ID, "email", created.Email, "role", created.Role)
	return created, nil
}

// UpdateUser patches the user with the given id (name, email, role,
// active). Returns repo.ErrNotFound when it does not exist.
func (s *DirectoryService) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	updated, err := s.users.Update(ctx, id, patch)
	if err != nil {
		slog.Error("UpdateUser failed", "user_id", id, "error", err)
		return nil, err
	}
	slog.Info("User updated", "user_id", id)
	return updated, nil
}

// DeleteUser removes the user with the given id; absent ids are a
// no-op.
func (s *DirectoryService) DeleteUser(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		slog.Error("DeleteUser failed", "user_id", id, "error", err)
		return err
	}
	slog.Info("User deleted", "user_id", id)
	return nil
}

// ListRequests returns all access requests, newest first (descending
// id).
func (s *DirectoryService) ListRequests(ctx context.Context) ([]models.AccessRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(requests, func(i, j int) bool { return requests[i].ID > requests[j].ID })
	return requests, nil
}

// CreateRequest stores a new pending access request.
func (s *DirectoryService) CreateRequest(ctx context.Context, p CreateRequestParams) (*models.AccessRequest, error) {
	created, err := s.requests.Create(ctx, models.AccessRequest{
		Email:         p.Email,
		Name:          p.Name,
		RequestedRole: p.RequestedRole,
		Note:          p.Note,
	})
	if err != nil {
		slog.Error("CreateRequest failed", "error", err)
		return nil, err
	}
	slog.Info("Access request created", "request_id", created.ID, "email", created.Email, "requested_role", created.RequestedRole)
	return created, nil
}

// DeleteRequest removes the request with the given id; absent ids are a
// no-op.
func (s *DirectoryService) DeleteRequest(ctx context.Context, id int) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		slog.Error("DeleteRequest failed", "request_id", id, "error", err)
		return err
	}
	slog.Info("Access request deleted", "request_id", id)
	return nil
}
