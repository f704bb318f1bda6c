package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fincadev/fincaledger/internal/models"
	"github.com/fincadev/fincaledger/internal/repo"
)

func TestCreateUserDefaultsActive(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectoryService(newTestStore(t))

	created, err := directory.CreateUser(ctx, CreateUserParams{
		Name: "Ana", Email: "ana@finca.co", Role: "Admin",
	})
	require.NoError(t, err)
	require.True(t, created.Active)
	require.False(t, created.CreatedAt.IsZero())

	inactive := false
	explicit, err := directory.CreateUser(ctx, CreateUserParams{
		Name: "Beto", Email: "beto@finca.co", Role: "Productor", Active: &inactive,
	})
	require.NoError(t, err)
	require.False(t, explicit.Active)
}

func TestListUsersAscendingListRequestsDescending(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectoryService(newTestStore(t))

	for _, email := range []string{"a@finca.co", "b@finca.co", "c@finca.co"} {
		_, err := directory.CreateUser(ctx, CreateUserParams{Name: email, Email: email})
		require.NoError(t, err)
		_, err = directory.CreateRequest(ctx, CreateRequestParams{Email: email})
		require.NoError(t, err)
	}

	users, err := directory.ListUsers(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, []int{users[0].ID, users[1].ID, users[2].ID})

	requests, err := directory.ListRequests(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{3, 2, 1}, []int{requests[0].ID, requests[1].ID, requests[2].ID})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectoryService(newTestStore(t))

	created, err := directory.CreateUser(ctx, CreateUserParams{
		Name: "Ana", Email: "ana@finca.co", Role: "Productor",
	})
	require.NoError(t, err)

	role := "Admin"
	inactive := false
	updated, err := directory.UpdateUser(ctx, created.ID, models.UserPatch{Role: &role, Active: &inactive})
	require.NoError(t, err)
	require.Equal(t, "Admin", updated.Role)
	require.False(t, updated.Active)
	require.Equal(t, "Ana", updated.Name)
	require.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
}

func TestUpdateUserNotFound(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectoryService(newTestStore(t))

	name := "Nadie"
	_, err := directory.UpdateUser(ctx, 7, models.UserPatch{Name: &name})
	require.ErrorIs(t, err, repo.ErrNotFound)
}

func TestDeleteRequestIsIdempotent(t *testing.T) {
	ctx := context.Background()
	directory := NewDirectoryService(newTestStore(t))

	created, err := directory.CreateRequest(ctx, CreateRequestParams{Email: "x@finca.co"})
	require.NoError(t, err)

	require.NoError(t, directory.DeleteRequest(ctx, created.ID))
	require.NoError(t, directory.DeleteRequest(ctx, created.ID))

	requests, err := directory.ListRequests(ctx)
	require.NoError(t, err)
	require.Empty(t, requests)
}
