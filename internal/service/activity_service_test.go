package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockActivityRepo struct {
	recentFn func(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error)
}

func (m *mockActivityRepo) Record(ctx context.Context, activity *models.Activity) error {
	return nil
}
func (m *mockActivityRepo) Recent(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error) {
	return m.recentFn(ctx, kind, action, limit)
}

func TestRecentlyListed(t *testing.T) {
	repo := &mockActivityRepo{
		recentFn: func(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error) {
			assert.Equal(t, models.ActionCreated, action)
			assert.Equal(t, RecentListingsLimit, limit)
			return []models.Activity{{Kind: kind, Action: action, EntityID: 1, Name: string(kind) + " one"}}, nil
		},
	}

	recent, err := NewActivityService(repo).RecentlyListed(context.Background())

	require.NoError(t, err)
	require.Len(t, recent.Venues, 1)
	require.Len(t, recent.Artists, 1)
	assert.Equal(t, "venue one", recent.Venues[0].Name)
	assert.Equal(t, "artist one", recent.Artists[0].Name)
}

func TestRecentlyListed_RepoError(t *testing.T) {
	repo := &mockActivityRepo{
		recentFn: func(ctx context.Context, kind models.ActivityKind, action models.ActivityAction, limit int) ([]models.Activity, error) {
			return nil, errors.New("db connection failed")
		},
	}

	recent, err := NewActivityService(repo).RecentlyListed(context.Background())

	assert.Error(t, err)
	assert.Nil(t, recent)
}
