package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCleanupRepo struct {
	mock.Mock
}

func (m *mockCleanupRepo) RemoveStale(ctx context.Context, notScoredSince time.Time) (int64, error) {
	args := m.Called(ctx, notScoredSince)
	return args.Get(0).(int64), args.Error(1)
}

func Test_NewRecommendationsCleaner_RejectsNonPositiveExpiration(t *testing.T) {
	_, err := NewRecommendationsCleaner(&mockCleanupRepo{}, 0)
	assert.Error(t, err)
}

func Test_Cleaner_RemovesRowsOlderThanExpiration(t *testing.T) {
	repo := &mockCleanupRepo{}
	repo.On("RemoveStale", mock.Anything, mock.MatchedBy(func(cutoff time.Time) bool {
		return time.Since(cutoff) > 6*24*time.Hour
	})).Return(int64(3), nil).Once()

	cleaner, err := NewRecommendationsCleaner(repo, 7)
	require.NoError(t, err)
	defer cleaner.Stop()

	cleaner.cleanStaleRecommendations()

	repo.AssertExpectations(t)
}
