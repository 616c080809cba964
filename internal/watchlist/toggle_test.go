package watchlist

import (
	"context"
	"errors"
	"testing"

	"nextloop-web/internal/auctionerrors"
	"nextloop-web/internal/backend"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests Flip reconciliation and rollback
func TestToggle_Flip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("success_reconciles_to_server_state", func(t *testing.T) {
		mockAPI := backend.NewMockAPI(ctrl)
		mockAPI.EXPECT().
			ToggleWatchlist(gomock.Any(), "listing1", "user1").
			Return(backend.WatchlistToggleResult{Message: "added", IsInWatchlist: true}, nil)

		toggle := NewToggle(mockAPI, "user1", "listing1", false)
		member, err := toggle.Flip(ctx)
		require.NoError(t, err)
		require.True(t, member)
		require.True(t, toggle.Member())
	})

	t.Run("failure_rolls_back_optimistic_flip", func(t *testing.T) {
		mockAPI := backend.NewMockAPI(ctrl)
		mockAPI.EXPECT().
			ToggleWatchlist(gomock.Any(), "listing1", "user1").
			Return(backend.WatchlistToggleResult{}, auctionerrors.ErrBackendUnavailable)

		toggle := NewToggle(mockAPI, "user1", "listing1", true)
		member, err := toggle.Flip(ctx)
		require.Error(t, err)
		require.True(t, errors.Is(err, auctionerrors.ErrBackendUnavailable))
		require.True(t, member, "state restored to pre-flip value")
		require.True(t, toggle.Member())
	})

	t.Run("server_correction_overrides_local_assumption", func(t *testing.T) {
		mockAPI := backend.NewMockAPI(ctrl)
		// Client assumed not-member, server says the toggle removed it
		mockAPI.EXPECT().
			ToggleWatchlist(gomock.Any(), "listing1", "user1").
			Return(backend.WatchlistToggleResult{Message: "removed", IsInWatchlist: false}, nil)

		toggle := NewToggle(mockAPI, "user1", "listing1", false)
		member, err := toggle.Flip(ctx)
		require.NoError(t, err)
		require.False(t, member)
	})
}

// Tests the per-pair registry
func TestRegistry_Flip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockAPI := backend.NewMockAPI(ctrl)
	registry := NewRegistry(mockAPI)

	gomock.InOrder(
		mockAPI.EXPECT().
			ToggleWatchlist(gomock.Any(), "listing1", "user1").
			Return(backend.WatchlistToggleResult{IsInWatchlist: true}, nil),
		mockAPI.EXPECT().
			ToggleWatchlist(gomock.Any(), "listing1", "user1").
			Return(backend.WatchlistToggleResult{IsInWatchlist: false}, nil),
	)

	member, err := registry.Flip(ctx, "listing1", "user1")
	require.NoError(t, err)
	require.True(t, member)

	member, err = registry.Flip(ctx, "listing1", "user1")
	require.NoError(t, err)
	require.False(t, member)
}
