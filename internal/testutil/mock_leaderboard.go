//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLeaderboard 排行榜 mock，实现 engine.Leaderboard
type MockLeaderboard struct {
	mock.Mock
}

func (m *MockLeaderboard) RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, isWinner bool, delta int) error {
	args := m.Called(ctx, playerID, playerName, isLandlord, isWinner, delta)
	return args.Error(0)
}
