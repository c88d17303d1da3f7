package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLeaderboard(t *testing.T) *LeaderboardManager {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return NewLeaderboardManager(client)
}

func TestRecordGameResult(t *testing.T) {
	lm := newTestLeaderboard(t)
	ctx := context.Background()

	// 地主两连胜
	require.NoError(t, lm.RecordGameResult(ctx, "p0", "甲", true, true, 4))
	require.NoError(t, lm.RecordGameResult(ctx, "p0", "甲", true, true, 2))

	stats, err := lm.GetPlayerStats(ctx, "p0")
	require.NoError(t, err)
	require.NotNil(t, stats)

	assert.Equal(t, 2, stats.TotalGames)
	assert.Equal(t, 2, stats.Wins)
	assert.Equal(t, 2, stats.LandlordGames)
	assert.Equal(t, 2, stats.LandlordWins)
	assert.Equal(t, 6, stats.Score)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxWinStreak)
	assert.InDelta(t, 1.0, stats.WinRate(), 1e-9)

	// 农民一败，连胜中断
	require.NoError(t, lm.RecordGameResult(ctx, "p0", "甲", false, false, -1))

	stats, err = lm.GetPlayerStats(ctx, "p0")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 1, stats.FarmerGames)
	assert.Equal(t, 0, stats.FarmerWins)
	assert.Equal(t, 5, stats.Score)
	assert.Equal(t, -1, stats.CurrentStreak)
	assert.Equal(t, 2, stats.MaxWinStreak)
}

func TestGetPlayerStatsMissing(t *testing.T) {
	lm := newTestLeaderboard(t)

	stats, err := lm.GetPlayerStats(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestGetPlayerRank(t *testing.T) {
	lm := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, lm.RecordGameResult(ctx, "p0", "甲", true, true, 4))
	require.NoError(t, lm.RecordGameResult(ctx, "p1", "乙", false, true, 2))

	rank, err := lm.GetPlayerRank(ctx, "p0")
	require.NoError(t, err)
	assert.EqualValues(t, 1, rank)

	rank, err = lm.GetPlayerRank(ctx, "p1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, rank)

	// 没有记录的玩家名次为 0
	rank, err = lm.GetPlayerRank(ctx, "ghost")
	require.NoError(t, err)
	assert.Zero(t, rank)
}

func TestGetLeaderboard(t *testing.T) {
	lm := newTestLeaderboard(t)
	ctx := context.Background()

	require.NoError(t, lm.RecordGameResult(ctx, "p0", "甲", true, false, -4))
	require.NoError(t, lm.RecordGameResult(ctx, "p1", "乙", false, true, 2))
	require.NoError(t, lm.RecordGameResult(ctx, "p2", "丙", false, true, 2))
	require.NoError(t, lm.RecordGameResult(ctx, "p1", "乙", true, true, 6))

	entries, err := lm.GetLeaderboard(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "乙", entries[0].PlayerName)
	assert.Equal(t, 8, entries[0].Score)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "甲", entries[2].PlayerName)
	assert.Equal(t, -4, entries[2].Score)

	t.Run("limit respected", func(t *testing.T) {
		top, err := lm.GetLeaderboard(ctx, 1)
		require.NoError(t, err)
		require.Len(t, top, 1)
		assert.Equal(t, "乙", top[0].PlayerName)
	})
}
