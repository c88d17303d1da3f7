package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key
	playerStatsKey = "player:stats:"
	leaderboardKey = "leaderboard:score"
)

// PlayerStats 玩家统计数据
type PlayerStats struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`

	// 总计
	TotalGames int `json:"total_games"` // 总场次
	Wins       int `json:"wins"`        // 胜场
	Losses     int `json:"losses"`      // 败场

	// 地主/农民分开统计
	LandlordGames int `json:"landlord_games"` // 地主场次
	LandlordWins  int `json:"landlord_wins"`  // 地主胜场
	FarmerGames   int `json:"farmer_games"`   // 农民场次
	FarmerWins    int `json:"farmer_wins"`    // 农民胜场

	// 积分由每局的叫分结算累计
	Score int `json:"score"`

	// 连胜/连败，正数为连胜，负数为连败
	CurrentStreak int `json:"current_streak"`
	MaxWinStreak  int `json:"max_win_streak"`

	// 时间
	LastPlayedAt int64 `json:"last_played_at"` // 最后游戏时间
	CreatedAt    int64 `json:"created_at"`     // 首次游戏时间
}

// WinRate 总胜率
func (ps *PlayerStats) WinRate() float64 {
	if ps.TotalGames == 0 {
		return 0
	}
	return float64(ps.Wins) / float64(ps.TotalGames)
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Score      int     `json:"score"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
}

// LeaderboardManager 排行榜存储
type LeaderboardManager struct {
	client *redis.Client
}

// NewLeaderboardManager 创建排行榜存储
func NewLeaderboardManager(client *redis.Client) *LeaderboardManager {
	return &LeaderboardManager{client: client}
}

// RecordGameResult 记录一局结果。delta 是该玩家本局的得分变动
// （地主双倍、农民单倍，正负由胜负决定），同时更新总榜积分。
func (lm *LeaderboardManager) RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, isWinner bool, delta int) error {
	stats, err := lm.getStats(ctx, playerID)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	if stats == nil {
		stats = &PlayerStats{PlayerID: playerID, CreatedAt: now}
	}
	stats.PlayerName = playerName
	stats.LastPlayedAt = now

	stats.TotalGames++
	if isLandlord {
		stats.LandlordGames++
	} else {
		stats.FarmerGames++
	}

	if isWinner {
		stats.Wins++
		if isLandlord {
			stats.LandlordWins++
		} else {
			stats.FarmerWins++
		}
		if stats.CurrentStreak < 0 {
			stats.CurrentStreak = 0
		}
		stats.CurrentStreak++
		stats.MaxWinStreak = max(stats.MaxWinStreak, stats.CurrentStreak)
	} else {
		stats.Losses++
		if stats.CurrentStreak > 0 {
			stats.CurrentStreak = 0
		}
		stats.CurrentStreak--
	}

	stats.Score += delta

	if err := lm.saveStats(ctx, stats); err != nil {
		return err
	}
	return lm.client.ZIncrBy(ctx, leaderboardKey, float64(delta), playerID).Err()
}

// GetPlayerStats 获取玩家统计，没有记录返回 nil
func (lm *LeaderboardManager) GetPlayerStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	return lm.getStats(ctx, playerID)
}

// GetPlayerRank 获取玩家在总榜的名次（从 1 开始），没有记录返回 0
func (lm *LeaderboardManager) GetPlayerRank(ctx context.Context, playerID string) (int64, error) {
	rank, err := lm.client.ZRevRank(ctx, leaderboardKey, playerID).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return rank + 1, nil
}

// GetLeaderboard 获取积分榜前 limit 名
func (lm *LeaderboardManager) GetLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	ids, err := lm.client.ZRevRange(ctx, leaderboardKey, 0, int64(limit)-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]*LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		stats, err := lm.getStats(ctx, id)
		if err != nil {
			return nil, err
		}
		if stats == nil {
			continue
		}
		entries = append(entries, &LeaderboardEntry{
			Rank:       i + 1,
			PlayerID:   stats.PlayerID,
			PlayerName: stats.PlayerName,
			Score:      stats.Score,
			Wins:       stats.Wins,
			WinRate:    stats.WinRate(),
		})
	}
	return entries, nil
}

func (lm *LeaderboardManager) getStats(ctx context.Context, playerID string) (*PlayerStats, error) {
	data, err := lm.client.Get(ctx, playerStatsKey+playerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("解析玩家统计失败: %w", err)
	}
	return &stats, nil
}

func (lm *LeaderboardManager) saveStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("序列化玩家统计失败: %w", err)
	}
	return lm.client.Set(ctx, playerStatsKey+stats.PlayerID, data, 0).Err()
}
