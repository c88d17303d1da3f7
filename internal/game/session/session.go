// Package session implements the per-room game aggregate:
// seats, hands, bidding and the play-phase turn machine.
package session

import (
	"sync"
	"time"

	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/game/rule"
)

// Phase 对局阶段
type Phase int

const (
	PhaseForming  Phase = iota // 等待加入
	PhaseBidding               // 叫分阶段
	PhasePlaying               // 出牌阶段
	PhaseFinished              // 已结束
)

// phaseNames 阶段名称映射表
var phaseNames = map[Phase]string{
	PhaseForming:  "等待加入",
	PhaseBidding:  "叫分阶段",
	PhasePlaying:  "出牌阶段",
	PhaseFinished: "已结束",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return "未知状态"
}

// Player 座位上的玩家
type Player struct {
	ID         string
	Name       string
	Seat       int // 座位号 0-2，按加入顺序
	Hand       []card.Card
	IsLandlord bool
}

// Session 一个房间的对局。所有操作先校验后落状态，
// 校验失败不产生任何改动；内部互斥锁保证同房间操作串行。
type Session struct {
	Room      string
	CreatedAt time.Time

	mu            sync.Mutex
	phase         Phase
	players       []*Player
	kitty         []card.Card
	currentTurn   int // 当前行动座位
	firstBidder   int // 本轮叫分的起始座位
	highestBid    int
	highestBidder int // -1 表示还没人叫分
	landlord      int // -1 表示地主未定
	lastPlay      rule.ParsedHand
	lastOwner     int // 上一手牌的座位，-1 表示没有上一手
}

// New 创建对局，发起者自动坐下
func New(room, creatorID, creatorName string) *Session {
	s := &Session{
		Room:          room,
		CreatedAt:     time.Now(),
		phase:         PhaseForming,
		highestBidder: -1,
		landlord:      -1,
		lastOwner:     -1,
	}
	s.players = append(s.players, &Player{ID: creatorID, Name: creatorName, Seat: 0})
	return s
}

// Phase 返回当前阶段
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// seatOf 查找玩家座位，-1 表示未入座。调用方需持有锁。
func (s *Session) seatOf(playerID string) int {
	for _, p := range s.players {
		if p.ID == playerID {
			return p.Seat
		}
	}
	return -1
}

// current 当前行动的玩家。调用方需持有锁。
func (s *Session) current() *Player {
	return s.players[s.currentTurn]
}

// advanceTurn 按座位顺序轮转。调用方需持有锁。
func (s *Session) advanceTurn() {
	s.currentTurn = (s.currentTurn + 1) % len(s.players)
}
