package session

import (
	"math/rand/v2"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/game/rule"
)

// DealtHand 发给单个座位的手牌
type DealtHand struct {
	Player *Player
	Cards  []card.Card
}

// DealResult 一次发牌的结果
type DealResult struct {
	Hands       []DealtHand
	FirstBidder *Player
}

// Join 加入对局，只在等待加入阶段有效
func (s *Session) Join(playerID, playerName string) (*Player, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseForming {
		return nil, 0, apperrors.ErrWrongPhase
	}
	if s.seatOf(playerID) >= 0 {
		return nil, 0, apperrors.ErrAlreadyJoined
	}
	if len(s.players) >= card.SeatCount {
		return nil, 0, apperrors.ErrTableFull
	}

	p := &Player{ID: playerID, Name: playerName, Seat: len(s.players)}
	s.players = append(s.players, p)
	return p, len(s.players), nil
}

// Begin 人齐后开局：洗牌发牌并进入叫分阶段
func (s *Session) Begin() (*DealResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseForming {
		return nil, apperrors.ErrWrongPhase
	}
	if len(s.players) < card.SeatCount {
		return nil, apperrors.ErrInsufficientPlayers
	}

	s.phase = PhaseBidding
	return s.deal(), nil
}

// deal 洗牌、发牌并重置叫分状态，随机指定起叫座位。
// 流局重发也走这里。调用方需持有锁。
func (s *Session) deal() *DealResult {
	deck := card.NewDeck()
	deck.Shuffle()
	hands, kitty := card.Deal(deck)

	result := &DealResult{Hands: make([]DealtHand, len(s.players))}
	for i, p := range s.players {
		p.Hand = hands[i]
		p.IsLandlord = false
		result.Hands[i] = DealtHand{Player: p, Cards: hands[i]}
	}
	s.kitty = kitty

	s.highestBid = 0
	s.highestBidder = -1
	s.landlord = -1
	s.lastPlay = rule.ParsedHand{}
	s.lastOwner = -1

	s.firstBidder = rand.IntN(len(s.players))
	s.currentTurn = s.firstBidder
	result.FirstBidder = s.current()
	return result
}

// ForceEnd 强制结束对局，任何未结束的阶段都允许
func (s *Session) ForceEnd() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == PhaseFinished {
		return apperrors.ErrNoActiveSession
	}
	s.phase = PhaseFinished
	return nil
}
