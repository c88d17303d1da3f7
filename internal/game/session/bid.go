package session

import (
	"slices"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/game/rule"
)

// 叫分范围
const (
	MinBid = 1
	MaxBid = 3
)

// LandlordResult 叫分结束后的地主信息
type LandlordResult struct {
	Player *Player
	Bid    int
	Kitty  []card.Card
	Hand   []card.Card // 拿到底牌后的完整手牌
}

// BidResult 一次叫分的结果。Landlord 与 Next 互斥：
// 叫分结束时 Landlord 非空，否则 Next 指向下一个叫分的玩家。
type BidResult struct {
	Bidder   *Player
	Amount   int
	Landlord *LandlordResult
	Next     *Player
}

// PassBidResult 一次不叫的结果。流局时 Redeal 非空，
// 叫分结束时 Landlord 非空，否则轮到 Next。
type PassBidResult struct {
	Passer     *Player
	Redeal     *DealResult
	Landlord   *LandlordResult
	Next       *Player
	HighestBid int // 轮到 Next 时的当前最高分
}

// Bid 叫分，必须在 1-3 之间且高于当前最高分。叫 3 分立即定地主。
func (s *Session) Bid(playerID string, amount int) (*BidResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBidding {
		return nil, apperrors.ErrWrongPhase
	}
	bidder := s.current()
	if bidder.ID != playerID {
		return nil, apperrors.ErrNotYourTurn
	}
	if amount < MinBid || amount > MaxBid || amount <= s.highestBid {
		return nil, apperrors.ErrInvalidBid
	}

	s.highestBid = amount
	s.highestBidder = s.currentTurn

	result := &BidResult{Bidder: bidder, Amount: amount}
	if amount == MaxBid {
		result.Landlord = s.endBidding()
		return result, nil
	}

	s.advanceTurn()
	result.Next = s.current()
	return result, nil
}

// PassBid 不叫。轮转一圈回到起叫座位时结算：
// 无人叫分则流局重发，否则由最高叫分者当地主。
func (s *Session) PassBid(playerID string) (*PassBidResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseBidding {
		return nil, apperrors.ErrWrongPhase
	}
	passer := s.current()
	if passer.ID != playerID {
		return nil, apperrors.ErrNotYourTurn
	}

	s.advanceTurn()
	result := &PassBidResult{Passer: passer, HighestBid: s.highestBid}

	if s.currentTurn == s.firstBidder {
		if s.highestBid == 0 {
			result.Redeal = s.deal()
			return result, nil
		}
		result.Landlord = s.endBidding()
		return result, nil
	}

	result.Next = s.current()
	return result, nil
}

// endBidding 结算叫分：最高叫分者成为地主，拿走底牌并先出牌。
// 调用方需持有锁。
func (s *Session) endBidding() *LandlordResult {
	s.landlord = s.highestBidder
	landlord := s.players[s.landlord]
	landlord.IsLandlord = true

	landlord.Hand = append(landlord.Hand, s.kitty...)
	card.Sort(landlord.Hand)

	s.lastPlay = rule.ParsedHand{}
	s.lastOwner = -1
	s.currentTurn = s.landlord
	s.phase = PhasePlaying

	return &LandlordResult{
		Player: landlord,
		Bid:    s.highestBid,
		Kitty:  slices.Clone(s.kitty),
		Hand:   slices.Clone(landlord.Hand),
	}
}
