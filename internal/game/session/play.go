package session

import (
	"slices"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/game/rule"
)

// PlayerDelta 单个玩家的本局得分变动
type PlayerDelta struct {
	Player *Player
	Delta  int
}

// GameOverResult 对局结束的结算
type GameOverResult struct {
	Winner      *Player
	LandlordWin bool
	Base        int // 最终叫分
	Scores      []PlayerDelta
}

// PlayResult 一次出牌的结果。出完最后一手时 GameOver 非空，
// 否则 Next 指向下一个出牌的玩家。
type PlayResult struct {
	Player    *Player
	Hand      rule.ParsedHand
	CardsLeft int
	Next      *Player
	GameOver  *GameOverResult
}

// PassPlayResult 一次不出的结果
type PassPlayResult struct {
	Passer *Player
	Next   *Player
	// Next 是否必须出牌（压回到上一手的主人）
	NextMustPlay bool
}

// Play 出牌。牌必须都在手中、构成合法牌型，且能大过上一手
// （自己首出时不受限制）。所有校验通过后才改动状态。
func (s *Session) Play(playerID string, cards []card.Card) (*PlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePlaying {
		return nil, apperrors.ErrWrongPhase
	}
	player := s.current()
	if player.ID != playerID {
		return nil, apperrors.ErrNotYourTurn
	}

	remaining, ok := card.Remove(player.Hand, cards)
	if !ok {
		return nil, apperrors.ErrCardsNotInHand
	}

	hand, err := rule.ParseHand(cards)
	if err != nil {
		return nil, apperrors.ErrInvalidCards
	}

	// 没有上一手或上一手就是自己出的，视为首出，任意合法牌型都可以
	leading := s.lastPlay.IsEmpty() || s.lastOwner == s.currentTurn
	if !leading && !rule.CanBeat(hand, s.lastPlay) {
		return nil, apperrors.ErrCannotBeat
	}

	player.Hand = remaining
	sorted := slices.Clone(cards)
	card.Sort(sorted)
	hand.Cards = sorted
	s.lastPlay = hand
	s.lastOwner = s.currentTurn

	result := &PlayResult{Player: player, Hand: hand, CardsLeft: len(player.Hand)}

	if len(player.Hand) == 0 {
		result.GameOver = s.endGame(player)
		return result, nil
	}

	s.advanceTurn()
	result.Next = s.current()
	return result, nil
}

// PassPlay 不出。自己首出的一手不能过。
func (s *Session) PassPlay(playerID string) (*PassPlayResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePlaying {
		return nil, apperrors.ErrWrongPhase
	}
	passer := s.current()
	if passer.ID != playerID {
		return nil, apperrors.ErrNotYourTurn
	}
	if s.lastPlay.IsEmpty() || s.lastOwner == s.currentTurn {
		return nil, apperrors.ErrMustPlay
	}

	s.advanceTurn()
	return &PassPlayResult{
		Passer:       passer,
		Next:         s.current(),
		NextMustPlay: s.lastOwner == s.currentTurn,
	}, nil
}

// endGame 结算：底分为最终叫分，地主胜负双倍。调用方需持有锁。
func (s *Session) endGame(winner *Player) *GameOverResult {
	s.phase = PhaseFinished

	base := s.highestBid
	result := &GameOverResult{
		Winner:      winner,
		LandlordWin: winner.IsLandlord,
		Base:        base,
		Scores:      make([]PlayerDelta, len(s.players)),
	}

	for i, p := range s.players {
		delta := 0
		switch {
		case result.LandlordWin && p.IsLandlord:
			delta = base * 2
		case result.LandlordWin:
			delta = -base
		case p.IsLandlord:
			delta = -base * 2
		default:
			delta = base
		}
		result.Scores[i] = PlayerDelta{Player: p, Delta: delta}
	}
	return result
}
