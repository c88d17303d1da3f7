package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
)

// newFullSession 建好三人桌：甲(p0)创建，乙(p1)、丙(p2)加入
func newFullSession(t *testing.T) *Session {
	t.Helper()
	s := New("友谊赛", "p0", "甲")
	_, _, err := s.Join("p1", "乙")
	require.NoError(t, err)
	_, _, err = s.Join("p2", "丙")
	require.NoError(t, err)
	return s
}

func hand(t *testing.T, tokens ...string) []card.Card {
	t.Helper()
	cards, err := card.ParseTokens(tokens)
	require.NoError(t, err)
	return cards
}

// playingSession 直接构造出牌阶段的对局，固定手牌和地主座位
func playingSession(t *testing.T, hands [3][]card.Card, landlordSeat int) *Session {
	t.Helper()
	s := newFullSession(t)
	for i := range hands {
		s.players[i].Hand = hands[i]
	}
	s.players[landlordSeat].IsLandlord = true
	s.landlord = landlordSeat
	s.highestBid = 2
	s.highestBidder = landlordSeat
	s.phase = PhasePlaying
	s.currentTurn = landlordSeat
	return s
}

func TestJoin(t *testing.T) {
	t.Parallel()

	s := New("友谊赛", "p0", "甲")

	p, count, err := s.Join("p1", "乙")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Seat)
	assert.Equal(t, 2, count)

	t.Run("duplicate join rejected", func(t *testing.T) {
		_, _, err := s.Join("p0", "甲")
		assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
	})

	t.Run("fourth player rejected", func(t *testing.T) {
		_, _, err := s.Join("p2", "丙")
		require.NoError(t, err)
		_, _, err = s.Join("p3", "丁")
		assert.ErrorIs(t, err, apperrors.ErrTableFull)
	})

	t.Run("join after begin rejected", func(t *testing.T) {
		_, err := s.Begin()
		require.NoError(t, err)
		_, _, err = s.Join("p4", "戊")
		assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
	})
}

func TestBegin(t *testing.T) {
	t.Parallel()

	t.Run("needs three players", func(t *testing.T) {
		t.Parallel()
		s := New("友谊赛", "p0", "甲")
		_, err := s.Begin()
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPlayers)
	})

	t.Run("deals and enters bidding", func(t *testing.T) {
		t.Parallel()
		s := newFullSession(t)
		result, err := s.Begin()
		require.NoError(t, err)

		assert.Equal(t, PhaseBidding, s.Phase())
		require.Len(t, result.Hands, 3)
		for _, dealt := range result.Hands {
			assert.Len(t, dealt.Cards, card.HandSize)
		}
		require.NotNil(t, result.FirstBidder)
		assert.Equal(t, result.FirstBidder.Seat, s.currentTurn)
	})

	t.Run("double begin rejected", func(t *testing.T) {
		t.Parallel()
		s := newFullSession(t)
		_, err := s.Begin()
		require.NoError(t, err)
		_, err = s.Begin()
		assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
	})
}

func TestBidding(t *testing.T) {
	t.Parallel()

	start := func(t *testing.T) (*Session, *Player) {
		s := newFullSession(t)
		result, err := s.Begin()
		require.NoError(t, err)
		return s, result.FirstBidder
	}

	t.Run("bid out of turn rejected", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		other := s.players[(first.Seat+1)%3]
		_, err := s.Bid(other.ID, 1)
		assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	})

	t.Run("bid must rise", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		result, err := s.Bid(first.ID, 2)
		require.NoError(t, err)
		require.NotNil(t, result.Next)

		_, err = s.Bid(result.Next.ID, 2)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
		_, err = s.Bid(result.Next.ID, 1)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
	})

	t.Run("bid out of range rejected", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		_, err := s.Bid(first.ID, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
		_, err = s.Bid(first.ID, 4)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBid)
	})

	t.Run("bid of three settles immediately", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		result, err := s.Bid(first.ID, 3)
		require.NoError(t, err)
		require.NotNil(t, result.Landlord)
		assert.Nil(t, result.Next)

		assert.Equal(t, first.ID, result.Landlord.Player.ID)
		assert.Equal(t, 3, result.Landlord.Bid)
		assert.Len(t, result.Landlord.Kitty, card.KittySize)
		assert.Len(t, result.Landlord.Hand, card.HandSize+card.KittySize)
		assert.Equal(t, PhasePlaying, s.Phase())
		// 地主先出牌
		assert.Equal(t, first.Seat, s.currentTurn)
	})

	t.Run("all pass triggers redeal", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		current := first
		for i := 0; i < 2; i++ {
			result, err := s.PassBid(current.ID)
			require.NoError(t, err)
			require.NotNil(t, result.Next)
			current = result.Next
		}
		result, err := s.PassBid(current.ID)
		require.NoError(t, err)
		require.NotNil(t, result.Redeal)
		assert.Equal(t, PhaseBidding, s.Phase())
		// 重发后每人仍是 17 张
		for _, dealt := range result.Redeal.Hands {
			assert.Len(t, dealt.Cards, card.HandSize)
		}
	})

	t.Run("highest bidder becomes landlord after circle", func(t *testing.T) {
		t.Parallel()
		s, first := start(t)
		bid, err := s.Bid(first.ID, 1)
		require.NoError(t, err)

		pass1, err := s.PassBid(bid.Next.ID)
		require.NoError(t, err)
		require.NotNil(t, pass1.Next)
		assert.Equal(t, 1, pass1.HighestBid)

		pass2, err := s.PassBid(pass1.Next.ID)
		require.NoError(t, err)
		require.NotNil(t, pass2.Landlord)
		assert.Equal(t, first.ID, pass2.Landlord.Player.ID)
		assert.Equal(t, 1, pass2.Landlord.Bid)
	})

	t.Run("bidding before begin rejected", func(t *testing.T) {
		t.Parallel()
		s := newFullSession(t)
		_, err := s.Bid("p0", 1)
		assert.ErrorIs(t, err, apperrors.ErrWrongPhase)
	})
}

func TestPlay(t *testing.T) {
	t.Parallel()

	t.Run("leading play accepted", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3", "♠5"),
			hand(t, "♥4", "♥6"),
			hand(t, "♣4", "♣7"),
		}, 0)

		result, err := s.Play("p0", hand(t, "♠3"))
		require.NoError(t, err)
		assert.Equal(t, 1, result.CardsLeft)
		require.NotNil(t, result.Next)
		assert.Equal(t, "p1", result.Next.ID)
	})

	t.Run("must beat last play", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠5", "♠6"),
			hand(t, "♥4", "♥6"),
			hand(t, "♣4", "♣7"),
		}, 0)

		_, err := s.Play("p0", hand(t, "♠5"))
		require.NoError(t, err)

		_, err = s.Play("p1", hand(t, "♥4"))
		assert.ErrorIs(t, err, apperrors.ErrCannotBeat)

		// 失败的出牌不改动手牌
		_, cards, err := s.HandOf("p1")
		require.NoError(t, err)
		assert.Len(t, cards, 2)

		result, err := s.Play("p1", hand(t, "♥6"))
		require.NoError(t, err)
		assert.Equal(t, 1, result.CardsLeft)
	})

	t.Run("cards not in hand rejected", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3"),
			hand(t, "♥4"),
			hand(t, "♣4"),
		}, 0)

		_, err := s.Play("p0", hand(t, "♦K"))
		assert.ErrorIs(t, err, apperrors.ErrCardsNotInHand)
	})

	t.Run("invalid combination rejected", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3", "♠5"),
			hand(t, "♥4"),
			hand(t, "♣4"),
		}, 0)

		_, err := s.Play("p0", hand(t, "♠3", "♠5"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidCards)
	})

	t.Run("play out of turn rejected", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3"),
			hand(t, "♥4"),
			hand(t, "♣4"),
		}, 0)

		_, err := s.Play("p1", hand(t, "♥4"))
		assert.ErrorIs(t, err, apperrors.ErrNotYourTurn)
	})

	t.Run("pass on own lead rejected", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3"),
			hand(t, "♥4"),
			hand(t, "♣4"),
		}, 0)

		_, err := s.PassPlay("p0")
		assert.ErrorIs(t, err, apperrors.ErrMustPlay)
	})

	t.Run("two passes hand lead back", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠5", "♠K"),
			hand(t, "♥4", "♥6"),
			hand(t, "♣4", "♣7"),
		}, 0)

		_, err := s.Play("p0", hand(t, "♠K"))
		require.NoError(t, err)

		pass1, err := s.PassPlay("p1")
		require.NoError(t, err)
		assert.False(t, pass1.NextMustPlay)

		pass2, err := s.PassPlay("p2")
		require.NoError(t, err)
		assert.Equal(t, "p0", pass2.Next.ID)
		assert.True(t, pass2.NextMustPlay)

		// 重新首出，不受上一手限制
		result, err := s.Play("p0", hand(t, "♠5"))
		require.NoError(t, err)
		assert.NotNil(t, result.GameOver)
	})

	t.Run("landlord win doubles the base", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3"),
			hand(t, "♥4", "♥6"),
			hand(t, "♣4", "♣7"),
		}, 0)

		result, err := s.Play("p0", hand(t, "♠3"))
		require.NoError(t, err)
		over := result.GameOver
		require.NotNil(t, over)

		assert.True(t, over.LandlordWin)
		assert.Equal(t, 2, over.Base)
		assert.Equal(t, PhaseFinished, s.Phase())

		deltas := map[string]int{}
		for _, score := range over.Scores {
			deltas[score.Player.ID] = score.Delta
		}
		assert.Equal(t, map[string]int{"p0": 4, "p1": -2, "p2": -2}, deltas)
	})

	t.Run("farmer win pays the landlord double", func(t *testing.T) {
		t.Parallel()
		s := playingSession(t, [3][]card.Card{
			hand(t, "♠3", "♠5"),
			hand(t, "♥4"),
			hand(t, "♣4", "♣7"),
		}, 0)

		_, err := s.Play("p0", hand(t, "♠3"))
		require.NoError(t, err)

		result, err := s.Play("p1", hand(t, "♥4"))
		require.NoError(t, err)
		over := result.GameOver
		require.NotNil(t, over)

		assert.False(t, over.LandlordWin)
		assert.Equal(t, "p1", over.Winner.ID)

		deltas := map[string]int{}
		for _, score := range over.Scores {
			deltas[score.Player.ID] = score.Delta
		}
		assert.Equal(t, map[string]int{"p0": -4, "p1": 2, "p2": 2}, deltas)
	})
}

func TestForceEnd(t *testing.T) {
	t.Parallel()

	s := newFullSession(t)
	require.NoError(t, s.ForceEnd())
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.ErrorIs(t, s.ForceEnd(), apperrors.ErrNoActiveSession)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	s := playingSession(t, [3][]card.Card{
		hand(t, "♠3", "♠5"),
		hand(t, "♥4", "♥6"),
		hand(t, "♣4", "♣7"),
	}, 1)

	_, err := s.Play("p1", hand(t, "♥6"))
	require.NoError(t, err)

	snap := s.Status()
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, "p2", snap.CurrentID)
	assert.Equal(t, "乙", snap.LandlordName)
	require.Len(t, snap.Seats, 3)
	assert.Equal(t, 1, snap.Seats[1].CardsLeft)
	require.NotNil(t, snap.LastPlay)
	assert.Equal(t, "单张", snap.LastPlay.HandType)
	assert.Equal(t, "乙", snap.LastPlay.OwnerName)
}

func TestHandOf(t *testing.T) {
	t.Parallel()

	s := newFullSession(t)
	s.players[0].Hand = hand(t, "♠3", "♠5")

	p, cards, err := s.HandOf("p0")
	require.NoError(t, err)
	assert.Equal(t, "甲", p.Name)
	assert.Len(t, cards, 2)

	// 返回的是副本
	cards[0] = card.Card{Suit: card.Joker, Rank: card.RankRedJoker}
	assert.Equal(t, card.Rank3, s.players[0].Hand[0].Rank)

	_, _, err = s.HandOf("ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotInGame)
}
