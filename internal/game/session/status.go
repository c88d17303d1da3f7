package session

import (
	"slices"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
)

// SeatInfo 状态快照中的座位信息
type SeatInfo struct {
	ID         string
	Name       string
	Seat       int
	CardsLeft  int
	IsLandlord bool
}

// LastPlaySnapshot 状态快照中的上一手牌
type LastPlaySnapshot struct {
	OwnerID   string
	OwnerName string
	Cards     []card.Card
	HandType  string
}

// Snapshot 对局状态的只读快照，取快照不会改动任何状态
type Snapshot struct {
	Room          string
	Phase         Phase
	Seats         []SeatInfo
	CurrentID     string
	CurrentName   string
	HighestBid    int
	HighestBidder string
	LandlordID    string
	LandlordName  string
	LastPlay      *LastPlaySnapshot
}

// Status 返回对局状态快照
func (s *Session) Status() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		Room:       s.Room,
		Phase:      s.phase,
		Seats:      make([]SeatInfo, len(s.players)),
		HighestBid: s.highestBid,
	}
	for i, p := range s.players {
		snap.Seats[i] = SeatInfo{
			ID:         p.ID,
			Name:       p.Name,
			Seat:       p.Seat,
			CardsLeft:  len(p.Hand),
			IsLandlord: p.IsLandlord,
		}
	}
	if s.phase == PhaseBidding || s.phase == PhasePlaying {
		snap.CurrentID = s.current().ID
		snap.CurrentName = s.current().Name
	}
	if s.highestBidder >= 0 {
		snap.HighestBidder = s.players[s.highestBidder].Name
	}
	if s.landlord >= 0 {
		snap.LandlordID = s.players[s.landlord].ID
		snap.LandlordName = s.players[s.landlord].Name
	}
	if !s.lastPlay.IsEmpty() && s.lastOwner >= 0 {
		owner := s.players[s.lastOwner]
		snap.LastPlay = &LastPlaySnapshot{
			OwnerID:   owner.ID,
			OwnerName: owner.Name,
			Cards:     slices.Clone(s.lastPlay.Cards),
			HandType:  s.lastPlay.Type.String(),
		}
	}
	return snap
}

// HandOf 返回指定玩家的手牌副本
func (s *Session) HandOf(playerID string) (*Player, []card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seat := s.seatOf(playerID)
	if seat < 0 {
		return nil, nil, apperrors.ErrNotInGame
	}
	p := s.players[seat]
	return p, slices.Clone(p.Hand), nil
}
