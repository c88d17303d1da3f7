// Package engine is the single entry point the chat layer calls into:
// one operation per player action, each returning audience-tagged
// envelopes the caller routes to the room or to a single player.
package engine

import (
	"context"
	"log"
	"time"

	"github.com/ZydFirst/doudizhu/internal/game/registry"
	"github.com/ZydFirst/doudizhu/internal/game/session"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
)

// Leaderboard 战绩记录接口，由存储层实现
type Leaderboard interface {
	RecordGameResult(ctx context.Context, playerID, playerName string, isLandlord, isWinner bool, delta int) error
}

// Engine 游戏引擎门面
type Engine struct {
	registry    *registry.Registry
	leaderboard Leaderboard // 可以为 nil，表示不记录战绩
}

// New 创建引擎
func New(reg *registry.Registry, lb Leaderboard) *Engine {
	return &Engine{registry: reg, leaderboard: lb}
}

// CreateSession 创建对局，发起者自动加入
func (e *Engine) CreateSession(room, playerID, playerName string) ([]protocol.Envelope, error) {
	if _, err := e.registry.Create(room, playerID, playerName); err != nil {
		return nil, err
	}

	log.Printf("🏠 房间 %s 由 %s 发起了斗地主", room, playerName)

	return []protocol.Envelope{broadcast(protocol.MsgGameCreated, protocol.GameCreatedPayload{
		Room:        room,
		PlayerID:    playerID,
		PlayerName:  playerName,
		PlayerCount: 1,
	})}, nil
}

// JoinSession 加入对局
func (e *Engine) JoinSession(room, playerID, playerName string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	player, count, err := s.Join(playerID, playerName)
	if err != nil {
		return nil, err
	}

	log.Printf("👤 玩家 %s 加入房间 %s (%d/3)", playerName, room, count)

	return []protocol.Envelope{broadcast(protocol.MsgPlayerJoined, protocol.PlayerJoinedPayload{
		PlayerID:    player.ID,
		PlayerName:  player.Name,
		PlayerCount: count,
	})}, nil
}

// BeginSession 开局：发牌并进入叫分阶段。
// 每位玩家的手牌私发，起叫通知广播。
func (e *Engine) BeginSession(room, playerID string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	deal, err := s.Begin()
	if err != nil {
		return nil, err
	}

	log.Printf("🎮 房间 %s 开局，%s 先叫分", room, deal.FirstBidder.Name)
	return dealEnvelopes(deal, 0), nil
}

// ForceEnd 强制结束对局
func (e *Engine) ForceEnd(room, playerID, playerName string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}
	if err := s.ForceEnd(); err != nil {
		return nil, err
	}

	log.Printf("🛑 房间 %s 的对局被 %s 强制结束", room, playerName)

	return []protocol.Envelope{broadcast(protocol.MsgSessionEnded, protocol.SessionEndedPayload{
		PlayerID:   playerID,
		PlayerName: playerName,
	})}, nil
}

// QueryStatus 查询对局状态，只读
func (e *Engine) QueryStatus(room string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	snap := s.Status()
	payload := protocol.StatusPayload{
		Phase:         snap.Phase.String(),
		Players:       make([]protocol.PlayerInfo, len(snap.Seats)),
		CurrentID:     snap.CurrentID,
		CurrentName:   snap.CurrentName,
		HighestBid:    snap.HighestBid,
		HighestBidder: snap.HighestBidder,
		LandlordID:    snap.LandlordID,
		LandlordName:  snap.LandlordName,
	}
	for i, seat := range snap.Seats {
		payload.Players[i] = protocol.PlayerInfo{
			PlayerID:   seat.ID,
			PlayerName: seat.Name,
			Seat:       seat.Seat,
			CardsLeft:  seat.CardsLeft,
			IsLandlord: seat.IsLandlord,
		}
	}
	if snap.LastPlay != nil {
		payload.LastPlay = &protocol.LastPlayInfo{
			PlayerID:   snap.LastPlay.OwnerID,
			PlayerName: snap.LastPlay.OwnerName,
			Cards:      protocol.CardsToInfos(snap.LastPlay.Cards),
			HandType:   snap.LastPlay.HandType,
		}
	}

	return []protocol.Envelope{broadcast(protocol.MsgStatus, payload)}, nil
}

// QueryHand 查询自己的手牌，结果私发
func (e *Engine) QueryHand(room, playerID string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	player, cards, err := s.HandOf(playerID)
	if err != nil {
		return nil, err
	}

	return []protocol.Envelope{private(playerID, protocol.MsgHand, protocol.HandPayload{
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Cards:      protocol.CardsToInfos(cards),
	})}, nil
}

// recordResults 异步记录战绩
func (e *Engine) recordResults(room string, over *session.GameOverResult) {
	if e.leaderboard == nil {
		return
	}

	scores := over.Scores
	landlordWin := over.LandlordWin
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		for _, score := range scores {
			p := score.Player
			isWinner := landlordWin == p.IsLandlord
			if err := e.leaderboard.RecordGameResult(ctx, p.ID, p.Name, p.IsLandlord, isWinner, score.Delta); err != nil {
				log.Printf("记录房间 %s 战绩失败: %v", room, err)
			}
		}
	}()
}

// broadcast 打包一条广播消息
func broadcast(msgType protocol.MessageType, payload any) protocol.Envelope {
	return protocol.Envelope{
		Audience: protocol.BroadcastToRoom(),
		Message:  codec.MustNewMessage(msgType, payload),
	}
}

// private 打包一条私发消息
func private(playerID string, msgType protocol.MessageType, payload any) protocol.Envelope {
	return protocol.Envelope{
		Audience: protocol.PrivateToPlayer(playerID),
		Message:  codec.MustNewMessage(msgType, payload),
	}
}

// dealEnvelopes 发牌结果的投递：手牌逐个私发，起叫通知广播
func dealEnvelopes(deal *session.DealResult, highestBid int) []protocol.Envelope {
	envelopes := make([]protocol.Envelope, 0, len(deal.Hands)+1)
	for _, hand := range deal.Hands {
		envelopes = append(envelopes, private(hand.Player.ID, protocol.MsgDealCards, protocol.DealCardsPayload{
			PlayerID:   hand.Player.ID,
			PlayerName: hand.Player.Name,
			Cards:      protocol.CardsToInfos(hand.Cards),
		}))
	}
	envelopes = append(envelopes, broadcast(protocol.MsgBidTurn, protocol.BidTurnPayload{
		PlayerID:   deal.FirstBidder.ID,
		PlayerName: deal.FirstBidder.Name,
		HighestBid: highestBid,
	}))
	return envelopes
}

// landlordEnvelopes 地主确定后的投递：结果广播，更新后的手牌私发给地主
func landlordEnvelopes(landlord *session.LandlordResult) []protocol.Envelope {
	return []protocol.Envelope{
		broadcast(protocol.MsgLandlord, protocol.LandlordPayload{
			PlayerID:   landlord.Player.ID,
			PlayerName: landlord.Player.Name,
			Bid:        landlord.Bid,
			Kitty:      protocol.CardsToInfos(landlord.Kitty),
		}),
		private(landlord.Player.ID, protocol.MsgHand, protocol.HandPayload{
			PlayerID:   landlord.Player.ID,
			PlayerName: landlord.Player.Name,
			Cards:      protocol.CardsToInfos(landlord.Hand),
		}),
		broadcast(protocol.MsgPlayTurn, protocol.PlayTurnPayload{
			PlayerID:   landlord.Player.ID,
			PlayerName: landlord.Player.Name,
			MustPlay:   true,
		}),
	}
}
