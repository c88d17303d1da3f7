package engine

import (
	"log"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/card"
	"github.com/ZydFirst/doudizhu/internal/protocol"
)

// Bid 叫分
func (e *Engine) Bid(room, playerID string, amount int) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	result, err := s.Bid(playerID, amount)
	if err != nil {
		return nil, err
	}

	envelopes := []protocol.Envelope{broadcast(protocol.MsgBidPlaced, protocol.BidPlacedPayload{
		PlayerID:   result.Bidder.ID,
		PlayerName: result.Bidder.Name,
		Amount:     result.Amount,
	})}

	if result.Landlord != nil {
		log.Printf("👑 房间 %s：%s 以 %d 分成为地主", room, result.Landlord.Player.Name, result.Landlord.Bid)
		return append(envelopes, landlordEnvelopes(result.Landlord)...), nil
	}

	return append(envelopes, broadcast(protocol.MsgBidTurn, protocol.BidTurnPayload{
		PlayerID:   result.Next.ID,
		PlayerName: result.Next.Name,
		HighestBid: result.Amount,
	})), nil
}

// PassBid 不叫
func (e *Engine) PassBid(room, playerID string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	result, err := s.PassBid(playerID)
	if err != nil {
		return nil, err
	}

	envelopes := []protocol.Envelope{broadcast(protocol.MsgBidPassed, protocol.BidPassedPayload{
		PlayerID:   result.Passer.ID,
		PlayerName: result.Passer.Name,
	})}

	switch {
	case result.Redeal != nil:
		log.Printf("🔄 房间 %s 无人叫分，重新发牌", room)
		envelopes = append(envelopes, broadcast(protocol.MsgRedeal, protocol.RedealPayload{}))
		envelopes = append(envelopes, dealEnvelopes(result.Redeal, 0)...)
	case result.Landlord != nil:
		log.Printf("👑 房间 %s：%s 以 %d 分成为地主", room, result.Landlord.Player.Name, result.Landlord.Bid)
		envelopes = append(envelopes, landlordEnvelopes(result.Landlord)...)
	default:
		envelopes = append(envelopes, broadcast(protocol.MsgBidTurn, protocol.BidTurnPayload{
			PlayerID:   result.Next.ID,
			PlayerName: result.Next.Name,
			HighestBid: result.HighestBid,
		}))
	}
	return envelopes, nil
}

// Play 出牌。牌面标记在这里解析，引擎内部只处理结构化的牌。
func (e *Engine) Play(room, playerID string, tokens []string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	// 原样解析标记，认不出的标记当作手里没有的牌
	cards, err := card.ParseTokens(tokens)
	if err != nil {
		return nil, apperrors.ErrCardsNotInHand
	}

	result, err := s.Play(playerID, cards)
	if err != nil {
		return nil, err
	}

	envelopes := []protocol.Envelope{broadcast(protocol.MsgCardPlayed, protocol.CardPlayedPayload{
		PlayerID:   result.Player.ID,
		PlayerName: result.Player.Name,
		Cards:      protocol.CardsToInfos(result.Hand.Cards),
		HandType:   result.Hand.Type.String(),
		CardsLeft:  result.CardsLeft,
	})}

	if result.GameOver != nil {
		over := result.GameOver
		role := "农民"
		if over.LandlordWin {
			role = "地主"
		}
		log.Printf("🎉 房间 %s 游戏结束，%s (%s) 获胜", room, over.Winner.Name, role)

		payload := protocol.GameOverPayload{
			WinnerID:   over.Winner.ID,
			WinnerName: over.Winner.Name,
			IsLandlord: over.LandlordWin,
			BaseScore:  over.Base,
			Scores:     make([]protocol.PlayerScore, len(over.Scores)),
		}
		for i, score := range over.Scores {
			payload.Scores[i] = protocol.PlayerScore{
				PlayerID:   score.Player.ID,
				PlayerName: score.Player.Name,
				IsLandlord: score.Player.IsLandlord,
				Delta:      score.Delta,
			}
		}
		e.recordResults(room, over)
		return append(envelopes, broadcast(protocol.MsgGameOver, payload)), nil
	}

	return append(envelopes, broadcast(protocol.MsgPlayTurn, protocol.PlayTurnPayload{
		PlayerID:   result.Next.ID,
		PlayerName: result.Next.Name,
	})), nil
}

// PassPlay 不出
func (e *Engine) PassPlay(room, playerID string) ([]protocol.Envelope, error) {
	s, err := e.registry.Lookup(room)
	if err != nil {
		return nil, err
	}

	result, err := s.PassPlay(playerID)
	if err != nil {
		return nil, err
	}

	return []protocol.Envelope{
		broadcast(protocol.MsgPlayerPass, protocol.PlayerPassPayload{
			PlayerID:   result.Passer.ID,
			PlayerName: result.Passer.Name,
		}),
		broadcast(protocol.MsgPlayTurn, protocol.PlayTurnPayload{
			PlayerID:   result.Next.ID,
			PlayerName: result.Next.Name,
			MustPlay:   result.NextMustPlay,
		}),
	}, nil
}
