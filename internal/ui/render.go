package ui

import (
	"fmt"
	"strings"

	"github.com/ZydFirst/doudizhu/internal/logger"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
	"github.com/ZydFirst/doudizhu/internal/sound"
)

// handleServer 把一条服务器消息渲染成聊天行
func (m *Model) handleServer(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgWelcome:
		var p protocol.WelcomePayload
		if !m.decode(msg, &p) {
			return
		}
		m.playerID = p.PlayerID
		m.appendLine(fmt.Sprintf("✅ 已进入房间 %s，你是 %s", p.Room, p.PlayerName))

	case protocol.MsgHelp:
		var p protocol.HelpPayload
		if !m.decode(msg, &p) {
			return
		}
		for _, line := range strings.Split(strings.TrimRight(p.Text, "\n"), "\n") {
			m.appendLine(systemStyle.Render(line))
		}

	case protocol.MsgGameCreated:
		var p protocol.GameCreatedPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("🎮 游戏创建成功！%s 已入座（%d/3），发送\"加入\"上桌", p.PlayerName, p.PlayerCount))

	case protocol.MsgPlayerJoined:
		var p protocol.PlayerJoinedPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("👤 %s 加入了游戏（%d/3）", p.PlayerName, p.PlayerCount))

	case protocol.MsgDealCards:
		var p protocol.DealCardsPayload
		if !m.decode(msg, &p) {
			return
		}
		m.sounds.Play(sound.EventDeal)
		m.appendLine("🀄 你的手牌：")
		m.appendLine(renderCards(p.Cards))

	case protocol.MsgBidTurn:
		var p protocol.BidTurnPayload
		if !m.decode(msg, &p) {
			return
		}
		line := fmt.Sprintf("📢 轮到 %s 叫分（当前最高 %d 分）", p.PlayerName, p.HighestBid)
		if p.PlayerID == m.playerID {
			line += "，发送\"叫分 1/2/3\"或\"不叫\""
		}
		m.appendLine(line)

	case protocol.MsgBidPlaced:
		var p protocol.BidPlacedPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("💰 %s 叫了 %d 分", p.PlayerName, p.Amount))

	case protocol.MsgBidPassed:
		var p protocol.BidPassedPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("🙅 %s 不叫", p.PlayerName))

	case protocol.MsgRedeal:
		m.appendLine("🔄 无人叫分，重新发牌！")

	case protocol.MsgLandlord:
		var p protocol.LandlordPayload
		if !m.decode(msg, &p) {
			return
		}
		m.sounds.Play(sound.EventLandlord)
		m.appendLine(fmt.Sprintf("%s %s 成为地主（%d 分），底牌：%s",
			LandlordIcon, p.PlayerName, p.Bid, renderCards(p.Kitty)))

	case protocol.MsgPlayTurn:
		var p protocol.PlayTurnPayload
		if !m.decode(msg, &p) {
			return
		}
		line := fmt.Sprintf("📢 轮到 %s 出牌", p.PlayerName)
		if p.PlayerID == m.playerID {
			if p.MustPlay {
				line += "（首出，不能\"不出\"）"
			} else {
				line += "，发送\"出牌 ...\"或\"不出\""
			}
		}
		m.appendLine(line)

	case protocol.MsgCardPlayed:
		var p protocol.CardPlayedPayload
		if !m.decode(msg, &p) {
			return
		}
		if p.HandType == "火箭" || p.HandType == "炸弹" {
			m.sounds.Play(sound.EventBomb)
		} else {
			m.sounds.Play(sound.EventPlay)
		}
		m.appendLine(fmt.Sprintf("🃏 %s 打出 [%s] %s（剩 %d 张）",
			p.PlayerName, p.HandType, renderCards(p.Cards), p.CardsLeft))

	case protocol.MsgPlayerPass:
		var p protocol.PlayerPassPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("➡️ %s 不出", p.PlayerName))

	case protocol.MsgGameOver:
		var p protocol.GameOverPayload
		if !m.decode(msg, &p) {
			return
		}
		m.renderGameOver(p)

	case protocol.MsgSessionEnded:
		var p protocol.SessionEndedPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("🛑 %s 结束了本局游戏", p.PlayerName))

	case protocol.MsgStatus:
		var p protocol.StatusPayload
		if !m.decode(msg, &p) {
			return
		}
		m.renderStatus(p)

	case protocol.MsgHand:
		var p protocol.HandPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(fmt.Sprintf("🀄 你的手牌（%d 张）：", len(p.Cards)))
		m.appendLine(renderCards(p.Cards))

	case protocol.MsgError:
		var p protocol.ErrorPayload
		if !m.decode(msg, &p) {
			return
		}
		m.appendLine(errorStyle.Render("❌ " + p.Message))

	case protocol.MsgPong:
		// 心跳应答，不展示
	}
}

func (m *Model) renderGameOver(p protocol.GameOverPayload) {
	role := FarmerIcon + " 农民"
	if p.IsLandlord {
		role = LandlordIcon + " 地主"
	}
	won := false
	for _, s := range p.Scores {
		if s.PlayerID == m.playerID && s.Delta > 0 {
			won = true
		}
	}
	if won {
		m.sounds.Play(sound.EventWin)
	} else {
		m.sounds.Play(sound.EventLose)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 游戏结束！%s %s 获胜（底分 %d）\n", role, p.WinnerName, p.BaseScore))
	for _, s := range p.Scores {
		icon := FarmerIcon
		if s.IsLandlord {
			icon = LandlordIcon
		}
		sb.WriteString(fmt.Sprintf("%s %s %+d\n", icon, s.PlayerName, s.Delta))
	}
	m.appendLine(boxStyle.Render(strings.TrimRight(sb.String(), "\n")))
}

func (m *Model) renderStatus(p protocol.StatusPayload) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 阶段：%s\n", p.Phase))
	for _, player := range p.Players {
		icon := FarmerIcon
		if player.IsLandlord {
			icon = LandlordIcon
		}
		marker := " "
		if player.PlayerID == p.CurrentID {
			marker = "▶"
		}
		sb.WriteString(fmt.Sprintf("%s %s %s 剩 %d 张\n", marker, icon, player.PlayerName, player.CardsLeft))
	}
	if p.HighestBid > 0 && p.LandlordID == "" {
		sb.WriteString(fmt.Sprintf("当前最高叫分：%d\n", p.HighestBid))
	}
	if p.LastPlay != nil {
		sb.WriteString(fmt.Sprintf("上一手：%s [%s] %s\n",
			p.LastPlay.PlayerName, p.LastPlay.HandType, renderCards(p.LastPlay.Cards)))
	}
	m.appendLine(boxStyle.Render(strings.TrimRight(sb.String(), "\n")))
}

func (m *Model) decode(msg *protocol.Message, v any) bool {
	if err := codec.DecodePayload(msg, v); err != nil {
		logger.LogError("解析 %s 消息失败: %v", msg.Type, err)
		return false
	}
	return true
}
