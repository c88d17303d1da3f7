package protocol

import (
	"github.com/ZydFirst/doudizhu/internal/game/card"
)

// CardInfo 牌的传输表示
type CardInfo struct {
	Suit    int    `json:"suit"`
	Rank    int    `json:"rank"`
	Display string `json:"display"`
}

// CardToInfo 转换单张牌
func CardToInfo(c card.Card) CardInfo {
	return CardInfo{Suit: int(c.Suit), Rank: int(c.Rank), Display: c.String()}
}

// CardsToInfos 转换一组牌
func CardsToInfos(cards []card.Card) []CardInfo {
	infos := make([]CardInfo, len(cards))
	for i, c := range cards {
		infos[i] = CardToInfo(c)
	}
	return infos
}

// CommandPayload 聊天指令
type CommandPayload struct {
	Text string `json:"text"`
}

// WelcomePayload 连接成功
type WelcomePayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Room       string `json:"room"`
}

// HelpPayload 帮助文案
type HelpPayload struct {
	Text string `json:"text"`
}

// GameCreatedPayload 游戏创建成功
type GameCreatedPayload struct {
	Room        string `json:"room"`
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	PlayerCount int    `json:"player_count"`
}

// PlayerJoinedPayload 玩家加入
type PlayerJoinedPayload struct {
	PlayerID    string `json:"player_id"`
	PlayerName  string `json:"player_name"`
	PlayerCount int    `json:"player_count"`
}

// DealCardsPayload 发牌（私发给每位玩家）
type DealCardsPayload struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
}

// BidTurnPayload 轮到叫分
type BidTurnPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	HighestBid int    `json:"highest_bid"`
}

// BidPlacedPayload 有人叫分
type BidPlacedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Amount     int    `json:"amount"`
}

// BidPassedPayload 有人不叫
type BidPassedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// RedealPayload 无人叫分，流局重发
type RedealPayload struct{}

// LandlordPayload 地主确定
type LandlordPayload struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Bid        int        `json:"bid"`
	Kitty      []CardInfo `json:"kitty"`
}

// PlayTurnPayload 轮到出牌
type PlayTurnPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	MustPlay   bool   `json:"must_play"` // 本手为首出，不能过牌
}

// CardPlayedPayload 有人出牌
type CardPlayedPayload struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
	HandType   string     `json:"hand_type"`
	CardsLeft  int        `json:"cards_left"`
}

// PlayerPassPayload 有人不出
type PlayerPassPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerScore 单个玩家的本局得分变动
type PlayerScore struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	IsLandlord bool   `json:"is_landlord"`
	Delta      int    `json:"delta"`
}

// GameOverPayload 游戏结束
type GameOverPayload struct {
	WinnerID   string        `json:"winner_id"`
	WinnerName string        `json:"winner_name"`
	IsLandlord bool          `json:"is_landlord"`
	BaseScore  int           `json:"base_score"`
	Scores     []PlayerScore `json:"scores"`
}

// SessionEndedPayload 游戏被强制结束
type SessionEndedPayload struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

// PlayerInfo 座位上的玩家信息
type PlayerInfo struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	Seat       int    `json:"seat"`
	CardsLeft  int    `json:"cards_left"`
	IsLandlord bool   `json:"is_landlord"`
}

// LastPlayInfo 上一手牌
type LastPlayInfo struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
	HandType   string     `json:"hand_type"`
}

// StatusPayload 游戏状态快照
type StatusPayload struct {
	Phase          string        `json:"phase"`
	Players        []PlayerInfo  `json:"players"`
	CurrentID      string        `json:"current_id,omitempty"`
	CurrentName    string        `json:"current_name,omitempty"`
	HighestBid     int           `json:"highest_bid"`
	HighestBidder  string        `json:"highest_bidder,omitempty"`
	LandlordID     string        `json:"landlord_id,omitempty"`
	LandlordName   string        `json:"landlord_name,omitempty"`
	LastPlay       *LastPlayInfo `json:"last_play,omitempty"`
}

// HandPayload 手牌（私发）
type HandPayload struct {
	PlayerID   string     `json:"player_id"`
	PlayerName string     `json:"player_name"`
	Cards      []CardInfo `json:"cards"`
}

// ErrorPayload 错误消息
type ErrorPayload struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
