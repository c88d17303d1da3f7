package protocol

import "encoding/json"

// Message 基础消息结构
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType 消息类型
type MessageType string

// 客户端 → 服务端 消息类型
const (
	MsgCommand MessageType = "command" // 聊天指令，如 "出牌 ♠3"
	MsgPing    MessageType = "ping"    // 心跳 ping
)

// 服务端 → 客户端 消息类型
const (
	MsgWelcome MessageType = "welcome" // 连接成功
	MsgPong    MessageType = "pong"    // 心跳 pong
	MsgHelp    MessageType = "help"    // 帮助文案

	// 游戏流程
	MsgGameCreated  MessageType = "game_created"  // 游戏已创建
	MsgPlayerJoined MessageType = "player_joined" // 玩家加入
	MsgDealCards    MessageType = "deal_cards"    // 发牌（私发）
	MsgBidTurn      MessageType = "bid_turn"      // 轮到叫分
	MsgBidPlaced    MessageType = "bid_placed"    // 有人叫分
	MsgBidPassed    MessageType = "bid_passed"    // 有人不叫
	MsgRedeal       MessageType = "redeal"        // 流局重新发牌
	MsgLandlord     MessageType = "landlord"      // 地主确定
	MsgPlayTurn     MessageType = "play_turn"     // 轮到出牌
	MsgCardPlayed   MessageType = "card_played"   // 有人出牌
	MsgPlayerPass   MessageType = "player_pass"   // 有人不出
	MsgGameOver     MessageType = "game_over"     // 游戏结束
	MsgSessionEnded MessageType = "session_ended" // 游戏被强制结束

	// 查询
	MsgStatus MessageType = "status" // 游戏状态
	MsgHand   MessageType = "hand"   // 手牌（私发）

	// 错误
	MsgError MessageType = "error" // 错误消息
)
