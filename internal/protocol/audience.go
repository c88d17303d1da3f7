package protocol

// AudienceScope 投递范围提示。引擎只标记该把结果发给谁，
// 真正的群发/私发由外层传输层完成。
type AudienceScope int

const (
	ScopeRoom   AudienceScope = iota // 广播给整个房间
	ScopePlayer                      // 私发给指定玩家
)

// Audience 投递目标
type Audience struct {
	Scope    AudienceScope
	PlayerID string // 仅 ScopePlayer 时有效
}

// BroadcastToRoom 广播给房间内所有玩家
func BroadcastToRoom() Audience {
	return Audience{Scope: ScopeRoom}
}

// PrivateToPlayer 私发给指定玩家
func PrivateToPlayer(playerID string) Audience {
	return Audience{Scope: ScopePlayer, PlayerID: playerID}
}

// Envelope 带投递目标的消息
type Envelope struct {
	Audience Audience
	Message  *Message
}
