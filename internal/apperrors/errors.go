package apperrors

import (
	"github.com/ZydFirst/doudizhu/internal/protocol"
)

// GameError 游戏错误，所有玩家可见的拒绝原因都用它表达
type GameError struct {
	Code    int
	Message string
}

func (e *GameError) Error() string {
	return e.Message
}

// 预定义错误
var (
	ErrNoActiveSession     = &GameError{Code: protocol.ErrCodeNoActiveSession, Message: "当前没有进行中的游戏"}
	ErrGameInProgress      = &GameError{Code: protocol.ErrCodeGameInProgress, Message: "游戏已经在进行中"}
	ErrWrongPhase          = &GameError{Code: protocol.ErrCodeWrongPhase, Message: "当前阶段不能进行该操作"}
	ErrNotYourTurn         = &GameError{Code: protocol.ErrCodeNotYourTurn, Message: "还没轮到您"}
	ErrAlreadyJoined       = &GameError{Code: protocol.ErrCodeAlreadyJoined, Message: "您已经在游戏中了"}
	ErrTableFull           = &GameError{Code: protocol.ErrCodeTableFull, Message: "游戏人数已满（3人），无法加入"}
	ErrInsufficientPlayers = &GameError{Code: protocol.ErrCodeInsufficientPlayers, Message: "玩家数量不足，需要3名玩家"}
	ErrNotInGame           = &GameError{Code: protocol.ErrCodeNotInGame, Message: "您不在当前游戏中"}
	ErrInvalidBid          = &GameError{Code: protocol.ErrCodeInvalidBid, Message: "叫分必须在1-3分之间且高于当前最高分"}
	ErrCardsNotInHand      = &GameError{Code: protocol.ErrCodeCardsNotInHand, Message: "您的手牌中没有这些牌"}
	ErrInvalidCards        = &GameError{Code: protocol.ErrCodeInvalidCards, Message: "出牌不符合规则，请重新出牌"}
	ErrCannotBeat          = &GameError{Code: protocol.ErrCodeCannotBeat, Message: "您的牌无法大过上一手牌"}
	ErrMustPlay            = &GameError{Code: protocol.ErrCodeMustPlay, Message: "您必须出牌"}
)
