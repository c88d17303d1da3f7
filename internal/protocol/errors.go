package protocol

// 错误码
const (
	ErrCodeUnknown    = 1000
	ErrCodeInvalidMsg = 1001

	ErrCodeNoActiveSession     = 2001
	ErrCodeGameInProgress      = 2002
	ErrCodeAlreadyJoined       = 2003
	ErrCodeTableFull           = 2004
	ErrCodeInsufficientPlayers = 2005
	ErrCodeNotInGame           = 2006

	ErrCodeWrongPhase     = 3001
	ErrCodeNotYourTurn    = 3002
	ErrCodeInvalidBid     = 3003
	ErrCodeCardsNotInHand = 3004
	ErrCodeInvalidCards   = 3005
	ErrCodeCannotBeat     = 3006
	ErrCodeMustPlay       = 3007
)

// ErrorMessages 错误码对应的缺省文案
var ErrorMessages = map[int]string{
	ErrCodeUnknown:             "未知错误",
	ErrCodeInvalidMsg:          "无效的消息格式",
	ErrCodeNoActiveSession:     "当前没有进行中的游戏",
	ErrCodeGameInProgress:      "游戏已经在进行中",
	ErrCodeAlreadyJoined:       "您已经在游戏中了",
	ErrCodeTableFull:           "游戏人数已满",
	ErrCodeInsufficientPlayers: "玩家数量不足",
	ErrCodeNotInGame:           "您不在当前游戏中",
	ErrCodeWrongPhase:          "当前阶段不能进行该操作",
	ErrCodeNotYourTurn:         "还没轮到您",
	ErrCodeInvalidBid:          "无效的叫分",
	ErrCodeCardsNotInHand:      "您的手牌中没有这些牌",
	ErrCodeInvalidCards:        "无效的牌型",
	ErrCodeCannotBeat:          "您的牌大不过上家",
	ErrCodeMustPlay:            "您必须出牌",
}
