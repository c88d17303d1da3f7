package gateway

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
)

// commandKind 聊天指令种类
type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdHelp
	cmdCreate
	cmdJoin
	cmdBegin
	cmdBid
	cmdPassBid
	cmdPlay
	cmdPassPlay
	cmdHand
	cmdStatus
	cmdEnd
)

// command 解析后的聊天指令
type command struct {
	kind   commandKind
	amount int      // 仅叫分
	tokens []string // 仅出牌
}

// parseCommand 把一行聊天文本解析为指令。
// 不认识的文本返回 cmdUnknown，房间里的闲聊不是错误。
func parseCommand(text string) (command, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return command{}, nil
	}

	switch fields[0] {
	case "斗地主帮助":
		return command{kind: cmdHelp}, nil
	case "斗地主":
		return command{kind: cmdCreate}, nil
	case "加入":
		return command{kind: cmdJoin}, nil
	case "开始":
		return command{kind: cmdBegin}, nil
	case "叫分":
		if len(fields) != 2 {
			return command{}, fmt.Errorf("请正确输入叫分，格式为 '叫分 数字'")
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return command{}, fmt.Errorf("请正确输入叫分，格式为 '叫分 数字'")
		}
		return command{kind: cmdBid, amount: amount}, nil
	case "不叫":
		return command{kind: cmdPassBid}, nil
	case "出牌":
		if len(fields) < 2 {
			return command{}, fmt.Errorf("请正确输入出牌，格式为 '出牌 牌1 牌2 ...'")
		}
		return command{kind: cmdPlay, tokens: fields[1:]}, nil
	case "不出":
		return command{kind: cmdPassPlay}, nil
	case "手牌":
		return command{kind: cmdHand}, nil
	case "状态":
		return command{kind: cmdStatus}, nil
	case "结束游戏":
		return command{kind: cmdEnd}, nil
	}
	return command{kind: cmdUnknown}, nil
}

// dispatch 执行一条聊天指令并路由结果
func (s *Server) dispatch(c *Client, text string) {
	cmd, err := parseCommand(text)
	if err != nil {
		c.sendError(protocol.ErrCodeInvalidMsg, err.Error())
		return
	}

	var envelopes []protocol.Envelope
	switch cmd.kind {
	case cmdHelp:
		c.SendMessage(codec.MustNewMessage(protocol.MsgHelp, protocol.HelpPayload{Text: helpText}))
		return
	case cmdCreate:
		envelopes, err = s.engine.CreateSession(c.Room, c.ID, c.Name)
	case cmdJoin:
		envelopes, err = s.engine.JoinSession(c.Room, c.ID, c.Name)
	case cmdBegin:
		envelopes, err = s.engine.BeginSession(c.Room, c.ID)
	case cmdBid:
		envelopes, err = s.engine.Bid(c.Room, c.ID, cmd.amount)
	case cmdPassBid:
		envelopes, err = s.engine.PassBid(c.Room, c.ID)
	case cmdPlay:
		envelopes, err = s.engine.Play(c.Room, c.ID, cmd.tokens)
	case cmdPassPlay:
		envelopes, err = s.engine.PassPlay(c.Room, c.ID)
	case cmdHand:
		envelopes, err = s.engine.QueryHand(c.Room, c.ID)
	case cmdStatus:
		envelopes, err = s.engine.QueryStatus(c.Room)
	case cmdEnd:
		envelopes, err = s.engine.ForceEnd(c.Room, c.ID, c.Name)
	default:
		return // 普通聊天内容，不处理
	}

	if err != nil {
		var gameErr *apperrors.GameError
		if errors.As(err, &gameErr) {
			c.sendError(gameErr.Code, gameErr.Message)
		} else {
			c.sendError(protocol.ErrCodeUnknown, protocol.ErrorMessages[protocol.ErrCodeUnknown])
		}
		return
	}

	s.deliver(c.Room, envelopes)
}
