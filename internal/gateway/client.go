package gateway

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ZydFirst/doudizhu/internal/logger"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// Client 网关侧的一个连接，也就是房间里的一位玩家
type Client struct {
	ID   string
	Name string
	Room string

	server *Server
	conn   *websocket.Conn
	send   chan []byte
}

// NewClient 创建客户端，没有显示名时生成一个
func NewClient(s *Server, conn *websocket.Conn, room, name string) *Client {
	if name == "" {
		name = fmt.Sprintf("游客%04d", rand.IntN(10000))
	}
	return &Client{
		ID:     uuid.NewString(),
		Name:   name,
		Room:   room,
		server: s,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// SendMessage 把消息排进发送队列，队列满了直接丢弃
func (c *Client) SendMessage(msg *protocol.Message) {
	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("编码消息失败: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("玩家 %s 的发送队列已满，消息被丢弃", c.ID)
	}
}

// ReadPump 读取客户端消息并分发指令
func (c *Client) ReadPump() {
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.server.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("玩家 %s 连接异常断开: %v", c.ID, err)
			}
			return
		}

		msg, err := codec.Decode(data)
		if err != nil {
			c.sendError(protocol.ErrCodeInvalidMsg, protocol.ErrorMessages[protocol.ErrCodeInvalidMsg])
			continue
		}

		switch msg.Type {
		case protocol.MsgPing:
			c.SendMessage(codec.MustNewMessage(protocol.MsgPong, nil))
		case protocol.MsgCommand:
			var payload protocol.CommandPayload
			if err := codec.DecodePayload(msg, &payload); err != nil {
				c.sendError(protocol.ErrCodeInvalidMsg, protocol.ErrorMessages[protocol.ErrCodeInvalidMsg])
				continue
			}
			c.server.dispatch(c, payload.Text)
		}
	}
}

// WritePump 把队列里的消息写到连接上，并定期发心跳
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// sendError 私发一条错误消息
func (c *Client) sendError(code int, message string) {
	c.SendMessage(codec.MustNewMessage(protocol.MsgError, protocol.ErrorPayload{
		Code:    code,
		Message: message,
	}))
}
