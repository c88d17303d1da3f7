// Package netclient is the client-side WebSocket wrapper for the
// gateway: it dials, pumps messages, and hands decoded protocol
// messages to the UI over a channel.
package netclient

import (
	"fmt"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ZydFirst/doudizhu/internal/logger"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client 网关客户端
type Client struct {
	serverURL string
	room      string
	name      string

	conn    *websocket.Conn
	send    chan []byte
	Receive chan *protocol.Message

	// 连接断开时的回调
	OnClose func(error)

	mu     sync.Mutex
	closed bool
}

// New 创建客户端
func New(serverURL, room, name string) *Client {
	return &Client{
		serverURL: serverURL,
		room:      room,
		name:      name,
		send:      make(chan []byte, 256),
		Receive:   make(chan *protocol.Message, 256),
	}
}

// Connect 连接服务器并启动读写协程
func (c *Client) Connect() error {
	u, err := url.Parse(c.serverURL)
	if err != nil {
		return fmt.Errorf("无效的服务器地址: %w", err)
	}
	query := u.Query()
	query.Set("room", c.room)
	query.Set("name", c.name)
	u.RawQuery = query.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.Dial(u.String(), nil)
	if err != nil {
		return err
	}
	c.conn = conn

	go c.readPump()
	go c.writePump()
	return nil
}

// SendCommand 发送一条聊天指令
func (c *Client) SendCommand(text string) {
	msg := codec.MustNewMessage(protocol.MsgCommand, protocol.CommandPayload{Text: text})
	data, err := codec.Encode(msg)
	if err != nil {
		log.Printf("编码指令失败: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		log.Printf("发送队列已满，指令被丢弃")
	}
}

// Close 关闭连接
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
	if c.conn != nil {
		_ = c.conn.Close()
	}
}

// readPump 从服务器读取消息并解码到 Receive
func (c *Client) readPump() {
	var closeErr error
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
		}
		c.Close()
		close(c.Receive)
		if c.OnClose != nil {
			c.OnClose(closeErr)
		}
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				closeErr = err
			}
			return
		}

		msg, err := codec.Decode(data)
		if err != nil {
			log.Printf("消息解析错误: %v", err)
			continue
		}
		c.Receive <- msg
	}
}

// writePump 把队列里的数据写到连接上，并定期发心跳
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if c.conn != nil {
			_ = c.conn.Close()
		}
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
