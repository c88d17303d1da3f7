// Package gateway is the chat-facing transport: it accepts WebSocket
// connections scoped to a chat room, parses text commands into engine
// calls, and routes the engine's envelopes back out (broadcast to the
// room or private to one player).
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ZydFirst/doudizhu/internal/config"
	"github.com/ZydFirst/doudizhu/internal/engine"
	"github.com/ZydFirst/doudizhu/internal/protocol"
	"github.com/ZydFirst/doudizhu/internal/protocol/codec"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境需要限制
	},
}

// Server WebSocket 聊天网关
type Server struct {
	cfg    *config.Config
	engine *engine.Engine

	// room -> playerID -> client
	rooms map[string]map[string]*Client
	mu    sync.RWMutex

	httpServer *http.Server
}

// NewServer 创建网关
func NewServer(cfg *config.Config, eng *engine.Engine) *Server {
	return &Server{
		cfg:    cfg,
		engine: eng,
		rooms:  make(map[string]map[string]*Client),
	}
}

// Start 启动 HTTP/WebSocket 服务，阻塞直到服务退出
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.Host, s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("🌐 网关监听 %s", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown 优雅关闭
func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if s.httpServer != nil {
		_ = s.httpServer.Shutdown(ctx)
	}
}

// handleWebSocket 处理 WebSocket 连接。
// 连接参数 room 标识所在的聊天房间，name 是显示名。
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		http.Error(w, "missing room", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket 升级失败: %v", err)
		return
	}

	client := NewClient(s, conn, room, r.URL.Query().Get("name"))
	s.register(client)

	client.SendMessage(codec.MustNewMessage(protocol.MsgWelcome, protocol.WelcomePayload{
		PlayerID:   client.ID,
		PlayerName: client.Name,
		Room:       client.Room,
	}))

	log.Printf("✅ 玩家 %s (%s) 进入房间 %s", client.Name, client.ID, room)

	go client.ReadPump()
	go client.WritePump()
}

// handleHealth 健康检查接口
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// register 把客户端登记到所在房间
func (s *Server) register(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rooms[client.Room] == nil {
		s.rooms[client.Room] = make(map[string]*Client)
	}
	s.rooms[client.Room][client.ID] = client
}

// unregister 移除客户端，房间空了就删掉
func (s *Server) unregister(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients, ok := s.rooms[client.Room]
	if !ok {
		return
	}
	if _, ok := clients[client.ID]; ok {
		delete(clients, client.ID)
		log.Printf("❌ 玩家 %s (%s) 离开房间 %s", client.Name, client.ID, client.Room)
	}
	if len(clients) == 0 {
		delete(s.rooms, client.Room)
	}
}

// deliver 按投递目标路由消息：广播发给整个房间，私发只给目标玩家
func (s *Server) deliver(room string, envelopes []protocol.Envelope) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clients := s.rooms[room]
	for _, env := range envelopes {
		switch env.Audience.Scope {
		case protocol.ScopeRoom:
			for _, c := range clients {
				c.SendMessage(env.Message)
			}
		case protocol.ScopePlayer:
			if c, ok := clients[env.Audience.PlayerID]; ok {
				c.SendMessage(env.Message)
			}
		}
	}
}
