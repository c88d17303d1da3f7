// Package registry maps chat rooms to their active game session.
package registry

import (
	"log"
	"sync"
	"time"

	"github.com/ZydFirst/doudizhu/internal/apperrors"
	"github.com/ZydFirst/doudizhu/internal/game/session"
)

// Registry 房间到对局的映射，每个房间同时最多一个活跃对局。
// 映射本身由读写锁保护，对局内部的串行化由 Session 自己负责。
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
	ttl      time.Duration
}

// New 创建注册表。ttl 大于 0 时启动清理协程，
// 回收长时间没凑齐人的对局。
func New(ttl time.Duration) *Registry {
	r := &Registry{
		sessions: make(map[string]*session.Session),
		ttl:      ttl,
	}
	if ttl > 0 {
		go r.cleanupLoop()
	}
	return r
}

// Create 为房间创建新对局，发起者自动坐下。
// 房间已有未结束的对局时拒绝；已结束的对局会被替换。
func (r *Registry) Create(room, creatorID, creatorName string) (*session.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[room]; ok && s.Phase() != session.PhaseFinished {
		return nil, apperrors.ErrGameInProgress
	}

	s := session.New(room, creatorID, creatorName)
	r.sessions[room] = s
	return s, nil
}

// Lookup 查找房间的活跃对局，不存在或已结束都算没有
func (r *Registry) Lookup(room string) (*session.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[room]
	r.mu.RUnlock()

	if !ok || s.Phase() == session.PhaseFinished {
		return nil, apperrors.ErrNoActiveSession
	}
	return s, nil
}

// Remove 移除房间的对局
func (r *Registry) Remove(room string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, room)
}

// Count 当前登记的对局数
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// cleanupLoop 定期清理超时对局
func (r *Registry) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.cleanup()
	}
}

// cleanup 清理一直没开局的超时对局和已结束的对局
func (r *Registry) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for room, s := range r.sessions {
		phase := s.Phase()
		if phase == session.PhaseFinished || (phase == session.PhaseForming && now.Sub(s.CreatedAt) > r.ttl) {
			delete(r.sessions, room)
			log.Printf("🧹 房间 %s 的对局已清理（%s）", room, phase)
		}
	}
}
