// internal/store/hub.go
package store

import (
	"strings"
	"sync"
)

// Event はドキュメント変更の通知
type Event struct {
	Path    string  `json:"path"`
	Fields  JSONMap `json:"fields,omitempty"`
	Deleted bool    `json:"deleted,omitempty"`
}

// Subscription はパスプレフィックス単位の変更フィード。Close 後は C がクローズされる
type Subscription struct {
	Prefix string
	C      chan Event

	hub  *Hub
	once sync.Once
}

// Close は購読を解除します。冪等
func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.C)
	})
}

// Hub はインプロセスの購読ハブ。コミット済みの書き込みだけを配信する
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

func (h *Hub) Subscribe(prefix string) *Subscription {
	sub := &Subscription{
		Prefix: prefix,
		C:      make(chan Event, 16),
		hub:    h,
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Publish は該当プレフィックスの全購読者へ非ブロッキングで配信します。
// 受信が詰まっている購読者へのイベントはドロップする（最新状態は再読込で取得可能）
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !strings.HasPrefix(ev.Path, sub.Prefix) {
			continue
		}
		select {
		case sub.C <- ev:
		default:
		}
	}
}
