package server

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-runner/internal/leaderboard"
)

// Conn is a live feed subscriber.
type Conn interface {
	Send([]byte) error
	Close() error
}

type hubJoin struct {
	conn  Conn
	reply chan<- int
}

type hubLeave struct {
	id int
}

type hubBroadcast struct {
	payload []byte
}

// Hub fans accepted submissions out to live feed subscribers. All state is
// owned by the Run goroutine; other goroutines talk to it through inbox.
type Hub struct {
	inbox   chan any
	clients map[int]Conn
	nextID  int
	count   atomic.Int64
	quit    chan struct{}
	once    sync.Once
}

// NewHub creates a hub. Call Run to start it.
func NewHub() *Hub {
	return &Hub{
		inbox:   make(chan any, 256),
		clients: make(map[int]Conn),
		nextID:  1,
		quit:    make(chan struct{}),
	}
}

// Run processes hub commands until Stop.
func (h *Hub) Run() {
	for {
		select {
		case <-h.quit:
			for id, c := range h.clients {
				_ = c.Close()
				delete(h.clients, id)
			}
			h.count.Store(0)
			return
		case cmd := <-h.inbox:
			h.handleCommand(cmd)
		}
	}
}

// Stop closes every subscriber and ends Run. Safe to call more than once.
func (h *Hub) Stop() {
	h.once.Do(func() { close(h.quit) })
}

func (h *Hub) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case hubJoin:
		id := h.nextID
		h.nextID++
		h.clients[id] = c.conn
		h.count.Store(int64(len(h.clients)))
		c.reply <- id
	case hubLeave:
		if conn, ok := h.clients[c.id]; ok {
			_ = conn.Close()
			delete(h.clients, c.id)
			h.count.Store(int64(len(h.clients)))
		}
	case hubBroadcast:
		var failed []int
		for id, conn := range h.clients {
			if err := conn.Send(c.payload); err != nil {
				failed = append(failed, id)
			}
		}
		for _, id := range failed {
			_ = h.clients[id].Close()
			delete(h.clients, id)
		}
		h.count.Store(int64(len(h.clients)))
	}
}

// Join registers conn and returns its subscriber id, or 0 if the hub has
// stopped.
func (h *Hub) Join(conn Conn) int {
	reply := make(chan int, 1)
	select {
	case h.inbox <- hubJoin{conn: conn, reply: reply}:
	case <-h.quit:
		return 0
	}
	select {
	case id := <-reply:
		return id
	case <-h.quit:
		return 0
	}
}

// Leave unregisters and closes a subscriber.
func (h *Hub) Leave(id int) {
	select {
	case h.inbox <- hubLeave{id: id}:
	case <-h.quit:
	}
}

// Broadcast pushes row to every subscriber as a JSON text frame.
func (h *Hub) Broadcast(row leaderboard.Row) {
	payload, err := json.Marshal(row)
	if err != nil {
		return
	}
	select {
	case h.inbox <- hubBroadcast{payload: payload}:
	case <-h.quit:
	}
}

// Len returns the number of connected subscribers.
func (h *Hub) Len() int {
	return int(h.count.Load())
}
