package socket

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Banter/internal/domain"
)

// Table tracks live connections and their room membership on the transport
// side, so the engine's three addressing modes route correctly. It is the
// concrete chat.Emitter.
type Table struct {
	mu     sync.RWMutex
	conns  map[domain.ConnID]*wsConn
	rooms  map[string]map[domain.ConnID]struct{}
	roomOf map[domain.ConnID]string
}

func NewTable() *Table {
	return &Table{
		conns:  make(map[domain.ConnID]*wsConn),
		rooms:  make(map[string]map[domain.ConnID]struct{}),
		roomOf: make(map[domain.ConnID]string),
	}
}

func (t *Table) Add(id domain.ConnID, conn *wsConn) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.conns[id] = conn
}

// Remove drops the connection and its room membership. Leaves no empty room
// sets behind.
func (t *Table) Remove(id domain.ConnID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.conns, id)
	if room, ok := t.roomOf[id]; ok {
		delete(t.roomOf, id)
		if members, ok := t.rooms[room]; ok {
			delete(members, id)
			if len(members) == 0 {
				delete(t.rooms, room)
			}
		}
	}
}

// JoinRoom is the transport half of a successful join.
func (t *Table) JoinRoom(id domain.ConnID, room string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rooms[room]; !ok {
		t.rooms[room] = make(map[domain.ConnID]struct{})
	}
	t.rooms[room][id] = struct{}{}
	t.roomOf[id] = room
	log.Info().Str("module", "socket.table").Str("conn", string(id)).Str("room", room).Msg("joined room")
}

func (t *Table) ToConn(id domain.ConnID, v any) {
	t.mu.RLock()
	conn, ok := t.conns[id]
	t.mu.RUnlock()
	if !ok {
		return
	}
	sendJSON(conn, v)
}

func (t *Table) ToRoom(room string, v any) {
	for _, conn := range t.roomConns(room, "") {
		sendJSON(conn, v)
	}
}

func (t *Table) ToRoomExcept(room string, id domain.ConnID, v any) {
	for _, conn := range t.roomConns(room, id) {
		sendJSON(conn, v)
	}
}

func (t *Table) roomConns(room string, except domain.ConnID) []*wsConn {
	t.mu.RLock()
	defer t.mu.RUnlock()
	members := t.rooms[room]
	out := make([]*wsConn, 0, len(members))
	for id := range members {
		if id == except {
			continue
		}
		if conn, ok := t.conns[id]; ok {
			out = append(out, conn)
		}
	}
	return out
}

func sendJSON(c *wsConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "socket.table").Msg("sendJSON marshal")
		return
	}
	if err := c.TrySend(b); err != nil {
		log.Warn().Err(err).Str("module", "socket.table").Msg("send dropped")
	}
}
