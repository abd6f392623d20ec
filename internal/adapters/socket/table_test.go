package socket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Banter/internal/domain"
)

func newTestConn() *wsConn {
	return &wsConn{send: make(chan []byte, 8)}
}

func drain(c *wsConn) []map[string]any {
	var out []map[string]any
	for {
		select {
		case b := <-c.send:
			var m map[string]any
			if err := json.Unmarshal(b, &m); err == nil {
				out = append(out, m)
			}
		default:
			return out
		}
	}
}

type ping struct {
	Type string `json:"type"`
	N    int    `json:"n"`
}

func TestTable_Addressing(t *testing.T) {
	table := NewTable()
	a, b, c := newTestConn(), newTestConn(), newTestConn()
	table.Add("a", a)
	table.Add("b", b)
	table.Add("c", c)
	table.JoinRoom("a", "general")
	table.JoinRoom("b", "general")
	table.JoinRoom("c", "lobby")

	table.ToConn("a", ping{Type: "p", N: 1})
	assert.Len(t, drain(a), 1)
	assert.Empty(t, drain(b))
	assert.Empty(t, drain(c))

	table.ToRoom("general", ping{Type: "p", N: 2})
	assert.Len(t, drain(a), 1)
	assert.Len(t, drain(b), 1)
	assert.Empty(t, drain(c), "other rooms must not receive")

	table.ToRoomExcept("general", "a", ping{Type: "p", N: 3})
	assert.Empty(t, drain(a), "sender must be excluded")
	assert.Len(t, drain(b), 1)
}

func TestTable_Remove(t *testing.T) {
	table := NewTable()
	a, b := newTestConn(), newTestConn()
	table.Add("a", a)
	table.Add("b", b)
	table.JoinRoom("a", "general")
	table.JoinRoom("b", "general")

	table.Remove("a")
	table.ToRoom("general", ping{Type: "p"})
	assert.Empty(t, drain(a))
	assert.Len(t, drain(b), 1)

	// Unknown targets are silently ignored.
	table.ToConn("a", ping{Type: "p"})
	table.ToRoom("nowhere", ping{Type: "p"})
	assert.Empty(t, drain(a))
}

func TestTable_UnjoinedConnReceivesNothing(t *testing.T) {
	table := NewTable()
	a := newTestConn()
	table.Add("a", a)

	table.ToRoom("general", ping{Type: "p"})
	assert.Empty(t, drain(a))
}

func TestWsConn_Backpressure(t *testing.T) {
	c := &wsConn{send: make(chan []byte, 1)}
	require.NoError(t, c.TrySend([]byte("one")))
	assert.ErrorIs(t, c.TrySend([]byte("two")), ErrBackpressure)
}

func TestConnID_FreshPerConnection(t *testing.T) {
	// Two tabs of one browser are two connections: the table keys purely on
	// the transport-assigned id, never on the client token.
	table := NewTable()
	t1, t2 := newTestConn(), newTestConn()
	table.Add(domain.ConnID("tab1"), t1)
	table.Add(domain.ConnID("tab2"), t2)
	table.JoinRoom("tab1", "general")
	table.JoinRoom("tab2", "general")

	table.ToRoomExcept("general", "tab1", ping{Type: "p"})
	assert.Empty(t, drain(t1))
	assert.Len(t, drain(t2), 1)
}
