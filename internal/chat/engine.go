package chat

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Banter/internal/domain"
)

// adminName is the sender of system messages (welcome, join, leave).
const adminName = "Admin"

// Engine orchestrates the registry on every inbound connection event and
// fans results out through the Emitter. Events arriving for a connection
// with no session are silently ignored; only join, message sends, and edits
// have a failure path, reported to the caller and never broadcast.
type Engine struct {
	reg       *Registry
	emit      Emitter
	isProfane func(string) bool
}

func NewEngine(reg *Registry, emit Emitter, isProfane func(string) bool) *Engine {
	if isProfane == nil {
		isProfane = func(string) bool { return false }
	}
	return &Engine{reg: reg, emit: emit, isProfane: isProfane}
}

// Join creates the session and announces it: welcome to the sender, a join
// notice to the rest of the room, a fresh snapshot to everyone.
func (e *Engine) Join(id domain.ConnID, username, room string, avatar *domain.Avatar) error {
	sess, err := e.reg.AddSession(id, username, room, avatar)
	if err != nil {
		log.Warn().Err(err).Str("module", "chat.engine").Str("conn", string(id)).Msg("join rejected")
		return err
	}

	e.emit.JoinRoom(id, sess.Room)
	e.emit.ToConn(id, MessageEvent{
		Type:    EventMessage,
		Message: domain.NewMessage("Welcome! "+sess.Username, adminName, ""),
	})
	e.emit.ToRoomExcept(sess.Room, id, MessageEvent{
		Type:    EventMessage,
		Message: domain.NewMessage(sess.Username+" has joined!", adminName, ""),
	})
	e.emit.ToRoom(sess.Room, RoomDataEvent{
		Type:         EventRoomData,
		RoomSnapshot: e.reg.Snapshot(sess.Room),
	})
	return nil
}

// SetActivity records the tab-focus flag. Going inactive is silent; going
// active is announced to the whole room.
func (e *Engine) SetActivity(id domain.ConnID, active bool) {
	sess, ok := e.reg.SetActivity(id, active)
	if !ok || !active {
		return
	}
	e.emit.ToRoom(sess.Room, ActivityUpdateEvent{Type: EventActivityUpdate, IsActive: active})
}

func (e *Engine) Typing(id domain.ConnID) {
	sess, ok := e.reg.Get(id)
	if !ok {
		return
	}
	e.emit.ToRoomExcept(sess.Room, id, DisplayTypingEvent{Type: EventDisplayTyping, Username: sess.Username})
}

func (e *Engine) StopTyping(id domain.ConnID) {
	sess, ok := e.reg.Get(id)
	if !ok {
		return
	}
	e.emit.ToRoomExcept(sess.Room, id, HideTypingEvent{Type: EventHideTyping})
}

// SendMessage stamps the room's current read status onto a fresh message and
// fans it out to the whole room.
func (e *Engine) SendMessage(id domain.ConnID, body string) error {
	sess, ok := e.reg.Get(id)
	if !ok {
		return nil
	}
	if e.isProfane(body) {
		return domain.ErrProfanity
	}
	readStatus := e.reg.ReadStatus(sess.Room)
	e.emit.ToRoom(sess.Room, MessageEvent{
		Type:    EventMessage,
		Message: domain.NewMessage(body, sess.Username, readStatus),
	})
	return nil
}

// EditMessage announces the edit as-is: no new id, no new timestamp.
func (e *Engine) EditMessage(id domain.ConnID, msgID, body string) error {
	sess, ok := e.reg.Get(id)
	if !ok {
		return nil
	}
	if e.isProfane(body) {
		return domain.ErrProfanity
	}
	e.emit.ToRoom(sess.Room, MessageUpdatedEvent{Type: EventMessageUpdated, ID: msgID, Body: body})
	return nil
}

func (e *Engine) DeleteMessage(id domain.ConnID, msgID string) {
	sess, ok := e.reg.Get(id)
	if !ok {
		return
	}
	e.emit.ToRoom(sess.Room, MessageDeletedEvent{Type: EventMessageDeleted, User: sess.Username, ID: msgID})
}

// SendLocation shares a map link with the whole room and returns the ack
// text for the caller.
func (e *Engine) SendLocation(id domain.ConnID, lat, lon float64) (string, error) {
	sess, ok := e.reg.Get(id)
	if !ok {
		return "", nil
	}
	url := fmt.Sprintf("https://google.com/maps?q=%v,%v", lat, lon)
	readStatus := e.reg.ReadStatus(sess.Room)
	e.emit.ToRoom(sess.Room, LocationMessageEvent{
		Type:            EventLocationMessage,
		LocationMessage: domain.NewLocationMessage(url, sess.Username, readStatus),
	})
	return "Location shared!", nil
}

// Disconnect drops the session and, if one existed, announces the departure
// and a refreshed snapshot. A connection that never joined leaves silently.
func (e *Engine) Disconnect(id domain.ConnID) {
	sess, ok := e.reg.RemoveSession(id)
	if !ok {
		return
	}
	e.emit.ToRoom(sess.Room, MessageEvent{
		Type:    EventMessage,
		Message: domain.NewMessage(sess.Username+" has left!", adminName, ""),
	})
	e.emit.ToRoom(sess.Room, RoomDataEvent{
		Type:         EventRoomData,
		RoomSnapshot: e.reg.Snapshot(sess.Room),
	})
}
