package socket

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Banter/internal/domain"
)

func (ctl *Controller) dispatch(id domain.ConnID, c *wsConn, data []byte) {
	var env struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad json")
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(id, c, data)
	case "activity":
		ctl.handleActivity(id, data)
	case "typing":
		ctl.engine.Typing(id)
	case "stopTyping":
		ctl.engine.StopTyping(id)
	case "sendMessage":
		ctl.handleSendMessage(id, c, data)
	case "editMessage":
		ctl.handleEditMessage(id, c, data)
	case "deleteMessage":
		ctl.handleDeleteMessage(id, c, data)
	case "sendLocation":
		ctl.handleSendLocation(id, c, data)
	default:
		log.Warn().Str("module", "socket").Str("type", env.Type).Msg("unknown event")
	}
}

func (ctl *Controller) handleJoin(id domain.ConnID, c *wsConn, data []byte) {
	var p struct {
		Type     string         `json:"type"`
		Username string         `json:"username"`
		Room     string         `json:"room"`
		Avatar   *domain.Avatar `json:"avatar,omitempty"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad join payload")
		ctl.sendError(c, "join", "bad_payload")
		return
	}
	if err := ctl.engine.Join(id, p.Username, p.Room, p.Avatar); err != nil {
		ctl.sendError(c, "join", err.Error())
		return
	}
	ctl.sendAck(c, "join", "")
}

func (ctl *Controller) handleActivity(id domain.ConnID, data []byte) {
	var p struct {
		Type     string `json:"type"`
		IsActive bool   `json:"isActive"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad activity payload")
		return
	}
	ctl.engine.SetActivity(id, p.IsActive)
}

func (ctl *Controller) handleSendMessage(id domain.ConnID, c *wsConn, data []byte) {
	var p struct {
		Type string `json:"type"`
		Body string `json:"msg"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad message payload")
		ctl.sendError(c, "sendMessage", "bad_payload")
		return
	}
	if !ctl.limiter.Allow(id) {
		ctl.sendError(c, "sendMessage", "Too many messages")
		return
	}
	if err := ctl.engine.SendMessage(id, p.Body); err != nil {
		ctl.sendError(c, "sendMessage", err.Error())
		return
	}
	ctl.sendAck(c, "sendMessage", "")
}

func (ctl *Controller) handleEditMessage(id domain.ConnID, c *wsConn, data []byte) {
	var p struct {
		Type string `json:"type"`
		ID   string `json:"id"`
		Body string `json:"msg"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad edit payload")
		ctl.sendError(c, "editMessage", "bad_payload")
		return
	}
	if err := ctl.engine.EditMessage(id, p.ID, p.Body); err != nil {
		ctl.sendError(c, "editMessage", err.Error())
		return
	}
	ctl.sendAck(c, "editMessage", "")
}

func (ctl *Controller) handleDeleteMessage(id domain.ConnID, c *wsConn, data []byte) {
	var p struct {
		Type string `json:"type"`
		ID   string `json:"id"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad delete payload")
		return
	}
	ctl.engine.DeleteMessage(id, p.ID)
}

func (ctl *Controller) handleSendLocation(id domain.ConnID, c *wsConn, data []byte) {
	var p struct {
		Type string  `json:"type"`
		Lat  float64 `json:"lat"`
		Lon  float64 `json:"lon"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("bad location payload")
		ctl.sendError(c, "sendLocation", "bad_payload")
		return
	}
	text, err := ctl.engine.SendLocation(id, p.Lat, p.Lon)
	if err != nil {
		ctl.sendError(c, "sendLocation", err.Error())
		return
	}
	ctl.sendAck(c, "sendLocation", text)
}

func (ctl *Controller) sendAck(c *wsConn, event, text string) {
	resp := struct {
		Type  string `json:"type"`
		Event string `json:"event"`
		Text  string `json:"text,omitempty"`
	}{"ack", event, text}
	ctl.send(c, resp)
}

func (ctl *Controller) sendError(c *wsConn, event, msg string) {
	resp := struct {
		Type  string `json:"type"`
		Event string `json:"event"`
		Error string `json:"error"`
	}{"error", event, msg}
	ctl.send(c, resp)
}

func (ctl *Controller) send(c *wsConn, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "socket").Msg("send marshal")
		return
	}
	_ = c.TrySend(b)
}
