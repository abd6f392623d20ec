// Package chat holds the in-memory session registry and the room broadcast
// engine. All room state lives here and dies with the process.
package chat

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Banter/internal/domain"
)

// Registry is the authoritative map from connection identity to session.
// One lock guards the whole map; every mutation goes through it.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnID]*domain.Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.ConnID]*domain.Session)}
}

// AddSession validates and stores a new session for the connection.
// Username and room are stored in normalized form; (room, username) must be
// unique among live sessions.
func (r *Registry) AddSession(id domain.ConnID, username, room string, avatar *domain.Avatar) (domain.Session, error) {
	username = domain.Normalize(username)
	room = domain.Normalize(room)
	if username == "" || room == "" {
		return domain.Session{}, domain.ErrNameRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.sessions {
		if s.Room == room && s.Username == username {
			return domain.Session{}, domain.ErrNameTaken
		}
	}
	s := &domain.Session{
		ConnID:   id,
		Username: username,
		Room:     room,
		IsActive: true,
		Avatar:   avatar,
	}
	r.sessions[id] = s
	log.Info().Str("module", "chat.registry").Str("conn", string(id)).Str("room", room).Str("username", username).Msg("session added")
	return *s, nil
}

// RemoveSession deletes and returns the session, if any. A missing session
// is a normal outcome: disconnect may race with a failed join.
func (r *Registry) RemoveSession(id domain.ConnID) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	delete(r.sessions, id)
	log.Info().Str("module", "chat.registry").Str("conn", string(id)).Str("room", s.Room).Msg("session removed")
	return *s, true
}

// Get returns a copy of the connection's session.
func (r *Registry) Get(id domain.ConnID) (domain.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	return *s, true
}

// SetActivity flips the tab-focus flag in place.
func (r *Registry) SetActivity(id domain.ConnID, active bool) (domain.Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domain.Session{}, false
	}
	s.IsActive = active
	return *s, true
}

// membersOf copies every session of a normalized room name.
func (r *Registry) membersOf(room string) []domain.Session {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		if s.Room == room {
			out = append(out, *s)
		}
	}
	return out
}
