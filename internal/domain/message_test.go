package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMessage(t *testing.T) {
	before := time.Now().UnixMilli()
	msg := NewMessage("hello", "bob", StatusActive)
	after := time.Now().UnixMilli()

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "hello", msg.Body)
	assert.Equal(t, "Bob", msg.Username)
	assert.Equal(t, StatusActive, msg.ReadStatus)
	assert.GreaterOrEqual(t, msg.CreatedAt, before)
	assert.LessOrEqual(t, msg.CreatedAt, after)
}

func TestNewMessageUniqueIDs(t *testing.T) {
	a := NewMessage("x", "bob", "")
	b := NewMessage("x", "bob", "")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewLocationMessage(t *testing.T) {
	msg := NewLocationMessage("https://google.com/maps?q=1,2", "ann", "")

	assert.Equal(t, "https://google.com/maps?q=1,2", msg.URL)
	assert.Equal(t, "Ann", msg.Username)
	assert.Empty(t, msg.ReadStatus)
	assert.NotZero(t, msg.CreatedAt)
}
