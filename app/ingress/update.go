// Package ingress is the inbound edge: it terminates the Telegram
// webhook, parses updates into commands, and publishes the resulting
// events. No business logic lives here.
package ingress

import (
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// Update mirrors the subset of the Telegram Bot API update object the
// bot consumes.
type Update struct {
	UpdateID int64    `json:"update_id"`
	Message  *Message `json:"message,omitempty"`
}

// Message is an inbound chat message.
type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      Chat   `json:"chat"`
	Text      string `json:"text,omitempty"`
}

// User is the sender of a message.
type User struct {
	ID        sharedtypes.UserID `json:"id"`
	IsBot     bool               `json:"is_bot"`
	Username  string             `json:"username,omitempty"`
	FirstName string             `json:"first_name,omitempty"`
	LastName  string             `json:"last_name,omitempty"`
}

// Chat is the conversation a message arrived in.
type Chat struct {
	ID   sharedtypes.ChatID `json:"id"`
	Type string             `json:"type"`
}

// IsGroup reports whether the chat is a group conversation.
func (c Chat) IsGroup() bool {
	return c.Type == "group" || c.Type == "supergroup"
}

// Profile converts the sender into the shared profile shape carried on
// every published event.
func (u *User) Profile() sharedtypes.UserProfile {
	return sharedtypes.UserProfile{
		UserID:    u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}
