package userevents

import (
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

const (
	RegistrationRequestedV1 = "user.registration.requested.v1"
	RegisteredV1            = "user.registered.v1"
	RegistrationFailedV1    = "user.registration.failed.v1"

	StatsRequestedV1 = "user.stats.requested.v1"
	HelpRequestedV1  = "user.help.requested.v1"
)

// RegistrationRequestedPayloadV1 is published for /start and /register and
// for the registration refresh that precedes every score update.
type RegistrationRequestedPayloadV1 struct {
	Profile sharedtypes.UserProfile `json:"profile"`
	ChatID  sharedtypes.ChatID      `json:"chat_id"`
	// Announce selects whether the notifier sends a welcome reply.
	Announce bool `json:"announce"`
}

type RegisteredPayloadV1 struct {
	UserID      sharedtypes.UserID `json:"user_id"`
	DisplayName string             `json:"display_name"`
	ChatID      sharedtypes.ChatID `json:"chat_id"`
	NewUser     bool               `json:"new_user"`
	Announce    bool               `json:"announce"`
}

type RegistrationFailedPayloadV1 struct {
	UserID sharedtypes.UserID `json:"user_id"`
	ChatID sharedtypes.ChatID `json:"chat_id"`
	Reason string             `json:"reason"`
}

// StatsRequestedPayloadV1 asks for a user's daily and lifetime totals.
type StatsRequestedPayloadV1 struct {
	Profile sharedtypes.UserProfile `json:"profile"`
	ChatID  sharedtypes.ChatID      `json:"chat_id"`
}

// HelpRequestedPayloadV1 is consumed directly by the notifier.
type HelpRequestedPayloadV1 struct {
	ChatID sharedtypes.ChatID `json:"chat_id"`
	// Welcome distinguishes /start from /help.
	Welcome     bool   `json:"welcome"`
	DisplayName string `json:"display_name,omitempty"`
}
