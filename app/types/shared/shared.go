package sharedtypes

// UserID is the chat platform's opaque numeric user identifier.
type UserID int64

// ChatID identifies a chat (private or group) on the chat platform.
type ChatID int64

// RightID identifies a special message right record.
type RightID int64

// Rank is a 1-based leaderboard position.
type Rank int

// Scope selects which counter a leaderboard is built from.
type Scope string

const (
	ScopeDaily    Scope = "daily"
	ScopeLifetime Scope = "lifetime"
)

// IsValid reports whether the scope is one of the known values.
func (s Scope) IsValid() bool {
	return s == ScopeDaily || s == ScopeLifetime
}

// UserProfile carries the name fields delivered with every inbound update.
// Any of the name fields may be empty.
type UserProfile struct {
	UserID    UserID `json:"user_id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// UnknownUserName is the display fallback when a user has no usable name.
const UnknownUserName = "Unknown User"

// DisplayName derives the name shown in leaderboards and notifications:
// username, else first name, else the unknown fallback.
func (p UserProfile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	if p.FirstName != "" {
		return p.FirstName
	}
	return UnknownUserName
}
