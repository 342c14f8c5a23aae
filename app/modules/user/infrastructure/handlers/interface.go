package userhandlers

import (
	"context"

	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// Handlers defines the user module's event handlers.
type Handlers interface {
	HandleRegistrationRequested(ctx context.Context, payload *userevents.RegistrationRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
