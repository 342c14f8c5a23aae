package userhandlers

import (
	"context"
	"errors"

	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	userservice "github.com/ultimate-atpl/study-battle-bot/app/modules/user/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandleRegistrationRequested creates or refreshes a user record.
func (h *UserHandlers) HandleRegistrationRequested(ctx context.Context, payload *userevents.RegistrationRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RegisterUser(ctx, payload.Profile)
	if err != nil {
		return nil, err
	}

	if failure, ok := result.Failure.(*userservice.RegistrationFailed); ok {
		return []handlerwrapper.Result{{
			Topic: userevents.RegistrationFailedV1,
			Payload: &userevents.RegistrationFailedPayloadV1{
				UserID: failure.UserID,
				ChatID: payload.ChatID,
				Reason: failure.Reason,
			},
		}}, nil
	}

	registered, ok := result.Success.(*userservice.Registered)
	if !ok {
		return nil, errors.New("unexpected registration result payload")
	}

	return []handlerwrapper.Result{{
		Topic: userevents.RegisteredV1,
		Payload: &userevents.RegisteredPayloadV1{
			UserID:      registered.UserID,
			DisplayName: registered.DisplayName,
			ChatID:      payload.ChatID,
			NewUser:     registered.NewUser,
			Announce:    payload.Announce,
		},
	}}, nil
}
