package privilegehandlers

import (
	"context"
	"errors"

	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	privilegeservice "github.com/ultimate-atpl/study-battle-bot/app/modules/privilege/application"
	"github.com/ultimate-atpl/study-battle-bot/internal/handlerwrapper"
)

// HandlePlainMessageReceived runs every non-command message through the
// ledger. Almost all of them produce nothing; a grantee's first message
// after an overtake consumes the right and goes out attributed.
func (h *PrivilegeHandlers) HandlePlainMessageReceived(ctx context.Context, payload *privilegeevents.PlainMessageReceivedPayloadV1) ([]handlerwrapper.Result, error) {
	if payload == nil {
		return nil, errors.New("payload cannot be nil")
	}

	result, err := h.service.RedeemForMessage(ctx, payload.Profile.UserID, payload.Text)
	if err != nil {
		return nil, err
	}

	redeemed, ok := result.Success.(*privilegeservice.MessageRedeemed)
	if !ok {
		// No right held, or lost the consume race.
		return nil, nil
	}

	return []handlerwrapper.Result{{
		Topic: privilegeevents.MessageAttributedV1,
		Payload: &privilegeevents.MessageAttributedPayloadV1{
			RightID:       redeemed.RightID,
			GranteeID:     redeemed.GranteeID,
			GranteeName:   redeemed.GranteeName,
			DisplacedID:   redeemed.DisplacedID,
			DisplacedName: redeemed.DisplacedName,
			Text:          redeemed.Text,
			ConfirmChatID: payload.ChatID,
		},
	}}, nil
}
