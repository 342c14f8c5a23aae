// Package notifier is the outbound edge: it consumes structured events
// and turns them into Telegram messages. Nothing else in the system
// formats or delivers user-facing text.
package notifier

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	"github.com/ultimate-atpl/study-battle-bot/app/notifier/telegram"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/eventbus"
	"github.com/ultimate-atpl/study-battle-bot/internal/session"
)

// Notifier delivers formatted messages through the Telegram sender.
type Notifier struct {
	sender  telegram.Sender
	session *session.ChatSession
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New creates a Notifier.
func New(sender telegram.Sender, chatSession *session.ChatSession, logger *slog.Logger, tracer trace.Tracer) *Notifier {
	return &Notifier{
		sender:  sender,
		session: chatSession,
		logger:  logger,
		tracer:  tracer,
	}
}

// Configure registers the notifier's consume-only handlers.
func (n *Notifier) Configure(router *message.Router, bus *eventbus.EventBus) {
	registerConsumer(n, router, bus, userevents.RegisteredV1, n.handleRegistered)
	registerConsumer(n, router, bus, userevents.RegistrationFailedV1, n.handleRegistrationFailed)
	registerConsumer(n, router, bus, userevents.HelpRequestedV1, n.handleHelpRequested)
	registerConsumer(n, router, bus, scoreevents.UpdatedV1, n.handleScoreUpdated)
	registerConsumer(n, router, bus, scoreevents.UpdateFailedV1, n.handleScoreUpdateFailed)
	registerConsumer(n, router, bus, scoreevents.StatsRetrievedV1, n.handleStatsRetrieved)
	registerConsumer(n, router, bus, scoreevents.DailyResetCompletedV1, n.handleResetCompleted)
	registerConsumer(n, router, bus, scoreevents.DailyResetFailedV1, n.handleResetFailed)
	registerConsumer(n, router, bus, leaderboardevents.RetrievedV1, n.handleBoardRetrieved)
	registerConsumer(n, router, bus, leaderboardevents.RetrievalFailedV1, n.handleBoardFailed)
	registerConsumer(n, router, bus, leaderboardevents.ChartRenderedV1, n.handleChartRendered)
	registerConsumer(n, router, bus, leaderboardevents.ChampionDecidedV1, n.handleChampionDecided)
	registerConsumer(n, router, bus, leaderboardevents.OvertakeDetectedV1, n.handleOvertakeDetected)
	registerConsumer(n, router, bus, privilegeevents.MessageAttributedV1, n.handleMessageAttributed)
}

// registerConsumer wires a typed consume-only handler. Undecodable
// payloads are dropped; send failures are returned so the message is
// redelivered.
func registerConsumer[T any](
	n *Notifier,
	router *message.Router,
	bus *eventbus.EventBus,
	topic string,
	handle func(ctx context.Context, payload *T) error,
) {
	handlerName := "notifier." + topic

	router.AddNoPublisherHandler(handlerName, topic, bus, func(msg *message.Message) error {
		ctx := msg.Context()

		correlationID := attr.CorrelationIDFromMessage(msg)
		if correlationID == "" {
			correlationID = watermill.NewUUID()
		}
		ctx = attr.WithCorrelationID(ctx, correlationID)

		ctx, span := n.tracer.Start(ctx, handlerName, trace.WithAttributes(
			attribute.String("handler", handlerName),
		))
		defer span.End()

		var payload T
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			n.logger.ErrorContext(ctx, "Dropping undecodable message",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			span.RecordError(err)
			return nil
		}

		if err := handle(ctx, &payload); err != nil {
			n.logger.ErrorContext(ctx, "Notification delivery failed",
				attr.ExtractCorrelationID(ctx),
				attr.String("handler", handlerName),
				attr.Error(err),
			)
			span.RecordError(err)
			return err
		}
		return nil
	})
}

func (n *Notifier) handleRegistered(ctx context.Context, payload *userevents.RegisteredPayloadV1) error {
	if !payload.Announce {
		return nil
	}
	return n.sender.SendMessage(ctx, payload.ChatID, FormatRegistered(payload.DisplayName, payload.NewUser))
}

func (n *Notifier) handleRegistrationFailed(ctx context.Context, payload *userevents.RegistrationFailedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatFailure("Registration failed. Please try again later."))
}

func (n *Notifier) handleHelpRequested(ctx context.Context, payload *userevents.HelpRequestedPayloadV1) error {
	if payload.Welcome {
		return n.sender.SendMessage(ctx, payload.ChatID, FormatWelcome(payload.DisplayName))
	}
	return n.sender.SendMessage(ctx, payload.ChatID, FormatHelp())
}

func (n *Notifier) handleScoreUpdated(ctx context.Context, payload *scoreevents.UpdatedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatScoreUpdate(payload.Delta, payload.Daily, payload.Lifetime))
}

func (n *Notifier) handleScoreUpdateFailed(ctx context.Context, payload *scoreevents.UpdateFailedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatFailure(payload.Reason))
}

func (n *Notifier) handleStatsRetrieved(ctx context.Context, payload *scoreevents.StatsRetrievedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatStats(payload.DisplayName, payload.Daily, payload.Lifetime))
}

func (n *Notifier) handleResetCompleted(ctx context.Context, payload *scoreevents.DailyResetCompletedPayloadV1) error {
	chatID := payload.ChatID
	if chatID == 0 {
		broadcast, ok := n.session.BroadcastChat()
		if !ok {
			// Nobody has talked to the bot yet; nowhere to announce.
			return nil
		}
		chatID = broadcast
	}
	return n.sender.SendMessage(ctx, chatID, FormatResetDone())
}

func (n *Notifier) handleResetFailed(ctx context.Context, payload *scoreevents.DailyResetFailedPayloadV1) error {
	if payload.ChatID == 0 {
		// A scheduler-triggered failure has no chat to report to.
		return nil
	}
	return n.sender.SendMessage(ctx, payload.ChatID, FormatFailure(payload.Reason))
}

func (n *Notifier) handleBoardRetrieved(ctx context.Context, payload *leaderboardevents.RetrievedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatLeaderboard(payload.Scope, payload.Entries, payload.AutoTriggered))
}

func (n *Notifier) handleBoardFailed(ctx context.Context, payload *leaderboardevents.RetrievalFailedPayloadV1) error {
	return n.sender.SendMessage(ctx, payload.ChatID, FormatFailure(payload.Reason))
}

func (n *Notifier) handleChartRendered(ctx context.Context, payload *leaderboardevents.ChartRenderedPayloadV1) error {
	return n.sender.SendPhoto(ctx, payload.ChatID, payload.PNG, "")
}

func (n *Notifier) handleChampionDecided(ctx context.Context, payload *leaderboardevents.ChampionDecidedPayloadV1) error {
	broadcast, ok := n.session.BroadcastChat()
	if !ok {
		return nil
	}
	return n.sender.SendMessage(ctx, broadcast, FormatChampion(payload.DisplayName))
}

func (n *Notifier) handleOvertakeDetected(ctx context.Context, payload *leaderboardevents.OvertakeDetectedPayloadV1) error {
	broadcast, ok := n.session.BroadcastChat()
	if !ok {
		return nil
	}
	return n.sender.SendMessage(ctx, broadcast, FormatOvertake(payload.ActorName, payload.DisplacedName, payload.OldRank, payload.NewRank))
}

func (n *Notifier) handleMessageAttributed(ctx context.Context, payload *privilegeevents.MessageAttributedPayloadV1) error {
	broadcast, ok := n.session.BroadcastChat()
	if ok {
		if err := n.sender.SendMessage(ctx, broadcast, FormatAttributedMessage(payload.GranteeName, payload.DisplacedName, payload.Text)); err != nil {
			return err
		}
	}
	return n.sender.SendMessage(ctx, payload.ConfirmChatID, FormatAttributedConfirmation())
}
