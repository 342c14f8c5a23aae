package ingress

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/config"
	"github.com/ultimate-atpl/study-battle-bot/internal/attr"
	"github.com/ultimate-atpl/study-battle-bot/internal/session"
)

// eventPublisher is the slice of the event bus the parser needs.
type eventPublisher interface {
	PublishEvent(ctx context.Context, topic string, payload []byte, metadata map[string]string) error
}

// Parser turns Telegram updates into published events. Every update
// resolves to at most one command; anything that is not a command is a
// plain message and feeds the special message flow.
type Parser struct {
	bus     eventPublisher
	session *session.ChatSession
	cfg     *config.Config
	limiter *userLimiter
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewParser creates a Parser.
func NewParser(bus eventPublisher, chatSession *session.ChatSession, cfg *config.Config, logger *slog.Logger, tracer trace.Tracer) *Parser {
	return &Parser{
		bus:     bus,
		session: chatSession,
		cfg:     cfg,
		limiter: newUserLimiter(cfg.Bot.CommandsPerMinute),
		logger:  logger,
		tracer:  tracer,
	}
}

// HandleUpdate dispatches a single webhook update. Updates the bot does
// not care about (no message, no sender, bot senders) are dropped
// without error so Telegram never retries them.
func (p *Parser) HandleUpdate(ctx context.Context, update *Update) error {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.From.IsBot || msg.Text == "" {
		return nil
	}

	ctx = attr.WithCorrelationID(ctx, watermill.NewUUID())
	ctx, span := p.tracer.Start(ctx, "ingress.HandleUpdate", trace.WithAttributes(
		attribute.Int64("update_id", update.UpdateID),
		attribute.Int64("chat_id", int64(msg.Chat.ID)),
	))
	defer span.End()

	if msg.Chat.IsGroup() {
		p.session.RememberBroadcastChat(msg.Chat.ID)
	}

	if !p.limiter.Allow(msg.From.ID) {
		p.logger.WarnContext(ctx, "Rate limit exceeded, dropping update",
			attr.ExtractCorrelationID(ctx),
			attr.Int64("user_id", int64(msg.From.ID)),
		)
		return nil
	}

	if !strings.HasPrefix(msg.Text, "/") {
		return p.handlePlainText(ctx, msg)
	}
	return p.handleCommand(ctx, msg)
}

func (p *Parser) handleCommand(ctx context.Context, msg *Message) error {
	command, args := splitCommand(msg.Text)
	profile := msg.From.Profile()
	chatID := msg.Chat.ID

	p.logger.InfoContext(ctx, "Handling command",
		attr.ExtractCorrelationID(ctx),
		attr.String("command", command),
		attr.Int64("user_id", int64(profile.UserID)),
	)

	switch command {
	case "/start":
		if err := p.publish(ctx, userevents.RegistrationRequestedV1, &userevents.RegistrationRequestedPayloadV1{
			Profile: profile,
			ChatID:  chatID,
		}); err != nil {
			return err
		}
		return p.publish(ctx, userevents.HelpRequestedV1, &userevents.HelpRequestedPayloadV1{
			ChatID:      chatID,
			Welcome:     true,
			DisplayName: profile.DisplayName(),
		})

	case "/register":
		return p.publish(ctx, userevents.RegistrationRequestedV1, &userevents.RegistrationRequestedPayloadV1{
			Profile:  profile,
			ChatID:   chatID,
			Announce: true,
		})

	case "/help":
		return p.publish(ctx, userevents.HelpRequestedV1, &userevents.HelpRequestedPayloadV1{
			ChatID: chatID,
		})

	case "/solved":
		delta, err := p.parseDelta(args)
		if err != nil {
			return p.publish(ctx, scoreevents.UpdateFailedV1, &scoreevents.UpdateFailedPayloadV1{
				UserID: profile.UserID,
				ChatID: chatID,
				Reason: err.Error(),
			})
		}
		return p.publish(ctx, scoreevents.UpdateRequestedV1, &scoreevents.UpdateRequestedPayloadV1{
			Profile: profile,
			ChatID:  chatID,
			Delta:   delta,
		})

	case "/stats":
		return p.publish(ctx, userevents.StatsRequestedV1, &userevents.StatsRequestedPayloadV1{
			Profile: profile,
			ChatID:  chatID,
		})

	case "/lb":
		return p.publish(ctx, leaderboardevents.DisplayRequestedV1, &leaderboardevents.DisplayRequestedPayloadV1{
			Scope:  sharedtypes.ScopeDaily,
			ChatID: chatID,
			Limit:  parseLimit(args),
		})

	case "/top":
		return p.publish(ctx, leaderboardevents.DisplayRequestedV1, &leaderboardevents.DisplayRequestedPayloadV1{
			Scope:  sharedtypes.ScopeLifetime,
			ChatID: chatID,
			Limit:  parseLimit(args),
		})

	case "/chart":
		return p.publish(ctx, leaderboardevents.ChartRequestedV1, &leaderboardevents.ChartRequestedPayloadV1{
			ChatID: chatID,
			Limit:  parseLimit(args),
		})

	case "/reset_daily":
		if !p.cfg.IsAdmin(profile.UserID) {
			return p.publish(ctx, scoreevents.DailyResetFailedV1, &scoreevents.DailyResetFailedPayloadV1{
				TriggeredBy: strconv.FormatInt(int64(profile.UserID), 10),
				ChatID:      chatID,
				Reason:      "This command is restricted to administrators.",
			})
		}
		return p.publish(ctx, scoreevents.DailyResetRequestedV1, &scoreevents.DailyResetRequestedPayloadV1{
			TriggeredBy: strconv.FormatInt(int64(profile.UserID), 10),
			ChatID:      chatID,
		})

	default:
		// Unknown commands get the help text rather than silence.
		return p.publish(ctx, userevents.HelpRequestedV1, &userevents.HelpRequestedPayloadV1{
			ChatID: chatID,
		})
	}
}

func (p *Parser) handlePlainText(ctx context.Context, msg *Message) error {
	return p.publish(ctx, privilegeevents.PlainMessageReceivedV1, &privilegeevents.PlainMessageReceivedPayloadV1{
		Profile: msg.From.Profile(),
		ChatID:  msg.Chat.ID,
		Text:    msg.Text,
	})
}

func (p *Parser) publish(ctx context.Context, topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", topic, err)
	}
	return p.bus.PublishEvent(ctx, topic, data, map[string]string{
		middleware.CorrelationIDMetadataKey: attr.CorrelationIDFromContext(ctx),
	})
}

// parseDelta validates the /solved argument against the configured
// bounds. The error text is user-facing.
func (p *Parser) parseDelta(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("Usage: /solved <number>, e.g. /solved 5")
	}
	delta, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number. Usage: /solved <number>", args[0])
	}
	if delta == 0 {
		return 0, fmt.Errorf("The number of solved questions must not be zero.")
	}
	if delta > p.cfg.Bot.MaxDeltaPerUpdate || delta < p.cfg.Bot.MinDeltaPerUpdate {
		return 0, fmt.Errorf("The number must be between %d and %d.", p.cfg.Bot.MinDeltaPerUpdate, p.cfg.Bot.MaxDeltaPerUpdate)
	}
	return delta, nil
}

// parseLimit reads an optional board size argument. Invalid or missing
// values fall through to the service default.
func parseLimit(args []string) int {
	if len(args) == 0 {
		return 0
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil || limit <= 0 {
		return 0
	}
	return limit
}

// splitCommand separates the command word from its arguments and strips
// the "@botname" suffix Telegram appends in group chats.
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	command := strings.ToLower(fields[0])
	if at := strings.Index(command, "@"); at != -1 {
		command = command[:at]
	}
	return command, fields[1:]
}
