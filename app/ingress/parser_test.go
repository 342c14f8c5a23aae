package ingress

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	leaderboardevents "github.com/ultimate-atpl/study-battle-bot/app/events/leaderboard"
	privilegeevents "github.com/ultimate-atpl/study-battle-bot/app/events/privilege"
	scoreevents "github.com/ultimate-atpl/study-battle-bot/app/events/score"
	userevents "github.com/ultimate-atpl/study-battle-bot/app/events/user"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
	"github.com/ultimate-atpl/study-battle-bot/config"
	"github.com/ultimate-atpl/study-battle-bot/internal/observability"
	"github.com/ultimate-atpl/study-battle-bot/internal/session"
)

type publishedEvent struct {
	Topic   string
	Payload []byte
}

type FakePublisher struct {
	PublishEventFunc func(ctx context.Context, topic string, payload []byte, metadata map[string]string) error

	Events []publishedEvent
}

func (f *FakePublisher) PublishEvent(ctx context.Context, topic string, payload []byte, metadata map[string]string) error {
	f.Events = append(f.Events, publishedEvent{Topic: topic, Payload: payload})
	if f.PublishEventFunc != nil {
		return f.PublishEventFunc(ctx, topic, payload, metadata)
	}
	return nil
}

func (f *FakePublisher) topics() []string {
	out := make([]string, 0, len(f.Events))
	for _, e := range f.Events {
		out = append(out, e.Topic)
	}
	return out
}

func decodeInto[T any](t *testing.T, data []byte) *T {
	t.Helper()
	var payload T
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	return &payload
}

func testConfig() *config.Config {
	return &config.Config{
		Telegram: config.TelegramConfig{
			AdminIDs: []sharedtypes.UserID{900},
		},
		Bot: config.BotConfig{
			MaxDeltaPerUpdate: 100,
			MinDeltaPerUpdate: -100,
			CommandsPerMinute: 60,
		},
	}
}

func newTestParser(bus eventPublisher, cfg *config.Config, chatSession *session.ChatSession) *Parser {
	if cfg == nil {
		cfg = testConfig()
	}
	if chatSession == nil {
		chatSession = session.New()
	}
	return NewParser(bus, chatSession, cfg, observability.NoOpLogger, noop.NewTracerProvider().Tracer("test"))
}

func textUpdate(userID sharedtypes.UserID, chatID sharedtypes.ChatID, text string) *Update {
	return &Update{
		UpdateID: 1,
		Message: &Message{
			MessageID: 10,
			From:      &User{ID: userID, Username: "bob", FirstName: "Bob"},
			Chat:      Chat{ID: chatID, Type: "private"},
			Text:      text,
		},
	}
}

func TestParser_CommandRouting(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantTopics []string
	}{
		{
			name:       "start registers and welcomes",
			text:       "/start",
			wantTopics: []string{userevents.RegistrationRequestedV1, userevents.HelpRequestedV1},
		},
		{
			name:       "register",
			text:       "/register",
			wantTopics: []string{userevents.RegistrationRequestedV1},
		},
		{
			name:       "help",
			text:       "/help",
			wantTopics: []string{userevents.HelpRequestedV1},
		},
		{
			name:       "solved",
			text:       "/solved 5",
			wantTopics: []string{scoreevents.UpdateRequestedV1},
		},
		{
			name:       "stats",
			text:       "/stats",
			wantTopics: []string{userevents.StatsRequestedV1},
		},
		{
			name:       "daily board",
			text:       "/lb",
			wantTopics: []string{leaderboardevents.DisplayRequestedV1},
		},
		{
			name:       "lifetime board",
			text:       "/top",
			wantTopics: []string{leaderboardevents.DisplayRequestedV1},
		},
		{
			name:       "chart",
			text:       "/chart",
			wantTopics: []string{leaderboardevents.ChartRequestedV1},
		},
		{
			name:       "group mention suffix is stripped",
			text:       "/help@StudyBattleBot",
			wantTopics: []string{userevents.HelpRequestedV1},
		},
		{
			name:       "unknown command answers with help",
			text:       "/frobnicate",
			wantTopics: []string{userevents.HelpRequestedV1},
		},
		{
			name:       "plain text feeds the special message flow",
			text:       "see you at the top",
			wantTopics: []string{privilegeevents.PlainMessageReceivedV1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &FakePublisher{}
			p := newTestParser(bus, nil, nil)

			if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, tt.text)); err != nil {
				t.Fatalf("HandleUpdate: %v", err)
			}

			got := bus.topics()
			if len(got) != len(tt.wantTopics) {
				t.Fatalf("expected topics %v, got %v", tt.wantTopics, got)
			}
			for i := range got {
				if got[i] != tt.wantTopics[i] {
					t.Errorf("topic %d: expected %q, got %q", i, tt.wantTopics[i], got[i])
				}
			}
		})
	}
}

func TestParser_Solved(t *testing.T) {
	t.Run("valid delta carries the profile", func(t *testing.T) {
		bus := &FakePublisher{}
		p := newTestParser(bus, nil, nil)

		if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/solved 5")); err != nil {
			t.Fatalf("HandleUpdate: %v", err)
		}
		payload := decodeInto[scoreevents.UpdateRequestedPayloadV1](t, bus.Events[0].Payload)
		if payload.Delta != 5 || payload.ChatID != 11 || payload.Profile.UserID != 7 {
			t.Errorf("unexpected payload %+v", payload)
		}
	})

	t.Run("negative correction is allowed", func(t *testing.T) {
		bus := &FakePublisher{}
		p := newTestParser(bus, nil, nil)

		if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/solved -3")); err != nil {
			t.Fatalf("HandleUpdate: %v", err)
		}
		payload := decodeInto[scoreevents.UpdateRequestedPayloadV1](t, bus.Events[0].Payload)
		if payload.Delta != -3 {
			t.Errorf("expected delta -3, got %d", payload.Delta)
		}
	})

	invalid := []struct {
		name string
		text string
		want string
	}{
		{"missing argument", "/solved", "Usage: /solved"},
		{"not a number", "/solved five", "not a whole number"},
		{"zero", "/solved 0", "must not be zero"},
		{"above bound", "/solved 101", "between -100 and 100"},
		{"below bound", "/solved -101", "between -100 and 100"},
		{"extra arguments", "/solved 1 2", "Usage: /solved"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			bus := &FakePublisher{}
			p := newTestParser(bus, nil, nil)

			if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, tt.text)); err != nil {
				t.Fatalf("HandleUpdate: %v", err)
			}
			if len(bus.Events) != 1 || bus.Events[0].Topic != scoreevents.UpdateFailedV1 {
				t.Fatalf("expected a single update failure, got %v", bus.topics())
			}
			payload := decodeInto[scoreevents.UpdateFailedPayloadV1](t, bus.Events[0].Payload)
			if !strings.Contains(payload.Reason, tt.want) {
				t.Errorf("expected reason containing %q, got %q", tt.want, payload.Reason)
			}
		})
	}
}

func TestParser_ResetDaily(t *testing.T) {
	t.Run("admin triggers the reset without a champion announcement", func(t *testing.T) {
		bus := &FakePublisher{}
		p := newTestParser(bus, nil, nil)

		if err := p.HandleUpdate(context.Background(), textUpdate(900, 11, "/reset_daily")); err != nil {
			t.Fatalf("HandleUpdate: %v", err)
		}
		if len(bus.Events) != 1 || bus.Events[0].Topic != scoreevents.DailyResetRequestedV1 {
			t.Fatalf("expected a reset request, got %v", bus.topics())
		}
		payload := decodeInto[scoreevents.DailyResetRequestedPayloadV1](t, bus.Events[0].Payload)
		if payload.TriggeredBy != "900" || payload.AnnounceChampion {
			t.Errorf("unexpected payload %+v", payload)
		}
	})

	t.Run("non admin is refused", func(t *testing.T) {
		bus := &FakePublisher{}
		p := newTestParser(bus, nil, nil)

		if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/reset_daily")); err != nil {
			t.Fatalf("HandleUpdate: %v", err)
		}
		if len(bus.Events) != 1 || bus.Events[0].Topic != scoreevents.DailyResetFailedV1 {
			t.Fatalf("expected a reset refusal, got %v", bus.topics())
		}
		payload := decodeInto[scoreevents.DailyResetFailedPayloadV1](t, bus.Events[0].Payload)
		if !strings.Contains(payload.Reason, "administrators") {
			t.Errorf("unexpected reason %q", payload.Reason)
		}
	})
}

func TestParser_BoardScopes(t *testing.T) {
	bus := &FakePublisher{}
	p := newTestParser(bus, nil, nil)

	if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/lb 15")); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/top")); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}

	daily := decodeInto[leaderboardevents.DisplayRequestedPayloadV1](t, bus.Events[0].Payload)
	if daily.Scope != sharedtypes.ScopeDaily || daily.Limit != 15 {
		t.Errorf("unexpected daily request %+v", daily)
	}
	lifetime := decodeInto[leaderboardevents.DisplayRequestedPayloadV1](t, bus.Events[1].Payload)
	if lifetime.Scope != sharedtypes.ScopeLifetime || lifetime.Limit != 0 {
		t.Errorf("unexpected lifetime request %+v", lifetime)
	}
}

func TestParser_DroppedUpdates(t *testing.T) {
	tests := []struct {
		name   string
		update *Update
	}{
		{"no message", &Update{UpdateID: 1}},
		{"no sender", &Update{UpdateID: 1, Message: &Message{Chat: Chat{ID: 11}, Text: "/help"}}},
		{"bot sender", &Update{UpdateID: 1, Message: &Message{From: &User{ID: 7, IsBot: true}, Chat: Chat{ID: 11}, Text: "/help"}}},
		{"empty text", &Update{UpdateID: 1, Message: &Message{From: &User{ID: 7}, Chat: Chat{ID: 11}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &FakePublisher{}
			p := newTestParser(bus, nil, nil)

			if err := p.HandleUpdate(context.Background(), tt.update); err != nil {
				t.Fatalf("HandleUpdate: %v", err)
			}
			if len(bus.Events) != 0 {
				t.Fatalf("expected the update to be dropped, got %v", bus.topics())
			}
		})
	}
}

func TestParser_RemembersGroupChat(t *testing.T) {
	bus := &FakePublisher{}
	chatSession := session.New()
	p := newTestParser(bus, nil, chatSession)

	update := textUpdate(7, -100500, "/help")
	update.Message.Chat.Type = "supergroup"
	if err := p.HandleUpdate(context.Background(), update); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}

	got, ok := chatSession.BroadcastChat()
	if !ok || got != -100500 {
		t.Fatalf("expected broadcast chat -100500, got %v (%v)", got, ok)
	}
}

func TestParser_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Bot.CommandsPerMinute = 2
	bus := &FakePublisher{}
	p := newTestParser(bus, cfg, nil)

	for i := 0; i < 5; i++ {
		if err := p.HandleUpdate(context.Background(), textUpdate(7, 11, "/help")); err != nil {
			t.Fatalf("HandleUpdate: %v", err)
		}
	}
	if len(bus.Events) != 2 {
		t.Fatalf("expected 2 events after the burst is spent, got %d", len(bus.Events))
	}

	// A different user has a bucket of their own.
	if err := p.HandleUpdate(context.Background(), textUpdate(8, 11, "/help")); err != nil {
		t.Fatalf("HandleUpdate: %v", err)
	}
	if len(bus.Events) != 3 {
		t.Fatalf("expected the other user's command through, got %d events", len(bus.Events))
	}
}
