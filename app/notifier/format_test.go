package notifier

import (
	"strings"
	"testing"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

func TestFormatOvertake(t *testing.T) {
	got := FormatOvertake("Bob", "Alice", 2, 1)
	want := "🏆 Bob lider tablosunda Alice'i geçti! 2. sıradan 1. sıraya yükseldi!"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatAttributedMessage(t *testing.T) {
	got := FormatAttributedMessage("Bob", "Alice", "see you at the top")
	want := "@everyone, Bob lider tablosunda Alice'i geçti, mesajı: see you at the top"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatChampion(t *testing.T) {
	t.Run("with champion", func(t *testing.T) {
		got := FormatChampion("Bob")
		if !strings.Contains(got, "bugünki şampiyonu Bob") {
			t.Errorf("unexpected champion text: %q", got)
		}
	})
	t.Run("empty day", func(t *testing.T) {
		got := FormatChampion("")
		if !strings.Contains(got, "hiç katılımcısı olmadı") {
			t.Errorf("unexpected empty-day text: %q", got)
		}
	})
}

func TestFormatLeaderboard(t *testing.T) {
	entries := leaderboardtypes.Snapshot{
		{DisplayName: "Alice", Score: 12},
		{DisplayName: "Bob", Score: 9},
		{DisplayName: "Carol", Score: 7},
		{DisplayName: "Dave", Score: 2},
	}

	t.Run("daily with medals", func(t *testing.T) {
		got := FormatLeaderboard(sharedtypes.ScopeDaily, entries, false)
		for _, want := range []string{
			"📅 Daily Leaderboard",
			"🥇 Alice: 12 questions today",
			"🥈 Bob: 9 questions today",
			"🥉 Carol: 7 questions today",
			"4. Dave: 2 questions today",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("missing %q in:\n%s", want, got)
			}
		}
		if strings.Contains(got, "🔄") {
			t.Error("manual request must not carry the refresh prefix")
		}
	})

	t.Run("auto triggered prefix", func(t *testing.T) {
		got := FormatLeaderboard(sharedtypes.ScopeDaily, entries, true)
		if !strings.HasPrefix(got, "🔄 Updated Leaderboard:") {
			t.Errorf("expected refresh prefix, got:\n%s", got)
		}
	})

	t.Run("lifetime scope", func(t *testing.T) {
		got := FormatLeaderboard(sharedtypes.ScopeLifetime, entries, false)
		if !strings.Contains(got, "👑 Lifetime Leaderboard") {
			t.Errorf("unexpected header: %q", got)
		}
		if !strings.Contains(got, "🥇 Alice: 12 total questions") {
			t.Errorf("unexpected entry line:\n%s", got)
		}
	})

	t.Run("empty boards", func(t *testing.T) {
		daily := FormatLeaderboard(sharedtypes.ScopeDaily, nil, false)
		if !strings.Contains(daily, "No one has solved questions today yet") {
			t.Errorf("unexpected empty daily text: %q", daily)
		}
		lifetime := FormatLeaderboard(sharedtypes.ScopeLifetime, nil, false)
		if !strings.Contains(lifetime, "No lifetime statistics available yet") {
			t.Errorf("unexpected empty lifetime text: %q", lifetime)
		}
	})
}

func TestFormatScoreUpdate(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  string
	}{
		{"positive", 5, "✅ Great job! Added 5 solved questions."},
		{"negative", -2, "✅ Correction applied: -2 questions."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatScoreUpdate(tt.delta, 7, 30)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("expected prefix %q, got %q", tt.want, got)
			}
			if !strings.Contains(got, "📅 Today: 7 questions") || !strings.Contains(got, "🏆 Lifetime: 30 questions") {
				t.Errorf("missing counters in %q", got)
			}
		})
	}
}

func TestFormatStats_Motivation(t *testing.T) {
	tests := []struct {
		name     string
		daily    int
		lifetime int
		want     string
	}{
		{"brand new", 0, 0, "Ready to start"},
		{"idle today", 0, 50, "No progress today"},
		{"warming up", 3, 50, "Good start"},
		{"going strong", 8, 50, "Great progress"},
		{"on fire", 15, 50, "on fire"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatStats("Bob", tt.daily, tt.lifetime)
			if !strings.Contains(got, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, got)
			}
		})
	}
}
