package notifier

import (
	"fmt"
	"strings"

	leaderboardtypes "github.com/ultimate-atpl/study-battle-bot/app/types/leaderboard"
	sharedtypes "github.com/ultimate-atpl/study-battle-bot/app/types/shared"
)

// All user-facing text lives here. Service announcements stay in
// Turkish, matching the community the bot runs in; command replies are
// English.

// FormatOvertake is the group broadcast for a detected overtake.
func FormatOvertake(actorName, displacedName string, oldRank, newRank sharedtypes.Rank) string {
	return fmt.Sprintf(
		"🏆 %s lider tablosunda %s'i geçti! %d. sıradan %d. sıraya yükseldi!",
		actorName, displacedName, oldRank, newRank,
	)
}

// FormatAttributedMessage wraps a redeemed special message. The text is
// forwarded verbatim.
func FormatAttributedMessage(granteeName, displacedName, text string) string {
	return fmt.Sprintf(
		"@everyone, %s lider tablosunda %s'i geçti, mesajı: %s",
		granteeName, displacedName, text,
	)
}

// FormatAttributedConfirmation is the private reply to the grantee.
func FormatAttributedConfirmation() string {
	return "✅ Özel mesajın gönderildi!"
}

// FormatChampion announces the end-of-day champion. An empty name means
// nobody scored.
func FormatChampion(displayName string) string {
	if displayName == "" {
		return "🏆 Ultimate ATPL Championship'in bugün hiç katılımcısı olmadı."
	}
	return fmt.Sprintf("🏆 Ultimate ATPL Championship'in bugünki şampiyonu %s! 🏆", displayName)
}

// FormatWelcome greets a user after /start.
func FormatWelcome(displayName string) string {
	var b strings.Builder
	b.WriteString("🎯 Welcome to Study Battle Bot! 🎯\n\n")
	fmt.Fprintf(&b, "Hello %s!\n\n", displayName)
	b.WriteString("I'm here to help you track your daily study progress and compete with others!\n\n")
	b.WriteString(commandList)
	b.WriteString("\nStart logging your solved questions with /solved <number>!\nGood luck with your studies! 📖")
	return b.String()
}

// FormatHelp answers /help.
func FormatHelp() string {
	var b strings.Builder
	b.WriteString("🤖 Study Battle Bot Help 🤖\n\n")
	b.WriteString(commandList)
	b.WriteString("\nTips:\n")
	b.WriteString("• Use negative numbers to correct mistakes: /solved -1\n")
	b.WriteString("• Daily stats reset automatically at midnight UTC\n")
	b.WriteString("• Your lifetime stats are never reset")
	return b.String()
}

const commandList = "Commands:\n" +
	"📚 /solved <number> - Log questions solved (negative numbers correct mistakes)\n" +
	"🏆 /lb - Daily leaderboard (resets every 24 hours)\n" +
	"👑 /top - Lifetime leaderboard (never resets)\n" +
	"📈 /chart - Daily leaderboard as a chart\n" +
	"📊 /stats - Your personal statistics\n" +
	"❓ /help - Show this help message\n"

// FormatRegistered confirms /register.
func FormatRegistered(displayName string, newUser bool) string {
	if newUser {
		return fmt.Sprintf("✅ Registration successful, %s!\nYou can now start logging your solved questions with /solved <number>", displayName)
	}
	return fmt.Sprintf("✅ You're already registered, %s. Your details were refreshed.", displayName)
}

// FormatScoreUpdate confirms a /solved and shows both counters.
func FormatScoreUpdate(delta, daily, lifetime int) string {
	var head string
	switch {
	case delta > 0:
		head = fmt.Sprintf("✅ Great job! Added %d solved questions.", delta)
	case delta < 0:
		head = fmt.Sprintf("✅ Correction applied: %d questions.", delta)
	default:
		head = "✅ No change applied."
	}
	return fmt.Sprintf("%s\n\n📊 Your Statistics:\n📅 Today: %d questions\n🏆 Lifetime: %d questions", head, daily, lifetime)
}

// FormatStats answers /stats.
func FormatStats(displayName string, daily, lifetime int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s's Statistics\n\n", displayName)
	fmt.Fprintf(&b, "📅 Today: %d questions solved\n", daily)
	fmt.Fprintf(&b, "🏆 Lifetime: %d total questions\n\n", lifetime)
	b.WriteString(motivation(daily, lifetime))
	return b.String()
}

func motivation(daily, lifetime int) string {
	switch {
	case daily == 0 && lifetime == 0:
		return "🎯 Ready to start your study journey?"
	case daily == 0:
		return "📚 No progress today yet. Let's get started!"
	case daily < 5:
		return "🌱 Good start! Keep building momentum!"
	case daily < 10:
		return "🔥 Great progress today!"
	default:
		return "🚀 Amazing work today! You're on fire!"
	}
}

// FormatLeaderboard renders a board with medal emojis for the podium.
func FormatLeaderboard(scope sharedtypes.Scope, entries leaderboardtypes.Snapshot, autoTriggered bool) string {
	var b strings.Builder
	if autoTriggered {
		b.WriteString("🔄 Updated Leaderboard:\n\n")
	}

	switch scope {
	case sharedtypes.ScopeLifetime:
		b.WriteString("👑 Lifetime Leaderboard (All-time)\n\n")
		if len(entries) == 0 {
			b.WriteString("🤷‍♂️ No lifetime statistics available yet.")
			return b.String()
		}
		writeEntries(&b, entries, "total questions")
	default:
		b.WriteString("📅 Daily Leaderboard (Resets every 24 hours)\n\n")
		if len(entries) == 0 {
			b.WriteString("🤷‍♂️ No one has solved questions today yet.")
			return b.String()
		}
		writeEntries(&b, entries, "questions today")
	}
	return b.String()
}

func writeEntries(b *strings.Builder, entries leaderboardtypes.Snapshot, suffix string) {
	for i, e := range entries {
		var marker string
		switch i {
		case 0:
			marker = "🥇"
		case 1:
			marker = "🥈"
		case 2:
			marker = "🥉"
		default:
			marker = fmt.Sprintf("%d.", i+1)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(b, "%s %s: %d %s", marker, e.DisplayName, e.Score, suffix)
	}
}

// FormatResetDone announces a completed daily reset.
func FormatResetDone() string {
	return "✅ Daily statistics have been reset successfully!\n\n📅 All daily counts are now at 0.\n🏆 Lifetime statistics remain unchanged."
}

// FormatFailure is the generic user-visible error reply.
func FormatFailure(reason string) string {
	if reason == "" {
		return "❌ An error occurred while processing your request. Please try again later."
	}
	return "❌ " + reason
}
