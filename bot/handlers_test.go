/* handlers_test.go
 * Contains unit tests for handlers.go functions
 * Authors: Zachary Bower
 */

package bot

import (
	"testing"

	"tourboard/api/api"
	"tourboard/api/shared"
	"tourboard/api/store"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

// testBot builds a bot over a loaded mock store
func testBot() *Bot {
	mock := &store.MockStore{
		IsLoaded: true,
		MockConfig: shared.TournamentConfig{
			Title:   "Кубок осени",
			Scoring: shared.ScoringRules{KillPoints: 1.0},
			Matches: shared.MatchPlan{Total: 2.0},
		},
		MockTeamRows: []shared.TeamRow{
			{ID: 1, Team: "Альфа (№1)", Points: 25, Kills: 10, Matches: 2, Place: 1,
				PerMatchPoints:    []*float64{},
				PerMatchKills:     []*float64{},
				PerMatchPlacement: []*float64{}},
		},
		MockPlayerRows: []shared.PlayerRow{
			{Player: "Ворон", Team: "Альфа (№1)", Impact: 31.7, Kills: 6, Matches: 2},
		},
		MockMatchCount: 2,
		MockExpected:   2,
	}
	return &Bot{BotToken: "token", APIPtr: &api.API{Store: mock}}
}

func newMessage(content string, authorID string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			ChannelID: "channel123",
			Content:   content,
			Author:    &discordgo.User{ID: authorID},
		},
	}
}

// TestHelpMessageHandler tests that the help text lists every command
func TestHelpMessageHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.helpMessageHandler(session, newMessage("$help", "user1"))

	sent := session.GetLastMessage()
	assert.Equal(t, "channel123", sent.ChannelID)
	for _, command := range []string{"$standings", "$players", "$team", "$player", "$status", "$info"} {
		assert.Contains(t, sent.Content, command)
	}
}

// TestStandingsHandler tests the $standings response
func TestStandingsHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.standingsHandler(session, newMessage("$standings", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Турнирная таблица:")
	assert.Contains(t, session.GetLastMessage().Content, "Альфа (№1)")
}

// TestStandingsHandler_NotLoaded tests the fallback message when data is missing
func TestStandingsHandler_NotLoaded(t *testing.T) {
	b := &Bot{BotToken: "token", APIPtr: &api.API{Store: &store.MockStore{}}}
	session := NewMockDiscordSession()

	b.standingsHandler(session, newMessage("$standings", "user1"))

	assert.Equal(t, "An error occurred getting the standings", session.GetLastMessage().Content)
}

// TestPlayersHandler tests the $players response
func TestPlayersHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.playersHandler(session, newMessage("$players", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Лучшие игроки:")
	assert.Contains(t, session.GetLastMessage().Content, "Ворон")
}

// TestTeamHandler tests the $team lookup with a quoted argument
func TestTeamHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.teamHandler(session, newMessage("$team \"Альфа (№1)\"", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Альфа (№1) — место 1")
}

// TestTeamHandler_NoArgument tests the usage hint for a bare $team
func TestTeamHandler_NoArgument(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.teamHandler(session, newMessage("$team", "user1"))

	assert.Equal(t, "Usage: $team <name>", session.GetLastMessage().Content)
}

// TestTeamHandler_UnknownTeam tests the not-found message
func TestTeamHandler_UnknownTeam(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.teamHandler(session, newMessage("$team Зебра", "user1"))

	assert.Equal(t, "Could not find a team matching 'Зебра'", session.GetLastMessage().Content)
}

// TestPlayerHandler tests the $player lookup
func TestPlayerHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.playerHandler(session, newMessage("$player ворон", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Ворон (Альфа (№1))")
}

// TestStatusHandler tests the $status response for a finished tournament
func TestStatusHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.statusHandler(session, newMessage("$status", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Турнир завершён!")
}

// TestInfoHandler tests the $info response
func TestInfoHandler(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.infoHandler(session, newMessage("$info", "user1"))

	assert.Contains(t, session.GetLastMessage().Content, "Турнир: Кубок осени")
	assert.Contains(t, session.GetLastMessage().Content, "Матчей сыграно: 2 из 2")
}

// TestNewMessageHandler_IgnoresOwnMessages tests the self-response guard
func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newMessage("$help", "bot_id"), "bot_id")

	assert.Empty(t, session.SentMessages)
}

// TestNewMessageHandler_IgnoresNonCommands tests that chatter is not answered
func TestNewMessageHandler_IgnoresNonCommands(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newMessage("привет всем", "user1"), "bot_id")

	assert.Empty(t, session.SentMessages)
}

// TestNewMessageHandler_PlayersBeforePlayer tests that $players does not fall into the
// $player prefix route
func TestNewMessageHandler_PlayersBeforePlayer(t *testing.T) {
	b := testBot()
	session := NewMockDiscordSession()

	b.newMessageHandler(session, newMessage("$players", "user1"), "bot_id")

	assert.Contains(t, session.GetLastMessage().Content, "Лучшие игроки:")
}

// TestNewMessageHandler_Routing tests one representative route per command
func TestNewMessageHandler_Routing(t *testing.T) {
	b := testBot()

	cases := []struct {
		content  string
		expected string
	}{
		{"$help", "Tourboard Bot"},
		{"$standings", "Турнирная таблица:"},
		{"$status", "Турнир завершён!"},
		{"$info", "Турнир: Кубок осени"},
	}

	for _, tc := range cases {
		session := NewMockDiscordSession()
		b.newMessageHandler(session, newMessage(tc.content, "user1"), "bot_id")
		assert.Contains(t, session.GetLastMessage().Content, tc.expected, "content=%s", tc.content)
	}
}

// TestCommandArgument_Plain tests a single-word argument
func TestCommandArgument_Plain(t *testing.T) {
	name, err := commandArgument("$player ворон")

	assert.NoError(t, err)
	assert.Equal(t, "ворон", name)
}

// TestCommandArgument_Quoted tests a quoted multi-word argument
func TestCommandArgument_Quoted(t *testing.T) {
	name, err := commandArgument("$team \"Ночные волки\"")

	assert.NoError(t, err)
	assert.Equal(t, "Ночные волки", name)
}

// TestCommandArgument_CurlyQuotes tests the curly quotes phones substitute
func TestCommandArgument_CurlyQuotes(t *testing.T) {
	name, err := commandArgument("$team “Ночные волки”")

	assert.NoError(t, err)
	assert.Equal(t, "Ночные волки", name)
}

// TestCommandArgument_Missing tests the error for a command without an argument
func TestCommandArgument_Missing(t *testing.T) {
	_, err := commandArgument("$team")

	assert.Error(t, err)
}
