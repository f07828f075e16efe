/* handlers.go
 * Contains testable handler methods that accept the DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"
)

// helpMessageHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpMessageHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Tourboard Bot\n")
	res.WriteString("`$standings`: shows the team leaderboard for the tournament\n")
	res.WriteString("`$players`: shows the player leaderboard sorted by impact score\n")
	res.WriteString("`$team <name>`: shows one team's per-match breakdown. Names with spaces need to be enclosed in \" (e.g. \"Ночные волки\"). There is fuzzy matching on names\n")
	res.WriteString("`$player <name>`: shows one player's per-match breakdown, with the same name matching rules\n")
	res.WriteString("`$status`: shows the tournament status: a countdown before the start, progress during, and the podium once finished\n")
	res.WriteString("`$info`: shows tournament details including title, maps, scoring and rules\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// standingsHandler handles the $standings command with a DiscordSession interface
func (b *Bot) standingsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.StandingsReport()
	if err != nil {
		log.Println(err)
		res = "An error occurred getting the standings"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// playersHandler handles the $players command with a DiscordSession interface
func (b *Bot) playersHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.PlayersReport()
	if err != nil {
		log.Println(err)
		res = "An error occurred getting the player standings"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// teamHandler handles the $team command with a DiscordSession interface
func (b *Bot) teamHandler(session DiscordSession, message *discordgo.MessageCreate) {
	name, err := commandArgument(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Usage: $team <name>")
		return
	}

	res, err := b.APIPtr.TeamReport(name)
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("Could not find a team matching '%s'", name)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// playerHandler handles the $player command with a DiscordSession interface
func (b *Bot) playerHandler(session DiscordSession, message *discordgo.MessageCreate) {
	name, err := commandArgument(message.Content)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, "Usage: $player <name>")
		return
	}

	res, err := b.APIPtr.PlayerReport(name)
	if err != nil {
		log.Println(err)
		res = fmt.Sprintf("Could not find a player matching '%s'", name)
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// statusHandler handles the $status command with a DiscordSession interface
func (b *Bot) statusHandler(session DiscordSession, message *discordgo.MessageCreate) {
	res, err := b.APIPtr.StatusReport()
	if err != nil {
		log.Println(err)
		res = "An error occurred getting the tournament status"
	}
	session.ChannelMessageSend(message.ChannelID, res)
}

// infoHandler handles the $info command with a DiscordSession interface
func (b *Bot) infoHandler(session DiscordSession, message *discordgo.MessageCreate) {
	info, err := b.APIPtr.TournamentInfo()
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An unexpected error occurred")
		return
	}
	var res strings.Builder
	for i := range info {
		res.WriteString(fmt.Sprintf("%s\n", info[i]))
	}
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// newMessageHandler routes messages to appropriate handlers with a DiscordSession interface
// botUserID is the bot's user ID to prevent self-responses
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// Prevent bot from responding to its own messages
	if message.Author.ID == botUserID {
		return
	}

	// Route to appropriate handler. $players must be checked before $player
	// because of the prefix match
	switch {
	case startsWith(message.Content, "$help"):
		b.helpMessageHandler(session, message)

	case startsWith(message.Content, "$standings"):
		b.standingsHandler(session, message)

	case startsWith(message.Content, "$players"):
		b.playersHandler(session, message)

	case startsWith(message.Content, "$player"):
		b.playerHandler(session, message)

	case startsWith(message.Content, "$team"):
		b.teamHandler(session, message)

	case startsWith(message.Content, "$status"):
		b.statusHandler(session, message)

	case startsWith(message.Content, "$info"):
		b.infoHandler(session, message)
	}
}

// commandArgument extracts the single name argument from a command message.
// We use splitter here instead of go's built in splitter because team and player names can
// contain spaces, e.g. "Ночные волки" should be recognised as one name not two
func commandArgument(content string) (string, error) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	parts, _ := spaceSplitter.Split(content)
	if len(parts) < 2 {
		return "", fmt.Errorf("command has no argument")
	}
	name := strings.Join(parts[1:], " ")
	name = strings.ReplaceAll(name, "\"", "")
	name = strings.ReplaceAll(name, "“", "")
	name = strings.ReplaceAll(name, "”", "")
	return strings.TrimSpace(name), nil
}

// Helper function to check if a string starts with a given substring
// Preconditions: Receives an input string and a substring
// Postconditions: Returns true if the substring is at the start of the string, else returns false
func startsWith(inputString string, substring string) bool {
	return strings.HasPrefix(inputString, substring)
}
