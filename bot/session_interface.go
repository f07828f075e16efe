/* session_interface.go
 * Contains the narrow Discord session interface the command handlers depend on
 * Authors: Zachary Bower
 */

package bot

import "github.com/bwmarrin/discordgo"

// DiscordSession is the single session method the leaderboard commands need:
// every command answers with one plain-text channel message. Handlers take
// this instead of *discordgo.Session so tests can capture the replies.
type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Ensure *discordgo.Session implements DiscordSession
var _ DiscordSession = (*discordgo.Session)(nil)
