//go:build !test

/* bot_runtime.go
 * Contains the runtime entry point that binds the leaderboard command handlers to a live
 * *discordgo.Session. Everything command-shaped lives in handlers.go against the DiscordSession
 * interface; this file only owns session lifecycle
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/bwmarrin/discordgo"
)

// Run connects to Discord and serves the $-commands until interrupted
func (b *Bot) Run() error {
	discord, err := discordgo.New("Bot " + b.BotToken)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	// The leaderboard commands are plain text messages, so the bot needs the
	// message content intent on top of the guild message events
	discord.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	discord.AddHandler(b.newMessage)

	if err := discord.Open(); err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	defer discord.Close()

	log.Println("Tourboard bot started, serving leaderboard commands")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt
	return nil
}

// newMessage adapts the live session onto the testable handler entry point.
// *discordgo.Session satisfies DiscordSession directly.
func (b *Bot) newMessage(discord *discordgo.Session, message *discordgo.MessageCreate) {
	b.newMessageHandler(discord, message, discord.State.User.ID)
}
