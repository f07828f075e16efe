/* mock_session.go
 * Contains the DiscordSession mock the handler tests use to capture command replies
 * Authors: Zachary Bower
 */

package bot

import "github.com/bwmarrin/discordgo"

// MockDiscordSession implements DiscordSession, recording every reply a
// command handler sends instead of talking to Discord
type MockDiscordSession struct {
	// SentMessages holds the replies in send order
	SentMessages []MockMessage
	// ErrorToReturn makes the next send fail, for exercising error paths
	ErrorToReturn error
}

// MockMessage is one captured channel reply
type MockMessage struct {
	ChannelID string
	Content   string
}

// ChannelMessageSend records the reply and returns a minimal message, or the
// configured error
func (m *MockDiscordSession) ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}

	m.SentMessages = append(m.SentMessages, MockMessage{
		ChannelID: channelID,
		Content:   content,
	})

	return &discordgo.Message{
		ID:        "mock_message_id",
		ChannelID: channelID,
		Content:   content,
	}, nil
}

// GetLastMessage returns the most recent reply, or an empty MockMessage when
// nothing was sent
func (m *MockDiscordSession) GetLastMessage() MockMessage {
	if len(m.SentMessages) == 0 {
		return MockMessage{}
	}
	return m.SentMessages[len(m.SentMessages)-1]
}

// ClearMessages discards the captured replies
func (m *MockDiscordSession) ClearMessages() {
	m.SentMessages = nil
}

// NewMockDiscordSession creates an empty mock session
func NewMockDiscordSession() *MockDiscordSession {
	return &MockDiscordSession{
		SentMessages: make([]MockMessage, 0),
	}
}
