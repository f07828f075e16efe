/* bot.go
 * Contains the Bot struct and constructor. Requires a discord bot token and ApiPtr, both of which
 * are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"

	"tourboard/api/api"
)

type Bot struct {
	BotToken string
	APIPtr   *api.API
}

func NewBot(botToken string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if apiPtr == nil {
		return nil, fmt.Errorf("apiPtr is required but none was provided")
	}

	return &Bot{
		BotToken: botToken,
		APIPtr:   apiPtr,
	}, nil
}
