/* main.go
 * The "main" method for running the leaderboard service. For details see `readme.md`
 * Usage: go run main.go -dataURL="<url>" -serve=true -bot=true
 * Authors: Zachary Bower
 * Last modified: 26/08/2026
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"tourboard/api/api"
	"tourboard/api/logic"
	"tourboard/bot"
	"tourboard/web"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	// Flags
	dataURLPtr := flag.String("dataURL", os.Getenv("DATA_BASE_URL"), "Base URL the tournament data files are hosted under, e.g. https://example.org/data")
	addrPtr := flag.String("addr", ":8080", "Address for the HTTP server when -serve=true")
	servePtr := flag.String("serve", "false", "Start the HTTP server: takes true or false as argument")
	botPtr := flag.String("bot", "false", "Start the Discord bot: takes true or false as argument")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	serve, err := convertStrToBool(*servePtr)
	if err != nil {
		log.Fatalf("Invalid \"serve\" flag. Should be true or false")
	}
	runBot, err := convertStrToBool(*botPtr)
	if err != nil {
		log.Fatalf("Invalid \"bot\" flag. Should be true or false")
	}
	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatalf("Invalid \"test\" flag. Should be true or false")
	}

	a, err := api.NewAPI(*dataURLPtr)
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}

	// First load is mandatory: without the scoring rules and roster there is
	// nothing to serve
	if err := a.Refresh(context.Background()); err != nil {
		log.Fatalf("failed to load tournament data: %v", err)
	}

	// One-shot mode: dump the standings to stdout and exit
	if !serve && !runBot {
		printStandings(a)
		return
	}

	// While the tournament has not started, log the countdown the way the
	// status card ticks; the ticker stops itself once the start time passes
	stopTicker := a.StartCountdownTicker(func(status logic.Status) {
		if status.State == logic.StateNotStarted && status.Countdown.Seconds%15 == 0 {
			c := status.Countdown
			log.Printf("Tournament starts in %d %s %d %s %d %s %d %s",
				c.Days, c.DaysLabel, c.Hours, c.HoursLabel, c.Minutes, c.MinutesLabel, c.Seconds, c.SecondsLabel)
		}
	})
	defer stopTicker()

	if serve {
		go func() {
			if err := web.Start(web.Config{Addr: *addrPtr, API: a}); err != nil {
				log.Fatalf("web server failed: %v", err)
			}
		}()
	}

	if runBot {
		var discordToken string
		if useTestBot {
			discordToken = os.Getenv("DISCORD_BETA_TOKEN")
		} else {
			discordToken = os.Getenv("DISCORD_PROD_TOKEN")
		}

		b, err := bot.NewBot(discordToken, a)
		if err != nil {
			log.Fatalf("failed to initialize bot: %v", err)
		}
		if err := b.Run(); err != nil {
			log.Fatalf("bot failed: %v", err)
		}
		return
	}

	// Serve-only mode: block forever on the server goroutine
	select {}
}

// printStandings writes the computed tables and status to stdout for one-shot runs
func printStandings(a *api.API) {
	for _, report := range []func() (string, error){a.StandingsReport, a.PlayersReport, a.StatusReport} {
		text, err := report()
		if err != nil {
			log.Fatalf("failed to build report: %v", err)
		}
		fmt.Println(text)
	}
}
