/* external.go
 * Contains the logic used to fetch the static tournament data files (tournament.json, teams.json,
 * match<N>.json) from the configured hosting URL, and return the parsed records to the higher
 * level functions
 * Authors: Zachary Bower
 */

package external

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sync"
	"time"

	"tourboard/api/shared"

	"golang.org/x/time/rate"
)

// Client fetches the tournament data files from a single base URL
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a fetch client for the given base URL (the directory the
// data files live under, e.g. https://example.org/data)
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is required but none was provided")
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		// Static file hosts throttle burst traffic; cap the match fan-out
		limiter: rate.NewLimiter(rate.Limit(10), 5),
	}, nil
}

// FetchMeta loads the optional meta.json and remembers its version string for
// cache busting on subsequent requests. A missing or broken meta.json is not
// an error; there is simply no version to append.
func (c *Client) FetchMeta(ctx context.Context) {
	raw, err := c.fetchJSON(ctx, "meta.json")
	if err != nil {
		return
	}
	meta, ok := raw.(map[string]any)
	if !ok {
		return
	}
	if version, ok := meta["version"].(string); ok {
		c.version = version
	}
}

// FetchTournament loads and parses tournament.json. A failure here is fatal
// for the caller: aggregation cannot proceed without the scoring rules.
func (c *Client) FetchTournament(ctx context.Context) (shared.TournamentConfig, error) {
	raw, err := c.fetchJSON(ctx, "tournament.json")
	if err != nil {
		return shared.TournamentConfig{}, fmt.Errorf("failed to load tournament config: %w", err)
	}
	cfg, err := ParseTournamentConfig(raw)
	if err != nil {
		return shared.TournamentConfig{}, fmt.Errorf("failed to parse tournament config: %w", err)
	}
	return cfg, nil
}

// FetchTeams loads and parses the roster from teams.json. Like the tournament
// config this file is mandatory.
func (c *Client) FetchTeams(ctx context.Context) ([]shared.TeamRecord, error) {
	raw, err := c.fetchJSON(ctx, "teams.json")
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	roster, err := ParseTeamRecords(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse teams: %w", err)
	}
	return roster, nil
}

// FetchMatches requests match1.json..match<count>.json concurrently and joins
// the results. A match file that fails to load or parse is logged and skipped;
// the returned slice keeps file order and only contains the matches that
// loaded. This is the only partial-failure policy: no retry, just omission.
func (c *Client) FetchMatches(ctx context.Context, count int) []shared.MatchRecord {
	records := make([]*shared.MatchRecord, count)
	var wg sync.WaitGroup
	for n := 1; n <= count; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			if err := c.limiter.Wait(ctx); err != nil {
				log.Printf("warning: skipping match %d: %v", n, err)
				return
			}
			raw, err := c.fetchJSON(ctx, fmt.Sprintf("match%d.json", n))
			if err != nil {
				log.Printf("warning: skipping match %d: %v", n, err)
				return
			}
			record, err := ParseMatchRecord(raw)
			if err != nil {
				log.Printf("warning: skipping match %d: %v", n, err)
				return
			}
			record.FileNumber = n
			records[n-1] = record
		}(n)
	}
	wg.Wait()

	var loaded []shared.MatchRecord
	for _, record := range records {
		if record != nil {
			loaded = append(loaded, *record)
		}
	}
	return loaded
}

// fetchJSON GETs one data file and decodes it. Non-JSON responses produce a
// descriptive error with a content preview, as a misconfigured host typically
// serves an HTML error page where a data file should be.
func (c *Client) fetchJSON(ctx context.Context, name string) (any, error) {
	fileURL := fmt.Sprintf("%s/%s", c.baseURL, name)
	if c.version != "" {
		fileURL += "?v=" + url.QueryEscape(c.version)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", name, err)
	}
	request.Header.Set("User-Agent", "TourboardDataFetcher/1.0")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("request for %s failed: %w", name, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: status code %d", name, response.StatusCode)
	}

	var body []byte
	if response.Header.Get("Content-Encoding") == "gzip" {
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer reader.Close()
		body, err = io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	} else {
		body, err = io.ReadAll(response.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("%s is not valid JSON (starts with %q): %w", name, contentPreview(body), err)
	}
	return decoded, nil
}

// contentPreview returns the first bytes of a response body for error messages
func contentPreview(body []byte) string {
	const previewLen = 120
	if len(body) > previewLen {
		return string(body[:previewLen])
	}
	return string(body)
}
