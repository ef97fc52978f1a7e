package remote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/a2a-bridge/pkg/a2a"
)

// CardClient fetches the capability card a remote agent publishes at its
// well-known path.
type CardClient struct {
	httpClient *http.Client
}

func NewCardClient() *CardClient {
	return &CardClient{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

/*
Fetch retrieves the agent card published at <base>/.well-known/agent-card.json.
A non-success status or a decode failure is a hard failure, surfaced to the
caller and never retried.
*/
func (c *CardClient) Fetch(baseURL string) (*a2a.AgentCard, error) {
	url := strings.TrimRight(baseURL, "/") + a2a.WellKnownPath

	log.Debug("fetching agent card", "url", url)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("agent card fetch returned non-OK status: %d, body: %s", resp.StatusCode, string(body))
	}

	var card a2a.AgentCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("failed to decode agent card: %w", err)
	}

	log.Debug("retrieved agent card", "name", card.Name)
	return &card, nil
}
