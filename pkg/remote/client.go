package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/theapemachine/a2a-bridge/pkg/a2a"
	"github.com/theapemachine/a2a-bridge/pkg/errors"
	"github.com/theapemachine/a2a-bridge/pkg/jsonrpc"
)

// callTimeout bounds one outbound message/send call end to end.
const callTimeout = 120 * time.Second

/*
Client sends message/send JSON-RPC calls to a remote A2A endpoint and
normalizes the heterogeneous result shapes into plain text.
*/
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient targets the given A2A endpoint. token, when non-empty, is
// attached as a bearer credential on every call.
func NewClient(url string, token string) *Client {
	return &Client{
		url:        url,
		token:      token,
		httpClient: &http.Client{},
	}
}

// callResponse keeps the result half-parsed so Normalize can deal with the
// shape variance in one place.
type callResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      json.RawMessage  `json:"id"`
	Result  *CallResult      `json:"result,omitempty"`
	Error   *errors.RpcError `json:"error,omitempty"`
}

/*
SendMessage issues a message/send call carrying a single text part inside a
freshly identified message, and returns the normalized result text.
*/
func (client *Client) SendMessage(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params, err := json.Marshal(a2a.MessageSendParams{
		Message: a2a.NewTextMessage(a2a.RoleUser, text),
	})

	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(jsonrpc.Request{
		JSONRPC: "2.0",
		ID:      mustMarshalID(1),
		Method:  "message/send",
		Params:  params,
	})

	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, client.url, bytes.NewReader(payload))

	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")

	if client.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+client.token)
	}

	log.Debug("sending message to remote agent", "url", client.url)

	resp, err := client.httpClient.Do(httpReq)

	if err != nil {
		return "", fmt.Errorf("remote call failed: %w", err)
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("remote agent returned status %d: %s", resp.StatusCode, string(body))
	}

	var rpcResp callResponse

	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return "", fmt.Errorf("failed to decode remote response: %w", err)
	}

	if rpcResp.Error != nil {
		return "", fmt.Errorf("remote agent error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Result == nil {
		return "No result returned.", nil
	}

	return rpcResp.Result.Normalize(), nil
}

func mustMarshalID(v int) json.RawMessage {
	b, _ := json.Marshal(v)
	return b
}
