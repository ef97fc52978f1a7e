package upstream

import (
	"context"
	"fmt"
	"time"

	fiberClient "github.com/gofiber/fiber/v3/client"
)

// completionTimeout bounds a single completion call. Expiry converts the
// in-flight call into a failure; there is no retry.
const completionTimeout = 120 * time.Second

// ChatRequest is the body sent to the host chat-completions endpoint.
type ChatRequest struct {
	Model    string        `json:"model"`
	Stream   bool          `json:"stream"`
	Messages []ChatMessage `json:"messages"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResponse mirrors the subset of the completion response the bridge
// reads: the first choice's message content.
type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

/*
StatusError is returned when the host endpoint answers with a non-success
status.  The body is kept for server-side logging only and must never be
surfaced to the inbound caller.
*/
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

/*
Client issues single-turn, non-streaming completions against the host
chat-completions endpoint.
*/
type Client struct {
	url   string
	model string
	token string
	conn  *fiberClient.Client
}

func NewClient(url string, model string, token string) *Client {
	return &Client{
		url:   url,
		model: model,
		token: token,
		conn:  fiberClient.New().SetTimeout(completionTimeout),
	}
}

/*
Complete sends exactly one user-role message and returns the first choice's
text, or "No response." when the host produced no content.
*/
func (client *Client) Complete(ctx context.Context, text string) (string, error) {
	headers := map[string]string{
		"Content-Type": "application/json",
	}

	if client.token != "" {
		headers["Authorization"] = "Bearer " + client.token
	}

	res, err := client.conn.Post(client.url, fiberClient.Config{
		Ctx:    ctx,
		Header: headers,
		Body: ChatRequest{
			Model:  client.model,
			Stream: false,
			Messages: []ChatMessage{
				{Role: "user", Content: text},
			},
		},
	})

	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if res.StatusCode() < 200 || res.StatusCode() >= 300 {
		return "", &StatusError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}

	var completion ChatResponse

	if err := res.JSON(&completion); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "No response.", nil
	}

	return completion.Choices[0].Message.Content, nil
}
