package a2a

import (
	"strings"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAgent = "agent"
)

/*
Message represents all non-artifact communication between client & agent.
*/
type Message struct {
	Kind      string         `json:"kind,omitempty"`
	MessageID string         `json:"messageId,omitempty"`
	Role      string         `json:"role"`
	Parts     []Part         `json:"parts"`
	TaskID    string         `json:"taskId,omitempty"`
	ContextID string         `json:"contextId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewTextMessage(role string, text string) *Message {
	return &Message{
		Kind:      "message",
		MessageID: uuid.NewString(),
		Role:      role,
		Parts:     []Part{NewTextPart(text)},
	}
}

/*
TextContent joins the text of every text part with newlines, preserving the
original part order.  Parts of other kinds are skipped, not rejected.
*/
func (msg *Message) TextContent() string {
	texts := make([]string, 0, len(msg.Parts))

	for _, part := range msg.Parts {
		if part.Kind == PartKindText {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "\n")
}

/*
MessageSendParams carries the params object of a message/send request.
*/
type MessageSendParams struct {
	Message       *Message       `json:"message"`
	Configuration map[string]any `json:"configuration,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}
