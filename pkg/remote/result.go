package remote

import (
	"fmt"
	"strings"

	"github.com/theapemachine/a2a-bridge/pkg/a2a"
)

/*
CallResult is the union of result shapes a remote agent may return for a
message/send call: a Task carrying artifacts, a bare Message carrying parts,
or a Task whose only usable content sits in its history.  Keeping every
optional field in one struct lets a single priority-ordered Normalize walk
the shapes instead of probing fields ad hoc at each call site.
*/
type CallResult struct {
	Kind      string          `json:"kind,omitempty"`
	ID        string          `json:"id,omitempty"`
	ContextID string          `json:"contextId,omitempty"`
	Status    *a2a.TaskStatus `json:"status,omitempty"`
	Artifacts []a2a.Artifact  `json:"artifacts,omitempty"`
	Role      string          `json:"role,omitempty"`
	Parts     []a2a.Part      `json:"parts,omitempty"`
	History   []a2a.Message   `json:"history,omitempty"`
}

/*
Normalize flattens the result into plain text.  Shapes are tried in priority
order and the first one producing non-empty text wins:

 1. artifact text parts, artifacts joined by a blank line
 2. top-level message parts, newline-joined
 3. the last history entry, when its role is "agent"
 4. a description of the task id and status state
*/
func (result *CallResult) Normalize() string {
	if text := result.artifactText(); strings.TrimSpace(text) != "" {
		return text
	}

	if len(result.Parts) > 0 {
		msg := a2a.Message{Parts: result.Parts}
		if text := msg.TextContent(); strings.TrimSpace(text) != "" {
			return text
		}
	}

	if len(result.History) > 0 {
		last := result.History[len(result.History)-1]
		if last.Role == a2a.RoleAgent {
			if text := last.TextContent(); strings.TrimSpace(text) != "" {
				return text
			}
		}
	}

	id := result.ID
	if id == "" {
		id = "unknown"
	}

	state := "?"
	if result.Status != nil && result.Status.State != "" {
		state = string(result.Status.State)
	}

	return fmt.Sprintf("Task %s (status: %s)", id, state)
}

func (result *CallResult) artifactText() string {
	if len(result.Artifacts) == 0 {
		return ""
	}

	blocks := make([]string, 0, len(result.Artifacts))

	for _, artifact := range result.Artifacts {
		if text := artifact.TextContent(); text != "" {
			blocks = append(blocks, text)
		}
	}

	return strings.Join(blocks, "\n\n")
}
