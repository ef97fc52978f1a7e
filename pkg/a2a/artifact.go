package a2a

import (
	"strings"

	"github.com/google/uuid"
)

/*
Artifact is a named bundle of parts produced as the output of a task.
*/
type Artifact struct {
	ArtifactID  string         `json:"artifactId,omitempty"`
	Name        string         `json:"name,omitempty"`
	Description string         `json:"description,omitempty"`
	Parts       []Part         `json:"parts"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

func NewTextArtifact(name string, text string) Artifact {
	return Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      []Part{NewTextPart(text)},
	}
}

// TextContent joins the text of the artifact's text parts with newlines.
func (artifact *Artifact) TextContent() string {
	texts := make([]string, 0, len(artifact.Parts))

	for _, part := range artifact.Parts {
		if part.Kind == PartKindText {
			texts = append(texts, part.Text)
		}
	}

	return strings.Join(texts, "\n")
}
