package a2a

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedTask(t *testing.T) {
	task := NewCompletedTask("response", "the answer")

	assert.Equal(t, "task", task.Kind)
	assert.NotEmpty(t, task.ID)
	assert.NotEmpty(t, task.ContextID)
	assert.NotEqual(t, task.ID, task.ContextID)

	assert.Equal(t, TaskStateCompleted, task.Status.State)
	assert.False(t, task.Status.Timestamp.IsZero())

	require.Len(t, task.Artifacts, 1)
	artifact := task.Artifacts[0]
	assert.NotEmpty(t, artifact.ArtifactID)
	assert.Equal(t, "response", artifact.Name)
	assert.Equal(t, "the answer", artifact.TextContent())
}

func TestNewCompletedTaskFreshIdentifiers(t *testing.T) {
	first := NewCompletedTask("response", "a")
	second := NewCompletedTask("response", "b")

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.ContextID, second.ContextID)
	assert.NotEqual(t, first.Artifacts[0].ArtifactID, second.Artifacts[0].ArtifactID)
}

func TestTaskWireShape(t *testing.T) {
	buf, err := json.Marshal(NewCompletedTask("response", "hi"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf, &decoded))

	assert.Equal(t, "task", decoded["kind"])
	assert.Contains(t, decoded, "contextId")

	status := decoded["status"].(map[string]any)
	assert.Equal(t, "completed", status["state"])
	assert.Contains(t, status, "timestamp")

	artifacts := decoded["artifacts"].([]any)
	require.Len(t, artifacts, 1)
	assert.Contains(t, artifacts[0].(map[string]any), "artifactId")
}

func TestTaskString(t *testing.T) {
	task := NewCompletedTask("response", "hello there")
	rendered := task.String()

	assert.Contains(t, rendered, task.ID)
	assert.Contains(t, rendered, "completed")
	assert.Contains(t, rendered, "hello there")
}
