package tools

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/a2a-bridge/pkg/registry"
	"github.com/theapemachine/a2a-bridge/pkg/remote"
)

/*
Registrar is the capability seam for tool registration, satisfied by
*server.MCPServer.  The tools never depend on a concrete server framework.
*/
type Registrar interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

/*
AgentTools exposes the configured remote agents to the local assistant:
calling one, listing them, and inspecting a card.
*/
type AgentTools struct {
	registry *registry.Registry
	cards    *remote.CardClient
}

func NewAgentTools(reg *registry.Registry) *AgentTools {
	return &AgentTools{
		registry: reg,
		cards:    remote.NewCardClient(),
	}
}

// Register adds the three agent tools to the given registrar.
func (tools *AgentTools) Register(srv Registrar) {
	srv.AddTool(mcp.NewTool(
		"call_agent",
		mcp.WithDescription("Send a message to a configured remote agent and return its reply."),
		mcp.WithString(
			"agent",
			mcp.Description("The id of the agent to call."),
			mcp.Required(),
		),
		mcp.WithString(
			"message",
			mcp.Description("The message to send."),
			mcp.Required(),
		),
	), tools.handleCallAgent)

	srv.AddTool(mcp.NewTool(
		"list_agents",
		mcp.WithDescription("List the remote agents this bridge can reach."),
	), tools.handleListAgents)

	srv.AddTool(mcp.NewTool(
		"get_agent_card",
		mcp.WithDescription("Fetch a remote agent's capability card."),
		mcp.WithString(
			"agent",
			mcp.Description("The id of the agent to inspect."),
			mcp.Required(),
		),
	), tools.handleAgentCard)
}

type callAgentResult struct {
	Agent    string `json:"agent"`
	Response string `json:"response"`
}

func (tools *AgentTools) handleCallAgent(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	id, _ := args["agent"].(string)
	message, _ := args["message"].(string)

	entry, err := tools.registry.Get(id)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	card, err := tools.cards.Fetch(entry.URL)

	if err != nil {
		return mcp.NewToolResultError("failed to discover agent " + id + ": " + err.Error()), nil
	}

	// The card names the callable endpoint; fall back to the configured
	// base address when it doesn't.
	endpoint := card.URL
	if endpoint == "" {
		endpoint = entry.URL
	}

	text, err := remote.NewClient(endpoint, entry.Token).SendMessage(ctx, message)

	if err != nil {
		return mcp.NewToolResultError("call to agent " + id + " failed: " + err.Error()), nil
	}

	buf, err := json.Marshal(callAgentResult{
		Agent:    entry.DisplayName(),
		Response: text,
	})

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(buf)), nil
}

type agentSummary struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Alias string `json:"alias,omitempty"`
}

func (tools *AgentTools) handleListAgents(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	entries := tools.registry.All()
	summaries := make([]agentSummary, 0, len(entries))

	for _, entry := range entries {
		summaries = append(summaries, agentSummary{
			ID:    entry.ID,
			URL:   entry.URL,
			Alias: entry.Alias,
		})
	}

	buf, err := json.Marshal(summaries)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(buf)), nil
}

func (tools *AgentTools) handleAgentCard(
	ctx context.Context, req mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	id, _ := req.GetArguments()["agent"].(string)

	entry, err := tools.registry.Get(id)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	card, err := tools.cards.Fetch(entry.URL)

	if err != nil {
		return mcp.NewToolResultError("failed to discover agent " + id + ": " + err.Error()), nil
	}

	buf, err := json.Marshal(card)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(buf)), nil
}
