package a2a

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/viper"
)

const (
	// ProtocolVersion is the A2A protocol version the bridge speaks.
	ProtocolVersion = "0.3.0"

	// WellKnownPath is the fixed discovery path for agent cards.
	WellKnownPath = "/.well-known/agent-card.json"

	// TransportJSONRPC is the only transport the bridge declares.
	TransportJSONRPC = "JSONRPC"
)

// AgentProvider represents the provider or organization behind an agent.
type AgentProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url,omitempty"`
}

// AgentCapabilities describes the capabilities of an agent.
type AgentCapabilities struct {
	Streaming              bool `json:"streaming"`
	PushNotifications      bool `json:"pushNotifications,omitempty"`
	StateTransitionHistory bool `json:"stateTransitionHistory,omitempty"`
}

// SecurityScheme declares an authentication scheme in the agent card.
type SecurityScheme struct {
	Type   string `json:"type"`
	Scheme string `json:"scheme,omitempty"`
}

// AgentSkill defines a specific skill or capability offered by an agent.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
}

// AgentCard represents the metadata card for an agent.
type AgentCard struct {
	ProtocolVersion    string                    `json:"protocolVersion"`
	Name               string                    `json:"name"`
	Description        string                    `json:"description,omitempty"`
	URL                string                    `json:"url"`
	Version            string                    `json:"version,omitempty"`
	PreferredTransport string                    `json:"preferredTransport,omitempty"`
	Provider           *AgentProvider            `json:"provider,omitempty"`
	Capabilities       AgentCapabilities         `json:"capabilities"`
	SecuritySchemes    map[string]SecurityScheme `json:"securitySchemes,omitempty"`
	Security           []map[string][]string     `json:"security,omitempty"`
	DefaultInputModes  []string                  `json:"defaultInputModes"`
	DefaultOutputModes []string                  `json:"defaultOutputModes"`
	Skills             []AgentSkill              `json:"skills"`
}

/*
NewAgentCardFromConfig builds the bridge's immutable self-description from
the agent.* configuration keys.  url is the callable endpoint the card
advertises; withAuth adds a bearer security scheme when a secret is
configured.  The card is built once at startup and never recomputed.
*/
func NewAgentCardFromConfig(url string, withAuth bool) *AgentCard {
	log.Info("new agent card from config", "url", url, "withAuth", withAuth)

	v := viper.GetViper()
	skillArray := v.GetStringSlice("agent.skills")

	skills := make([]AgentSkill, len(skillArray))

	for i, skill := range skillArray {
		skills[i] = NewSkillFromConfig(skill)
	}

	card := &AgentCard{
		ProtocolVersion:    ProtocolVersion,
		Name:               v.GetString("agent.name"),
		Description:        v.GetString("agent.description"),
		URL:                url,
		Version:            v.GetString("agent.version"),
		PreferredTransport: TransportJSONRPC,
		Capabilities: AgentCapabilities{
			Streaming: false,
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills:             skills,
	}

	if org := v.GetString("agent.provider.organization"); org != "" {
		card.Provider = &AgentProvider{
			Organization: org,
			URL:          v.GetString("agent.provider.url"),
		}
	}

	if withAuth {
		card.SecuritySchemes = map[string]SecurityScheme{
			"bearer": {Type: "http", Scheme: "bearer"},
		}
		card.Security = []map[string][]string{{"bearer": {}}}
	}

	return card
}

func NewSkillFromConfig(skill string) AgentSkill {
	v := viper.GetViper()

	return AgentSkill{
		ID:          v.GetString(fmt.Sprintf("skills.%s.id", skill)),
		Name:        v.GetString(fmt.Sprintf("skills.%s.name", skill)),
		Description: v.GetString(fmt.Sprintf("skills.%s.description", skill)),
		Tags:        v.GetStringSlice(fmt.Sprintf("skills.%s.tags", skill)),
		Examples:    v.GetStringSlice(fmt.Sprintf("skills.%s.examples", skill)),
		InputModes:  v.GetStringSlice(fmt.Sprintf("skills.%s.input_modes", skill)),
		OutputModes: v.GetStringSlice(fmt.Sprintf("skills.%s.output_modes", skill)),
	}
}

func (card *AgentCard) String() string {
	var sb strings.Builder

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("39")).
		Bold(true)

	valueStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	sectionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("99")).
		Bold(true)

	indent := "   "
	bullet := "│ "

	sb.WriteString(headerStyle.Render("Agent Card") + "\n")
	sb.WriteString(bullet + labelStyle.Render("Name: ") + valueStyle.Render(card.Name) + "\n")
	if card.Description != "" {
		sb.WriteString(bullet + labelStyle.Render("Description: ") + valueStyle.Render(card.Description) + "\n")
	}
	sb.WriteString(bullet + labelStyle.Render("URL: ") + valueStyle.Render(card.URL) + "\n")
	sb.WriteString(bullet + labelStyle.Render("Version: ") + valueStyle.Render(card.Version) + "\n")
	sb.WriteString(bullet + labelStyle.Render("Protocol: ") + valueStyle.Render(card.ProtocolVersion) + "\n")

	if card.Provider != nil {
		sb.WriteString("\n" + sectionStyle.Render("Provider") + "\n")
		sb.WriteString(bullet + labelStyle.Render("Organization: ") + valueStyle.Render(card.Provider.Organization) + "\n")
		if card.Provider.URL != "" {
			sb.WriteString(bullet + labelStyle.Render("URL: ") + valueStyle.Render(card.Provider.URL) + "\n")
		}
	}

	sb.WriteString("\n" + sectionStyle.Render("Capabilities") + "\n")
	sb.WriteString(bullet + labelStyle.Render("Streaming: ") + valueStyle.Render(fmt.Sprintf("%v", card.Capabilities.Streaming)) + "\n")
	sb.WriteString(bullet + labelStyle.Render("Push Notifications: ") + valueStyle.Render(fmt.Sprintf("%v", card.Capabilities.PushNotifications)) + "\n")

	if len(card.SecuritySchemes) > 0 {
		sb.WriteString("\n" + sectionStyle.Render("Security") + "\n")
		for name, scheme := range card.SecuritySchemes {
			sb.WriteString(bullet + labelStyle.Render(name+": ") + valueStyle.Render(scheme.Type+"/"+scheme.Scheme) + "\n")
		}
	}

	if len(card.Skills) > 0 {
		sb.WriteString("\n" + sectionStyle.Render("Skills") + "\n")
		for i, skill := range card.Skills {
			sb.WriteString(bullet + labelStyle.Render(fmt.Sprintf("Skill %d", i+1)) + "\n")
			sb.WriteString(bullet + indent + labelStyle.Render("ID: ") + valueStyle.Render(skill.ID) + "\n")
			sb.WriteString(bullet + indent + labelStyle.Render("Name: ") + valueStyle.Render(skill.Name) + "\n")
			if skill.Description != "" {
				sb.WriteString(bullet + indent + labelStyle.Render("Description: ") + valueStyle.Render(skill.Description) + "\n")
			}
			if len(skill.Tags) > 0 {
				sb.WriteString(bullet + indent + labelStyle.Render("Tags: ") + valueStyle.Render(strings.Join(skill.Tags, ", ")) + "\n")
			}
		}
	}

	return sb.String()
}
