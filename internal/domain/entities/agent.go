package entities

// AgentTarget is a named remote capability the core can dispatch to
type AgentTarget struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Purpose string `json:"purpose" yaml:"purpose"`
}

// AgentResult is the transport-level reply of an agent call.
// Response is the raw envelope; its shape is not under our control.
type AgentResult struct {
	Success  bool           `json:"success"`
	Response map[string]any `json:"response,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// AgentCatalog is the fixed set of named remote agents
type AgentCatalog struct {
	Manager    AgentTarget
	Calendar   AgentTarget
	Transcript AgentTarget
	Analyst    AgentTarget
	Search     AgentTarget
}

// NewAgentCatalog names the configured agent ids
func NewAgentCatalog(managerID, calendarID, transcriptID, analystID, searchID string) AgentCatalog {
	return AgentCatalog{
		Manager:    AgentTarget{ID: managerID, Name: "Meeting Processing Coordinator", Purpose: "Orchestrates end-to-end meeting processing"},
		Calendar:   AgentTarget{ID: calendarID, Name: "Calendar Context Agent", Purpose: "Extracts calendar metadata and attendees"},
		Transcript: AgentTarget{ID: transcriptID, Name: "Transcript Retrieval Agent", Purpose: "Retrieves and structures meeting transcripts"},
		Analyst:    AgentTarget{ID: analystID, Name: "Meeting Analyst Agent", Purpose: "Analyzes content for decisions, actions, risks"},
		Search:     AgentTarget{ID: searchID, Name: "Meeting Search Agent", Purpose: "Searches past meeting notes by query"},
	}
}

// All returns the catalog in display order
func (c AgentCatalog) All() []AgentTarget {
	return []AgentTarget{c.Manager, c.Calendar, c.Transcript, c.Analyst, c.Search}
}

// Label returns the display name for an agent id, or "Agent" when unknown
func (c AgentCatalog) Label(id string) string {
	for _, t := range c.All() {
		if t.ID == id {
			return t.Name
		}
	}
	return "Agent"
}
