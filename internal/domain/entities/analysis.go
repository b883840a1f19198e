package entities

// AnalysisRecord is the normalized output of meeting processing
type AnalysisRecord struct {
	MeetingMetadata        MeetingMetadata         `json:"meeting_metadata"`
	Summary                string                  `json:"summary"`
	TechnicalDecisions     []TechnicalDecision     `json:"technical_decisions,omitempty"`
	ActionItems            []ActionItem            `json:"action_items,omitempty"`
	RisksAndBlockers       []RiskBlocker           `json:"risks_and_blockers,omitempty"`
	ClientRequirements     []ClientRequirement     `json:"client_requirements,omitempty"`
	ArchitectureReferences []ArchitectureReference `json:"architecture_references,omitempty"`
	OpenItems              []OpenItem              `json:"open_items,omitempty"`
}

// MeetingMetadata describes the meeting the analysis belongs to
type MeetingMetadata struct {
	Title           string `json:"title"`
	DateTime        string `json:"date_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Organizer       string `json:"organizer"`
	AttendeeCount   int    `json:"attendee_count"`
	Timezone        string `json:"timezone"`
}

type TechnicalDecision struct {
	Decision  string `json:"decision"`
	Context   string `json:"context"`
	Rationale string `json:"rationale"`
}

type ActionItem struct {
	Item     string `json:"item"`
	Owner    string `json:"owner"`
	Deadline string `json:"deadline"`
	Priority string `json:"priority"` // low, medium, high
	Status   string `json:"status"`
}

type RiskBlocker struct {
	Description string `json:"description"`
	Severity    string `json:"severity"` // low, medium, high, critical
	Impact      string `json:"impact"`
	Mitigation  string `json:"mitigation"`
}

type ClientRequirement struct {
	Requirement string `json:"requirement"`
	Source      string `json:"source"`
	Priority    string `json:"priority"`
}

type ArchitectureReference struct {
	Reference string `json:"reference"`
	Context   string `json:"context"`
}

type OpenItem struct {
	Item       string `json:"item"`
	Type       string `json:"type"`
	AssignedTo string `json:"assigned_to"`
}

// AnalysisRecordFromMap reads a decoded agent payload as an analysis record.
// Fields are taken leniently: missing keys stay empty, scalars are coerced and
// collections that are not sequences read as absent.
func AnalysisRecordFromMap(m map[string]any) *AnalysisRecord {
	if m == nil {
		return nil
	}

	record := &AnalysisRecord{
		Summary: stringField(m, "summary"),
	}

	if meta := mapField(m, "meeting_metadata"); meta != nil {
		record.MeetingMetadata = MeetingMetadata{
			Title:           stringField(meta, "title"),
			DateTime:        stringField(meta, "date_time"),
			DurationMinutes: intField(meta, "duration_minutes"),
			Organizer:       stringField(meta, "organizer"),
			AttendeeCount:   intField(meta, "attendee_count"),
			Timezone:        stringField(meta, "timezone"),
		}
	}

	record.TechnicalDecisions = collect(m, "technical_decisions", func(e map[string]any) TechnicalDecision {
		return TechnicalDecision{
			Decision:  stringField(e, "decision"),
			Context:   stringField(e, "context"),
			Rationale: stringField(e, "rationale"),
		}
	})
	record.ActionItems = collect(m, "action_items", func(e map[string]any) ActionItem {
		return ActionItem{
			Item:     stringField(e, "item"),
			Owner:    stringField(e, "owner"),
			Deadline: stringField(e, "deadline"),
			Priority: stringField(e, "priority"),
			Status:   stringField(e, "status"),
		}
	})
	record.RisksAndBlockers = collect(m, "risks_and_blockers", func(e map[string]any) RiskBlocker {
		return RiskBlocker{
			Description: stringField(e, "description"),
			Severity:    stringField(e, "severity"),
			Impact:      stringField(e, "impact"),
			Mitigation:  stringField(e, "mitigation"),
		}
	})
	record.ClientRequirements = collect(m, "client_requirements", func(e map[string]any) ClientRequirement {
		return ClientRequirement{
			Requirement: stringField(e, "requirement"),
			Source:      stringField(e, "source"),
			Priority:    stringField(e, "priority"),
		}
	})
	record.ArchitectureReferences = collect(m, "architecture_references", func(e map[string]any) ArchitectureReference {
		return ArchitectureReference{
			Reference: stringField(e, "reference"),
			Context:   stringField(e, "context"),
		}
	})
	record.OpenItems = collect(m, "open_items", func(e map[string]any) OpenItem {
		return OpenItem{
			Item:       stringField(e, "item"),
			Type:       stringField(e, "type"),
			AssignedTo: stringField(e, "assigned_to"),
		}
	})

	return record
}
