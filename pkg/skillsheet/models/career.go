package models

// CurrentPeriod marks an ongoing career history entry in EndDate.
const CurrentPeriod = "current"

// DateLayout is the calendar date format used by StartDate and EndDate.
const DateLayout = "2006-01-02"

// CareerHistoryEntry represents one project of the career history.
type CareerHistoryEntry struct {
	// StartDate is the first day of the project (YYYY-MM-DD).
	StartDate string `json:"start_date"`
	// EndDate is the last day of the project (YYYY-MM-DD) or CurrentPeriod.
	EndDate string `json:"end_date"`
	// Duration is an optional precomputed label such as "2年3ヶ月".
	Duration string `json:"duration,omitempty"`
	// Overview is the project summary.
	Overview string `json:"overview"`
	// Position is the role or title held.
	Position string `json:"position"`
	// ScaleMembers is the team size (nil if not given).
	ScaleMembers *int `json:"scale_members"`
	// Responsibilities describes the work done.
	Responsibilities string `json:"responsibilities"`
	// TechEnvironment lists languages, frameworks and infrastructure.
	TechEnvironment string `json:"tech_environment"`
}

// IsCurrent reports whether the entry is ongoing.
func (e CareerHistoryEntry) IsCurrent() bool {
	return e.EndDate == CurrentPeriod
}
