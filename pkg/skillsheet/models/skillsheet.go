package models

// SkillSheetData is the complete skill sheet record.
type SkillSheetData struct {
	// BasicInfo holds the biographical fields.
	BasicInfo BasicInfo `json:"basic_info"`
	// PossibleTasks is the capability matrix.
	PossibleTasks PossibleTasks `json:"possible_tasks"`
	// CareerHistory is kept in caller order.
	CareerHistory []CareerHistoryEntry `json:"career_history"`
}

// PartialSkillSheet is what can be recovered from an exported workbook.
// Only the basic info grid is read back; the other sections stay empty.
type PartialSkillSheet struct {
	// BasicInfo holds the fields read from the basic info grid.
	BasicInfo BasicInfo `json:"basic_info"`
	// PossibleTasks is always empty.
	PossibleTasks map[string]string `json:"possible_tasks"`
	// CareerHistory is always empty.
	CareerHistory []CareerHistoryEntry `json:"career_history"`
}

// NewPartialSkillSheet returns a PartialSkillSheet with non-nil empty sections.
func NewPartialSkillSheet(info BasicInfo) *PartialSkillSheet {
	return &PartialSkillSheet{
		BasicInfo:     info,
		PossibleTasks: map[string]string{},
		CareerHistory: []CareerHistoryEntry{},
	}
}

// ToSkillSheet lifts the partial record into a full one with a default matrix.
func (p PartialSkillSheet) ToSkillSheet() SkillSheetData {
	history := make([]CareerHistoryEntry, len(p.CareerHistory))
	copy(history, p.CareerHistory)
	return SkillSheetData{
		BasicInfo:     p.BasicInfo,
		PossibleTasks: DefaultPossibleTasks(),
		CareerHistory: history,
	}
}
