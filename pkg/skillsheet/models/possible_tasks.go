package models

import (
	"encoding/json"
	"strings"
)

// TaskNotApplicable is the default marker of a capability slot.
const TaskNotApplicable = "-"

// TaskSlot is one entry of the capability matrix.
type TaskSlot struct {
	// Key is the JSON field name.
	Key string
	// Label is the display label written to the sheet.
	Label string
	// Value is the marker ("o", "-", ...).
	Value string
}

// PossibleTasks is the fixed 15-slot capability matrix.
// Field order is the layout order.
type PossibleTasks struct {
	CustomerNegotiation   string `json:"customer_negotiation"`
	ResearchAnalysis      string `json:"research_analysis"`
	RequirementDefinition string `json:"requirement_definition"`
	BasicDesign           string `json:"basic_design"`
	DetailedDesign        string `json:"detailed_design"`
	PGDevelopment         string `json:"pg_development"`
	UnitTest              string `json:"unit_test"`
	IntegrationTest       string `json:"integration_test"`
	SystemMaintenance     string `json:"system_maintenance"`
	NWDesign              string `json:"nw_design"`
	NWConstruction        string `json:"nw_construction"`
	NWOperation           string `json:"nw_operation"`
	SVDesign              string `json:"sv_design"`
	SVConstruction        string `json:"sv_construction"`
	SVOperation           string `json:"sv_operation"`
}

// DefaultPossibleTasks returns a matrix with every slot set to TaskNotApplicable.
func DefaultPossibleTasks() PossibleTasks {
	var t PossibleTasks
	t.normalize()
	return t
}

// UnmarshalJSON fills slots missing from the payload with TaskNotApplicable.
func (t *PossibleTasks) UnmarshalJSON(data []byte) error {
	type plain PossibleTasks
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*t = PossibleTasks(p)
	t.normalize()
	return nil
}

// Slots returns the 15 slots in layout order. Empty values read as TaskNotApplicable.
func (t PossibleTasks) Slots() []TaskSlot {
	t.normalize()
	return []TaskSlot{
		{"customer_negotiation", "顧客折衝", t.CustomerNegotiation},
		{"research_analysis", "調査分析", t.ResearchAnalysis},
		{"requirement_definition", "要件定義", t.RequirementDefinition},
		{"basic_design", "基本設計", t.BasicDesign},
		{"detailed_design", "詳細設計", t.DetailedDesign},
		{"pg_development", "PG開発", t.PGDevelopment},
		{"unit_test", "単体テスト", t.UnitTest},
		{"integration_test", "結合テスト", t.IntegrationTest},
		{"system_maintenance", "システム保守", t.SystemMaintenance},
		{"nw_design", "NW設計", t.NWDesign},
		{"nw_construction", "NW構築", t.NWConstruction},
		{"nw_operation", "NW運用", t.NWOperation},
		{"sv_design", "SV設計", t.SVDesign},
		{"sv_construction", "SV構築", t.SVConstruction},
		{"sv_operation", "SV運用", t.SVOperation},
	}
}

func (t *PossibleTasks) normalize() {
	for _, v := range []*string{
		&t.CustomerNegotiation, &t.ResearchAnalysis, &t.RequirementDefinition,
		&t.BasicDesign, &t.DetailedDesign, &t.PGDevelopment,
		&t.UnitTest, &t.IntegrationTest, &t.SystemMaintenance,
		&t.NWDesign, &t.NWConstruction, &t.NWOperation,
		&t.SVDesign, &t.SVConstruction, &t.SVOperation,
	} {
		if strings.TrimSpace(*v) == "" {
			*v = TaskNotApplicable
		}
	}
}
