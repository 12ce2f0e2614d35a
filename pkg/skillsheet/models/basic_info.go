// Package models defines the skill sheet record and its validation rules.
package models

// Canonical gender values.
const (
	GenderMale     = "男性"
	GenderFemale   = "女性"
	GenderOther    = "その他"
	GenderNoAnswer = "回答しない"
)

// BasicInfo represents the biographical part of a skill sheet.
type BasicInfo struct {
	// Name is the full name.
	Name string `json:"name"`
	// Kana is the phonetic reading of the name.
	Kana string `json:"kana"`
	// Gender is free text; the reader normalizes it to one of the canonical values.
	Gender string `json:"gender"`
	// Age is the age in years (nil if not given).
	Age *int `json:"age"`
	// NearestStation is the nearest train station.
	NearestStation string `json:"nearest_station"`
	// ExperienceYears is the years of practical experience (nil if not given).
	ExperienceYears *int `json:"experience_years"`
	// SelfPR is a multi-line self introduction.
	SelfPR string `json:"self_pr"`
	// MainTechnologies is a multi-line list of main technologies.
	MainTechnologies string `json:"main_technologies"`
	// Qualifications is a multi-line list of certifications.
	Qualifications string `json:"qualifications"`
}
