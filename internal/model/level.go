package model

import "fmt"

// AllergyLevel is the severity tier derived from an IgG concentration.
// Levels carry a total order: Normal < Mild < Moderate < Severe.
type AllergyLevel int

const (
	LevelNormal AllergyLevel = iota
	LevelMild
	LevelModerate
	LevelSevere
)

var levelNames = [...]string{"normal", "mild", "moderate", "severe"}

func (l AllergyLevel) String() string {
	if l < LevelNormal || l > LevelSevere {
		return fmt.Sprintf("AllergyLevel(%d)", int(l))
	}
	return levelNames[l]
}

// Label returns the display form used in rendered reports.
func (l AllergyLevel) Label() string {
	switch l {
	case LevelNormal:
		return "Normal"
	case LevelMild:
		return "Mild"
	case LevelModerate:
		return "Moderate"
	case LevelSevere:
		return "Severe"
	}
	return l.String()
}
