package extract

import (
	"fmt"
	"math"

	"github.com/gyeh/igreport/internal/model"
)

// Severity tier thresholds in U/mL. Each tier is a half-open interval,
// inclusive on its lower bound: [0,50) normal, [50,100) mild,
// [100,200) moderate, [200,∞) severe.
const (
	thresholdMild     = 50.0
	thresholdModerate = 100.0
	thresholdSevere   = 200.0
)

// Classify maps an IgG concentration to its severity tier. Negative or
// non-finite input is a validation error, never silently clamped.
func Classify(concentration float64) (model.AllergyLevel, error) {
	if math.IsNaN(concentration) || math.IsInf(concentration, 0) || concentration < 0 {
		return model.LevelNormal, fmt.Errorf("concentration must be a finite non-negative number, got %v", concentration)
	}
	switch {
	case concentration < thresholdMild:
		return model.LevelNormal, nil
	case concentration < thresholdModerate:
		return model.LevelMild, nil
	case concentration < thresholdSevere:
		return model.LevelModerate, nil
	default:
		return model.LevelSevere, nil
	}
}
