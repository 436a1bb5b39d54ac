package measurements

import (
	"errors"
	"fmt"
	"time"

	"github.com/agpcoach/agp/internal/program"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrInvalidMeasurement  = errors.New("invalid measurement")
)

// Measurement is a body check-in. Every value is optional, but at least one
// must be present.
type Measurement struct {
	ID         int          `json:"id"`
	MeasuredOn program.Date `json:"measuredOn"`
	WeightKG   *float64     `json:"weightKg"`
	WaistCM    *float64     `json:"waistCm"`
	HipsCM     *float64     `json:"hipsCm"`
	ChestCM    *float64     `json:"chestCm"`
	ThighCM    *float64     `json:"thighCm"`
	ArmCM      *float64     `json:"armCm"`
	CreatedAt  time.Time    `json:"createdAt"`
}

func (m Measurement) values() map[string]*float64 {
	return map[string]*float64{
		"weight": m.WeightKG,
		"waist":  m.WaistCM,
		"hips":   m.HipsCM,
		"chest":  m.ChestCM,
		"thigh":  m.ThighCM,
		"arm":    m.ArmCM,
	}
}

func (m Measurement) Validate() error {
	present := 0
	for name, v := range m.values() {
		if v == nil {
			continue
		}
		if *v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidMeasurement, name)
		}
		present++
	}
	if present == 0 {
		return fmt.Errorf("%w: no values", ErrInvalidMeasurement)
	}
	return nil
}
