// SPDX-License-Identifier: MIT

package measure

import "fmt"

// Params are the knobs of a measurement simulation.
type Params struct {
	NumDishes       int `yaml:"num_dishes"`
	NumCellsPerDish int `yaml:"num_cells_per_dish"`

	// StepsGenerated updates are simulated per cell (step 1 is the initial state).
	StepsGenerated int `yaml:"steps_generated"`
	// FirstStepStored and Interval select the stored steps; see TimeSteps.
	FirstStepStored int `yaml:"first_step_stored"`
	Interval        int `yaml:"interval"`

	RawDataSaved      bool `yaml:"raw_data_saved"`
	MeasuredDataSaved bool `yaml:"measured_data_saved"`
	InitSync          bool `yaml:"init_sync"`

	// DishDishVariability is the sd of the dish bump, in percent; (0, 100).
	DishDishVariability float64 `yaml:"dish_dish_variability"`
	NumSamplesPerDish   int     `yaml:"num_samples_per_dish"`

	// Error sds, each in (0, 1).
	SampleSampleVariability float64 `yaml:"sample_sample_variability"`
	ChipChipVariability     float64 `yaml:"chip_chip_variability"`
	PixelDigitalization     float64 `yaml:"pixel_digitalization"`

	// AntilogCalculated stores exp(value) instead of value.
	AntilogCalculated bool `yaml:"antilog_calculated"`

	// IncludeDishAndChipColumns prefixes measured CSV rows with dish and chip numbers.
	IncludeDishAndChipColumns bool `yaml:"include_dish_and_chip_columns"`
}

// Defaults returns the standard parameter set.
func Defaults() Params {
	return Params{
		NumDishes:                 1,
		NumCellsPerDish:           10000,
		StepsGenerated:            4,
		FirstStepStored:           1,
		Interval:                  1,
		MeasuredDataSaved:         true,
		InitSync:                  true,
		DishDishVariability:       10,
		NumSamplesPerDish:         4,
		SampleSampleVariability:   0.025,
		ChipChipVariability:       0.1,
		PixelDigitalization:       0.025,
		IncludeDishAndChipColumns: true,
	}
}

// Validate reports the first field outside its range, wrapping ErrBadParams.
func (p Params) Validate() error {
	for _, c := range []struct {
		name string
		v    int
	}{
		{"num_dishes", p.NumDishes},
		{"num_cells_per_dish", p.NumCellsPerDish},
		{"steps_generated", p.StepsGenerated},
		{"first_step_stored", p.FirstStepStored},
		{"interval", p.Interval},
		{"num_samples_per_dish", p.NumSamplesPerDish},
	} {
		if c.v <= 0 {
			return fmt.Errorf("Validate: %s=%d must be > 0: %w", c.name, c.v, ErrBadParams)
		}
	}
	if !(p.DishDishVariability > 0 && p.DishDishVariability < 100) {
		return fmt.Errorf("Validate: dish_dish_variability=%g not in (0,100): %w", p.DishDishVariability, ErrBadParams)
	}
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"sample_sample_variability", p.SampleSampleVariability},
		{"chip_chip_variability", p.ChipChipVariability},
		{"pixel_digitalization", p.PixelDigitalization},
	} {
		if !(c.v > 0 && c.v < 1) {
			return fmt.Errorf("Validate: %s=%g not in (0,1): %w", c.name, c.v, ErrBadParams)
		}
	}
	if len(p.TimeSteps()) == 0 {
		return fmt.Errorf("Validate: no stored steps for first=%d steps=%d interval=%d: %w",
			p.FirstStepStored, p.StepsGenerated, p.Interval, ErrBadParams)
	}
	return nil
}

// TimeSteps returns the stored steps, 1-based and increasing:
// FirstStepStored + i·Interval for i < (1+StepsGenerated-FirstStepStored)/Interval.
func (p Params) TimeSteps() []int {
	if p.Interval <= 0 {
		return nil
	}
	n := (1 + p.StepsGenerated - p.FirstStepStored) / p.Interval
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = p.FirstStepStored + i*p.Interval
	}
	return out
}
