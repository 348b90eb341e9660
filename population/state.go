package population

import "fmt"

// State is the aggregate population at the end of a generation
// Observers receive it by value
type State struct {
	Generation        int `toml:"generation"`
	PopulationSize    int `toml:"population_size"`
	Males             int `toml:"males"`
	Females           int `toml:"females"`
	ColorblindMales   int `toml:"colorblind_males"`
	ColorblindFemales int `toml:"colorblind_females"`
	CarrierFemales    int `toml:"carrier_females"`
}

// Colorblind returns the colorblind count across both sexes
func (s State) Colorblind() int {
	return s.ColorblindMales + s.ColorblindFemales
}

// Extinct reports whether no individuals remain
// Extinction is terminal: later generations stay at zero
func (s State) Extinct() bool {
	return s.PopulationSize == 0
}

// Validate returns the first violated count invariant, or nil
func (s State) Validate() error {
	switch {
	case s.Generation < 0:
		return fmt.Errorf("generation %d is negative", s.Generation)
	case s.Males < 0 || s.Females < 0:
		return fmt.Errorf("negative sex count: males=%d females=%d", s.Males, s.Females)
	case s.ColorblindMales < 0 || s.ColorblindFemales < 0 || s.CarrierFemales < 0:
		return fmt.Errorf("negative trait count: cb_males=%d cb_females=%d carriers=%d",
			s.ColorblindMales, s.ColorblindFemales, s.CarrierFemales)
	case s.PopulationSize != s.Males+s.Females:
		return fmt.Errorf("population %d != males %d + females %d", s.PopulationSize, s.Males, s.Females)
	case s.ColorblindMales > s.Males:
		return fmt.Errorf("colorblind males %d exceed males %d", s.ColorblindMales, s.Males)
	case s.ColorblindFemales+s.CarrierFemales > s.Females:
		return fmt.Errorf("colorblind %d + carrier %d females exceed females %d",
			s.ColorblindFemales, s.CarrierFemales, s.Females)
	}
	return nil
}
