package tracking

import (
	"github.com/lixenwraith/colorsim/population"
	"github.com/lixenwraith/colorsim/report"
)

// MetricBundle is a generic container for named metrics
// Keys are metric names, values are float64 measurements
type MetricBundle map[string]float64

// Standard metric keys
const (
	MetricPopulation        = "population"
	MetricMales             = "males"
	MetricFemales           = "females"
	MetricColorblindMales   = "colorblind_males"
	MetricColorblindFemales = "colorblind_females"
	MetricCarrierFemales    = "carrier_females"
	MetricColorblindShare   = "colorblind_share"
	MetricMaleShare         = "male_share"
	MetricExtinct           = "extinct"

	// MetricSamples is added by collectors on finalize
	MetricSamples = "samples"
)

// FromState extracts the standard metrics from a population snapshot
// Shares are percentages; an empty population reports zero shares
func FromState(s population.State) MetricBundle {
	extinct := 0.0
	if s.Extinct() {
		extinct = 1.0
	}

	return MetricBundle{
		MetricPopulation:        float64(s.PopulationSize),
		MetricMales:             float64(s.Males),
		MetricFemales:           float64(s.Females),
		MetricColorblindMales:   float64(s.ColorblindMales),
		MetricColorblindFemales: float64(s.ColorblindFemales),
		MetricCarrierFemales:    float64(s.CarrierFemales),
		MetricColorblindShare:   report.Percent(s.Colorblind(), s.PopulationSize),
		MetricMaleShare:         report.Percent(s.Males, s.PopulationSize),
		MetricExtinct:           extinct,
	}
}

// Get returns metric value or default if not present
func (b MetricBundle) Get(key string, defaultVal float64) float64 {
	if v, ok := b[key]; ok {
		return v
	}
	return defaultVal
}
