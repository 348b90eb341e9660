package population

import "github.com/lixenwraith/colorsim/parameter"

// Offspring tallies the children of one couple, or of a whole generation
type Offspring struct {
	Males             int
	Females           int
	ColorblindMales   int
	ColorblindFemales int
	CarrierFemales    int
}

// Add accumulates another tally into o
func (o *Offspring) Add(other Offspring) {
	o.Males += other.Males
	o.Females += other.Females
	o.ColorblindMales += other.ColorblindMales
	o.ColorblindFemales += other.ColorblindFemales
	o.CarrierFemales += other.CarrierFemales
}

// daughterTrait is the X-linked status of a female child
type daughterTrait uint8

const (
	daughterClear daughterTrait = iota
	daughterCarrier
	daughterColorblind
)

// Reproduce draws one couple's children and resolves each child's trait
// Draw order: litter size, then per child its sex followed by at most one
// transmission draw when the outcome is not already determined
func Reproduce(rng Source, fatherColorblind, motherColorblind, motherCarrier bool) Offspring {
	var o Offspring

	children := childCount(rng.Float64())
	for range children {
		if chance(rng, parameter.MaleBirthProbability) {
			o.Males++
			if sonColorblind(rng, fatherColorblind, motherColorblind, motherCarrier) {
				o.ColorblindMales++
			}
			continue
		}

		o.Females++
		switch daughterStatus(rng, fatherColorblind, motherColorblind, motherCarrier) {
		case daughterColorblind:
			o.ColorblindFemales++
		case daughterCarrier:
			o.CarrierFemales++
		}
	}

	return o
}

// childCount maps a uniform draw onto the fixed litter distribution
func childCount(u float64) int {
	for n, threshold := range parameter.OffspringCumulative {
		if u < threshold {
			return n
		}
	}
	return parameter.MaxOffspring
}

// sonColorblind resolves a male child, who inherits his only X from the mother
func sonColorblind(rng Source, father, mother, carrier bool) bool {
	switch {
	case father && mother:
		return true
	case father && carrier:
		return chance(rng, parameter.AlleleTransmissionProbability)
	case mother:
		return true
	case carrier:
		return chance(rng, parameter.AlleleTransmissionProbability)
	default:
		return false
	}
}

// daughterStatus resolves a female child, who inherits one X from each parent
func daughterStatus(rng Source, father, mother, carrier bool) daughterTrait {
	switch {
	case father && mother:
		return daughterColorblind
	case father && carrier:
		if chance(rng, parameter.AlleleTransmissionProbability) {
			return daughterColorblind
		}
		return daughterCarrier
	case father:
		// Father's single X is recessive: obligate carrier
		return daughterCarrier
	case mother:
		return daughterCarrier
	case carrier:
		if chance(rng, parameter.AlleleTransmissionProbability) {
			return daughterCarrier
		}
		return daughterClear
	default:
		return daughterClear
	}
}
