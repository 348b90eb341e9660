package parameter

// Inheritance - Offspring Distribution
const (
	// MaxOffspring is the largest litter a single couple can produce
	MaxOffspring = 5

	// MaleBirthProbability is the chance a child is male
	MaleBirthProbability = 0.5

	// AlleleTransmissionProbability is the chance a carrier mother passes the recessive X
	AlleleTransmissionProbability = 0.5
)

// OffspringCumulative holds cumulative thresholds for 0..MaxOffspring children
// P(0)=0.10 P(1)=0.20 P(2)=0.35 P(3)=0.25 P(4)=0.05 P(5)=0.05
var OffspringCumulative = [MaxOffspring + 1]float64{0.10, 0.30, 0.65, 0.90, 0.95, 1.00}

// Population - Input Bounds
const (
	// MinPopulationSize is the smallest starting population accepted by front-ends
	MinPopulationSize = 30

	// PercentMax is the exclusive upper bound for every percentage input
	PercentMax = 100.0
)

// Population - Reference Scenario
const (
	DefaultScenarioName            = "reference"
	DefaultPopulationSize          = 100
	DefaultMalePercent             = 50.0
	DefaultMaleColorblindPercent   = 8.0
	DefaultFemaleColorblindPercent = 0.5
	DefaultFemaleCarrierPercent    = 15.0
	DefaultGenerations             = 10
)

// Batch - Replicate Runs
const (
	// DefaultReplicates is the number of independent runs in a batch
	DefaultReplicates = 1

	// DefaultParallelism caps concurrent replicate goroutines
	DefaultParallelism = 4
)

// Persistence
const (
	// HistoryPersistencePath is the directory for saved run histories
	HistoryPersistencePath = "./runs"
)
