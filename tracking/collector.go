package tracking

// Collector accumulates bundles from many samples of the same generation
// Not safe for concurrent use; callers serialize Collect
type Collector struct {
	samples int
	sums    map[string]float64
	counts  map[string]int
	mins    map[string]float64
	maxs    map[string]float64
}

// NewCollector creates an empty collector
func NewCollector() *Collector {
	return &Collector{
		sums:   make(map[string]float64),
		counts: make(map[string]int),
		mins:   make(map[string]float64),
		maxs:   make(map[string]float64),
	}
}

// Collect records one sample
func (c *Collector) Collect(metrics MetricBundle) {
	c.samples++

	for key, value := range metrics {
		c.sums[key] += value
		c.counts[key]++

		first := c.counts[key] == 1
		if first || value < c.mins[key] {
			c.mins[key] = value
		}
		if first || value > c.maxs[key] {
			c.maxs[key] = value
		}
	}
}

// Finalize returns avg_, min_ and max_ for every key plus the sample count
func (c *Collector) Finalize() MetricBundle {
	result := make(MetricBundle, 3*len(c.sums)+1)
	result[MetricSamples] = float64(c.samples)

	for key, sum := range c.sums {
		if count := c.counts[key]; count > 0 {
			result["avg_"+key] = sum / float64(count)
		}
	}
	for key, val := range c.mins {
		result["min_"+key] = val
	}
	for key, val := range c.maxs {
		result["max_"+key] = val
	}

	return result
}
