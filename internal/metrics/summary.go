package metrics

import "slices"

// Summary describes the distribution of an illuminance series.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P85    float64 `json:"p85"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize profiles a series of illuminance values.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)

	sum := 0.0
	for _, v := range temp {
		sum += v
	}

	return Summary{
		Count:  len(temp),
		Mean:   sum / float64(len(temp)),
		Median: medianSorted(temp),
		P85:    percentileSorted(temp, 0.85),
		Min:    temp[0],
		Max:    temp[len(temp)-1],
	}
}

// Percentile returns the p-th percentile (0..1) of the values.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	temp := make([]float64, len(values))
	copy(temp, values)
	slices.Sort(temp)
	return percentileSorted(temp, p)
}

func medianSorted(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2.0
}

func percentileSorted(sorted []float64, p float64) float64 {
	if p < 0 {
		p = 0
	}
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
