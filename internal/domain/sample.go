package domain

import "time"

// Sample is a Quote stamped with the time it was received.
type Sample struct {
	Timestamp time.Time
	Quote
}

func NewSample(ts time.Time, q Quote) Sample {
	return Sample{Timestamp: ts, Quote: q}
}

// SampleSeries is append-only; insertion order is chronological order.
type SampleSeries []Sample

func (s SampleSeries) Len() int { return len(s) }

// Append returns the series with smp added at the end.
func (s SampleSeries) Append(smp Sample) SampleSeries {
	return append(s, smp)
}
