// Package stats aggregates label distribution statistics over a
// labeled record stream for dataset quality review.
package stats

import (
	"sort"
	"unicode/utf8"

	"github.com/cognicore/labelkit/pkg/labelkit/record"
)

// SampleCap bounds the example texts kept per label.
const SampleCap = 5

// Aggregator accumulates per-label counts and descriptive statistics.
// It never mutates the records it observes.
type Aggregator struct {
	order  []string // labels in first-seen order
	groups map[string]*group
}

type group struct {
	count      int64
	samples    []string
	lengths    series
	confidence series
}

// series tracks a running mean/min/max without retaining values.
type series struct {
	n   int64
	sum float64
	min float64
	max float64
}

func (s *series) add(v float64) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if s.n == 0 || v > s.max {
		s.max = v
	}
	s.n++
	s.sum += v
}

// NewAggregator creates an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[string]*group)}
}

// Process consumes one record. An unlabeled record counts under the
// display label "none".
func (a *Aggregator) Process(rec record.Record) {
	label := rec.DisplayLabel()
	g, ok := a.groups[label]
	if !ok {
		g = &group{}
		a.groups[label] = g
		a.order = append(a.order, label)
	}
	g.count++
	if len(g.samples) < SampleCap {
		g.samples = append(g.samples, rec.Text)
	}
	g.lengths.add(float64(utf8.RuneCountInString(rec.Text)))
	g.confidence.add(rec.Confidence)
}

// Series holds mean/min/max over one measured quantity. N is the
// number of observed values; the other fields are meaningless when
// N is zero.
type Series struct {
	N    int64
	Mean float64
	Min  float64
	Max  float64
}

func (s series) snapshot() Series {
	out := Series{N: s.n, Min: s.min, Max: s.max}
	if s.n > 0 {
		out.Mean = s.sum / float64(s.n)
	}
	return out
}

// LabelStats describes one label group.
type LabelStats struct {
	Label      string
	Count      int64
	Samples    []string // up to SampleCap example texts, first seen first
	TextLength Series   // character counts
	Confidence Series
}

// Report is a point-in-time copy of the aggregated statistics.
type Report struct {
	Total  int64
	Labels []LabelStats // descending count; ties keep first-seen order
}

// Snapshot copies the accumulated statistics into a Report.
func (a *Aggregator) Snapshot() Report {
	var rep Report
	for _, label := range a.order {
		g := a.groups[label]
		samples := make([]string, len(g.samples))
		copy(samples, g.samples)
		rep.Labels = append(rep.Labels, LabelStats{
			Label:      label,
			Count:      g.count,
			Samples:    samples,
			TextLength: g.lengths.snapshot(),
			Confidence: g.confidence.snapshot(),
		})
		rep.Total += g.count
	}
	sort.SliceStable(rep.Labels, func(i, j int) bool {
		return rep.Labels[i].Count > rep.Labels[j].Count
	})
	return rep
}
