// Package labelkit wires the labeling pipeline: rule-based pre-labeling,
// human confirmation, and label distribution statistics over a
// line-oriented token record stream.
package labelkit

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/labelkit/pkg/labelkit/record"
	"github.com/cognicore/labelkit/pkg/labelkit/rules"
	"github.com/cognicore/labelkit/pkg/labelkit/stats"
	"github.com/cognicore/labelkit/pkg/labelkit/store"
	"github.com/cognicore/labelkit/pkg/labelkit/vocab"
)

// Pipeline is the labeling pipeline facade.
type Pipeline struct {
	engine  *rules.Engine
	archive store.Store // optional
	entropy *ulid.MonotonicEntropy
}

// Options configures a Pipeline instance.
type Options struct {
	Engine  *rules.Engine
	Archive store.Store // nil disables run archiving
}

// New creates a Pipeline with the given dependencies.
func New(opts Options) *Pipeline {
	engine := opts.Engine
	if engine == nil {
		engine = rules.NewEngine(rules.Defaults())
	}
	return &Pipeline{
		engine:  engine,
		archive: opts.Archive,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// RunSummary reports what a pipeline pass did.
type RunSummary struct {
	RunID   string
	Records int
	Labeled int // records carrying a real label afterwards
	Matched int // records where at least one rule fired
}

// Prelabel streams records from in through the rule engine to out,
// one record at a time. Records already labeled by an earlier pass
// keep their label unless a rule overrides it, so re-running with the
// same rules leaves the stream unchanged. A malformed line aborts the
// pass; everything written before it stays valid.
func (p *Pipeline) Prelabel(ctx context.Context, in io.Reader, out io.Writer) (RunSummary, error) {
	sum := RunSummary{RunID: p.newRunID()}
	agg := stats.NewAggregator()
	started := time.Now()

	rd := record.NewReader(in)
	w := record.NewWriter(out)
	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return sum, err
		}

		if p.engine.Apply(&rec) {
			sum.Matched++
		}
		if err := w.Write(rec); err != nil {
			return sum, err
		}
		sum.Records++
		if rec.Labeled() && rec.MLLabel != vocab.LabelNone {
			sum.Labeled++
		}
		agg.Process(rec)
	}

	if err := p.archiveRun(ctx, "prelabel", sum, started, agg.Snapshot()); err != nil {
		return sum, err
	}
	return sum, nil
}

// Stats runs the read-only statistics pass over a labeled stream.
func (p *Pipeline) Stats(ctx context.Context, in io.Reader) (stats.Report, error) {
	agg := stats.NewAggregator()
	rd := record.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return stats.Report{}, err
		}

		rec, err := rd.Next()
		if err == io.EOF {
			return agg.Snapshot(), nil
		}
		if err != nil {
			return stats.Report{}, err
		}
		agg.Process(rec)
	}
}

func (p *Pipeline) newRunID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), p.entropy).String()
}

func (p *Pipeline) archiveRun(ctx context.Context, tool string, sum RunSummary, started time.Time, rep stats.Report) error {
	if p.archive == nil {
		return nil
	}
	totals := make(map[string]int, len(rep.Labels))
	for _, ls := range rep.Labels {
		totals[ls.Label] = int(ls.Count)
	}
	return p.archive.RecordRun(ctx, store.Run{
		ID:        sum.RunID,
		Tool:      tool,
		StartedAt: started,
		Records:   sum.Records,
		Labeled:   sum.Labeled,
		Totals:    totals,
	})
}
