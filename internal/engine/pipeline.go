package engine

import (
	"github.com/livp123/logsift/internal/metrics"
	"github.com/livp123/logsift/internal/utils/logger"
)

// Pipeline composes the three stages of a run: raw lines → parsed records →
// index → filtered counts. Data flows strictly forward; no stage reads back
// from a downstream one.
type Pipeline struct {
	parser  LineParser
	filter  *RecordFilter
	workers int
}

// NewPipeline creates a Pipeline. filter may be nil; workers <= 1 keeps the
// aggregation phase sequential.
func NewPipeline(parser LineParser, filter *RecordFilter, workers int) *Pipeline {
	return &Pipeline{
		parser:  parser,
		filter:  filter,
		workers: workers,
	}
}

// Run streams the input file, folds the valid records into a fresh index
// and aggregates it against the criteria. Only the setup can fail; every
// per-line and per-key fault is swallowed with a diagnostic.
func (p *Pipeline) Run(inputPath string, criteria Criteria) (map[string]int, error) {
	tailer := NewTailer()
	if err := tailer.Start(inputPath); err != nil {
		return nil, err
	}

	index := p.buildIndex(tailer.Events)
	logger.Get(nil).Infof("📖 Indexed %d distinct addresses from %s", index.Len(), inputPath)

	return Aggregate(index, criteria, p.workers), nil
}

// buildIndex folds the event stream into an index. Lines are consumed
// strictly sequentially: one writer, no parallel race on map keys.
func (p *Pipeline) buildIndex(events <-chan LineEvent) *Index {
	index := NewIndex()
	log := logger.Get(nil)

	for event := range events {
		metrics.LinesTotal.Inc()

		rec, ok := p.parser.ParseLine(event.Line)
		if !ok {
			metrics.ParseFailuresTotal.Inc()
			log.Debugf("Skipping malformed line %s:%d", event.Source, event.Number)
			continue
		}

		if !p.filter.Keep(rec, event.Line) {
			metrics.FilteredRecordsTotal.Inc()
			continue
		}

		index.Insert(rec)
		metrics.RecordsIndexedTotal.Inc()
	}

	return index
}
