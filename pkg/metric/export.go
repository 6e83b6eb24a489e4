package metric

import (
	"io"

	"github.com/gocarina/gocsv"
)

// Exporter collects raw timing samples during a run and writes them, or a
// finished results table, as CSV.
type Exporter struct {
	runID   string
	samples []SampleRecord
}

func NewExporter(runID string) *Exporter {
	return &Exporter{
		runID:   runID,
		samples: []SampleRecord{},
	}
}

func (ep *Exporter) RunID() string {
	return ep.runID
}

func (ep *Exporter) ReportSample(record SampleRecord) {
	record.RunID = ep.runID
	ep.samples = append(ep.samples, record)
}

func (ep *Exporter) Samples() []SampleRecord {
	return ep.samples
}

func (ep *Exporter) GetSampleRecordLen() int {
	return len(ep.samples)
}

func (ep *Exporter) WriteSamplesCSV(w io.Writer) error {
	return gocsv.Marshal(&ep.samples, w)
}

func (ep *Exporter) WriteResultsCSV(w io.Writer, table *ResultsTable) error {
	records := table.Records()
	return gocsv.Marshal(&records, w)
}
