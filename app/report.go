package app

import (
	"io"
	"os"

	"github.com/kaspanet/bestchain/domain/bestchain"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Report summarizes a run: the input counts, the selected chain and every
// chain tip that competed with it.
type Report struct {
	WorkMetric   string      `yaml:"workMetric"`
	Headers      uint64      `yaml:"headers"`
	Distinct     int         `yaml:"distinct"`
	Duplicates   uint64      `yaml:"duplicates"`
	PartialBytes int         `yaml:"partialBytes,omitempty"`
	Best         TipReport   `yaml:"best"`
	Tips         []TipReport `yaml:"tips"`
}

// TipReport describes the chain ending at a single tip.
type TipReport struct {
	Hash    string `yaml:"hash"`
	Genesis string `yaml:"genesis"`
	Height  uint64 `yaml:"height"`
	Work    string `yaml:"work"`
}

func newTipReport(tip *bestchain.ChainNode) TipReport {
	report := TipReport{
		Hash:    tip.Hash().String(),
		Genesis: tip.Genesis().Hash().String(),
		Height:  tip.Height(),
	}
	if work := tip.Work(); work != nil {
		report.Work = work.Dec()
	}
	return report
}

// Stats are the input counts gathered while reading headers.
type Stats struct {
	Headers      uint64
	Distinct     int
	Duplicates   uint64
	PartialBytes int
}

// NewReport builds a report out of a finished search.
func NewReport(workMetric string, stats Stats, result *bestchain.Result) *Report {
	tips := make([]TipReport, len(result.Tips))
	for i, tip := range result.Tips {
		tips[i] = newTipReport(tip)
	}
	return &Report{
		WorkMetric:   workMetric,
		Headers:      stats.Headers,
		Distinct:     stats.Distinct,
		Duplicates:   stats.Duplicates,
		PartialBytes: stats.PartialBytes,
		Best:         newTipReport(result.Best),
		Tips:         tips,
	}
}

// WriteReport encodes report to w as YAML.
func WriteReport(w io.Writer, report *Report) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	err := encoder.Encode(report)
	if err != nil {
		return errors.Wrap(err, "error encoding report")
	}
	return encoder.Close()
}

// SaveReport writes report to the file at path, replacing it if it exists.
func SaveReport(path string, report *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating report %s", path)
	}
	err = WriteReport(f, report)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
