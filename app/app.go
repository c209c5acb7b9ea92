package app

import (
	"io"

	"github.com/kaspanet/bestchain/domain/bestchain"
	"github.com/kaspanet/bestchain/domain/blockindex"
	"github.com/kaspanet/bestchain/domain/header"
	"github.com/kaspanet/bestchain/infrastructure/config"
	"github.com/kaspanet/bestchain/infrastructure/logger"
	"github.com/pkg/errors"
)

// Run reads every header from in, selects the chain with the most
// accumulated work and writes its hashes to out, genesis first. A YAML report
// is saved as well when cfg.ReportFile is set.
func Run(cfg *config.Config, in io.Reader, out io.Writer) (*bestchain.Result, error) {
	defer logger.LogAndMeasureExecutionTime(log, "app.Run")()

	index, stats, err := readIndex(in)
	if err != nil {
		return nil, err
	}
	log.Infof("Read %d headers (%d distinct, %d duplicates)",
		stats.Headers, stats.Distinct, stats.Duplicates)

	result, err := bestchain.Find(index, cfg.WorkFunc)
	if err != nil {
		return nil, err
	}
	logResult(result)

	err = WriteChain(out, result.Chain)
	if err != nil {
		return nil, err
	}

	if cfg.ReportFile != "" {
		err = SaveReport(cfg.ReportFile, NewReport(cfg.WorkMetric, stats, result))
		if err != nil {
			return nil, err
		}
		log.Debugf("Saved report to %s", cfg.ReportFile)
	}

	return result, nil
}

func readIndex(in io.Reader) (*blockindex.Index, Stats, error) {
	reader := header.NewReader(in)
	index := blockindex.New()
	for {
		block, err := reader.ReadBlock()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Stats{}, err
		}
		index.Insert(block)
	}

	stats := Stats{
		Headers:      reader.Count(),
		Distinct:     index.Len(),
		Duplicates:   index.Duplicates(),
		PartialBytes: reader.PartialBytes(),
	}
	return index, stats, nil
}

func logResult(result *bestchain.Result) {
	log.Infof("Found %d chain tips", len(result.Tips))
	log.Infof("Found best chain")
	log.Infof("- Height: %d", result.Height())
	log.Infof("- Work: %s", result.BestWork.Dec())
	log.Infof("- Genesis: %s", result.Genesis().Hash)
	log.Infof("- Tip: %s", result.Tip().Hash)
}
