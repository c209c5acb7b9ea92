package profiling

import (
	"os"
	"runtime/pprof"

	"github.com/kaspanet/bestchain/infrastructure/logger"
	"github.com/pkg/errors"
)

// StartCPUProfile writes a CPU profile to path until the returned stop
// function is called.
func StartCPUProfile(path string, log *logger.Logger) (stop func(), err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error creating CPU profile %s", path)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "error starting CPU profile")
	}
	log.Infof("Writing CPU profile to %s", path)

	return func() {
		pprof.StopCPUProfile()
		err := f.Close()
		if err != nil {
			log.Errorf("Error closing CPU profile %s: %s", path, err)
		}
	}, nil
}
