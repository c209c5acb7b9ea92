package header

import (
	"github.com/kaspanet/bestchain/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.HDRS)
