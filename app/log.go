package app

import (
	"github.com/kaspanet/bestchain/infrastructure/logger"
)

var log, _ = logger.Get(logger.SubsystemTags.APPL)
