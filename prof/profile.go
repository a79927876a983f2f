package prof

import (
	"time"

	"go.uber.org/zap"
)

// Track logs the duration since start with the given name. Use with
// defer at the top of an operation:
//
//	defer prof.Track(time.Now(), "simon.Recover")
func Track(start time.Time, name string) {
	zap.L().Info("timing",
		zap.String("op", name),
		zap.Duration("elapsed", time.Since(start)),
	)
}
