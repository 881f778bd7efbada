package autonum

import (
	"sync"

	anlog "github.com/msto63/autonum/foundation/core/log"
	"github.com/msto63/autonum/pkg/core/logging"
)

// LoggerName is the name library warnings are logged under
const LoggerName = "autonum"

var (
	loggerMu      sync.RWMutex
	packageLogger = logging.NewComponentLogger(LoggerName)
)

// SetLogger replaces the logger used by the static API and by instances
// created without WithLogger. A nil logger discards everything.
func SetLogger(l *anlog.Logger) {
	if l == nil {
		l = anlog.Discard()
	}
	loggerMu.Lock()
	packageLogger = l
	loggerMu.Unlock()
}

func defaultLogger() *anlog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return packageLogger
}
