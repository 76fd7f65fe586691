package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// AuditLogger writes one " ; " separated line per simulated round.
// A nil AuditLogger drops every record, concurrent runs may share one.
type AuditLogger struct {
	mu             sync.Mutex
	file           io.Writer
	printToConsole bool
}

func NewAuditLogger(file io.Writer, printToConsole bool) *AuditLogger {
	auditLogger := &AuditLogger{file: file, printToConsole: printToConsole}
	// write csv headers
	_, _ = auditLogger.file.Write([]byte(fmt.Sprintf("%v ; %v ; %v ; %v ; %v ; %v ; %v\n", "run", "round", "cooperators", "defectors", "toA", "toB", "unchanged")))
	return auditLogger
}

func (logger *AuditLogger) log(text string) {
	toPrint := []byte(text + "\n")
	logger.mu.Lock()
	defer logger.mu.Unlock()
	_, _ = logger.file.Write(toPrint)
	if logger.printToConsole {
		_, _ = os.Stdout.Write(toPrint)
	}
}

func (logger *AuditLogger) AuditRound(runId string, round int, cooperators int, defectors int, toA int, toB int, unchanged int) {
	if logger != nil {
		logger.log(fmt.Sprintf("%v ; %v ; %v ; %v ; %v ; %v ; %v", runId, round, cooperators, defectors, toA, toB, unchanged))
	}
}
