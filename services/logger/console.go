// Package logsvc provides the core.Logger implementations.
package logsvc

import (
	"log"

	"github.com/trezcool/schoolfees/core"
)

// ConsoleLogger writes to a std logger only. Used in DEV & TEST.
type ConsoleLogger struct {
	std     *log.Logger
	enabled bool
	exit    func(code int) // mockable
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger(std *log.Logger) *ConsoleLogger {
	return &ConsoleLogger{std: std, enabled: true, exit: exit}
}

func (l *ConsoleLogger) Enable(enabled bool) {
	l.enabled = enabled
}

func (l *ConsoleLogger) log(level, msg string, args []interface{}) {
	if l.enabled {
		printTo(l.std, level+": "+msg, args)
	}
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.log("DEBUG", msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.log("INFO", msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.log("WARN", msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.log("ERROR", msg, args) }

// Fatal always logs, then exits.
func (l *ConsoleLogger) Fatal(msg string, args ...interface{}) {
	printTo(l.std, "FATAL: "+msg, args)
	l.exit(1)
}
