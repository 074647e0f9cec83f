package csvstore

import "fleettrack/internal/logger"

// RowErrorSink receives a diagnostic for every malformed row skipped
// during Load. Loading continues with the next row.
type RowErrorSink interface {
	RowError(line int, msg string)
}

type logSink struct {
	file string
}

func (s logSink) RowError(line int, msg string) {
	logger.Warn("Skipping malformed CSV row", "file", s.file, "line", line, "reason", msg)
}

// LogSink returns a sink that reports row diagnostics through the
// application logger.
func LogSink(file string) RowErrorSink {
	return logSink{file: file}
}
