package engine

import "time"

// TimestampLayout is the only timestamp shape accepted inside log lines.
const TimestampLayout = "2006-01-02 15:04:05"

// Record is one parsed (address, timestamp) pair from a single input line.
type Record struct {
	Address   string
	Timestamp time.Time
}

// LineEvent carries one raw line from the input stream.
type LineEvent struct {
	Line   string
	Source string // input file path
	Number int    // 1-based line number
}

// LineParser converts one raw line into a Record.
// The bool result is false for malformed lines; those produce no Record
// and must not abort the run.
type LineParser interface {
	ParseLine(line string) (Record, bool)
}
