package engine

import (
	"strings"
	"time"

	"github.com/valyala/fastjson"
)

// JSONParser accepts one JSON object per line:
// {"address": "10.0.0.1", "timestamp": "2024-01-01 10:00:00"}.
// Malformed JSON, missing fields and bad timestamps follow the same
// skip-and-continue policy as the plain grammar.
type JSONParser struct {
	parser fastjson.Parser
}

// NewJSONParser creates a new JSONParser. Not safe for concurrent use; the
// pipeline feeds it from a single goroutine.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseLine parses one JSON log line into a Record.
func (p *JSONParser) ParseLine(line string) (Record, bool) {
	v, err := p.parser.Parse(line)
	if err != nil || v.Type() != fastjson.TypeObject {
		return Record{}, false
	}

	addrBytes := v.GetStringBytes("address")
	tsBytes := v.GetStringBytes("timestamp")
	if addrBytes == nil || tsBytes == nil {
		return Record{}, false
	}

	raw := strings.TrimSpace(string(tsBytes))
	if len(raw) != len(TimestampLayout) {
		return Record{}, false
	}
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return Record{}, false
	}

	return Record{Address: strings.TrimSpace(string(addrBytes)), Timestamp: ts}, true
}
