package engine

import (
	"strings"
	"time"
)

// Parser implements the plain "addr: yyyy-MM-dd HH:mm:ss" line grammar.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseLine splits the line at the first colon into an address part and a
// timestamp part. A line with no colon is rejected. The address is the
// trimmed left part and carries no further validation: any string value is
// accepted, including non-IP text. The trimmed right part must match
// TimestampLayout exactly; extra colons in the address position shift into
// the timestamp field and fail the layout, so neither field may contain one.
func (p *Parser) ParseLine(line string) (Record, bool) {
	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		return Record{}, false
	}

	address := strings.TrimSpace(line[:sep])
	raw := strings.TrimSpace(line[sep+1:])

	// time.Parse tolerates a single-digit hour, so pin the exact width first.
	if len(raw) != len(TimestampLayout) {
		return Record{}, false
	}
	// time.Parse enforces numeric fields, calendar validity and rejects
	// trailing garbage.
	ts, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return Record{}, false
	}

	return Record{Address: address, Timestamp: ts}, true
}
