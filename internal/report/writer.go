package report

import (
	"fmt"
	"sort"
	"strings"
)

// Render serializes the counts mapping as one "<address>:<count>" line per
// entry. Entries are sorted by address so identical runs produce
// byte-identical files. An empty mapping renders to an empty document; a
// zero-entry report is a normal result, not an error.
func Render(counts map[string]int) []byte {
	if len(counts) == 0 {
		return []byte{}
	}

	addresses := make([]string, 0, len(counts))
	for address := range counts {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	var b strings.Builder
	for _, address := range addresses {
		fmt.Fprintf(&b, "%s:%d\n", address, counts[address])
	}
	return []byte(b.String())
}
