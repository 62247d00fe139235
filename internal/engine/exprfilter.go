package engine

import (
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/livp123/logsift/internal/utils/logger"
	sifterrors "github.com/livp123/logsift/pkg/errors"
)

// FilterEnv is the environment a filter expression runs against.
type FilterEnv struct {
	Address   string
	Line      string
	Timestamp time.Time
}

var regexCache sync.Map

// Contains checks if the address or line contains the given string (case insensitive).
func (e FilterEnv) Contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// Match checks if the raw line matches the given regular expression.
func (e FilterEnv) Match(pattern string) bool {
	re, ok := regexCache.Load(pattern)
	if !ok {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			logger.Get(nil).Warnf("⚠️ Invalid regex pattern: %s", pattern)
			return false
		}
		regexCache.Store(pattern, compiled)
		re = compiled
	}
	return re.(*regexp.Regexp).MatchString(e.Line)
}

// RecordFilter is an optional compiled predicate applied to each valid
// record before it reaches the index. Records it rejects are dropped with
// the same continue-on policy as malformed lines.
type RecordFilter struct {
	source  string
	program *vm.Program
}

// CompileFilter compiles a filter expression. The expression must evaluate
// to a boolean; compile failures surface before the pipeline starts.
func CompileFilter(src string) (*RecordFilter, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	program, err := expr.Compile(src, expr.Env(FilterEnv{}), expr.AsBool())
	if err != nil {
		return nil, sifterrors.NewFilterExprError(src, err)
	}

	return &RecordFilter{source: src, program: program}, nil
}

// Keep evaluates the predicate for one record. A runtime fault counts as a
// rejection for that record only; the run continues.
func (f *RecordFilter) Keep(rec Record, line string) bool {
	if f == nil {
		return true
	}

	env := FilterEnv{
		Address:   rec.Address,
		Line:      line,
		Timestamp: rec.Timestamp,
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		logger.Get(nil).Debugf("Filter %q failed for address %s: %v", f.source, rec.Address, err)
		return false
	}
	matched, ok := output.(bool)
	return ok && matched
}

// Source returns the original expression text.
func (f *RecordFilter) Source() string {
	if f == nil {
		return ""
	}
	return f.source
}
