package output

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter narrows a record list with a compiled expression. Each record is
// exposed as the expression environment, so fields are addressed directly:
//
//	population > 10
//	country == "FR" && name startsWith "Par"
type Filter struct {
	source  string
	program *vm.Program
}

// NewFilter compiles a filter expression. Compilation happens once per
// invocation; a malformed expression fails here, before any request.
func NewFilter(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &Filter{source: source, program: program}, nil
}

// Apply returns the records for which the expression evaluates to true.
func (f *Filter) Apply(records []map[string]interface{}) ([]map[string]interface{}, error) {
	filtered := make([]map[string]interface{}, 0, len(records))

	for _, record := range records {
		result, err := expr.Run(f.program, map[string]interface{}(record))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter: %w", err)
		}

		keep, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression %q must evaluate to a boolean, got %T", f.source, result)
		}

		if keep {
			filtered = append(filtered, record)
		}
	}

	return filtered, nil
}
