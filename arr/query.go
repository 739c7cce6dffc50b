package arr

import (
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression ("$.users[0].name", "$..id")
// against decoded JSON-like data (maps, []any, scalars).
// A missing key or malformed expression yields ErrPath.
func Query(doc any, expr string) (any, error) {
	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPath, expr, err)
	}
	return v, nil
}
