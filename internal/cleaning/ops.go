package cleaning

import (
	"fmt"
	"strings"
)

// Operation is a cleaning operation tag.
type Operation string

const (
	OpRemoveDuplicates   Operation = "remove_duplicates"
	OpFixDataTypes       Operation = "fix_data_types"
	OpHandleMissingBasic Operation = "handle_missing_basic"
	OpCleanText          Operation = "clean_text"
	OpRemoveOutliers     Operation = "remove_outliers"
)

// canonicalOrder is the order operations always execute in, regardless of
// the order the caller lists them. Several operations are order-sensitive:
// duplicates must go before imputation (or duplicate values seed the
// median/mode), type fixes before imputation (so converted numerics get a
// median, not a mode), and outlier removal last so fences see repaired data.
var canonicalOrder = []Operation{
	OpRemoveDuplicates,
	OpFixDataTypes,
	OpHandleMissingBasic,
	OpCleanText,
	OpRemoveOutliers,
}

// AllOperations lists every recognized operation in canonical order.
func AllOperations() []Operation {
	out := make([]Operation, len(canonicalOrder))
	copy(out, canonicalOrder)
	return out
}

// ValidationError reports cleaning operation tags the pipeline does not
// recognize. When returned, no operation has run.
type ValidationError struct {
	Unknown []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unknown cleaning operations: %s", strings.Join(e.Unknown, ", "))
}

// ParseOperations validates raw tags into Operations. Unknown tags are
// rejected with a *ValidationError rather than silently skipped, so caller
// typos surface instead of turning a requested operation into a no-op.
func ParseOperations(tags []string) ([]Operation, error) {
	known := map[Operation]struct{}{}
	for _, op := range canonicalOrder {
		known[op] = struct{}{}
	}
	ops := make([]Operation, 0, len(tags))
	var unknown []string
	for _, t := range tags {
		op := Operation(strings.TrimSpace(t))
		if _, ok := known[op]; !ok {
			unknown = append(unknown, string(op))
			continue
		}
		ops = append(ops, op)
	}
	if len(unknown) > 0 {
		return nil, &ValidationError{Unknown: unknown}
	}
	return ops, nil
}
