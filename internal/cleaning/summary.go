package cleaning

// Summary diffs a dataset before and after one cleaning run. Produced once
// per Clean call and not mutated afterwards.
type Summary struct {
	OriginalRows    int      `json:"original_rows"`
	OriginalColumns int      `json:"original_columns"`
	ResultRows      int      `json:"current_rows"`
	ResultColumns   int      `json:"current_columns"`
	RowsChanged     int      `json:"rows_changed"`
	MemoryBefore    int64    `json:"memory_before_bytes"`
	MemoryAfter     int64    `json:"memory_after_bytes"`
	MemorySaved     int64    `json:"memory_saved_bytes"`
	Log             []string `json:"cleaning_log"`
}
