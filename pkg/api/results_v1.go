// pkg/api/results_v1.go
package api

// IntervalV1 is a half-open range [start, end).
type IntervalV1 struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ResultV1 is the stable JSON/JSONL schema for one solved almanac reading.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ResultV1 struct {
	Source    string       `json:"source"`
	Mode      string       `json:"mode"` // "seeds" | "ranges"
	Start     string       `json:"start"`
	Terminal  string       `json:"terminal"`
	Hops      int          `json:"hops"`
	Lowest    int64        `json:"lowest"`
	Count     int64        `json:"count"`
	Intervals []IntervalV1 `json:"intervals,omitempty"`
}

// HopV1 is one trace record: the interval set leaving stage From.
type HopV1 struct {
	Source    string       `json:"source"`
	Mode      string       `json:"mode"`
	Index     int          `json:"index"`
	From      string       `json:"from"`
	To        string       `json:"to"`
	Count     int64        `json:"count"`
	Lowest    int64        `json:"lowest"`
	Intervals []IntervalV1 `json:"intervals"`
}

// StepV1 is the value held in one category during a lookup.
type StepV1 struct {
	Category string `json:"category"`
	Value    int64  `json:"value"`
}

// LookupV1 follows a single value through the chain.
type LookupV1 struct {
	Source string   `json:"source"`
	Value  int64    `json:"value"`
	Result int64    `json:"result"`
	Steps  []StepV1 `json:"steps"`
}
