package v1

// SearchRequest defines model for SearchRequest.
type SearchRequest struct {
	// Inputs texts searched for every word, named input-<i> by position
	Inputs []string `json:"inputs"`

	// Words searched in every input
	Words []string `json:"words" binding:"required,min=1"`
}

// SearchResponse defines model for SearchResponse.
type SearchResponse struct {
	Failures []Failure `json:"failures"`

	// Id run identifier
	Id string `json:"id"`

	// Results successful results, in the order the searches finished
	Results []Result `json:"results"`
	Stats   Stats    `json:"stats"`
}

// Result defines model for Result.
type Result struct {
	Found     bool   `json:"found"`
	Input     string `json:"input"`
	Positions []int  `json:"positions"`
	Word      string `json:"word"`
}

// Failure defines model for Failure.
type Failure struct {
	Error string      `json:"error"`
	Input *string     `json:"input,omitempty"`
	Kind  FailureKind `json:"kind"`
	Word  *string     `json:"word,omitempty"`
}

// FailureKind defines model for Failure.Kind.
type FailureKind string

const (
	FailureKindCanceled   FailureKind = "canceled"
	FailureKindPanic      FailureKind = "panic"
	FailureKindResolution FailureKind = "resolution"
	FailureKindSearch     FailureKind = "search"
)

// Stats defines model for Stats.
type Stats struct {
	DurationMs int64 `json:"durationMs"`
	Expected   int   `json:"expected"`
	Failed     int   `json:"failed"`
	Inputs     int   `json:"inputs"`
	Succeeded  int   `json:"succeeded"`
	Words      int   `json:"words"`
}

// Health defines model for Health.
type Health struct {
	Status  string      `json:"status"`
	Workers WorkerStats `json:"workers"`
}

// WorkerStats defines model for WorkerStats.
type WorkerStats struct {
	Busy   int `json:"busy"`
	Idle   int `json:"idle"`
	Live   int `json:"live"`
	Queued int `json:"queued"`
}
