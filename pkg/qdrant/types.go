package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // 1024 for voyage-3-large
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload.
// Qdrant only accepts UUID strings or unsigned integers as IDs.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// Filter is a Qdrant boolean filter. Only the clauses used here are modelled.
type Filter struct {
	Must   []Condition `json:"must,omitempty"`
	Should []Condition `json:"should,omitempty"`
}

// Condition is a field condition on a payload key.
type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

// Match holds an exact value match.
type Match struct {
	Value interface{} `json:"value"`
}

// SearchParams tunes the ANN search.
type SearchParams struct {
	HNSWEf int  `json:"hnsw_ef,omitempty"` // size of the candidate pool
	Exact  bool `json:"exact,omitempty"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32     `json:"vector"`
	Limit       int           `json:"limit"`
	WithPayload bool          `json:"with_payload"`
	Filter      *Filter       `json:"filter,omitempty"`
	Params      *SearchParams `json:"params,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// ScrollRequest pages through points.
type ScrollRequest struct {
	Filter      *Filter     `json:"filter,omitempty"`
	Limit       int         `json:"limit"`
	Offset      interface{} `json:"offset,omitempty"`
	WithPayload bool        `json:"with_payload"`
}

// ScrollResponse is the scroll result page.
type ScrollResponse struct {
	Result struct {
		Points         []RecordPoint `json:"points"`
		NextPageOffset interface{}   `json:"next_page_offset"`
	} `json:"result"`
}

// RecordPoint is a stored point returned by scroll.
type RecordPoint struct {
	ID      string                 `json:"id"`
	Payload map[string]interface{} `json:"payload"`
}

// SetPayloadRequest sets payload keys on the listed points.
type SetPayloadRequest struct {
	Payload map[string]interface{} `json:"payload"`
	Points  []string               `json:"points"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
