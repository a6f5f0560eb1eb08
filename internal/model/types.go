package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord describes one archived evolutionary run: the problem it
// maximized, the engine parameters, and the best result found.
type RunRecord struct {
	VersionedRecord
	ID           string  `json:"id"`
	Problem      string  `json:"problem"`
	Population   int     `json:"population"`
	Generations  int     `json:"generations"`
	Pc           float64 `json:"pc"`
	Pm           float64 `json:"pm"`
	Elites       int     `json:"elites"`
	Seed         int64   `json:"seed"`
	Selection    string  `json:"selection"`
	BestFitness  float64 `json:"best_fitness"`
	BestAgent    string  `json:"best_agent"`
	CreatedAtUTC string  `json:"created_at_utc"`
}

// GenerationStats is the storage-side mirror of the engine's
// per-generation diagnostics.
type GenerationStats struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
	MinFitness  float64 `json:"min_fitness"`
}
