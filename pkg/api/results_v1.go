// pkg/api/results_v1.go
package api

// MutationRateV1 is the stable JSON schema for mutrate results.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type MutationRateV1 struct {
	MeanRate     float64 `json:"mean_rate"`
	Confidence   float64 `json:"confidence"`
	CILower      float64 `json:"ci_lower"`
	CIUpper      float64 `json:"ci_upper"`
	Observations int     `json:"observations"`
	Resamples    int     `json:"resamples"`
}

// UniquePositionV1 is the stable JSON schema for one pathmut position.
type UniquePositionV1 struct {
	Position      int      `json:"position"`
	Pathogenic    []string `json:"pathogenic"`
	NonPathogenic []string `json:"non_pathogenic"`
}
