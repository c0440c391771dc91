package calculator

// Result is the JSON payload for a successful operation.
type Result struct {
	Result float64 `json:"result"`
}
