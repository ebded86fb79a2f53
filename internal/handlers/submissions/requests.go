package submissions

// SubmitRequest represents a request to grade solution code
type SubmitRequest struct {
	Code string `json:"code"`
}
