package advice

// Request is the body of an advice generation call.
type Request struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// Response carries the generated advice and the original question.
type Response struct {
	Advice   string `json:"advice"`
	Question string `json:"question"`
}
