// internal/api/types/response.go
package types

// Envelope is the JSON envelope wrapping every API response.
// Successful responses carry Data and optionally Results (a collection
// count); failures carry Message instead.
type Envelope struct {
	Status  string      `json:"status"`
	Results *int        `json:"results,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client-side problem (4xx)
	StatusError   = "error" // server-side problem (5xx)
)

// Success wraps data in a success envelope.
func Success(data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Data: data}
}

// SuccessList wraps a collection in a success envelope with its count.
func SuccessList(results int, data interface{}) Envelope {
	return Envelope{Status: StatusSuccess, Results: &results, Data: data}
}
