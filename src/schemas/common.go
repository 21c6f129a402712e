package schemas

// Response is the uniform envelope returned by every endpoint. Code mirrors
// the HTTP status; 200 signals success.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// IDResponse reports the id of a newly created resource.
type IDResponse struct {
	ID int `json:"id"`
}
