package notify

// credentials identifies the target account and application with the push
// service.
type credentials struct {
	UserKey  string `validate:"required"`
	AppToken string `validate:"required"`
}

// payload is the outbound notification content. It exists only for the
// duration of one Send.
type payload struct {
	Title   string `validate:"required"`
	Message string `validate:"required"`
}

// apiResponse contains the fields the service returns for a submission.
type apiResponse struct {
	Status  int      `json:"status"`
	Request string   `json:"request"`
	Errors  []string `json:"errors"`
}
