package echoapi

type successResponse struct {
	Status string      `json:"status"`
	Data   interface{} `json:"data"`
}

type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type bulkDeleteResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Deleted int64  `json:"deleted"`
}

func newSuccessResponse(data interface{}) successResponse {
	return successResponse{Status: "success", Data: data}
}

func newMessageResponse(msg string) messageResponse {
	return messageResponse{Status: "success", Message: msg}
}

type errorResponse struct {
	Status  string      `json:"status"`
	Message interface{} `json:"message"`
}
