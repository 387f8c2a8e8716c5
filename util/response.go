package util

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
)

type Response struct {
	StatusCode int `json:"-"`
}

func (res Response) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, res.StatusCode)
	return nil
}

type ServerResponse struct {
	Response
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func NewErrorResponse(msg string, statusCode int) ServerResponse {
	return ServerResponse{
		Status:  false,
		Message: msg,
		Response: Response{
			StatusCode: statusCode,
		},
	}
}

func NewServerResponse(msg string, object interface{}, statusCode int) (ServerResponse, error) {
	data, err := json.Marshal(object)
	if err != nil {
		return ServerResponse{}, err
	}

	return ServerResponse{
		Status:  true,
		Message: msg,
		Data:    data,
		Response: Response{
			StatusCode: statusCode,
		},
	}, nil
}
