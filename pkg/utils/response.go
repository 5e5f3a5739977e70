package utils

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response is the error envelope every endpoint returns on failure.
type Response struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error,omitempty" example:"Internal server error"`
}

func RespondWithError(w http.ResponseWriter, r *http.Request, code int, message string) {
	RespondWithJSON(w, r, code, Response{Success: false, Error: message})
}

func RespondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload interface{}) {
	render.Status(r, code)
	render.JSON(w, r, payload)
}
