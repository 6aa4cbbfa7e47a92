package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/jonathan/jobtracker/internal/types"
	"github.com/jonathan/jobtracker/internal/validation"
)

// LoginResponse is the validation outcome of a login form submission
type LoginResponse struct {
	Message string `json:"message,omitempty"`
	types.LoginResult
}

// handleLogin validates a login form. Credentials are only checked for shape;
// there is no user store behind it.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req types.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	result := validation.ValidateLogin(req.Email, req.Password)
	if !result.Valid {
		s.jsonResponse(w, http.StatusBadRequest, LoginResponse{LoginResult: result})
		return
	}
	s.jsonResponse(w, http.StatusOK, LoginResponse{Message: "Login successful!", LoginResult: result})
}
