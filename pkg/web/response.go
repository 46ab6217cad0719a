// Package web defines common components for a web application.
package web

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken          string `json:"access_token,omitempty"`
	AccessTokenExpiresAt string `json:"access_token_expires_at,omitempty"`
	Data                 any    `json:"data,omitempty"`
	Error                string `json:"error,omitempty"`
}

// Error wraps a given err into json friendly response.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable suffix for a failed validation tag.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "oneof":
		return fmt.Sprintf(" must be one of [%s]", fe.Param())
	case "accountname":
		return " is not a valid account name"
	case "decimal":
		return " must be a decimal number"
	}

	return " is invalid"
}
