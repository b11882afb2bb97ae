// Package response defines the wire shapes the HTTP delivery produces.
package response

import (
	"encoding/base64"
	"net/http"

	deliverycontext "campusid/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Fixed messages of the login envelope. Clients match on these strings, so
// they are frozen.
const (
	MsgLoginSuccessful = "Login successful"
	MsgNoImageData     = "Verified, but no valid image data found."
)

// LoginEnvelope is the flat response returned by POST /login for every
// outcome. All five keys are always present and the transport status is
// always 200; clients read `success` and `message`, not the status code.
type LoginEnvelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	StudentID string `json:"student_id"`
	Image     string `json:"image"`
	MimeType  string `json:"mime_type"`
}

// LoginFailure renders a failed login with the given message.
func LoginFailure(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, LoginEnvelope{
		Success: false,
		Message: message,
	})
}

// LoginSuccess renders a verified login. The portrait is base64-encoded here,
// at the response boundary; the stored bytes stay canonical everywhere else.
// An absent portrait keeps success=true but swaps in the no-image message and
// leaves the image keys empty.
func LoginSuccess(c echo.Context, studentID string, imageData []byte, mimeType string) error {
	envelope := LoginEnvelope{
		Success:   true,
		Message:   MsgLoginSuccessful,
		StudentID: studentID,
	}

	if len(imageData) > 0 {
		envelope.Image = base64.StdEncoding.EncodeToString(imageData)
		envelope.MimeType = mimeType
	} else {
		envelope.Message = MsgNoImageData
	}

	return c.JSON(http.StatusOK, envelope)
}

// Response unified API response structure for non-login endpoints. The login
// envelope stays flat for its legacy clients; everything else carries the
// request id for log correlation.
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	RequestID string     `json:"request_id"`
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "STORE_FAILURE"
	Details string `json:"details,omitempty"` // Detailed error description
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   message,
		RequestID: deliverycontext.GetRequestID(c),
		Data:      data,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode string, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success:   false,
		Code:      statusCode,
		Message:   message,
		RequestID: deliverycontext.GetRequestID(c),
		Error: &ErrorInfo{
			Code: errorCode,
		},
	})
}
