package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"campusid/internal/delivery/http/response"
	"campusid/internal/delivery/http/validator"
	domainerrors "campusid/internal/domain/errors"
	"campusid/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase returns a canned result for every call.
type stubAuthUsecase struct {
	output *usecase.AuthenticateOutput
	err    error

	lastInput *usecase.AuthenticateInput
}

func (s *stubAuthUsecase) Authenticate(_ context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	s.lastInput = input

	if s.err != nil {
		return nil, s.err
	}

	return s.output, nil
}

func newLoginContext(t *testing.T, body string, contentType string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.LoginEnvelope {
	t.Helper()

	var envelope response.LoginEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func newTestAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return NewAuthHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestAuthHandler_Login_SuccessWithImage(t *testing.T) {
	portrait := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	stub := &stubAuthUsecase{
		output: &usecase.AuthenticateOutput{
			StudentID: "john_doe",
			ImageData: portrait,
			MimeType:  "image/png",
		},
	}
	handler := newTestAuthHandler(stub)

	form := url.Values{}
	form.Set("student_id", "john_doe")
	form.Set("password", "testpassword123")
	c, rec := newLoginContext(t, form.Encode(), echo.MIMEApplicationForm)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, response.MsgLoginSuccessful, envelope.Message)
	assert.Equal(t, "john_doe", envelope.StudentID)
	assert.Equal(t, "image/png", envelope.MimeType)

	// The transport encoding must round-trip back to the stored bytes.
	decoded, err := base64.StdEncoding.DecodeString(envelope.Image)
	require.NoError(t, err)
	assert.Equal(t, portrait, decoded)

	// Form fields reached the usecase untouched.
	require.NotNil(t, stub.lastInput)
	assert.Equal(t, "john_doe", stub.lastInput.StudentID)
	assert.Equal(t, "testpassword123", stub.lastInput.Password)
}

func TestAuthHandler_Login_SuccessWithoutImage(t *testing.T) {
	stub := &stubAuthUsecase{
		output: &usecase.AuthenticateOutput{StudentID: "john_doe"},
	}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"john_doe","password":"testpassword123"}`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, response.MsgNoImageData, envelope.Message)
	assert.Equal(t, "john_doe", envelope.StudentID)
	assert.Empty(t, envelope.Image)
	assert.Empty(t, envelope.MimeType)
}

func TestAuthHandler_Login_ValidationFailure(t *testing.T) {
	stub := &stubAuthUsecase{
		err: errors.Wrap(domainerrors.ErrValidationFailed, "missing student id or password"),
	}
	handler := newTestAuthHandler(stub)

	form := url.Values{}
	form.Set("student_id", "")
	form.Set("password", "x")
	c, rec := newLoginContext(t, form.Encode(), echo.MIMEApplicationForm)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Please provide all information.", envelope.Message)
	assert.Empty(t, envelope.StudentID)
	assert.Empty(t, envelope.Image)
	assert.Empty(t, envelope.MimeType)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthUsecase{
		err: errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed"),
	}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"john_doe","password":"wrong"}`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid Credentials.", envelope.Message)
	assert.Empty(t, envelope.StudentID)
}

func TestAuthHandler_Login_StoreFailureStaysGeneric(t *testing.T) {
	stub := &stubAuthUsecase{
		err: errors.Wrap(domainerrors.ErrStoreFailure, "credential lookup failed"),
	}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"john_doe","password":"x"}`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, domainerrors.ErrStoreFailure.Message(), envelope.Message)
	assert.NotContains(t, rec.Body.String(), "lookup")
}

func TestAuthHandler_Login_UnexpectedErrorStaysGeneric(t *testing.T) {
	stub := &stubAuthUsecase{
		err: errors.New("pq: relation \"users\" does not exist"),
	}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"john_doe","password":"x"}`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, domainerrors.ErrInternalError.Message(), envelope.Message)
	assert.NotContains(t, rec.Body.String(), "relation")
}

// All five envelope keys are always present, whatever the outcome.
func TestAuthHandler_Login_EnvelopeShape(t *testing.T) {
	stub := &stubAuthUsecase{
		err: errors.Wrap(domainerrors.ErrInvalidCredentials, "authentication failed"),
	}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"a","password":"b"}`, echo.MIMEApplicationJSON)
	require.NoError(t, handler.Login(c))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"success", "message", "student_id", "image", "mime_type"} {
		assert.Contains(t, raw, key)
	}
}

// A payload missing a required field is rejected by the struct tags before
// the usecase runs, with the same envelope message as the trim check.
func TestAuthHandler_Login_MissingFieldRejectedByTags(t *testing.T) {
	stub := &stubAuthUsecase{}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":"john_doe"}`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Please provide all information.", envelope.Message)
	assert.Nil(t, stub.lastInput)
}

func TestAuthHandler_Login_MalformedBody(t *testing.T) {
	stub := &stubAuthUsecase{}
	handler := newTestAuthHandler(stub)

	c, rec := newLoginContext(t, `{"student_id":`, echo.MIMEApplicationJSON)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Please provide all information.", envelope.Message)
	assert.Nil(t, stub.lastInput)
}
