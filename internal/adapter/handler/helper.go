package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-notes/internal/usecase/errors"
	pkgvalidator "github.com/johnquangdev/meeting-notes/pkg/validator"
)

// Response shapes
type success struct {
	Code    interface{} `json:"code,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type errs struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// getRequestID reads the request id assigned by the request-id middleware,
// falling back to the inbound header
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized success response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusOK, data)
}

// HandleAccepted writes a standardized response for work that continues in the background
func HandleAccepted(logger *zap.Logger, c echo.Context, data interface{}) error {
	return respond(logger, c, http.StatusAccepted, data)
}

func respond(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := success{
		Code:    int(errors.ErrorCode_HTTP_OK),
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if !stdErrors.As(err, &appErr) {
		appErr = toAppError(err)
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Any("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	body := errs{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	}

	return c.JSON(appErr.HTTPCode, body)
}

// toAppError maps use-case sentinels to their HTTP representation
func toAppError(err error) errors.AppError {
	switch {
	case stdErrors.Is(err, usecaseErrors.ErrMeetingNotFound), stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrNotFound("meeting")
	case stdErrors.Is(err, usecaseErrors.ErrMeetingAlreadyProcessed):
		return errors.ErrMeetingAlreadyProcessed()
	case stdErrors.Is(err, usecaseErrors.ErrEmptyMeetingInput):
		return errors.ErrMeetingEmptyInput()
	case stdErrors.Is(err, usecaseErrors.ErrDuplicateMeeting):
		return errors.AppError{
			Raw:      err,
			HTTPCode: http.StatusConflict,
			Code:     errors.ErrorCode_ALREADY_EXISTS,
			Message:  "Meeting already exists",
		}
	case stdErrors.Is(err, usecaseErrors.ErrNoSearchResults):
		return errors.ErrNotFound("search results")
	case stdErrors.Is(err, usecaseErrors.ErrRefinementOutOfRange):
		return errors.ErrInvalidArgument("refinement index out of range")
	case stdErrors.Is(err, usecaseErrors.ErrNoFile):
		return errors.ErrKBInvalidFile("exactly one file is required")
	case stdErrors.Is(err, usecaseErrors.ErrEmptyFileName):
		return errors.ErrKBInvalidFile("file name is required")
	case stdErrors.Is(err, usecaseErrors.ErrInvalidInput):
		return errors.ErrInvalidArgument(err.Error())
	}
	return errors.ErrInternal(err)
}

// bindAndValidate binds path, query and body into req and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if c.Echo().Validator == nil {
		return nil
	}
	if err := c.Validate(req); err != nil {
		appErr := errors.ErrInvalidArgument("validation failed")
		for field, tag := range pkgvalidator.FieldErrors(err) {
			appErr = appErr.WithDetail(field, tag)
		}
		return appErr
	}
	return nil
}
