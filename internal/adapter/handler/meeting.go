package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/errors"
	dtomeeting "github.com/johnquangdev/meeting-notes/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-notes/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-notes/internal/usecase/ai"
	"github.com/johnquangdev/meeting-notes/internal/usecase/meeting"
)

// Meeting handles the meeting registry and processing endpoints
type Meeting struct {
	svc    meeting.Service
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{svc: svc, logger: logger}
}

// ListMeetings returns the meeting registry
// @Summary      List meetings
// @Description  Returns all known meetings, most recently submitted first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtomeeting.MeetingListResponse}
// @Failure      500  {object}  common.ErrorResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	meetings, err := h.svc.List(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings))
}

// GetMeeting returns a single meeting
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string  true  "Meeting ID"
// @Success      200  {object}  common.SuccessResponse{data=dtomeeting.MeetingResponse}
// @Failure      404  {object}  common.ErrorResponse
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	m, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// ListNotes returns processed meetings with their analysis
// @Summary      List meeting notes
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  common.SuccessResponse{data=dtomeeting.MeetingListResponse}
// @Router       /notes [get]
func (h *Meeting) ListNotes(c echo.Context) error {
	notes, err := h.svc.Notes(c.Request().Context())
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(notes))
}

// ProcessMeeting sends a pending meeting to the processing coordinator
// @Summary      Process meeting
// @Description  Dispatches the meeting to the processing coordinator. With async=true the request returns 202 and the result lands in /state.
// @Tags         Meetings
// @Produce      json
// @Param        id     path      string  true   "Meeting ID"
// @Param        async  query     bool    false  "Return before the agent replies"
// @Success      200    {object}  common.SuccessResponse{data=dtomeeting.ProcessResponse}
// @Success      202    {object}  common.SuccessResponse{data=dtomeeting.ProcessResponse}
// @Failure      404    {object}  common.ErrorResponse
// @Failure      409    {object}  common.ErrorResponse  "Meeting already processed"
// @Failure      502    {object}  common.ErrorResponse  "Agent call failed"
// @Router       /meetings/{id}/process [post]
func (h *Meeting) ProcessMeeting(c echo.Context) error {
	var req dtomeeting.ProcessMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if err := echo.QueryParamsBinder(c).Bool("async", &req.Async).BindError(); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("async must be a boolean"))
	}

	out, err := h.svc.ProcessMeeting(c.Request().Context(), req.ID, meeting.ProcessOptions{Async: req.Async})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.respondProcess(c, out)
}

// ProcessCustom registers free text as a meeting and processes it
// @Summary      Process custom meeting
// @Description  Registers pasted meeting text as a new pending meeting and dispatches it
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      dtomeeting.ProcessCustomRequest  true  "Meeting text"
// @Success      200      {object}  common.SuccessResponse{data=dtomeeting.ProcessResponse}
// @Success      202      {object}  common.SuccessResponse{data=dtomeeting.ProcessResponse}
// @Failure      400      {object}  common.ErrorResponse
// @Failure      502      {object}  common.ErrorResponse
// @Router       /meetings/custom [post]
func (h *Meeting) ProcessCustom(c echo.Context) error {
	var req dtomeeting.ProcessCustomRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	out, err := h.svc.ProcessCustom(c.Request().Context(), req.Text, meeting.ProcessOptions{Async: req.Async})
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return h.respondProcess(c, out)
}

func (h *Meeting) respondProcess(c echo.Context, out *meeting.ProcessOutput) error {
	if out.Pending {
		return HandleAccepted(h.logger, c, presenter.ToProcessResponse(out))
	}
	if out.Failed() {
		return HandleError(h.logger, c, dispatchError(out.ErrorKind, out.Error, out.RequestID, errors.ErrAIAnalysisFailed))
	}
	return HandleSuccess(h.logger, c, presenter.ToProcessResponse(out))
}

// dispatchError builds the 502 reported for a failed dispatch
func dispatchError(kind ai.ErrorKind, message, requestID string, build func(string) errors.AppError) errors.AppError {
	var appErr errors.AppError
	if kind == ai.ErrorKindUnrecognizedFormat {
		appErr = errors.ErrAIUnrecognized(message)
	} else {
		appErr = build(message)
	}
	return appErr.WithDetail("kind", string(kind)).WithDetail("request_id", requestID)
}
