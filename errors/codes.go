package errors

// ErrorCode identifies an application error category in API responses
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED      ErrorCode = 0
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004

	// Meetings
	ErrorCode_MEETING_NOT_FOUND         ErrorCode = 2000
	ErrorCode_MEETING_ALREADY_PROCESSED ErrorCode = 2001
	ErrorCode_MEETING_EMPTY_INPUT       ErrorCode = 2002

	// Agents
	ErrorCode_AI_ANALYSIS_FAILED     ErrorCode = 3000
	ErrorCode_AI_UNRECOGNIZED        ErrorCode = 3001
	ErrorCode_AI_SERVICE_UNAVAILABLE ErrorCode = 3002
	ErrorCode_SEARCH_FAILED          ErrorCode = 3100

	// Knowledge base
	ErrorCode_KB_UPLOAD_FAILED ErrorCode = 4000
	ErrorCode_KB_DELETE_FAILED ErrorCode = 4001
	ErrorCode_KB_INVALID_FILE  ErrorCode = 4002

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 5000
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 5001
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:                  "ALREADY_EXISTS",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_MEETING_NOT_FOUND:               "MEETING_NOT_FOUND",
	ErrorCode_MEETING_ALREADY_PROCESSED:       "MEETING_ALREADY_PROCESSED",
	ErrorCode_MEETING_EMPTY_INPUT:             "MEETING_EMPTY_INPUT",
	ErrorCode_AI_ANALYSIS_FAILED:              "AI_ANALYSIS_FAILED",
	ErrorCode_AI_UNRECOGNIZED:                 "AI_UNRECOGNIZED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:          "AI_SERVICE_UNAVAILABLE",
	ErrorCode_SEARCH_FAILED:                   "SEARCH_FAILED",
	ErrorCode_KB_UPLOAD_FAILED:                "KB_UPLOAD_FAILED",
	ErrorCode_KB_DELETE_FAILED:                "KB_DELETE_FAILED",
	ErrorCode_KB_INVALID_FILE:                 "KB_INVALID_FILE",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
