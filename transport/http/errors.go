package http

import "github.com/gin-gonic/gin"

// Error kinds and machine codes of the uniform error contract
const (
	TypeAuthentication = "AuthenticationError"
	TypeValidation     = "ValidationError"
	TypeSynthesis      = "SynthesisError"
	TypeNotFound       = "NotFoundError"
	TypeMetadata       = "MetadataError"

	CodeMissingToken       = "MISSING_TOKEN"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeInvalidNonce       = "INVALID_NONCE"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeTextTooLong        = "TEXT_TOO_LONG"
	CodeSynthesisFailed    = "SYNTHESIS_FAILED"
	CodeNotFound           = "NOT_FOUND"
	CodeMetadataReadFailed = "METADATA_READ_FAILED"
)

// ErrorDetail is the inner error object of the uniform contract
type ErrorDetail struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorBody is the envelope every failing response carries:
// {"error":{"type":...,"code":...,"message":...}}
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

func abortWithError(c *gin.Context, status int, errType, code, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{
		Type:    errType,
		Code:    code,
		Message: message,
	}})
}
