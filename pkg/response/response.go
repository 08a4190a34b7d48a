package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "restaurant-bot/pkg/errors"
	"restaurant-bot/pkg/log"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	resp := NewOKResp(data)
	resp.RequestID = requestID(c)
	c.JSON(http.StatusOK, resp)
}

// Error sends an error response. An *errors.HTTPError in the chain decides the
// status code; anything else is a 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	code := 1
	if he, ok := pkgErrors.AsHTTPError(err); ok {
		status = he.Code
		code = he.Code
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
		RequestID: requestID(c),
	})
}

// InternalError sends 500 without exposing err.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
		RequestID: requestID(c),
	})
}

// TooManyRequests aborts with 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   TooManyRequestsMessage,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return log.RequestID(c.Request.Context())
}
