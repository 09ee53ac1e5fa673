package utils

import (
	"travel-backend/apperrors"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONMessage(c *gin.Context, code int, message string, data interface{}) {
	body := gin.H{"success": true, "message": message}
	if data != nil {
		body["data"] = data
	}
	c.JSON(code, body)
}

// JSONError writes the error envelope with the status derived from the
// error code. The error is attached to the context so the request logger
// records the full cause; the client only sees the cause in debug mode.
func JSONError(c *gin.Context, err error) {
	writeError(c, err, nil)
}

// JSONErrorWithData is JSONError plus a data payload, used when a failed
// request still has a meaningful record to return (an existing favorite).
func JSONErrorWithData(c *gin.Context, err error, data interface{}) {
	writeError(c, err, data)
}

func writeError(c *gin.Context, err error, data interface{}) {
	appErr := apperrors.From(err)
	_ = c.Error(err)

	payload := gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Fields) > 0 {
		payload["fields"] = appErr.Fields
	}
	if appErr.Code == apperrors.CodeInternal && gin.Mode() == gin.DebugMode {
		payload["details"] = err.Error()
	}

	body := gin.H{"success": false, "error": payload}
	if data != nil {
		body["data"] = data
	}
	c.JSON(appErr.HTTPStatus(), body)
}
