package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the fixed API envelope the landing form expects:
// {ok:true} on success, {ok:false, errors:[...]} on any failure.
type Response struct {
	Ok     bool     `json:"ok"`
	Errors []string `json:"errors,omitempty"`
}

// OK sends the success envelope
func OK(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Ok: true})
}

// Error sends the failure envelope with the given status code
func Error(c *gin.Context, code int, errors []string) {
	c.JSON(code, Response{
		Ok:     false,
		Errors: errors,
	})
}
