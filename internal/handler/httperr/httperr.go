package httperr

import (
	"net/http"
	"strconv"

	"place-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// RetryAfterSeconds is advertised on transient failures.
const RetryAfterSeconds = 1

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, err, resp)
}

// AbortWithKind derives the status from the error's kind, so handlers do not
// repeat the mapping per endpoint.
func AbortWithKind(c *gin.Context, err error, fallbackMsg string) {
	status, code := StatusOf(err)

	resp := Response{Status: status}
	resp.Error.Code = code
	resp.Error.Message = fallbackMsg
	if status != http.StatusInternalServerError {
		resp.Error.Message = publicMessage(err)
	}
	if status == http.StatusServiceUnavailable {
		c.Header("Retry-After", strconv.Itoa(RetryAfterSeconds))
	}

	abort(c, err, resp)
}

func StatusOf(err error) (int, string) {
	switch errs.Kind(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest, "validation"
	case errs.ErrNotFound:
		return http.StatusNotFound, "not_found"
	case errs.ErrForbidden:
		return http.StatusForbidden, "forbidden"
	case errs.ErrConflict:
		return http.StatusConflict, "conflict"
	case errs.ErrAlreadyCancelled:
		return http.StatusConflict, "already_cancelled"
	case errs.ErrDuplicateName:
		return http.StatusConflict, "duplicate_name"
	case errs.ErrTransient:
		return http.StatusServiceUnavailable, "transient"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// publicMessage relies on kind-carrying errors being sentinels or kinds
// with the low-level cause attached as a secondary error.
func publicMessage(err error) string {
	return err.Error()
}

func abort(c *gin.Context, err error, resp Response) {
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
