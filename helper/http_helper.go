package helper

import (
	"errors"
	"log/slog"
	"net/http"

	"nc-news/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	// RequestIDKey is the gin context key holding the request id.
	RequestIDKey = "request_id"

	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
)

// statusError is implemented by rejection values that carry their own HTTP status.
type statusError interface {
	error
	StatusCode() int
}

// HTTPHelper ...
type HTTPHelper struct {
	Translator ut.Translator
	Logger     *slog.Logger
}

// NewHTTPHelper ...
// Builds a helper whose translator is registered on gin's validator engine.
func NewHTTPHelper(logger *slog.Logger) *HTTPHelper {
	locale := en.New()
	uni := ut.New(locale, locale)
	trans, _ := uni.GetTranslator("en")

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
			logger.Warn("failed to register validation translations", "error", err)
		}
	}

	return &HTTPHelper{Translator: trans, Logger: logger}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var se statusError
	if errors.As(err, &se) {
		return se.StatusCode()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// SendError ...
// Send error response to consumers. Typed rejections keep their message,
// everything else is answered generically.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)

	var se statusError
	switch {
	case errors.As(err, &se):
		u.sendMessage(c, status, se.Error())
	case status == http.StatusBadRequest:
		u.sendMessage(c, status, models.MsgBadRequest)
	default:
		u.Logger.Error("unhandled error",
			"request_id", c.GetString(RequestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		u.sendMessage(c, http.StatusInternalServerError, models.MsgInternalServerError)
	}
}

// SendBindError ...
// Send bad request response for a body or query that failed to bind.
func (u *HTTPHelper) SendBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.Logger.Debug("request validation failed",
			"request_id", c.GetString(RequestIDKey),
			"fields", validationErrors.Translate(u.Translator),
		)
	} else {
		u.Logger.Debug("request binding failed",
			"request_id", c.GetString(RequestIDKey),
			"error", err,
		)
	}

	u.SendBadRequest(c)
}

// SendBadRequest ...
func (u *HTTPHelper) SendBadRequest(c *gin.Context) {
	u.sendMessage(c, http.StatusBadRequest, models.MsgBadRequest)
}

// SendNotFoundError ...
func (u *HTTPHelper) SendNotFoundError(c *gin.Context) {
	u.sendMessage(c, http.StatusNotFound, models.MsgNotFound)
}

// SendInternalServerError ...
func (u *HTTPHelper) SendInternalServerError(c *gin.Context) {
	u.sendMessage(c, http.StatusInternalServerError, models.MsgInternalServerError)
}

// SendSuccess ...
// Send success response wrapped under key, e.g. {"articles": [...]}.
func (u *HTTPHelper) SendSuccess(c *gin.Context, status int, key string, data interface{}) {
	c.JSON(status, gin.H{key: data})
}

func (u *HTTPHelper) sendMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"msg": msg})
}
