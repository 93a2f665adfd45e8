package helper

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"blog-cms/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"go.uber.org/zap"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const unknownError = "Unknown Error"

// Response is the envelope every endpoint answers with.
type Response struct {
	Error *string     `json:"error"`
	Data  interface{} `json:"data"`
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        *zap.Logger
}

func NewHTTPHelper(log *zap.Logger) *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Warn("register validation translations", zap.Error(err))
	}

	return &HTTPHelper{
		Validate:   validate,
		Translator: trans,
		Log:        log,
	}
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{Data: data})
}

// SendError ...
// Domain errors are answered with 200 and their message. Anything else is
// logged and answered with a generic 500.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	if models.IsDomainError(err) {
		msg := err.Error()
		c.JSON(http.StatusOK, Response{Error: &msg})
		return
	}

	u.Log.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(RequestIDKey)),
		zap.Error(err),
	)
	msg := unknownError
	c.JSON(http.StatusInternalServerError, Response{Error: &msg})
}

// AbortWithError sends the error envelope and stops the handler chain.
func (u *HTTPHelper) AbortWithError(c *gin.Context, err error) {
	u.SendError(c, err)
	c.Abort()
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	messages := make([]string, 0, len(validationErrors))
	for _, err := range validationErrors {
		messages = append(messages, err.Translate(u.Translator))
	}
	u.SendError(c, &models.ValidationError{Msg: strings.Join(messages, "; ")})
}

// BindJSON decodes and validates the request body into req. It writes the
// error response itself and reports whether the handler may continue.
func (u *HTTPHelper) BindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		u.SendError(c, models.ErrInvalidRequest)
		return false
	}
	if err := u.Validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			u.SendValidationError(c, validationErrors)
			return false
		}
		u.SendError(c, err)
		return false
	}
	return true
}
