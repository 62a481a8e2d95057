package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"foodgram-api/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
	en_translations "gopkg.in/go-playground/validator.v9/translations/en"
)

const (
	textError             = `error`
	textOk                = `ok`
	codeSuccess           = 200
	codeCreated           = 201
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeConflict          = 409
	codeValidationError   = 422
	codeInternalError     = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C          *gin.Context
	Status     string
	Message    interface{}
	Data       interface{}
	Code       int // not the http code
	CodeType   string
	HTTPStatus int
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// NewHTTPHelper builds a helper with an english translated validator.
func NewHTTPHelper() *HTTPHelper {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		log.Error().Err(err).Msg("failed to register validator translations")
	}

	return &HTTPHelper{Validate: validate, Translator: trans}
}

// GetStatusCode ...
// Maps typed errors to the http status sent to consumers.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var validationErr *models.ErrorValidation
	var notFoundErr *models.ErrorNotFound
	var conflictErr *models.ErrorConflict

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		if notFoundErr.Relation {
			return http.StatusBadRequest
		}
		return http.StatusNotFound
	case errors.As(err, new(*models.ErrorForbidden)):
		return http.StatusForbidden
	case errors.As(err, new(*models.ErrorUnauthorized)):
		return http.StatusUnauthorized
	case errors.As(err, &conflictErr):
		// Duplicate relations are reported as bad requests by this API.
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (u *HTTPHelper) getErrorCode(err error) (int, string) {
	switch {
	case errors.As(err, new(*models.ErrorValidation)):
		return codeValidationError, `validationError`
	case errors.As(err, new(*models.ErrorNotFound)):
		return codeNotFound, `notFound`
	case errors.As(err, new(*models.ErrorForbidden)):
		return codeForbiddenError, `forbidden`
	case errors.As(err, new(*models.ErrorUnauthorized)):
		return codeUnauthorizedError, `unAuthorized`
	case errors.As(err, new(*models.ErrorConflict)):
		return codeConflict, `conflict`
	default:
		return codeInternalError, `internalError`
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message interface{}, data interface{}, code int, codeType string, httpStatus int) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType, httpStatus}
}

// SendError ...
// Send a typed error to consumers. Validation errors carry their field keyed messages.
func (u *HTTPHelper) SendError(c *gin.Context, err error) {
	status := u.GetStatusCode(err)
	code, codeType := u.getErrorCode(err)

	var message interface{} = err.Error()
	var validationErr *models.ErrorValidation
	if errors.As(err, &validationErr) {
		message = validationErr.Fields
	}

	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		message = "internal server error"
	}

	u.SendResponse(u.SetResponse(c, textError, message, u.EmptyJsonMap(), code, codeType, status))
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`, http.StatusBadRequest))
}

// TranslateValidation converts validator errors into a field keyed ErrorValidation.
func (u *HTTPHelper) TranslateValidation(validationErrors validator.ValidationErrors) *models.ErrorValidation {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}
	return &models.ErrorValidation{Fields: errorResponse}
}

// ValidateStruct runs the struct validator and returns a translated ErrorValidation.
func (u *HTTPHelper) ValidateStruct(v interface{}) error {
	err := u.Validate.Struct(v)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return u.TranslateValidation(validationErrors)
	}
	return models.NewValidationError("non_field_errors", err.Error())
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textError, message, data, codeUnauthorizedError, `unAuthorized`, http.StatusUnauthorized))
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textOk, message, data, codeSuccess, `success`, http.StatusOK))
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	u.SendResponse(u.SetResponse(c, textOk, message, data, codeCreated, `created`, http.StatusCreated))
}

// SendNoContent ...
func (u *HTTPHelper) SendNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	if res.Message == nil || res.Message == "" {
		res.Message = `success`
	}

	resCode := res.HTTPStatus
	if resCode == 0 {
		resCode = http.StatusOK
		if res.Code != codeSuccess {
			resCode = http.StatusBadRequest
		}
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))
	return scheme + "://" + r.Host + r.URL.Path + "?" + query.Encode()
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, limit, page, totalRecord int) map[string]interface{} {
	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(totalRecord) / float64(limit)))
	}

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, page-1, limit)
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, page+1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}

	return pagination
}

// SendPage sends a list response with its pagination block.
func (u *HTTPHelper) SendPage(c *gin.Context, items interface{}, total int64, page, limit int) {
	u.SendSuccess(c, "Success", map[string]interface{}{
		"count":      total,
		"results":    items,
		"pagination": u.GeneratePaging(c, limit, page, int(total)),
	})
}
