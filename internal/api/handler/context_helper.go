package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"planeacion/backend/internal/api/middleware"
	"planeacion/backend/internal/model"
	"planeacion/backend/internal/service"
	"planeacion/backend/pkg/response"
)

// MustGetCurrentUser returns the authenticated user. When the auth middleware
// did not run it writes 401 and returns false; callers return immediately.
func MustGetCurrentUser(c *gin.Context) (*model.Usuario, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		appErr := service.ErrUnauthenticated
		response.Error(c, appErr.Kind.HTTPStatus(), appErr.Code, appErr.Message)
		return nil, false
	}
	return user, true
}

// bindJSON binds and validates the body. Schema violations are answered with
// 422 and an oversize body with 413.
func bindJSON(c *gin.Context, obj interface{}) bool {
	return bindResult(c, c.ShouldBindJSON(obj))
}

// bindQuery is bindJSON for query strings.
func bindQuery(c *gin.Context, obj interface{}) bool {
	return bindResult(c, c.ShouldBindQuery(obj))
}

func bindResult(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		response.Error(c, http.StatusRequestEntityTooLarge, middleware.CodeBodyTooLarge, "Cuerpo de la petición demasiado grande")
		return false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, response.FieldError{Field: fe.Field(), Rule: fe.Tag()})
		}
		response.Unprocessable(c, fields)
		return false
	}

	response.Unprocessable(c, []response.FieldError{{Field: "body", Rule: "parse"}})
	return false
}

// pathID parses a positive integer path parameter; anything else is 422.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Unprocessable(c, []response.FieldError{{Field: name, Rule: "int"}})
		return 0, false
	}
	return id, true
}
