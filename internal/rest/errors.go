package rest

import (
	"errors"
	"net/http"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/sirupsen/logrus"
)

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}

// validationMessages maps stable entity-validation codes to user-facing
// messages. Unknown codes fall through to the raw code.
var validationMessages = map[string]string{
	"NEW_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":        "cannot create a new thread because a needed property is missing",
	"NEW_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION":   "cannot create a new thread because a property has the wrong type",
	"ADDED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      "cannot create a new thread because a needed property is missing",
	"ADDED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "cannot create a new thread because a property has the wrong type",
	"NEW_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":       "cannot create a new comment because a needed property is missing",
	"NEW_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION":  "cannot create a new comment because a property has the wrong type",
	"ADDED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":     "cannot create a new comment because a needed property is missing",
	"ADDED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "cannot create a new comment because a property has the wrong type",
	"NEW_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":         "cannot create a new reply because a needed property is missing",
	"NEW_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":    "cannot create a new reply because a property has the wrong type",
	"ADDED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":       "cannot create a new reply because a needed property is missing",
	"ADDED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":  "cannot create a new reply because a property has the wrong type",
	"DETAILED_THREAD.NOT_CONTAIN_NEEDED_PROPERTY":      "cannot show the thread because a needed property is missing",
	"DETAILED_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION": "cannot show the thread because a property has the wrong type",
	"DETAILED_COMMENT.NOT_CONTAIN_NEEDED_PROPERTY":     "cannot show the comment because a needed property is missing",
	"DETAILED_COMMENT.NOT_MEET_DATA_TYPE_SPECIFICATION": "cannot show the comment because a property has the wrong type",
	"DETAILED_REPLY.NOT_CONTAIN_NEEDED_PROPERTY":       "cannot show the reply because a needed property is missing",
	"DETAILED_REPLY.NOT_MEET_DATA_TYPE_SPECIFICATION":  "cannot show the reply because a property has the wrong type",
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	logrus.Error(err)

	var validationErr domain.ContentValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var invariantErr domain.InvariantError
	if errors.As(err, &invariantErr) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getErrorMessage localizes validation codes and hides invariant details
// behind a generic message.
func getErrorMessage(err error) string {
	var validationErr domain.ContentValidationError
	if errors.As(err, &validationErr) {
		if msg, ok := validationMessages[validationErr.Code]; ok {
			return msg
		}
		return validationErr.Code
	}

	var invariantErr domain.InvariantError
	if errors.As(err, &invariantErr) {
		return domain.ErrInternalServerError.Error()
	}

	return err.Error()
}
