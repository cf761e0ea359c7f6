package interfaces

import (
	"log"
	"net/http"

	financeErrors "github.com/iremkabaoglu/FinManager/internal/finance/errors"
)

// callerID pulls the authenticated user resolved by the auth middleware out
// of the request context. Empty means the middleware never ran.
func callerID(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}

// respondServiceError maps the finance error kinds onto http statuses.
// Every handler funnels service failures through here so the mapping
// cannot drift between endpoints.
func respondServiceError(respond func(w http.ResponseWriter, status int, message string), w http.ResponseWriter, err error) {
	status, message := serviceErrorStatus(err)
	respond(w, status, message)
}

func serviceErrorStatus(err error) (int, string) {
	switch {
	case financeErrors.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case financeErrors.IsNotFound(err):
		return http.StatusNotFound, "Resource not found"
	case financeErrors.IsUnauthenticated(err):
		return http.StatusUnauthorized, "Unauthorized"
	default:
		log.Printf("unexpected service error: %v", err)
		return http.StatusInternalServerError, "Internal server error"
	}
}
