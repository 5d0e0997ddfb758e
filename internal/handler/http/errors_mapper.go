package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/skillfade/internal/service"
	"github.com/MKhiriev/skillfade/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:       http.StatusBadRequest,
	service.ErrWrongPassword:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:   http.StatusUnauthorized,
	service.ErrValidationNoUserID:        http.StatusBadRequest,
	service.ErrValidationEmptySkillName:  http.StatusBadRequest,
	service.ErrValidationNoLastPractice:  http.StatusBadRequest,
	service.ErrValidationDecayRateBounds: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrSkillNotFound:         http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
