package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// errorCodes mapeia o tipo do erro interno para o código da API
var errorCodes = map[domain.ErrorKind]string{
	domain.ErrKindBadParameter:     apiErrors.ErrInvalidRequest,
	domain.ErrKindStoreUnavailable: apiErrors.ErrDatabaseOperation,
	domain.ErrKindUpstreamFetch:    apiErrors.ErrExternalService,
	domain.ErrKindInternal:         apiErrors.ErrInternalServer,
}

func errorCode(err error) string {
	code, ok := errorCodes[domain.KindOf(err)]
	if !ok {
		return apiErrors.ErrInternalServer
	}
	return code
}

// writeServiceError registra e responde o erro com o código do seu tipo
func writeServiceError(w http.ResponseWriter, r *http.Request, area string, err error) {
	code := errorCode(err)

	logger := log.ForContext(r.Context()).WithError(err).WithFields(log.Fields{
		"kind": domain.KindOf(err),
		"code": code,
	})
	if apiErrors.StatusFor(code) >= http.StatusInternalServerError {
		logger.Error(area + ": erro ao processar requisição")
	} else {
		logger.Warn(area + ": requisição inválida")
	}

	message := err.Error()
	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Err != nil {
		message = domainErr.Err.Error()
	}

	apiErrors.WriteError(w, code, message, nil)
}

func writeJSON(w http.ResponseWriter, r *http.Request, area string, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error(area + ": erro ao enviar resposta")
	}
}
