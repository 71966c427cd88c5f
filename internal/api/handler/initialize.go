package handler

import (
	"net/http"

	"github.com/vfg2006/transaction-dashboard-api/internal/scheduler"
	"github.com/vfg2006/transaction-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/transaction-dashboard-api/pkg/log"
)

const (
	SyncStartedMessage    = "Feed sync started"
	SyncInProgressMessage = "Feed sync already in progress"
)

type syncTriggerResponse struct {
	Message string `json:"message"`
}

// Initialize recarrega todas as transações a partir do feed
func Initialize(syncer scheduler.FeedSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("initialize: recarga do feed solicitada")

		result, err := syncer.Initialize(r.Context())
		if err != nil {
			writeServiceError(w, r, "initialize", err)
			return
		}

		writeJSON(w, r, "initialize", http.StatusOK, result)
	}
}

// TriggerInitialize dispara a recarga do feed em background e responde sem esperar o resultado
func TriggerInitialize(syncer scheduler.FeedSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !syncer.TriggerManualSync() {
			logger.Warn("initialize: recarga já em andamento")
			apiErrors.WriteError(w, apiErrors.ErrConflict, SyncInProgressMessage, nil)
			return
		}

		logger.Info("initialize: recarga assíncrona iniciada")
		writeJSON(w, r, "initialize", http.StatusAccepted, syncTriggerResponse{Message: SyncStartedMessage})
	}
}

// GetInitializeStatus retorna o status da última recarga do feed
func GetInitializeStatus(syncer scheduler.FeedSyncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, "initialize", http.StatusOK, syncer.GetStatus())
	}
}
