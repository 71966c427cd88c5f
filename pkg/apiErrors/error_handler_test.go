package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
	}{
		{code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{code: ErrDatabaseOperation, wantStatus: http.StatusInternalServerError},
		{code: ErrExternalService, wantStatus: http.StatusBadGateway},
		{code: ErrNotFound, wantStatus: http.StatusNotFound},
		{code: ErrConflict, wantStatus: http.StatusConflict},
		{code: "UNKNOWN", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.code, "falhou", nil)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, `{"code":"`+tt.code+`","error":"falhou"}`, w.Body.String())
		})
	}
}
