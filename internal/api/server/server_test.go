package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/feral-file/dao-indexer/internal/api/shared/dto"
	"github.com/feral-file/dao-indexer/internal/api/server"
	"github.com/feral-file/dao-indexer/internal/mocks"
)

func TestNewRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)
	exec.EXPECT().GetCheckpoint(gomock.Any()).Return(&dto.CheckpointResponse{LastProcessedBlock: 3}, nil)

	router := server.NewRouter(false, exec)

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"health", "/health", http.StatusOK},
		{"checkpoint", "/api/v1/checkpoint", http.StatusOK},
		{"unknown route", "/api/v1/tokens", http.StatusNotFound},
		{"invalid proposal id", "/api/v1/proposals/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := server.New(server.Config{Host: "127.0.0.1", Port: 0}, mocks.NewMockStore(gomock.NewController(t)))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	assert.NoError(t, srv.Shutdown(ctx))
}
