package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/dao-indexer/internal/api/rest"
	"github.com/feral-file/dao-indexer/internal/api/shared/dto"
	apierrors "github.com/feral-file/dao-indexer/internal/api/shared/errors"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

var votedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec))
	return router, exec
}

func serve(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func sampleProposal(id string) dto.ProposalResponse {
	return dto.ProposalResponse{
		ID:               id,
		Creator:          "0x1111111111111111111111111111111111111111",
		Description:      "fund the grants round",
		CreatedAt:        votedAt.Add(-time.Hour),
		VoteCountFor:     "42",
		VoteCountAgainst: "15",
		Votes: []dto.VoteResponse{
			{Voter: "0x2222222222222222222222222222222222222222", Vote: true, Amount: "42", VotedAt: votedAt},
		},
	}
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"dao-indexer-api"}`, w.Body.String())
}

func TestListProposals(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().ListProposals(gomock.Any()).Return([]dto.ProposalResponse{sampleProposal("1"), sampleProposal("2")}, nil)

	w := serve(router, "/api/v1/proposals")

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.ProposalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "42", got[0].VoteCountFor)
	require.Len(t, got[0].Votes, 1)
	assert.True(t, got[0].Votes[0].Vote)
	assert.True(t, votedAt.Equal(got[0].Votes[0].VotedAt))
}

func TestListProposals_Empty(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().ListProposals(gomock.Any()).Return([]dto.ProposalResponse{}, nil)

	w := serve(router, "/api/v1/proposals")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestListProposals_DatabaseError(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().ListProposals(gomock.Any()).Return(nil, apierrors.NewDatabaseError("Failed to list proposals: connection refused"))

	w := serve(router, "/api/v1/proposals")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	apiErr := decodeError(t, w)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	// Driver errors are logged, not returned
	assert.NotContains(t, apiErr.Message, "connection refused")
}

func TestListProposals_UnexpectedError(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().ListProposals(gomock.Any()).Return(nil, errors.New("boom"))

	w := serve(router, "/api/v1/proposals")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, apierrors.ErrCodeInternalError, decodeError(t, w).Code)
}

func TestGetProposal(t *testing.T) {
	router, exec := setupTestRouter(t)

	p := sampleProposal("7")
	executedAt := votedAt.Add(time.Hour)
	p.IsExecuted = true
	p.ExecutedAt = &executedAt
	p.Executions = []dto.ExecutionResponse{{Executor: "0x3333333333333333333333333333333333333333", Rewarded: true, ExecutedAt: executedAt, BlockNumber: 11}}
	exec.EXPECT().GetProposal(gomock.Any(), "7").Return(&p, nil)

	w := serve(router, "/api/v1/proposals/7")

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.ProposalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "7", got.ID)
	assert.True(t, got.IsExecuted)
	require.NotNil(t, got.ExecutedAt)
	assert.True(t, executedAt.Equal(*got.ExecutedAt))
	require.Len(t, got.Executions, 1)
	assert.Equal(t, uint64(11), got.Executions[0].BlockNumber)
}

func TestGetProposal_CanonicalID(t *testing.T) {
	router, exec := setupTestRouter(t)

	p := sampleProposal("7")
	exec.EXPECT().GetProposal(gomock.Any(), "7").Return(&p, nil)

	w := serve(router, "/api/v1/proposals/007")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProposal_BeyondUint64(t *testing.T) {
	router, exec := setupTestRouter(t)

	id := "340282366920938463463374607431768211456" // 2^128
	p := sampleProposal(id)
	exec.EXPECT().GetProposal(gomock.Any(), id).Return(&p, nil)

	w := serve(router, "/api/v1/proposals/"+id)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProposal_InvalidID(t *testing.T) {
	for _, id := range []string{"abc", "-1", "1.5", "0x10"} {
		t.Run(id, func(t *testing.T) {
			router, _ := setupTestRouter(t)

			w := serve(router, "/api/v1/proposals/"+id)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			apiErr := decodeError(t, w)
			assert.Equal(t, apierrors.ErrCodeBadRequest, apiErr.Code)
			assert.Equal(t, id, apiErr.Details)
		})
	}
}

func TestGetProposal_NotFound(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetProposal(gomock.Any(), "99").Return(nil, nil)

	w := serve(router, "/api/v1/proposals/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeError(t, w).Code)
}

func TestGetProposalVotes(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetProposalVotes(gomock.Any(), "1").Return([]dto.VoteResponse{
		{Voter: "0x2222222222222222222222222222222222222222", Vote: true, Amount: "42", VotedAt: votedAt},
		{Voter: "0x4444444444444444444444444444444444444444", Vote: false, Amount: "15", VotedAt: votedAt.Add(time.Minute)},
	}, nil)

	w := serve(router, "/api/v1/proposals/1/votes")

	require.Equal(t, http.StatusOK, w.Code)
	var got []dto.VoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "42", got[0].Amount)
	assert.False(t, got[1].Vote)
}

func TestGetProposalVotes_None(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetProposalVotes(gomock.Any(), "3").Return([]dto.VoteResponse{}, nil)

	w := serve(router, "/api/v1/proposals/3/votes")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProposalVotes_InvalidID(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := serve(router, "/api/v1/proposals/x/votes")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCheckpoint(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetCheckpoint(gomock.Any()).Return(&dto.CheckpointResponse{LastProcessedBlock: 12}, nil)

	w := serve(router, "/api/v1/checkpoint")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"last_processed_block":12}`, w.Body.String())
}

func TestGetCheckpoint_Error(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetCheckpoint(gomock.Any()).Return(nil, apierrors.NewDatabaseError("Failed to get checkpoint"))

	w := serve(router, "/api/v1/checkpoint")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
