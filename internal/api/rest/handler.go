package rest

import (
	"math/big"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/dao-indexer/internal/api/shared/executor"
)

const serviceName = "dao-indexer-api"

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListProposals retrieves every proposal with its votes
	// GET /api/v1/proposals
	ListProposals(c *gin.Context)

	// GetProposal retrieves a single proposal with its votes and executions
	// GET /api/v1/proposals/:id
	GetProposal(c *gin.Context)

	// GetProposalVotes retrieves the votes of a proposal in chain order
	// GET /api/v1/proposals/:id/votes
	GetProposalVotes(c *gin.Context)

	// GetCheckpoint returns the last block processed by the indexer
	// GET /api/v1/checkpoint
	GetCheckpoint(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

func (h *handler) ListProposals(c *gin.Context) {
	proposals, err := h.executor.ListProposals(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list proposals")
		return
	}

	if len(proposals) == 0 {
		respondNotFound(c, "There are no proposals")
		return
	}

	c.JSON(http.StatusOK, proposals)
}

func (h *handler) GetProposal(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	proposal, err := h.executor.GetProposal(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get proposal", zap.String("proposal_id", id))
		return
	}

	if proposal == nil {
		respondNotFound(c, "Proposal not found", id)
		return
	}

	c.JSON(http.StatusOK, proposal)
}

func (h *handler) GetProposalVotes(c *gin.Context) {
	id, ok := parseProposalID(c)
	if !ok {
		return
	}

	votes, err := h.executor.GetProposalVotes(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get votes", zap.String("proposal_id", id))
		return
	}

	if len(votes) == 0 {
		respondNotFound(c, "There are no votes for proposal", id)
		return
	}

	c.JSON(http.StatusOK, votes)
}

func (h *handler) GetCheckpoint(c *gin.Context) {
	checkpoint, err := h.executor.GetCheckpoint(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get checkpoint")
		return
	}

	c.JSON(http.StatusOK, checkpoint)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

// parseProposalID reads :id as a non-negative decimal integer of any size and
// returns its canonical form, so "007" and "7" address the same proposal.
func parseProposalID(c *gin.Context) (string, bool) {
	raw := c.Param("id")
	id, ok := new(big.Int).SetString(raw, 10)
	if !ok || id.Sign() < 0 {
		respondBadRequest(c, "Invalid proposal id", raw)
		return "", false
	}
	return id.String(), true
}
