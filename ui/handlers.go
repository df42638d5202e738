package ui

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"settei/domain/core"
	"settei/domain/setting"
	"settei/internal/errors"
	"settei/internal/report"
	"settei/internal/tally"
	"settei/ports"
)

// estimateRequest is the JSON body for /api/estimate. Prior weights are
// raw; the engine normalizes them. Unknown prior keys are dropped silently.
type estimateRequest struct {
	Spins int                `json:"spins" binding:"min=0"`
	Hits  int                `json:"hits" binding:"min=0"`
	Prior map[string]float64 `json:"prior"`
}

func (r estimateRequest) toPort() ports.EstimateRequest {
	req := ports.EstimateRequest{Spins: r.Spins, Hits: r.Hits}
	if len(r.Prior) > 0 {
		req.Prior = make(map[setting.Key]float64, len(r.Prior))
		for k, w := range r.Prior {
			if key := setting.Key(k); setting.Valid(key) {
				req.Prior[key] = w
			}
		}
	}
	return req
}

func (s *Server) handleSettings(c *gin.Context) {
	rows := make([]gin.H, 0, setting.Count())
	for _, k := range setting.Keys() {
		p, _ := setting.HitProb(k)
		rows = append(rows, gin.H{
			"key":         k,
			"hit_prob":    p,
			"denominator": setting.Denominator(k),
		})
	}
	c.JSON(http.StatusOK, gin.H{"settings": rows})
}

func (s *Server) handleEstimate(c *gin.Context) {
	var req estimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid estimate request: "+err.Error()))
		return
	}
	if req.Hits > req.Spins {
		respondError(c, errors.InvalidInput("hits must not exceed spins"))
		return
	}

	result, err := s.estimator.Estimate(c.Request.Context(), req.toPort())
	if err != nil {
		respondError(c, err)
		return
	}

	payload := gin.H{
		"result":     result,
		"share_text": report.ShareText(result),
	}
	if c.Query("format") == "html" {
		payload["report_html"] = string(report.HTML(report.Markdown(result)))
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleEstimateExport(c *gin.Context) {
	spins, hits, ok := queryObservation(c)
	if !ok {
		return
	}

	result, err := s.estimator.Estimate(c.Request.Context(), ports.EstimateRequest{Spins: spins, Hits: hits})
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("settei_%dg_%dk.xlsx", spins, hits)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := s.exporter.Export(result, c.Writer); err != nil {
		// Headers are out by now; log and abort the stream.
		_ = c.Error(err)
		c.Abort()
	}
}

func (s *Server) handleTallyCreate(c *gin.Context) {
	session := s.tallies.Create()
	c.JSON(http.StatusCreated, gin.H{"id": session.ID, "created_at": session.CreatedAt})
}

type tallyAddRequest struct {
	Spins int `json:"spins"`
	Hits  int `json:"hits"`
}

func (s *Server) handleTallyAdd(c *gin.Context) {
	session, ok := s.tallySession(c)
	if !ok {
		return
	}
	var req tallyAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errors.InvalidInput("invalid tally increment: "+err.Error()))
		return
	}
	session.Add(req.Spins, req.Hits)
	c.JSON(http.StatusOK, session.Summarize())
}

func (s *Server) handleTallyGet(c *gin.Context) {
	session, ok := s.tallySession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.Summarize())
}

// handleTallyEstimate runs the estimator directly on a session's counts.
func (s *Server) handleTallyEstimate(c *gin.Context) {
	session, ok := s.tallySession(c)
	if !ok {
		return
	}
	spins, hits := session.Observation()
	result, err := s.estimator.Estimate(c.Request.Context(), ports.EstimateRequest{Spins: spins, Hits: hits})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"result":     result,
		"share_text": report.ShareText(result),
	})
}

func (s *Server) handleTallyDelete(c *gin.Context) {
	id, err := core.ParseSessionID(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidInput(err.Error()))
		return
	}
	s.tallies.Delete(id)
	c.Status(http.StatusNoContent)
}

func (s *Server) tallySession(c *gin.Context) (*tally.Session, bool) {
	id, err := core.ParseSessionID(c.Param("id"))
	if err != nil {
		respondError(c, errors.InvalidInput(err.Error()))
		return nil, false
	}
	session, err := s.tallies.Get(id)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return session, true
}

func queryObservation(c *gin.Context) (spins, hits int, ok bool) {
	if _, err := fmt.Sscanf(c.Query("spins"), "%d", &spins); err != nil {
		respondError(c, errors.InvalidInput("spins query parameter is required"))
		return 0, 0, false
	}
	if _, err := fmt.Sscanf(c.Query("hits"), "%d", &hits); err != nil {
		respondError(c, errors.InvalidInput("hits query parameter is required"))
		return 0, 0, false
	}
	if spins < 0 || hits < 0 || hits > spins {
		respondError(c, errors.InvalidInput("observation must satisfy 0 <= hits <= spins"))
		return 0, 0, false
	}
	return spins, hits, true
}

// respondError maps AppError codes to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.CodeInvalidInput:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": errors.GetCode(err)})
}
