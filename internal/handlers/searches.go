package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/kubev2v/search-task-gang/api/v1"
	"github.com/kubev2v/search-task-gang/internal/models"
	"github.com/kubev2v/search-task-gang/internal/services"
	"github.com/kubev2v/search-task-gang/internal/util"
)

// CreateSearch searches every word in every input and returns the outcomes
// in completion order
// (POST /searches)
func (h *Handler) CreateSearch(c *gin.Context) {
	var req v1.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	if err := services.ValidateWords(req.Words); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sink := newResponseSink(len(req.Words) * len(req.Inputs))
	opts := append([]services.DispatcherOption{services.WithSink(sink)}, h.opts...)
	d := services.NewDispatcher(h.scheduler, req.Words, opts...)

	stats, err := d.Run(c.Request.Context(), util.InputsFromStrings(req.Inputs))
	if err != nil {
		zap.S().Named("search_handler").Errorw("failed to run search", "run_id", stats.RunID.String(), "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "search interrupted"})
		return
	}

	resp := v1.SearchResponse{
		Id:       stats.RunID.String(),
		Results:  sink.results,
		Failures: sink.failures,
	}
	resp.Stats.FromModel(stats)

	c.JSON(http.StatusOK, resp)
}

// responseSink collects the outcomes of one request. The dispatcher calls it
// from the request goroutine only.
type responseSink struct {
	results  []v1.Result
	failures []v1.Failure
}

func newResponseSink(expected int) *responseSink {
	return &responseSink{
		results:  make([]v1.Result, 0, expected),
		failures: []v1.Failure{},
	}
}

func (s *responseSink) Consume(_ context.Context, o models.Outcome) {
	if o.IsSuccess() {
		s.results = append(s.results, v1.NewResultFromModel(o.Result))
		return
	}
	s.failures = append(s.failures, v1.NewFailureFromModel(*o.Failure))
}
