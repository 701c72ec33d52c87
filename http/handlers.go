package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/fwojciec/lumi"
	"golang.org/x/sync/errgroup"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Response string `json:"response"`
}

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Results []*lumi.SearchResult `json:"results"`
}

type processRequest struct {
	FilePath string `json:"file_path"`
}

type processResponse struct {
	Content string      `json:"content"`
	Format  lumi.Format `json:"format"`
}

type chatFileRequest struct {
	Prompt   string `json:"prompt"`
	FilePath string `json:"file_path"`
}

type agentRequest struct {
	UserQuery string `json:"user_query"`
}

type healthResponse struct {
	OllamaStatus     lumi.HealthStatus `json:"ollama_status"`
	EverythingStatus lumi.HealthStatus `json:"everything_status"`
}

// handleHealth runs both health checks concurrently.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	var resp healthResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		resp.OllamaStatus = checkHealth(ctx, s.ModelHealth)
		return nil
	})
	g.Go(func() error {
		resp.EverythingStatus = checkHealth(ctx, s.SearchHealth)
		return nil
	})
	_ = g.Wait()

	writeJSON(w, http.StatusOK, resp)
}

func checkHealth(ctx context.Context, c lumi.HealthChecker) lumi.HealthStatus {
	if c == nil {
		return lumi.HealthStatus{Status: lumi.HealthNotFound, Detail: "not configured"}
	}
	return c.CheckHealth(ctx)
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	reply, err := s.Asker.Ask(r.Context(), req.Prompt)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Response: reply})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	n := s.SearchResults
	if n <= 0 {
		n = DefaultSearchResults
	}
	results, err := s.Searcher.Search(r.Context(), req.Query, n, lumi.SortDefault)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if results == nil {
		results = []*lumi.SearchResult{}
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (s *Server) handleProcessDocument(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if strings.TrimSpace(req.FilePath) == "" {
		Error(w, r, s.logger, lumi.Errorf(lumi.EINVALID, "file_path required"))
		return
	}

	doc, err := s.Documents.ReadDocument(r.Context(), req.FilePath)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, processResponse{Content: doc.Content, Format: doc.Format})
}

func (s *Server) handleChatWithFile(w http.ResponseWriter, r *http.Request) {
	var req chatFileRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if strings.TrimSpace(req.FilePath) == "" {
		Error(w, r, s.logger, lumi.Errorf(lumi.EINVALID, "file_path required"))
		return
	}

	doc, err := s.Documents.ReadDocument(r.Context(), req.FilePath)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}

	reply, err := s.Asker.Ask(r.Context(), lumi.FormatFilePrompt(doc, req.Prompt))
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, askResponse{Response: reply})
}

func (s *Server) handleAgent(w http.ResponseWriter, r *http.Request) {
	var req agentRequest
	if err := decode(w, r, &req); err != nil {
		Error(w, r, s.logger, err)
		return
	}

	outcome, err := s.Agent.Handle(r.Context(), req.UserQuery)
	if err != nil {
		Error(w, r, s.logger, err)
		return
	}
	if outcome.Results == nil {
		outcome.Results = []*lumi.SearchResult{}
	}
	writeJSON(w, http.StatusOK, outcome)
}

// decode reads a JSON request body into v.
func decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return lumi.Errorf(lumi.EINVALID, "request body required")
		case errors.As(err, &maxErr):
			return lumi.Errorf(lumi.EINVALID, "request body too large")
		}
		return lumi.Errorf(lumi.EINVALID, "invalid JSON body: %v", err)
	}
	return nil
}
