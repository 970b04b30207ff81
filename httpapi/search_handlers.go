package httpapi

import (
	"net/http"
	"strings"

	"github.com/poiesic/servicefinder/core"
)

type searchRequest struct {
	Query string `json:"query"`
	TopK  int    `json:"topK,omitempty"`
}

type searchResult struct {
	Id      string        `json:"id"`
	Score   float32       `json:"score"`
	Service *core.Service `json:"service,omitempty"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

func (a *API) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	result, err := a.searcher.Search(r.Context(), req.Query, req.TopK)
	if err != nil {
		a.logger.Error("search failed", "query", req.Query, "err", err)
		handleDomainError(w, err)
		return
	}

	resp := searchResponse{Results: make([]searchResult, len(result.Hits))}
	for i, hit := range result.Hits {
		resp.Results[i] = searchResult{
			Id:      hit.Id,
			Score:   hit.Score,
			Service: result.Services[i],
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type explainRequest struct {
	Query string        `json:"query"`
	Match *core.Service `json:"match"`
}

type explainResponse struct {
	Text string `json:"text"`
}

func (a *API) handleExplainMatch(w http.ResponseWriter, r *http.Request) {
	var req explainRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Query) == "" || req.Match == nil {
		writeError(w, http.StatusBadRequest, "query and match are required")
		return
	}

	text, err := a.explainer.Explain(r.Context(), req.Query, req.Match)
	if err != nil {
		a.logger.Error("match explanation failed", "query", req.Query, "err", err)
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, explainResponse{Text: text})
}
