package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"recipe-scraper/internal/domain"
	"recipe-scraper/internal/quality"
)

func (s *Server) handleScrapeRequest(w http.ResponseWriter, r *http.Request) {
	var req domain.ScrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sources := domain.DefaultSources()
	if len(req.Categories) > 0 {
		sources = sources[:0]
		for _, name := range req.Categories {
			src, ok := domain.FindSource(name)
			if !ok {
				s.respondWithError(w, http.StatusBadRequest, "Unknown category: "+name)
				return
			}
			sources = append(sources, src)
		}
	}

	for _, src := range sources {
		s.scraper.Submit(domain.ScrapeTask{Source: src, Force: req.Force})
	}

	s.respondWithJSON(w, http.StatusAccepted, map[string]string{"message": "Categories accepted for scraping"})
}

func (s *Server) handleRecipesRequest(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	recipes, err := s.pgStore.ListRecipes(r.Context(), category)
	if err != nil {
		s.logger.Error("failed to list recipes", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "Could not retrieve recipes")
		return
	}
	if recipes == nil {
		recipes = []domain.Recipe{}
	}

	s.respondWithJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleStatusRequest(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.respondWithError(w, http.StatusBadRequest, "category query parameter is required")
		return
	}

	status, err := s.pgStore.GetScrapeStatus(r.Context(), category)
	if err != nil {
		if err.Error() == "not_found" {
			s.respondWithError(w, http.StatusNotFound, "Category status not found")
			return
		}
		s.logger.Error("failed to get scrape status", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "Could not retrieve status")
		return
	}

	s.respondWithJSON(w, http.StatusOK, status)
}

func (s *Server) handleQualityRequest(w http.ResponseWriter, r *http.Request) {
	recipes, err := s.pgStore.ListRecipes(r.Context(), "")
	if err != nil {
		s.logger.Error("failed to load recipes for quality check", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "Could not run quality check")
		return
	}

	s.respondWithJSON(w, http.StatusOK, quality.Check(recipes))
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthStatus := make(map[string]string)

	// Check Postgres
	if err := s.pgStore.Ping(ctx); err != nil {
		healthStatus["postgres"] = "unhealthy"
		s.logger.Error("health check failed for postgres", zap.Error(err))
	} else {
		healthStatus["postgres"] = "healthy"
	}

	// Check Redis
	if err := s.redisStore.Ping(ctx); err != nil {
		healthStatus["redis"] = "unhealthy"
		s.logger.Error("health check failed for redis", zap.Error(err))
	} else {
		healthStatus["redis"] = "healthy"
	}

	isHealthy := healthStatus["postgres"] == "healthy" && healthStatus["redis"] == "healthy"
	if !isHealthy {
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStatus)
		return
	}

	s.respondWithJSON(w, http.StatusOK, healthStatus)
}

// --- Helper Functions ---

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
