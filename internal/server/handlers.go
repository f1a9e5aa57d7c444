package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/internmatch/internal/catalog"
	"github.com/jonathan/internmatch/internal/db"
	"github.com/jonathan/internmatch/internal/recommend"
	"github.com/jonathan/internmatch/internal/types"
)

// RecommendRequest is the request body for POST /recommendations.
// Candidates are optional; the static catalog fills in when absent.
type RecommendRequest struct {
	Profile    types.UserProfile `json:"profile"`
	Candidates []types.Posting   `json:"candidates,omitempty"`
}

// handleRecommend ranks a stateless candidate pool against a profile
// supplied in the request body.
func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	candidates := req.Candidates
	if len(candidates) == 0 {
		candidates = catalog.Candidates(&req.Profile)
	}

	ranked := recommend.Select(candidates, &req.Profile)
	s.jsonResponse(w, http.StatusOK, types.RecommendationsResponse{
		Success:         true,
		Recommendations: ranked,
	})
}

// handleUserRecommendations loads the stored profile, generates candidates
// via the AI generator when available, and ranks them. Any generation
// failure falls back to the static catalog; the selector never sees the
// difference.
func (s *Server) handleUserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.profileError(w, userID, err)
		return
	}

	candidates := s.candidatePool(r, profile)
	ranked := recommend.Select(candidates, profile)

	s.jsonResponse(w, http.StatusOK, types.RecommendationsResponse{
		Success:         true,
		Recommendations: ranked,
	})
}

// candidatePool returns generated candidates when the generator is configured
// and not explicitly bypassed via ?source=catalog, otherwise the catalog pool.
func (s *Server) candidatePool(r *http.Request, profile *types.UserProfile) []types.Posting {
	if s.generator == nil || r.URL.Query().Get("source") == "catalog" {
		if s.verbose {
			log.Printf("Using catalog candidate pool")
		}
		return catalog.Candidates(profile)
	}

	generated, err := s.generator.Generate(r.Context(), profile)
	if err != nil || len(generated) == 0 {
		if err != nil {
			log.Printf("Candidate generation failed, using catalog: %v", err)
		}
		return catalog.Candidates(profile)
	}
	if s.verbose {
		log.Printf("Generated %d candidate postings", len(generated))
	}
	return generated
}

// handleGetProfile returns the stored profile for a user.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	profile, err := s.db.GetProfile(r.Context(), userID)
	if err != nil {
		s.profileError(w, userID, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, profile)
}

// handleUpdateProfile creates or replaces the stored profile for a user.
func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req types.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		verr := &ErrValidation{Field: "profile", Message: err.Error()}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	if err := s.db.UpsertProfile(r.Context(), userID, req.Profile()); err != nil {
		log.Printf("Error updating profile %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

// profileError maps profile store failures onto HTTP responses.
func (s *Server) profileError(w http.ResponseWriter, userID uuid.UUID, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Error loading profile %s: %v", userID, err)
		s.errorResponse(w, status, "Failed to load profile")
		return
	}
	if errors.Is(err, db.ErrProfileNotFound) {
		s.errorResponse(w, status, "Profile not found")
		return
	}
	s.errorResponse(w, status, err.Error())
}
