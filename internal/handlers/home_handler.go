package handlers

import (
	"log"
	"net/http"

	"sangam/internal/models"
	"sangam/internal/repository"
)

type HomeHandler struct {
	projects repository.ProjectRepository
}

func NewHomeHandler(projects repository.ProjectRepository) *HomeHandler {
	return &HomeHandler{projects: projects}
}

// @Tags Home
// @Summary Featured projects for the home page
// @Produce json
// @Success 200 {object} models.HomeFeaturedResponse
// @Router /api/home/featured [get]
func (h *HomeHandler) Featured(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.HomeFeatured(r.Context())
	if err != nil {
		log.Printf("home featured: %v", err)
		writeMessage(w, http.StatusInternalServerError, "Failed to load featured projects")
		return
	}
	writeJSON(w, http.StatusOK, models.HomeFeaturedResponse{FeaturedProjects: projects})
}
