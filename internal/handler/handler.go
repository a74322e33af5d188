package handler

import (
	"net/http"

	"github.com/okvr/osuauth/internal/config"
	"github.com/okvr/osuauth/internal/repository"
	"github.com/okvr/osuauth/internal/utils/errutils"
	"github.com/okvr/osuauth/internal/utils/httputils"
	"github.com/okvr/osuauth/pkg/oauth"
)

// Handler encapsulates all REST handlers.
type Handler struct {
	config   config.Config
	provider oauth.Provider
	repo     repository.Repository
}

// NewHandler creates a new Handler instance.
func NewHandler(config config.Config, provider oauth.Provider, repo repository.Repository) *Handler {
	return &Handler{config: config, provider: provider, repo: repo}
}

// NotFound handler can be used to serve any unrecognized routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	httputils.WriteErr(w, errutils.NotFound())
}

// Health returns 200 if everything is running fine.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httputils.Write(w, http.StatusOK, nil, map[string]string{"status": "ok"})
}
