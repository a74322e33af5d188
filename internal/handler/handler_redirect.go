package handler

import (
	"net/http"

	"github.com/okvr/osuauth/internal/utils/httputils"
)

// Redirect sends the caller to the provider's authentication page.
func (h *Handler) Redirect(w http.ResponseWriter, r *http.Request) {
	authURL := h.provider.GetAuthURL(r.Context())
	httputils.Write(w, http.StatusFound, map[string]string{"Location": authURL}, nil)
}
