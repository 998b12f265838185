package handler

import (
	"net/http"

	"github.com/iho/chainsnap/internal/adapter/http/dto"
	"github.com/iho/chainsnap/internal/keystore"
)

// IdentityLister returns the configured key store registrations.
type IdentityLister interface {
	Identities() []keystore.Identity
}

// IdentityHandler serves the key store.
type IdentityHandler struct {
	identities IdentityLister
}

// NewIdentityHandler creates a new IdentityHandler.
func NewIdentityHandler(identities IdentityLister) *IdentityHandler {
	return &IdentityHandler{identities: identities}
}

// List returns every built-in and custom identity.
func (h *IdentityHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ListIdentitiesResponse{
		Identities: dto.IdentitiesFromKeyStore(h.identities.Identities()),
	})
}
