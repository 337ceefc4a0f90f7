package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all short link routes.
func RegisterRoutes(api huma.API, links *LinkHandler, health *HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-link",
		Method:      http.MethodPost,
		Path:        "/api/links",
		Summary:     "Create short link",
		Description: "Maps a long URL to a fresh short code owned by the calling client.",
		Tags:        []string{"Links"},
	}, links.CreateLink)

	huma.Register(api, huma.Operation{
		OperationID: "list-links",
		Method:      http.MethodGet,
		Path:        "/api/links",
		Summary:     "List short links",
		Description: "Returns one page of the calling client's live links, newest first.",
		Tags:        []string{"Links"},
	}, links.ListLinks)

	huma.Register(api, huma.Operation{
		OperationID: "get-link",
		Method:      http.MethodGet,
		Path:        "/api/links/{code}",
		Summary:     "Inspect short link",
		Description: "Returns the mapping behind a short code.",
		Tags:        []string{"Links"},
	}, links.GetLink)

	huma.Register(api, huma.Operation{
		OperationID: "renew-link",
		Method:      http.MethodPost,
		Path:        "/api/links/{code}/renew",
		Summary:     "Renew short link",
		Description: "Extends a live mapping's expiry, stacking on the current deadline.",
		Tags:        []string{"Links"},
	}, links.RenewLink)

	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, health.Check)

	huma.Register(api, huma.Operation{
		OperationID: "redirect",
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL behind the short code.",
		Tags:        []string{"Links"},
	}, links.Redirect)
}
