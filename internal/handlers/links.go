package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/linkstash/internal/mapping"
	"go.uber.org/zap"
)

// MappingService is the link handler's view of the mapping core.
type MappingService interface {
	Create(ctx context.Context, longURL, ownerID string) (mapping.Code, error)
	Resolve(ctx context.Context, code mapping.Code, ownerID string) (*mapping.Mapping, error)
	Renew(ctx context.Context, code mapping.Code, ownerID string) (*mapping.Mapping, error)
	List(ctx context.Context, ownerID string, page, pageSize int) (*mapping.Page, error)
}

type clientIDKey struct{}

// ContextWithClientID adds the opaque client identifier to the context.
func ContextWithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, clientID)
}

// ClientIDFromContext extracts the opaque client identifier from the
// context. Empty when the caller supplied none.
func ClientIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(clientIDKey{}).(string); ok {
		return v
	}

	return ""
}

// LinkHandler handles short link operations.
type LinkHandler struct {
	svc     MappingService
	baseURL string
	logger  *zap.Logger
}

// NewLinkHandler creates a new link handler.
func NewLinkHandler(svc MappingService, baseURL string, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{
		svc:     svc,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (h *LinkHandler) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	clientID := ClientIDFromContext(ctx)

	code, err := h.svc.Create(ctx, req.Body.URL, clientID)
	if err != nil {
		return nil, h.mapError(err)
	}

	// The service only hands back the code; fetch the record for the expiry.
	m, err := h.svc.Resolve(ctx, code, clientID)
	if err != nil {
		return nil, h.mapError(err)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, code)

	resp := &CreateLinkResponse{}
	resp.Headers.Location = shortURL
	resp.Body.Code = string(code)
	resp.Body.ShortURL = shortURL
	resp.Body.LongURL = m.LongURL
	resp.Body.ExpiresAt = m.ExpiresAt

	return resp, nil
}

func (h *LinkHandler) GetLink(ctx context.Context, req *GetLinkRequest) (*GetLinkResponse, error) {
	m, err := h.svc.Resolve(ctx, mapping.Code(req.Code), ClientIDFromContext(ctx))
	if err != nil {
		return nil, h.mapError(err)
	}

	resp := &GetLinkResponse{}
	resp.Body.Code = string(m.ShortCode)
	resp.Body.LongURL = m.LongURL
	resp.Body.CreatedAt = m.CreatedAt
	resp.Body.ExpiresAt = m.ExpiresAt

	return resp, nil
}

func (h *LinkHandler) RenewLink(ctx context.Context, req *RenewLinkRequest) (*RenewLinkResponse, error) {
	m, err := h.svc.Renew(ctx, mapping.Code(req.Code), ClientIDFromContext(ctx))
	if err != nil {
		return nil, h.mapError(err)
	}

	resp := &RenewLinkResponse{}
	resp.Body.Code = string(m.ShortCode)
	resp.Body.ExpiresAt = m.ExpiresAt

	return resp, nil
}

func (h *LinkHandler) ListLinks(ctx context.Context, req *ListLinksRequest) (*ListLinksResponse, error) {
	page, err := h.svc.List(ctx, ClientIDFromContext(ctx), req.Page, req.PageSize)
	if err != nil {
		return nil, h.mapError(err)
	}

	resp := &ListLinksResponse{}
	resp.Body.Links = make([]LinkSummary, len(page.Mappings))
	resp.Body.Page = req.Page
	resp.Body.TotalPages = page.TotalPages

	for i, m := range page.Mappings {
		resp.Body.Links[i] = LinkSummary{
			Code:      string(m.ShortCode),
			LongURL:   m.LongURL,
			CreatedAt: m.CreatedAt,
			ExpiresAt: m.ExpiresAt,
		}
	}

	return resp, nil
}

// Redirect follows a short link. Lookups here are public and every failure
// collapses into a generic 404 so callers cannot distinguish absence from
// denial or a store fault.
func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	m, err := h.svc.Resolve(ctx, mapping.Code(req.Code), "")
	if err != nil {
		if !errors.Is(err, mapping.ErrNotFound) {
			h.logger.Error("redirect lookup failed",
				zap.String("code", req.Code),
				zap.Error(err),
			)
		}

		return nil, huma.Error404NotFound("short link not found")
	}

	resp := &RedirectResponse{
		// Mappings expire, so the redirect must not be cached as permanent.
		Status: http.StatusFound,
	}
	resp.Headers.Location = m.LongURL

	return resp, nil
}

func (h *LinkHandler) mapError(err error) error {
	switch {
	case errors.Is(err, mapping.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, mapping.ErrNotFound):
		return huma.Error404NotFound("short link not found")
	case errors.Is(err, mapping.ErrUnauthorized):
		return huma.Error403Forbidden("short link belongs to another client")
	case errors.Is(err, mapping.ErrCodeSpaceExhausted):
		h.logger.Error("code generation exhausted retries", zap.Error(err))

		return huma.Error503ServiceUnavailable("could not allocate a short code")
	default:
		h.logger.Error("mapping operation failed", zap.Error(err))

		return huma.Error500InternalServerError("internal error")
	}
}
