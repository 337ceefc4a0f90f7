package handlers

import "time"

// CreateLinkRequest is the request body for creating a short link.
type CreateLinkRequest struct {
	Body struct {
		URL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"url"`
	}
}

// CreateLinkResponse is the response for a successfully created short link.
type CreateLinkResponse struct {
	Headers struct {
		Location string `doc:"The short link location" header:"Location"`
	}
	Body struct {
		Code      string    `doc:"The short code"              example:"Ab3xZ"                               json:"code"`
		ShortURL  string    `doc:"The full short link"         example:"http://localhost:8888/Ab3xZ"         json:"shortUrl"`
		LongURL   string    `doc:"The original URL"            example:"https://example.com/very/long/path"  json:"longUrl"`
		ExpiresAt time.Time `doc:"When the mapping expires"    json:"expiresAt"`
	}
}

// GetLinkRequest is the request for inspecting a short link.
type GetLinkRequest struct {
	Code string `doc:"The short code" example:"Ab3xZ" path:"code"`
}

// GetLinkResponse is the response describing a live short link.
type GetLinkResponse struct {
	Body struct {
		Code      string    `doc:"The short code"           json:"code"`
		LongURL   string    `doc:"The original URL"         json:"longUrl"`
		CreatedAt time.Time `doc:"When the link was created" json:"createdAt"`
		ExpiresAt time.Time `doc:"When the mapping expires"  json:"expiresAt"`
	}
}

// RenewLinkRequest is the request for renewing a short link.
type RenewLinkRequest struct {
	Code string `doc:"The short code" example:"Ab3xZ" path:"code"`
}

// RenewLinkResponse is the response for a successful renewal.
type RenewLinkResponse struct {
	Body struct {
		Code      string    `doc:"The short code"               json:"code"`
		ExpiresAt time.Time `doc:"The extended expiry deadline" json:"expiresAt"`
	}
}

// ListLinksRequest is the request for listing a client's links.
type ListLinksRequest struct {
	Page     int `default:"1"  doc:"Page number, starting at 1"  minimum:"1"  query:"page"`
	PageSize int `default:"10" doc:"Number of links per page"    maximum:"100" minimum:"1" query:"pageSize"`
}

// LinkSummary is one entry of a list response.
type LinkSummary struct {
	Code      string    `doc:"The short code"            json:"code"`
	LongURL   string    `doc:"The original URL"          json:"longUrl"`
	CreatedAt time.Time `doc:"When the link was created" json:"createdAt"`
	ExpiresAt time.Time `doc:"When the mapping expires"  json:"expiresAt"`
}

// ListLinksResponse is one page of a client's links, newest first.
type ListLinksResponse struct {
	Body struct {
		Links      []LinkSummary `doc:"Links on this page" json:"links"`
		Page       int           `doc:"Requested page"     json:"page"`
		TotalPages int           `doc:"Total page count"   json:"totalPages"`
	}
}

// RedirectRequest is the request for following a short link.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"Ab3xZ" path:"code"`
}

// RedirectResponse redirects to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
