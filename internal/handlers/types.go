package handlers

import "time"

// Strategy identifies a link creation strategy.
type Strategy string

const (
	StrategyToken Strategy = "token"
	StrategyHash  Strategy = "hash"
)

// CreateLinkRequest is the request body for creating a short link.
type CreateLinkRequest struct {
	Body struct {
		URL         string     `doc:"The URL to shorten"                            example:"https://example.com/very/long/path" json:"url"`
		Strategy    Strategy   `doc:"Creation strategy"                             enum:"token,hash"                            json:"strategy,omitempty" required:"false"`
		Password    string     `doc:"Optional password protecting the link"         json:"password,omitempty"                    required:"false"`
		ExpiresAt   *time.Time `doc:"Optional expiry instant"                       json:"expiresAt,omitempty"                   required:"false"`
		Title       string     `doc:"Optional title shown on the interstitial"      json:"title,omitempty"                       required:"false"`
		Description string     `doc:"Optional description shown on the interstitial" json:"description,omitempty"                required:"false"`
	}
}

// CreateLinkResponse is the response for a successfully created link.
type CreateLinkResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		Code              string     `doc:"The short code"           example:"abc123"                       json:"code"`
		ShortURL          string     `doc:"The full short URL"       example:"http://localhost:8888/abc123" json:"shortUrl"`
		OriginalURL       string     `doc:"The original URL"         json:"originalUrl"`
		ExpiresAt         *time.Time `doc:"Expiry instant, if any"   json:"expiresAt,omitempty"`
		PasswordProtected bool       `doc:"Whether a password gates the link" json:"passwordProtected"`
	}
}

// ResolveRequest is the request for resolving a short code.
type ResolveRequest struct {
	Code     string `doc:"The short code"                    example:"abc123" path:"code"`
	Password string `doc:"Password for protected links"      query:"password" required:"false"`
	Direct   string `doc:"Literal \"true\" skips the interstitial" query:"direct" required:"false"`
}

// ResolveResponse renders one of the resolution outcomes: an immediate
// redirect (302 with Location), an interstitial payload (200), or a
// password prompt (401). Not-found and expired map to HTTP errors.
type ResolveResponse struct {
	Status  int
	Headers struct {
		Location string `header:"Location"`
	}
	Body struct {
		TargetURL        string `doc:"Destination for the interstitial countdown" json:"targetUrl,omitempty"`
		DelaySeconds     int    `doc:"Interstitial countdown duration"            json:"delaySeconds,omitempty"`
		Title            string `json:"title,omitempty"`
		Description      string `json:"description,omitempty"`
		PasswordRequired bool   `json:"passwordRequired,omitempty"`
		Error            string `doc:"Set when a wrong password was supplied"     json:"error,omitempty"`
	}
}

// DeleteLinkRequest is the request for deleting a link.
type DeleteLinkRequest struct {
	Code string `doc:"The short code" path:"code"`
}

// LinkStatsRequest is the request for link click statistics.
type LinkStatsRequest struct {
	Code string `doc:"The short code" path:"code"`
}

// LinkStatsResponse reports click aggregates for one link.
type LinkStatsResponse struct {
	Body struct {
		Code        string     `json:"code"`
		TotalClicks int64      `json:"totalClicks"`
		LastClickAt *time.Time `json:"lastClickAt,omitempty"`
	}
}
