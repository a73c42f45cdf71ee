package analytics

import "time"

// TopicLinkClicked carries one event per authorized visit to a link.
const TopicLinkClicked = "link.clicked"

// ClickEvent is one recorded visit to a short link. Country and City
// are left unset here; geo resolution happens downstream, if at all.
type ClickEvent struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Timestamp time.Time `json:"timestamp"`
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	Referer   string    `json:"referer"`
	Country   *string   `json:"country,omitempty"`
	City      *string   `json:"city,omitempty"`
}
