package resolver

import (
	"strings"
	"time"

	"github.com/ostrab/linkgate/internal/shortener"
)

// botSignatures are matched case-insensitively as substrings of the
// visitor's User-Agent. A match suppresses the interstitial.
var botSignatures = []string{"bot", "crawler", "spider", "scraper"}

// Request carries everything the resolver needs about a single visit.
type Request struct {
	Code      shortener.Code
	Password  string // empty means no password supplied
	Direct    bool
	UserAgent string
	IPAddress string
	Referer   string
}

// Evaluate classifies a visit against a link's state. Rules apply in
// order, first match wins:
//
//  1. absent or deactivated link: not found
//  2. expiry in the past: expired
//  3. password set, none supplied: password prompt without error
//  4. password set, wrong one supplied: password prompt with error
//  5. otherwise redirect, skipping the interstitial for direct
//     requests, premium owners, and bot user agents
//
// It is a pure function of its inputs: the same link state, clock
// reading, and request always produce the same outcome.
func Evaluate(link *shortener.Link, now time.Time, req Request) Outcome {
	if link == nil || !link.IsActive {
		return Outcome{Kind: OutcomeNotFound}
	}

	if link.ExpiresAt != nil && now.After(*link.ExpiresAt) {
		return Outcome{Kind: OutcomeExpired}
	}

	if link.PasswordHash != nil {
		if req.Password == "" {
			return Outcome{Kind: OutcomePasswordRequired}
		}

		if !VerifyPassword(*link.PasswordHash, req.Password) {
			return Outcome{
				Kind:          OutcomePasswordRequired,
				PasswordError: "Invalid password",
			}
		}
	}

	return Outcome{
		Kind:            OutcomeRedirect,
		URL:             link.OriginalURL,
		ViaInterstitial: !skipInterstitial(link, req),
		Title:           link.Title,
		Description:     link.Description,
	}
}

func skipInterstitial(link *shortener.Link, req Request) bool {
	if req.Direct || link.OwnerTier == shortener.TierPremium {
		return true
	}

	return isBot(req.UserAgent)
}

func isBot(userAgent string) bool {
	ua := strings.ToLower(userAgent)

	for _, sig := range botSignatures {
		if strings.Contains(ua, sig) {
			return true
		}
	}

	return false
}
