package flights

import (
	"context"
	"net/http"
	"time"

	"aerovoice/models"
)

// LookupService resolves flight availability for a route. Implementations
// must never surface transport errors to the caller: when live inventory
// cannot be reached they degrade to the static route table.
type LookupService interface {
	Search(ctx context.Context, origin, destination, class, date string) ([]models.FlightOffer, error)
}

// DefaultLookupService queries an external availability API and falls back
// to the built-in route table on any failure.
type DefaultLookupService struct {
	APIURL     string
	HTTPClient *http.Client
}

// NewDefaultLookupService builds a lookup service with the given API base
// URL (may be empty, in which case only the local table is used) and timeout.
func NewDefaultLookupService(apiURL string, timeout time.Duration) *DefaultLookupService {
	return &DefaultLookupService{
		APIURL:     apiURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}
