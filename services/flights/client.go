package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"aerovoice/models"
	"aerovoice/utils"

	"go.uber.org/zap"
)

// lookupResponse is the wire shape of the availability endpoint.
type lookupResponse struct {
	Route   string               `json:"route"`
	Date    string               `json:"date,omitempty"`
	Flights []models.FlightOffer `json:"flights"`
}

// Search returns class-filtered offers for the route. The external API is
// tried first; on any error or non-OK status the static route table answers
// instead, so callers always receive a usable (possibly empty) list.
func (s *DefaultLookupService) Search(ctx context.Context, origin, destination, class, date string) ([]models.FlightOffer, error) {
	if s.APIURL != "" {
		offers, err := s.searchRemote(ctx, origin, destination, class, date)
		if err == nil && len(offers) > 0 {
			return offers, nil
		}
		if err != nil {
			utils.GetLogger().Warn("Flight lookup failed, using fallback table",
				zap.String("origin", origin),
				zap.String("destination", destination),
				zap.Error(err))
		}
	}
	return FallbackFlights(origin, destination, class), nil
}

func (s *DefaultLookupService) searchRemote(ctx context.Context, origin, destination, class, date string) ([]models.FlightOffer, error) {
	q := url.Values{}
	q.Set("origin", queryLocation(origin))
	q.Set("destination", queryLocation(destination))
	q.Set("class", class)
	if date != "" {
		q.Set("date", date)
	}

	endpoint := strings.TrimRight(s.APIURL, "/") + "/api/flights?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build flight lookup request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call flight lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight lookup returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode flight lookup response: %w", err)
	}

	return FilterByClass(body.Flights, class), nil
}

// FilterByClass keeps only offers matching the cabin class, case-insensitively.
func FilterByClass(offers []models.FlightOffer, class string) []models.FlightOffer {
	if class == "" {
		return offers
	}
	var out []models.FlightOffer
	for _, f := range offers {
		if strings.EqualFold(f.Class, class) {
			out = append(out, f)
		}
	}
	return out
}
