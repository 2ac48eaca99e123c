package flights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flightNumbers(t *testing.T, origin, destination, class string) []string {
	t.Helper()
	offers := FallbackFlights(origin, destination, class)
	numbers := make([]string, 0, len(offers))
	for _, f := range offers {
		numbers = append(numbers, f.Flight)
	}
	return numbers
}

func TestFallbackExactRoute(t *testing.T) {
	got := flightNumbers(t, "Mumbai", "Singapore", "Economy")
	assert.Equal(t, []string{"SQ001", "SQ005"}, got)

	got = flightNumbers(t, "mumbai", "singapore", "Business")
	assert.Equal(t, []string{"SQ003", "SQ007"}, got)
}

func TestFallbackSwappedRoute(t *testing.T) {
	// singapore-mumbai is not in the table; the reverse leg answers.
	got := flightNumbers(t, "Singapore", "Mumbai", "Economy")
	assert.Equal(t, []string{"SQ001", "SQ005"}, got)
}

func TestFallbackSharedOrigin(t *testing.T) {
	// No mumbai-tokyo route either way, so any mumbai departure serves.
	// Route scan order is alphabetical, so mumbai-bangkok wins.
	got := flightNumbers(t, "Mumbai", "Tokyo", "Economy")
	assert.Equal(t, []string{"TG301"}, got)
}

func TestFallbackSharedDestination(t *testing.T) {
	// Nothing departs pune, so an alternative arrival at dubai serves.
	got := flightNumbers(t, "Pune", "Dubai", "Business")
	assert.Equal(t, []string{"EK103"}, got)
}

func TestFallbackNoAlternative(t *testing.T) {
	offers := FallbackFlights("Atlantis", "Shangri-La", "Economy")
	assert.Empty(t, offers)
}

func TestFallbackClassFilterEachStage(t *testing.T) {
	// mumbai-paris only has an Economy flight; the Business request must
	// widen past the exact route instead of returning a wrong-class offer.
	offers := FallbackFlights("Mumbai", "Paris", "Business")
	require.NotEmpty(t, offers)
	for _, f := range offers {
		assert.Equal(t, "Business", f.Class)
	}
}

func TestFilterByClass(t *testing.T) {
	offers := LocalFlights("mumbai", "singapore")
	require.Len(t, offers, 4)

	economy := FilterByClass(offers, "economy")
	assert.Len(t, economy, 2)

	all := FilterByClass(offers, "")
	assert.Len(t, all, 4)

	none := FilterByClass(offers, "First")
	assert.Empty(t, none)
}

func TestAirportCode(t *testing.T) {
	assert.Equal(t, "BOM", AirportCode("Mumbai"))
	assert.Equal(t, "SIN", AirportCode(" singapore "))
	assert.Empty(t, AirportCode("Atlantis"))
}
