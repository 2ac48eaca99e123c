package dialogue

import (
	"testing"

	"aerovoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func businessCandidates() []models.FlightOffer {
	return []models.FlightOffer{
		{Flight: "SQ003", Carrier: "SingaporeAir", Time: "09:30", Duration: "5h 30m", Price: 65000, Class: "Business", Aircraft: "Airbus A350"},
		{Flight: "SQ005", Carrier: "SingaporeAir", Time: "14:15", Duration: "5h 30m", Price: 32000, Class: "Business", Aircraft: "Boeing 777-300ER"},
		{Flight: "SQ007", Carrier: "SingaporeAir", Time: "19:45", Duration: "5h 30m", Price: 72000, Class: "Business", Aircraft: "Airbus A380"},
	}
}

func TestMatchFlightByCode(t *testing.T) {
	got := MatchFlight("I'll take SQ003", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ003", got.Flight)

	// Transcription often inserts a dash into the code.
	got = MatchFlight("sq-005 please", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ005", got.Flight)
}

func TestMatchFlightByOrdinal(t *testing.T) {
	got := MatchFlight("the second flight", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ005", got.Flight)

	got = MatchFlight("option 3", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ007", got.Flight)

	// Out-of-range positions fall through rather than crash.
	got = MatchFlight("the ninth choice", businessCandidates(), "Business")
	assert.Nil(t, got)
}

func TestMatchFlightByClockTime(t *testing.T) {
	got := MatchFlight("the 2pm departure", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ005", got.Flight)

	got = MatchFlight("around 9:30 am", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ003", got.Flight)

	// Minutes do not matter: 7:45 pm resolves by hour to the 19:45 departure.
	got = MatchFlight("the 7:45 pm flight", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ007", got.Flight)
}

func TestMatchFlightByPeriod(t *testing.T) {
	got := MatchFlight("morning works", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ003", got.Flight)

	got = MatchFlight("afternoon", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ005", got.Flight)

	// "one" here is a pronoun, not position one.
	got = MatchFlight("the evening one", businessCandidates(), "Business")
	require.NotNil(t, got)
	assert.Equal(t, "SQ007", got.Flight)
}

func TestMatchFlightPeriodFallsBackToPosition(t *testing.T) {
	// No candidate departs in the afternoon, so the positional rule applies.
	candidates := []models.FlightOffer{
		{Flight: "AA1", Time: "06:00"},
		{Flight: "AA2", Time: "07:00"},
	}
	got := MatchFlight("afternoon", candidates, "Economy")
	require.NotNil(t, got)
	assert.Equal(t, "AA2", got.Flight)
}

func TestMatchFlightSynthesizesWhenEmpty(t *testing.T) {
	got := MatchFlight("evening please", nil, "Economy")
	require.NotNil(t, got)
	assert.True(t, got.Unscheduled)
	assert.Equal(t, "GEN-EVENING", got.Flight)
	assert.Equal(t, "19:00", got.Time)
	assert.Equal(t, float64(0), got.Price)
	assert.Equal(t, "Economy", got.Class)
}

func TestMatchFlightNoSignal(t *testing.T) {
	assert.Nil(t, MatchFlight("umm", businessCandidates(), "Business"))
	assert.Nil(t, MatchFlight("no idea", nil, "Business"))
}
