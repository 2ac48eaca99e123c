package dialogue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSmartBooking(t *testing.T) {
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)

	booking, ok := DetectSmartBooking("book flight from mumbai to singapore tomorrow", now)
	require.True(t, ok)
	assert.Equal(t, "Mumbai", booking.Origin)
	assert.Equal(t, "Singapore", booking.Destination)
	assert.Equal(t, "2025-08-29", booking.Date)
}

func TestDetectSmartBookingWithoutDate(t *testing.T) {
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)

	booking, ok := DetectSmartBooking("i want to fly from delhi to london", now)
	require.True(t, ok)
	assert.Equal(t, "Delhi", booking.Origin)
	assert.Equal(t, "London", booking.Destination)
	assert.Empty(t, booking.Date)
}

func TestDetectSmartBookingNeedsBothCities(t *testing.T) {
	now := time.Date(2025, 8, 28, 10, 0, 0, 0, time.UTC)

	_, ok := DetectSmartBooking("book a flight from mumbai", now)
	assert.False(t, ok)

	_, ok = DetectSmartBooking("hello there", now)
	assert.False(t, ok)
}
