package flights

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/flights", r.URL.Path)
		// Known cities are translated to IATA codes for the external API.
		assert.Equal(t, "BOM", r.URL.Query().Get("origin"))
		assert.Equal(t, "SIN", r.URL.Query().Get("destination"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"route":"mumbai-singapore","flights":[
			{"flight":"XX100","carrier":"TestAir","time":"08:00","price":10000,"class":"Economy"},
			{"flight":"XX200","carrier":"TestAir","time":"18:00","price":40000,"class":"Business"}
		]}`))
	}))
	defer srv.Close()

	svc := NewDefaultLookupService(srv.URL, 2*time.Second)
	offers, err := svc.Search(context.Background(), "Mumbai", "Singapore", "Economy", "2025-08-29")
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "XX100", offers[0].Flight)
}

func TestSearchRemoteKeepsUnknownCityNames(t *testing.T) {
	var gotOrigin, gotDest string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrigin = r.URL.Query().Get("origin")
		gotDest = r.URL.Query().Get("destination")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"route":"springfield-mumbai","flights":[
			{"flight":"XX300","carrier":"TestAir","time":"10:00","price":9000,"class":"Economy"}
		]}`))
	}))
	defer srv.Close()

	svc := NewDefaultLookupService(srv.URL, 2*time.Second)
	_, err := svc.Search(context.Background(), "Springfield", "Mumbai", "Economy", "")
	require.NoError(t, err)
	assert.Equal(t, "Springfield", gotOrigin)
	assert.Equal(t, "BOM", gotDest)
}

func TestSearchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewDefaultLookupService(srv.URL, 2*time.Second)
	offers, err := svc.Search(context.Background(), "Mumbai", "Singapore", "Business", "")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "SQ003", offers[0].Flight)
}

func TestSearchWithoutAPIURL(t *testing.T) {
	svc := NewDefaultLookupService("", 2*time.Second)
	offers, err := svc.Search(context.Background(), "Mumbai", "Delhi", "Economy", "")
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "AI101", offers[0].Flight)
}
