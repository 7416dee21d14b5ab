package fastflights

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetchRequest() *FetchRequest {
	return &FetchRequest{
		FlightData: []FlightData{{
			Date:        "2025-08-04",
			FromAirport: "JFK",
			ToAirport:   "LAX",
			MaxStops:    1,
		}},
		Trip:       TripOneWay,
		Seat:       "economy",
		Passengers: Passengers{Adults: 1},
		FetchMode:  "common",
	}
}

func TestClientFetch_Success(t *testing.T) {
	var gotPath string
	var gotReq FetchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		json.NewEncoder(w).Encode(Result{
			CurrentPrice: "low",
			Flights:      []Flight{{Name: "Delta", Price: "$1,250"}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, 10, 10)
	result, err := c.Fetch(context.Background(), testFetchRequest())
	require.NoError(t, err)

	assert.Equal(t, "/search", gotPath)
	assert.Equal(t, "JFK", gotReq.FlightData[0].FromAirport)
	assert.Equal(t, "low", result.CurrentPrice)
	require.Len(t, result.Flights, 1)
	assert.Equal(t, "Delta", result.Flights[0].Name)
}

func TestClientFetch_ServerErrorIsTransient(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusBadGateway, http.StatusTooManyRequests} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		c := NewClient(srv.URL, 5*time.Second, 10, 10)
		_, err := c.Fetch(context.Background(), testFetchRequest())

		var transient *TransientError
		assert.ErrorAs(t, err, &transient, "status %d", status)
		srv.Close()
	}
}

func TestClientFetch_ClientErrorIsPermanent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unknown airport code", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, 10, 10)
	_, err := c.Fetch(context.Background(), testFetchRequest())
	require.Error(t, err)

	var transient *TransientError
	assert.False(t, errors.As(err, &transient))
	assert.Contains(t, err.Error(), "unknown airport code")
}

func TestClientFetch_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := NewClient(srv.URL, time.Second, 10, 10)
	_, err := c.Fetch(context.Background(), testFetchRequest())

	var transient *TransientError
	assert.ErrorAs(t, err, &transient)
}

func TestClientFetch_BadBodyIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>blocked</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, 10, 10)
	_, err := c.Fetch(context.Background(), testFetchRequest())

	var transient *TransientError
	assert.ErrorAs(t, err, &transient)
}

func TestClientFetch_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, 5*time.Second, 10, 10)
	_, err := c.Fetch(ctx, testFetchRequest())
	assert.Error(t, err)
}
