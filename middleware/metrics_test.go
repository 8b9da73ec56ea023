package middleware_test

import (
	"testing"

	"main/middleware"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestTrackContentOperation(t *testing.T) {
	counter := middleware.ContentOperationsTotal.WithLabelValues("projects", "create")
	before := testutil.ToFloat64(counter)

	middleware.TrackContentOperation("projects", "create")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("content operation counter = %v, want %v", got, before+1)
	}
}

func TestTrackAuthAttempt(t *testing.T) {
	counter := middleware.AuthAttempts.WithLabelValues("failure")
	before := testutil.ToFloat64(counter)

	middleware.TrackAuthAttempt("failure")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("auth attempt counter = %v, want %v", got, before+1)
	}
}

func TestTrackError(t *testing.T) {
	counter := middleware.ErrorsTotal.WithLabelValues("db")
	before := testutil.ToFloat64(counter)

	middleware.TrackError("db")

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("error counter = %v, want %v", got, before+1)
	}
}
