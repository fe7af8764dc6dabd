package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsUsesRouteTemplate(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Metrics)
	r.HandleFunc("/widgets/{id}", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	server := httptest.NewServer(r)
	defer server.Close()

	// Distinct path variables must collapse into one labeled series.
	for _, id := range []string{"abc", "def", "ghi"} {
		resp, err := http.Get(server.URL + "/widgets/" + id)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
	}

	counter := requestsTotal.WithLabelValues("GET", "/widgets/{id}", "200")
	if got := testutil.ToFloat64(counter); got != 3 {
		t.Errorf("expected 3 requests on the template series, got %v", got)
	}

	// Raw paths must not appear as label values.
	for _, id := range []string{"abc", "def", "ghi"} {
		raw := requestsTotal.WithLabelValues("GET", "/widgets/"+id, "200")
		if got := testutil.ToFloat64(raw); got != 0 {
			t.Errorf("expected no series for raw path /widgets/%s, got %v", id, got)
		}
	}
}
