package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubGenerator struct {
	id  string
	err error
}

func (g stubGenerator) NewID() (string, error) {
	return g.id, g.err
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		gen      stubGenerator
		want     string
	}{
		{name: "keeps caller id", incoming: "abc-123", gen: stubGenerator{id: "generated"}, want: "abc-123"},
		{name: "mints missing id", gen: stubGenerator{id: "generated"}, want: "generated"},
		{name: "generator failure passes through", gen: stubGenerator{err: errors.New("no entropy")}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = requestIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/tally", nil)
			if tt.incoming != "" {
				req.Header.Set(requestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			RequestID(tt.gen, next).ServeHTTP(rec, req)

			if seen != tt.want {
				t.Fatalf("context request id=%q want=%q", seen, tt.want)
			}
			if got := rec.Header().Get(requestIDHeader); got != tt.want {
				t.Fatalf("response header=%q want=%q", got, tt.want)
			}
		})
	}
}
