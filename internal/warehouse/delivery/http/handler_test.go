package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gamebay/retail-ops/internal/warehouse/domain"
)

// Errors crossing the catalog port arrive wrapped in the warehouse domain's
// sentinels, so a vanished product maps to 404 rather than 500.
func TestRespondErrorStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: product 9", domain.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("failed to relabel: %w", fmt.Errorf("%w: product 9", domain.ErrNotFound)), http.StatusNotFound},
		{fmt.Errorf("%w: invalid bucket key", domain.ErrValidation), http.StatusBadRequest},
		{errors.New("store unavailable"), http.StatusInternalServerError},
	}
	for i, c := range cases {
		w := httptest.NewRecorder()
		respondError(w, c.err)
		if w.Code != c.want {
			t.Fatalf("case %d: status = %d, want %d", i, w.Code, c.want)
		}
	}
}
