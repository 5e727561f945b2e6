package middleware

import (
	"net/http"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/apierr"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/admin"
)

// AdminKeyHeader carries the admin key on gated requests
const AdminKeyHeader = "X-Admin-Key"

// AdminGate creates middleware guarding admin endpoints. With no
// credential stored the gate is open and every request passes.
func AdminGate(gate *admin.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(AdminKeyHeader)
			if err := gate.Verify(r.Context(), key); err != nil {
				if key == "" {
					apierr.WriteError(w, apierr.NewUnauthorizedError())
				} else {
					apierr.WriteError(w, err)
				}
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
