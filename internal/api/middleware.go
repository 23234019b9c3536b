package api

import (
	"context"
	"net/http"

	"github.com/shunichi-ikebuchi/property-backoffice/internal/store"
)

type contextKey string

const (
	contextKeyProperty contextKey = "propertyID"
)

// PropertyCtx resolves the {propertyId} URL parameter, answering 404 for
// unknown properties, and stores the ID in the request context.
func PropertyCtx(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(w, r, "propertyId", "property ID")
			if !ok {
				return
			}

			if _, err := st.GetProperty(r.Context(), id); err != nil {
				writeStoreError(w, r, err, "Property not found", "Failed to get property")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyProperty, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// propertyID returns the property resolved by PropertyCtx.
func propertyID(r *http.Request) int64 {
	id, _ := r.Context().Value(contextKeyProperty).(int64)
	return id
}
