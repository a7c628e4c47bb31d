package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"

	"onboardhub/internal/requestctx"
)

const (
	ActorHeader  = "X-Actor"
	maxActorRune = 128
)

// Actor records who is operating the request. There is no authentication, so
// the X-Actor header is trusted as given and falls back to defaultActor.
func Actor(defaultActor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor := strings.TrimSpace(r.Header.Get(ActorHeader))
			if actor == "" || utf8.RuneCountInString(actor) > maxActorRune {
				actor = defaultActor
			}
			ctx := requestctx.WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetActor(ctx context.Context) string {
	return requestctx.GetActor(ctx)
}
