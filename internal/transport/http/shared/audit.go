package shared

import (
	"log/slog"
	"net/http"

	"onboardhub/internal/domain/audit"
	"onboardhub/internal/requestctx"
)

// RecordAudit appends an audit event for the current request. Failures are
// logged and never fail the request.
func RecordAudit(r *http.Request, svc *audit.Service, action, entityType, entityID string, before, after any) {
	if svc == nil {
		return
	}
	ctx := r.Context()
	if err := svc.Record(ctx, requestctx.GetActor(ctx), action, entityType, entityID, requestctx.GetRequestID(ctx), ClientIP(r), before, after); err != nil {
		slog.Warn("audit "+action+" failed", "err", err)
	}
}
