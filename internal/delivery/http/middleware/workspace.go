package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "eventattendance/internal/delivery/http/helpers"
)

// MembershipChecker reports whether a user belongs to a workspace.
type MembershipChecker interface {
	IsMember(ctx context.Context, workspaceID, userID string) (bool, error)
}

// RequireWorkspaceMember returns a wrapper that lets the request through only when
// the authenticated user is a member of the {workspaceID} in the path. It must run
// after RequireAuth.
func RequireWorkspaceMember(members MembershipChecker, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
				return
			}
			workspaceID := r.PathValue("workspaceID")
			if workspaceID == "" {
				h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing workspaceID")
				return
			}
			member, err := members.IsMember(r.Context(), workspaceID, userID)
			if err != nil {
				logger.ErrorContext(r.Context(), "membership check failed", "workspace_id", workspaceID, "err", err)
				h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal server error")
				return
			}
			if !member {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "not a member of this workspace")
				return
			}
			next(w, r)
		}
	}
}
