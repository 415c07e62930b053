package admin

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearerSecurity = []map[string][]string{{"bearer": {}}}

func (h *Handler) usersOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-users",
		Method:      http.MethodGet,
		Path:        "/admin/users",
		Summary:     "List all accounts with aggregate stats",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) activityLogOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-activity-log",
		Method:      http.MethodGet,
		Path:        "/admin/activity_log",
		Summary:     "Recent changes across all tracked records",
		Description: "Read-only view over the audit log, newest first, capped at 100 entries.",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) suspendOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-suspend-user",
		Method:      http.MethodPatch,
		Path:        "/admin/users/{id}/suspend",
		Summary:     "Suspend an account",
		Description: "Admins cannot suspend their own account.",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) unsuspendOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-unsuspend-user",
		Method:      http.MethodPatch,
		Path:        "/admin/users/{id}/unsuspend",
		Summary:     "Lift an account suspension",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) promoteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-promote-user",
		Method:      http.MethodPatch,
		Path:        "/admin/users/{id}/promote",
		Summary:     "Grant admin rights",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) demoteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-demote-user",
		Method:      http.MethodPatch,
		Path:        "/admin/users/{id}/demote",
		Summary:     "Revoke admin rights",
		Description: "Admins cannot demote their own account.",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) changeEmailOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-change-email",
		Method:      http.MethodPatch,
		Path:        "/admin/users/{id}/email",
		Summary:     "Change an account's email address",
		Description: "Admins cannot change their own address here.",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "admin-delete-user",
		Method:      http.MethodDelete,
		Path:        "/admin/users/{id}",
		Summary:     "Delete an account",
		Description: "Removes the account with its flashcards and sessions. Admins cannot delete their own account.",
		Tags:        []string{"admin"},
		Security:    bearerSecurity,
		Middlewares: h.middleware,
	}
}
