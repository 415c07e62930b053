package admin

import (
	"vokabular/internal/domain/admin"
	"vokabular/internal/domain/changelog"
	"vokabular/internal/domain/user"
)

type usersOutput struct {
	Body UsersResponse
}

type UsersResponse struct {
	Users []user.User `json:"users"`
	Stats admin.Stats `json:"stats"`
}

type activityLogOutput struct {
	Body ActivityLogResponse
}

type ActivityLogResponse struct {
	Entries []changelog.Entry `json:"entries"`
}

type userActionInput struct {
	ID int `path:"id" doc:"User ID"`
}

type changeEmailInput struct {
	ID   int `path:"id" doc:"User ID"`
	Body ChangeEmailRequest
}

type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" doc:"New email address for the account"`
}

type actionOutput struct {
	Body ActionResponse
}

type ActionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
