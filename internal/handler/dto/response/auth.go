package response

import "banana-farm-api/internal/usecase/queries"

type LoginResponse struct {
	AccessToken string                      `json:"access_token"`
	User        *queries.AuthorizedUserView `json:"user"`
}

type CurrentUserResponse struct {
	User *queries.AuthorizedUserView `json:"user"`
}
