package handler

import (
	"context"
	"mingle/internal/core"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SocialService . SocialService
type SocialService interface {
	Signup(ctx context.Context, msg core.SignupMessage) error
	Login(ctx context.Context, msg core.LoginMessage) error
	CreatePost(ctx context.Context, msg core.PostMessage) (core.PostRecord, error)
	PostsByUser(ctx context.Context, username string) ([]core.PostRecord, error)
	DeletePost(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) (core.PostRecord, error)
	Follow(ctx context.Context, msg core.FollowMessage) error
	Unfollow(ctx context.Context, msg core.FollowMessage) error
	Connections(ctx context.Context, username string) (core.ConnectionsRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
