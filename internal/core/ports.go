package core

import (
	"context"
	"mingle/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, user repository.User) error
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreatePost(ctx context.Context, post repository.Post) (repository.Post, error)
	GetPostsByUsername(ctx context.Context, username string) ([]repository.Post, error)
	DeletePost(ctx context.Context, id string) error
	LikePost(ctx context.Context, id string) (repository.Post, error)
	AddFollower(ctx context.Context, username, follower string) error
	RemoveFollower(ctx context.Context, username, follower string) error
}
