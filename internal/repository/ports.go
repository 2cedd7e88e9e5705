package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	InsertOne(ctx context.Context, collection string, document any) (string, error)
	FindOne(ctx context.Context, collection string, filter any, result any) error
	FindAll(ctx context.Context, collection string, filter any, results any) error
	UpdateOne(ctx context.Context, collection string, filter any, update any) error
	DeleteOne(ctx context.Context, collection string, filter any) (int64, error)
	FindOneAndUpdate(ctx context.Context, collection string, filter any, update any, result any) error
}
