package repository

import (
	"context"
	"errors"
	"fmt"
	"mingle/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrPostNotFound error = errors.New("post not found")
var ErrInvalidID error = errors.New("invalid post id")

const (
	usersCollection = "users"
	postsCollection = "posts"
)

type SocialRepository struct {
	db Storage
}

func NewSocialRepository(db Storage) *SocialRepository {
	return &SocialRepository{
		db: db,
	}
}

// CreateUser inserts a user document as-is. There is no duplicate-username
// check: concurrent signups with the same username both succeed.
func (r *SocialRepository) CreateUser(ctx context.Context, user User) error {
	if user.Followers == nil {
		user.Followers = []string{}
	}
	if user.Following == nil {
		user.Following = []string{}
	}

	_, err := r.db.InsertOne(ctx, usersCollection, user)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *SocialRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.FindOne(ctx, usersCollection, bson.M{"username": username}, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

// CreatePost inserts the post and returns it with the generated id set.
// The owner username is not checked against the users collection.
func (r *SocialRepository) CreatePost(ctx context.Context, post Post) (Post, error) {
	id, err := r.db.InsertOne(ctx, postsCollection, post)
	if err != nil {
		return Post{}, fmt.Errorf("insert post: %w", err)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Post{}, fmt.Errorf("parse generated id: %w", err)
	}
	post.ID = objID

	return post, nil
}

func (r *SocialRepository) GetPostsByUsername(ctx context.Context, username string) ([]Post, error) {
	posts := []Post{}

	err := r.db.FindAll(ctx, postsCollection, bson.M{"username": username}, &posts)
	if err != nil {
		return nil, fmt.Errorf("get posts by username: %w", err)
	}

	return posts, nil
}

func (r *SocialRepository) DeletePost(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	deleted, err := r.db.DeleteOne(ctx, postsCollection, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	if deleted == 0 {
		return ErrPostNotFound
	}

	return nil
}

// LikePost increments the like counter in a single atomic find-and-update
// and returns the post as it exists after the increment. Concurrent likes
// never lose updates.
func (r *SocialRepository) LikePost(ctx context.Context, id string) (Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	var post Post
	err = r.db.FindOneAndUpdate(ctx,
		postsCollection,
		bson.M{"_id": objID},
		bson.M{"$inc": bson.M{"likes": 1}},
		&post)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Post{}, ErrPostNotFound
		}
		return Post{}, fmt.Errorf("like post: %w", err)
	}

	return post, nil
}

// AddFollower appends follower to username's followers list and username to
// follower's following list. The two updates run concurrently and are not
// transactional: if one fails the other is not rolled back. Neither user's
// existence is checked and nothing prevents duplicate entries.
func (r *SocialRepository) AddFollower(ctx context.Context, username, follower string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.UpdateOne(ctx,
			usersCollection,
			bson.M{"username": username},
			bson.M{"$push": bson.M{"followers": follower}})
	})

	g.Go(func() error {
		return r.db.UpdateOne(ctx,
			usersCollection,
			bson.M{"username": follower},
			bson.M{"$push": bson.M{"following": username}})
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("add follower: %w", err)
	}

	return nil
}

// RemoveFollower is the symmetric removal, with the same non-transactional
// caveat as AddFollower.
func (r *SocialRepository) RemoveFollower(ctx context.Context, username, follower string) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.db.UpdateOne(ctx,
			usersCollection,
			bson.M{"username": username},
			bson.M{"$pull": bson.M{"followers": follower}})
	})

	g.Go(func() error {
		return r.db.UpdateOne(ctx,
			usersCollection,
			bson.M{"username": follower},
			bson.M{"$pull": bson.M{"following": username}})
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("remove follower: %w", err)
	}

	return nil
}
