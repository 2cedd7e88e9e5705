package core

import (
	"context"
	"errors"
	"fmt"
	"mingle/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIncorrectPassword error = errors.New("incorrect password")
var ErrPostNotFound error = errors.New("post not found")
var ErrInvalidPostID error = errors.New("invalid post id")
var ErrNoPosts error = errors.New("no posts found")

// Social provides the user, post and relationship operations backed by the
// repository.
type Social struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewSocial(logger *zap.SugaredLogger, repo Repository) *Social {
	return &Social{
		logs: logger,
		repo: repo,
	}
}

// Signup hashes the password and stores a new user with empty follower and
// following lists. Nothing guards against an already-taken username.
func (s *Social) Signup(ctx context.Context, msg SignupMessage) error {
	digest, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := repository.User{
		Username:  msg.Username,
		Email:     msg.Email,
		Password:  string(digest),
		Followers: []string{},
		Following: []string{},
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.logs.Infow("user created", "username", msg.Username)
	return nil
}

// Login verifies the credentials against the stored digest. An unknown
// username and a wrong password surface as distinct sentinel errors so the
// handler can map them to different status codes without leaking which of
// the two happened in the message body.
func (s *Social) Login(ctx context.Context, msg LoginMessage) error {
	user, err := s.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user from db: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(msg.Password)); err != nil {
		return ErrIncorrectPassword
	}

	return nil
}

// CreatePost stores a post with zero likes. The owner username is taken on
// faith, matching the repository's behavior.
func (s *Social) CreatePost(ctx context.Context, msg PostMessage) (PostRecord, error) {
	post := repository.Post{
		Title:    msg.Title,
		Content:  msg.Content,
		Username: msg.Username,
		Likes:    0,
	}

	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return PostRecord{}, fmt.Errorf("create post: %w", err)
	}

	s.logs.Infow("post created", "id", created.ID.Hex(), "username", created.Username)

	return postToRecord(created), nil
}

// PostsByUser returns every post owned by username. An empty result yields
// ErrNoPosts, which conflates "no posts" with "no such user".
func (s *Social) PostsByUser(ctx context.Context, username string) ([]PostRecord, error) {
	posts, err := s.repo.GetPostsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get posts by username: %w", err)
	}

	if len(posts) == 0 {
		return nil, ErrNoPosts
	}

	records := make([]PostRecord, len(posts))
	for i, post := range posts {
		records[i] = postToRecord(post)
	}

	return records, nil
}

func (s *Social) DeletePost(ctx context.Context, id string) error {
	err := s.repo.DeletePost(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return ErrInvalidPostID
		}
		if errors.Is(err, repository.ErrPostNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}

	s.logs.Infow("post deleted", "id", id)
	return nil
}

// LikePost bumps the like counter by one atomically and returns the
// post-increment record.
func (s *Social) LikePost(ctx context.Context, id string) (PostRecord, error) {
	post, err := s.repo.LikePost(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return PostRecord{}, ErrInvalidPostID
		}
		if errors.Is(err, repository.ErrPostNotFound) {
			return PostRecord{}, ErrPostNotFound
		}
		return PostRecord{}, fmt.Errorf("like post: %w", err)
	}

	s.logs.Infow("post liked", "id", id, "likes", post.Likes)

	return postToRecord(post), nil
}

// Follow records that msg.Follower now follows msg.Username. The two list
// updates are issued concurrently by the repository and may partially
// apply; a returned error means at least one of them failed.
func (s *Social) Follow(ctx context.Context, msg FollowMessage) error {
	if err := s.repo.AddFollower(ctx, msg.Username, msg.Follower); err != nil {
		return fmt.Errorf("follow user: %w", err)
	}

	s.logs.Infow("user followed", "username", msg.Username, "follower", msg.Follower)
	return nil
}

func (s *Social) Unfollow(ctx context.Context, msg FollowMessage) error {
	if err := s.repo.RemoveFollower(ctx, msg.Username, msg.Follower); err != nil {
		return fmt.Errorf("unfollow user: %w", err)
	}

	s.logs.Infow("user unfollowed", "username", msg.Username, "follower", msg.Follower)
	return nil
}

// Connections returns who the user follows and who follows them. A missing
// user is reported as ErrUserNotFound.
func (s *Social) Connections(ctx context.Context, username string) (ConnectionsRecord, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ConnectionsRecord{}, ErrUserNotFound
		}
		return ConnectionsRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	return ConnectionsRecord{
		Following: user.Following,
		Followers: user.Followers,
	}, nil
}

func postToRecord(post repository.Post) PostRecord {
	return PostRecord{
		ID:       post.ID.Hex(),
		Title:    post.Title,
		Content:  post.Content,
		Username: post.Username,
		Likes:    post.Likes,
	}
}
