package core_test

import (
	"context"
	"errors"

	"mingle/internal/core"
	"mingle/internal/core/fake"
	"mingle/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Social", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		social *core.Social

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		social = core.NewSocial(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
	})

	Describe("Signup", func() {
		var (
			signupMsg core.SignupMessage
			err       error
		)

		BeforeEach(func() {
			signupMsg = core.SignupMessage{
				Username: "alice",
				Email:    "alice@example.com",
				Password: "secret",
			}
		})

		JustBeforeEach(func() {
			err = social.Signup(ctx, signupMsg)
		})

		When("the repository accepts the user", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(nil)
			})

			It("should store a user with a verifiable digest and empty lists", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, user := fakeRepo.CreateUserArgsForCall(0)
				Expect(user.Username).To(Equal("alice"))
				Expect(user.Email).To(Equal("alice@example.com"))
				Expect(user.Followers).To(BeEmpty())
				Expect(user.Following).To(BeEmpty())

				Expect(user.Password).NotTo(Equal("secret"))
				Expect(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret"))).To(Succeed())
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Login", func() {
		var (
			loginMsg core.LoginMessage
			err      error
			digest   string
		)

		BeforeEach(func() {
			// bcrypt hash of "testpass"
			digest = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky"
			loginMsg = core.LoginMessage{
				Username: "alice",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			err = social.Login(ctx, loginMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username: "alice",
					Password: digest,
				}, nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username: "alice",
					Password: digest,
				}, nil)
				loginMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CreatePost", func() {
		var (
			postMsg core.PostMessage
			record  core.PostRecord
			err     error
			postID  primitive.ObjectID
		)

		BeforeEach(func() {
			postID = primitive.NewObjectID()
			postMsg = core.PostMessage{
				Title:    "hi",
				Content:  "x",
				Username: "alice",
			}

			fakeRepo.CreatePostReturns(repository.Post{
				ID:       postID,
				Title:    "hi",
				Content:  "x",
				Username: "alice",
				Likes:    0,
			}, nil)
		})

		JustBeforeEach(func() {
			record, err = social.CreatePost(ctx, postMsg)
		})

		When("the repository accepts the post", func() {
			It("should store the post with zero likes", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.CreatePostCallCount()).To(Equal(1))
				_, post := fakeRepo.CreatePostArgsForCall(0)
				Expect(post.Title).To(Equal("hi"))
				Expect(post.Content).To(Equal("x"))
				Expect(post.Username).To(Equal("alice"))
				Expect(post.Likes).To(Equal(0))

				Expect(record.ID).To(Equal(postID.Hex()))
				Expect(record.Likes).To(Equal(0))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreatePostReturns(repository.Post{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("PostsByUser", func() {
		var (
			records []core.PostRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = social.PostsByUser(ctx, "alice")
		})

		When("the user has posts", func() {
			var postID primitive.ObjectID

			BeforeEach(func() {
				postID = primitive.NewObjectID()
				fakeRepo.GetPostsByUsernameReturns([]repository.Post{
					{ID: postID, Title: "hi", Content: "x", Username: "alice", Likes: 2},
				}, nil)
			})

			It("should return the records", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(1))
				Expect(records[0].ID).To(Equal(postID.Hex()))
				Expect(records[0].Likes).To(Equal(2))
			})
		})

		When("the user has no posts", func() {
			BeforeEach(func() {
				fakeRepo.GetPostsByUsernameReturns([]repository.Post{}, nil)
			})

			It("should return no posts error", func() {
				Expect(err).To(MatchError(core.ErrNoPosts))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetPostsByUsernameReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("DeletePost", func() {
		var err error

		JustBeforeEach(func() {
			err = social.DeletePost(ctx, "deadbeef")
		})

		When("the post exists", func() {
			BeforeEach(func() {
				fakeRepo.DeletePostReturns(nil)
			})

			It("should succeed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeletePostCallCount()).To(Equal(1))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				fakeRepo.DeletePostReturns(repository.ErrInvalidID)
			})

			It("should return invalid post id error", func() {
				Expect(err).To(MatchError(core.ErrInvalidPostID))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeRepo.DeletePostReturns(repository.ErrPostNotFound)
			})

			It("should return post not found error", func() {
				Expect(err).To(MatchError(core.ErrPostNotFound))
			})
		})
	})

	Describe("LikePost", func() {
		var (
			record core.PostRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = social.LikePost(ctx, "deadbeef")
		})

		When("the post exists", func() {
			BeforeEach(func() {
				fakeRepo.LikePostReturns(repository.Post{
					ID:    primitive.NewObjectID(),
					Likes: 5,
				}, nil)
			})

			It("should return the post-increment record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Likes).To(Equal(5))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeRepo.LikePostReturns(repository.Post{}, repository.ErrPostNotFound)
			})

			It("should return post not found error", func() {
				Expect(err).To(MatchError(core.ErrPostNotFound))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				fakeRepo.LikePostReturns(repository.Post{}, repository.ErrInvalidID)
			})

			It("should return invalid post id error", func() {
				Expect(err).To(MatchError(core.ErrInvalidPostID))
			})
		})
	})

	Describe("Follow", func() {
		var (
			followMsg core.FollowMessage
			err       error
		)

		BeforeEach(func() {
			followMsg = core.FollowMessage{
				Username: "alice",
				Follower: "bob",
			}
		})

		JustBeforeEach(func() {
			err = social.Follow(ctx, followMsg)
		})

		When("both updates succeed", func() {
			BeforeEach(func() {
				fakeRepo.AddFollowerReturns(nil)
			})

			It("should forward both usernames", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.AddFollowerCallCount()).To(Equal(1))
				_, username, follower := fakeRepo.AddFollowerArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(follower).To(Equal("bob"))
			})
		})

		When("at least one update fails", func() {
			BeforeEach(func() {
				fakeRepo.AddFollowerReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Unfollow", func() {
		var err error

		JustBeforeEach(func() {
			err = social.Unfollow(ctx, core.FollowMessage{Username: "alice", Follower: "bob"})
		})

		When("both updates succeed", func() {
			BeforeEach(func() {
				fakeRepo.RemoveFollowerReturns(nil)
			})

			It("should forward both usernames", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.RemoveFollowerCallCount()).To(Equal(1))
				_, username, follower := fakeRepo.RemoveFollowerArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(follower).To(Equal("bob"))
			})
		})

		When("at least one update fails", func() {
			BeforeEach(func() {
				fakeRepo.RemoveFollowerReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Connections", func() {
		var (
			record core.ConnectionsRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = social.Connections(ctx, "alice")
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:  "alice",
					Followers: []string{"bob"},
					Following: []string{"carol"},
				}, nil)
			})

			It("should return both lists", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Followers).To(Equal([]string{"bob"}))
				Expect(record.Following).To(Equal([]string{"carol"}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})
	})
})
