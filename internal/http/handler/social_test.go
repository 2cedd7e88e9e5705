package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"mingle/internal/core"
	"mingle/internal/http/handler"
	"mingle/internal/http/handler/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SocialHandler", func() {
	var (
		sh            *handler.SocialHandler
		fakeService   *fake.SocialService
		fakeValidator *fake.RequestValidator
		fakeLogger    *zap.SugaredLogger
		w             *httptest.ResponseRecorder
		req           *http.Request
		fakeErr       error
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.SocialService)
		fakeValidator = new(fake.RequestValidator)

		// delegate decoding to the real JSON decoder by default
		fakeValidator.DecodeJSONPayloadStub = func(r *http.Request, object any) error {
			return json.NewDecoder(r.Body).Decode(object)
		}

		w = httptest.NewRecorder()
		sh = handler.NewSocialHandler(fakeLogger, fakeValidator, fakeService)
	})

	Describe("HandleSignup", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","email":"a@b.c","password":"pw"}`)
			req = httptest.NewRequest("POST", "/api/signup", body)
		})

		JustBeforeEach(func() {
			sh.HandleSignup(w, req)
		})

		When("signup succeeds", func() {
			It("should acknowledge with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("User created"))

				Expect(fakeService.SignupCallCount()).To(Equal(1))
				_, msg := fakeService.SignupArgsForCall(0)
				Expect(msg).To(Equal(core.SignupMessage{
					Username: "alice",
					Email:    "a@b.c",
					Password: "pw",
				}))
			})
		})

		When("the payload cannot be decoded", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadStub = nil
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(fakeService.SignupCallCount()).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.SignupReturns(fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleLogin", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"username":"alice","password":"pw"}`)
			req = httptest.NewRequest("POST", "/api/login", body)
		})

		JustBeforeEach(func() {
			sh.HandleLogin(w, req)
		})

		When("credentials are valid", func() {
			It("should acknowledge with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Logged in"))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.ErrUserNotFound)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(Equal("Invalid username or password"))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(core.ErrIncorrectPassword)
			})

			It("should respond with 403 and the exact same body as a missing user", func() {
				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(w.Body.String()).To(Equal("Invalid username or password"))
			})
		})

		When("the service fails unexpectedly", func() {
			BeforeEach(func() {
				fakeService.LoginReturns(fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleCreatePost", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"title":"hi","content":"x","username":"alice"}`)
			req = httptest.NewRequest("POST", "/api/post", body)

			fakeService.CreatePostReturns(core.PostRecord{
				ID:       "65e8f3a2b4c1d2e3f4a5b6c7",
				Title:    "hi",
				Content:  "x",
				Username: "alice",
				Likes:    0,
			}, nil)
		})

		JustBeforeEach(func() {
			sh.HandleCreatePost(w, req)
		})

		When("creation succeeds", func() {
			It("should respond 201 with the created post", func() {
				Expect(w.Code).To(Equal(http.StatusCreated))

				var resp handler.CreatePostResponse
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp.Message).To(Equal("Post created successfully"))
				Expect(resp.Post.Title).To(Equal("hi"))
				Expect(resp.Post.Likes).To(Equal(0))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.CreatePostReturns(core.PostRecord{}, fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(Equal("An error occurred while creating post"))
			})
		})
	})

	Describe("HandleGetPosts", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/post/alice", nil)
			req.SetPathValue("username", "alice")
		})

		JustBeforeEach(func() {
			sh.HandleGetPosts(w, req)
		})

		When("the user has posts", func() {
			BeforeEach(func() {
				fakeService.PostsByUserReturns([]core.PostRecord{
					{Title: "hi", Username: "alice", Likes: 2},
				}, nil)
			})

			It("should respond with the raw array", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var posts []core.PostRecord
				Expect(json.Unmarshal(w.Body.Bytes(), &posts)).To(Succeed())
				Expect(posts).To(HaveLen(1))
				Expect(posts[0].Likes).To(Equal(2))

				_, username := fakeService.PostsByUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("there are no posts", func() {
			BeforeEach(func() {
				fakeService.PostsByUserReturns(nil, core.ErrNoPosts)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(Equal("No posts found for the specified username"))
			})
		})
	})

	Describe("HandleDeletePost", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/api/post/deadbeef", nil)
			req.SetPathValue("id", "deadbeef")
		})

		JustBeforeEach(func() {
			sh.HandleDeletePost(w, req)
		})

		When("deletion succeeds", func() {
			It("should respond with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Post deleted successfully"))

				_, id := fakeService.DeletePostArgsForCall(0)
				Expect(id).To(Equal("deadbeef"))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				fakeService.DeletePostReturns(core.ErrInvalidPostID)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(Equal("Invalid post id"))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeService.DeletePostReturns(core.ErrPostNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(Equal("Post not found"))
			})
		})
	})

	Describe("HandleLikePost", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PUT", "/api/post/like/deadbeef", nil)
			req.SetPathValue("id", "deadbeef")
		})

		JustBeforeEach(func() {
			sh.HandleLikePost(w, req)
		})

		When("the like succeeds", func() {
			BeforeEach(func() {
				fakeService.LikePostReturns(core.PostRecord{Likes: 1}, nil)
			})

			It("should respond with 200", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Post liked"))
			})
		})

		When("the post does not exist", func() {
			BeforeEach(func() {
				fakeService.LikePostReturns(core.PostRecord{}, core.ErrPostNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the id is malformed", func() {
			BeforeEach(func() {
				fakeService.LikePostReturns(core.PostRecord{}, core.ErrInvalidPostID)
			})

			It("should respond with 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Describe("HandleFollow", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"follower":"bob"}`)
			req = httptest.NewRequest("PUT", "/api/follow/alice", body)
			req.SetPathValue("username", "alice")
		})

		JustBeforeEach(func() {
			sh.HandleFollow(w, req)
		})

		When("the follow succeeds", func() {
			It("should pair path target with body follower", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Followed successfully"))

				Expect(fakeService.FollowCallCount()).To(Equal(1))
				_, msg := fakeService.FollowArgsForCall(0)
				Expect(msg).To(Equal(core.FollowMessage{Username: "alice", Follower: "bob"}))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.FollowReturns(fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).To(Equal("An error occurred while following user"))
			})
		})
	})

	Describe("HandleUnfollow", func() {
		BeforeEach(func() {
			body := strings.NewReader(`{"follower":"bob"}`)
			req = httptest.NewRequest("DELETE", "/api/unfollow/alice", body)
			req.SetPathValue("username", "alice")
		})

		JustBeforeEach(func() {
			sh.HandleUnfollow(w, req)
		})

		When("the unfollow succeeds", func() {
			It("should pair path target with body follower", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(w.Body.String()).To(Equal("Unfollowed successfully"))

				_, msg := fakeService.UnfollowArgsForCall(0)
				Expect(msg).To(Equal(core.FollowMessage{Username: "alice", Follower: "bob"}))
			})
		})

		When("the service fails", func() {
			BeforeEach(func() {
				fakeService.UnfollowReturns(fakeErr)
			})

			It("should respond with 500", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("HandleConnections", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/api/connections/alice", nil)
			req.SetPathValue("username", "alice")
		})

		JustBeforeEach(func() {
			sh.HandleConnections(w, req)
		})

		When("the user exists", func() {
			BeforeEach(func() {
				fakeService.ConnectionsReturns(core.ConnectionsRecord{
					Following: []string{"carol"},
					Followers: []string{"bob"},
				}, nil)
			})

			It("should return both lists", func() {
				Expect(w.Code).To(Equal(http.StatusOK))

				var record core.ConnectionsRecord
				Expect(json.Unmarshal(w.Body.Bytes(), &record)).To(Succeed())
				Expect(record.Following).To(Equal([]string{"carol"}))
				Expect(record.Followers).To(Equal([]string{"bob"}))
			})
		})

		When("the user does not exist", func() {
			BeforeEach(func() {
				fakeService.ConnectionsReturns(core.ConnectionsRecord{}, core.ErrUserNotFound)
			})

			It("should respond with 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				Expect(w.Body.String()).To(Equal("User not found"))
			})
		})
	})
})
