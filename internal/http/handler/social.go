package handler

import (
	"encoding/json"
	"errors"
	"mingle/internal/core"
	"mingle/internal/http/handler/middleware"
	"mingle/internal/http/payload"
	"net/http"

	"go.uber.org/zap"
)

var (
	Signup      = "POST /api/signup"
	Login       = "POST /api/login"
	CreatePost  = "POST /api/post"
	GetPosts    = "GET /api/post/{username}"
	DeletePost  = "DELETE /api/post/{id}"
	LikePost    = "PUT /api/post/like/{id}"
	Follow      = "PUT /api/follow/{username}"
	Unfollow    = "DELETE /api/unfollow/{username}"
	Connections = "GET /api/connections/{username}"
)

type SocialHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	social           SocialService
}

func NewSocialHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, socialService SocialService) *SocialHandler {
	return &SocialHandler{
		logs:             logger,
		requestValidator: requestValidator,
		social:           socialService,
	}
}

func (h *SocialHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var signup payload.SignupRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &signup); err != nil {
		h.respondText(w, signupErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	if err := h.social.Signup(r.Context(), signup.ToMessage()); err != nil {
		h.respondText(w, signupErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to create user",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	h.respondText(w, userCreatedMsg, http.StatusOK)
}

func (h *SocialHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var login payload.LoginRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &login); err != nil {
		h.respondText(w, loginErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	err := h.social.Login(r.Context(), login.ToMessage())
	if err != nil {
		// identical body for both credential failures, status code only
		httpCode := http.StatusInternalServerError
		msg := loginErrMsg
		if errors.Is(err, core.ErrUserNotFound) {
			httpCode = http.StatusBadRequest
			msg = invalidCredsMsg
		} else if errors.Is(err, core.ErrIncorrectPassword) {
			httpCode = http.StatusForbidden
			msg = invalidCredsMsg
		}

		h.respondText(w, msg, httpCode)
		h.logs.Errorw("login failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	h.respondText(w, loggedInMsg, http.StatusOK)
}

func (h *SocialHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var postReq payload.PostRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &postReq); err != nil {
		h.respondText(w, createPostErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", CreatePost,
			"request_id", requestId)
		return
	}

	post, err := h.social.CreatePost(r.Context(), postReq.ToMessage())
	if err != nil {
		h.respondText(w, createPostErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to create post",
			"error", err,
			"handler", CreatePost,
			"request_id", requestId)
		return
	}

	h.respond(w, CreatePostResponse{
		Message: postCreatedMsg,
		Post:    post,
	}, http.StatusCreated, requestId)
}

func (h *SocialHandler) HandleGetPosts(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")

	posts, err := h.social.PostsByUser(r.Context(), username)
	if err != nil {
		if errors.Is(err, core.ErrNoPosts) {
			// "user has no posts" and "user does not exist" both land here
			h.respondText(w, noPostsMsg, http.StatusNotFound)
			return
		}

		h.respondText(w, getPostsErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to get posts",
			"error", err,
			"handler", GetPosts,
			"request_id", requestId)
		return
	}

	h.respond(w, posts, http.StatusOK, requestId)
}

func (h *SocialHandler) HandleDeletePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	err := h.social.DeletePost(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrInvalidPostID) {
			h.respondText(w, invalidPostIDMsg, http.StatusBadRequest)
			return
		}
		if errors.Is(err, core.ErrPostNotFound) {
			h.respondText(w, postNotFoundMsg, http.StatusNotFound)
			return
		}

		h.respondText(w, deletePostErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to delete post",
			"error", err,
			"handler", DeletePost,
			"request_id", requestId)
		return
	}

	h.respondText(w, postDeletedMsg, http.StatusOK)
}

func (h *SocialHandler) HandleLikePost(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	id := r.PathValue("id")

	_, err := h.social.LikePost(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrInvalidPostID) {
			h.respondText(w, invalidPostIDMsg, http.StatusBadRequest)
			return
		}
		if errors.Is(err, core.ErrPostNotFound) {
			h.respondText(w, postNotFoundMsg, http.StatusNotFound)
			return
		}

		h.respondText(w, likePostErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to like post",
			"error", err,
			"handler", LikePost,
			"request_id", requestId)
		return
	}

	h.respondText(w, postLikedMsg, http.StatusOK)
}

func (h *SocialHandler) HandleFollow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")

	var followReq payload.FollowRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &followReq); err != nil {
		h.respondText(w, followErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Follow,
			"request_id", requestId)
		return
	}

	if err := h.social.Follow(r.Context(), followReq.ToMessage(username)); err != nil {
		h.respondText(w, followErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to follow user",
			"error", err,
			"handler", Follow,
			"request_id", requestId)
		return
	}

	h.respondText(w, followedMsg, http.StatusOK)
}

func (h *SocialHandler) HandleUnfollow(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")

	var followReq payload.FollowRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &followReq); err != nil {
		h.respondText(w, unfollowErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to decode request payload",
			"error", err,
			"handler", Unfollow,
			"request_id", requestId)
		return
	}

	if err := h.social.Unfollow(r.Context(), followReq.ToMessage(username)); err != nil {
		h.respondText(w, unfollowErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to unfollow user",
			"error", err,
			"handler", Unfollow,
			"request_id", requestId)
		return
	}

	h.respondText(w, unfollowedMsg, http.StatusOK)
}

func (h *SocialHandler) HandleConnections(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)
	username := r.PathValue("username")

	connections, err := h.social.Connections(r.Context(), username)
	if err != nil {
		if errors.Is(err, core.ErrUserNotFound) {
			h.respondText(w, userNotFoundMsg, http.StatusNotFound)
			return
		}

		h.respondText(w, connectionsErrMsg, http.StatusInternalServerError)
		h.logs.Errorw("failed to get connections",
			"error", err,
			"handler", Connections,
			"request_id", requestId)
		return
	}

	h.respond(w, connections, http.StatusOK, requestId)
}

func (h *SocialHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}

func (h *SocialHandler) respondText(w http.ResponseWriter, text string, code int) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(text))
}

func requestID(r *http.Request) string {
	if val := r.Context().Value(middleware.RequestIDKey); val != nil {
		return val.(string)
	}
	return ""
}
