package handler

import "mingle/internal/core"

const oopsErr = "Oops! Something went wrong. Please try again later."

// Human-readable response texts. Login deliberately uses one message for
// both the unknown-user and wrong-password outcomes; only the status code
// differs. Keeping the bodies byte-identical avoids leaking which
// usernames exist.
const (
	userCreatedMsg    = "User created"
	loggedInMsg       = "Logged in"
	invalidCredsMsg   = "Invalid username or password"
	postCreatedMsg    = "Post created successfully"
	postDeletedMsg    = "Post deleted successfully"
	postLikedMsg      = "Post liked"
	postNotFoundMsg   = "Post not found"
	noPostsMsg        = "No posts found for the specified username"
	invalidPostIDMsg  = "Invalid post id"
	userNotFoundMsg   = "User not found"
	followedMsg       = "Followed successfully"
	unfollowedMsg     = "Unfollowed successfully"
	signupErrMsg      = "An error occurred while creating user"
	loginErrMsg       = "An error occurred while logging in"
	createPostErrMsg  = "An error occurred while creating post"
	getPostsErrMsg    = "An error occurred while retrieving posts"
	deletePostErrMsg  = "An error occurred while deleting post"
	likePostErrMsg    = "An error occurred while liking post"
	followErrMsg      = "An error occurred while following user"
	unfollowErrMsg    = "An error occurred while unfollowing user"
	connectionsErrMsg = "An error occurred while retrieving connections"
)

type CreatePostResponse struct {
	Message string          `json:"message"`
	Post    core.PostRecord `json:"post"`
}
