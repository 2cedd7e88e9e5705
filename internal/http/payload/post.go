package payload

import "mingle/internal/core"

type PostRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
}

func (p PostRequest) ToMessage() core.PostMessage {
	return core.PostMessage{
		Title:    p.Title,
		Content:  p.Content,
		Username: p.Username,
	}
}

// FollowRequest carries only the initiating side; the target username
// comes from the request path.
type FollowRequest struct {
	Follower string `json:"follower"`
}

func (f FollowRequest) ToMessage(username string) core.FollowMessage {
	return core.FollowMessage{
		Username: username,
		Follower: f.Follower,
	}
}
