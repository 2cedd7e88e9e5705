package core

type SignupMessage struct {
	Username string
	Email    string
	Password string
}

type LoginMessage struct {
	Username string
	Password string
}

type PostMessage struct {
	Title    string
	Content  string
	Username string
}

type FollowMessage struct {
	Username string
	Follower string
}

type PostRecord struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Username string `json:"username"`
	Likes    int    `json:"likes"`
}

type ConnectionsRecord struct {
	Following []string `json:"following"`
	Followers []string `json:"followers"`
}
