package repository

import "go.mongodb.org/mongo-driver/bson/primitive"

// User documents live in the "users" collection. Username uniqueness is
// not enforced anywhere: two signups with the same username produce two
// documents, and lookups pick an arbitrary one.
type User struct {
	Username  string   `bson:"username"`
	Email     string   `bson:"email"`
	Password  string   `bson:"password"` // bcrypt digest
	Followers []string `bson:"followers"`
	Following []string `bson:"following"`
}

type Post struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Title    string             `bson:"title"`
	Content  string             `bson:"content"`
	Username string             `bson:"username"`
	Likes    int                `bson:"likes"`
}
