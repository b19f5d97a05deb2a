package domain

// User is a registered author of articles and comments.
type User struct {
	Username  string
	Name      string
	AvatarURL string
}
