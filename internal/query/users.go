package query

// ListUsers selects every user.
func ListUsers() Query {
	return Query{SQL: "SELECT username, name, avatar_url FROM users ORDER BY username"}
}

// GetUser selects a single user by username.
func GetUser(username string) Query {
	var b builder
	b.write("SELECT username, name, avatar_url FROM users WHERE username = ", b.bind(username))
	return b.query()
}
