package query

// ListTopics selects every topic.
func ListTopics() Query {
	return Query{SQL: "SELECT slug, description FROM topics ORDER BY slug"}
}

// InsertTopic inserts a topic and returns the stored row.
func InsertTopic(slug, description string) Query {
	var b builder
	b.write("INSERT INTO topics (slug, description)\nVALUES (",
		b.bind(slug), ", ", b.bind(description), ")\nRETURNING slug, description")
	return b.query()
}
