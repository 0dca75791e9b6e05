package model

// Movie is a single autocomplete hit. The pipeline projects everything but the
// title away, so nothing else is ever populated.
type Movie struct {
	Title string `json:"title" bson:"title"`
}

// Titles returns the titles of movies in order
func Titles(movies []Movie) []string {
	titles := make([]string, 0, len(movies))
	for _, m := range movies {
		titles = append(titles, m.Title)
	}
	return titles
}
