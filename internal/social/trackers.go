package social

// Tracker comparators. Each returns whether the candidate displaces the
// incumbent; a nil incumbent always loses. Every level only breaks ties left
// by the previous one, so the trackers never regress.

// betterPost: more comments, then smaller author id, then larger post id
// (the most recent among an author's equally-commented posts wins).
func betterPost(candidate, current *Post) bool {
	if current == nil {
		return true
	}
	if candidate.NumComments() != current.NumComments() {
		return candidate.NumComments() > current.NumComments()
	}
	if candidate.AuthorID() != current.AuthorID() {
		return candidate.AuthorID() < current.AuthorID()
	}
	return candidate.ID() > current.ID()
}

// betterPoster: more posts, then more total comments (made plus received),
// then smaller id.
func betterPoster(candidate, current User) bool {
	if current == nil {
		return true
	}
	if candidate.NumPosts() != current.NumPosts() {
		return candidate.NumPosts() > current.NumPosts()
	}
	if candidate.NumComments() != current.NumComments() {
		return candidate.NumComments() > current.NumComments()
	}
	return candidate.ID() < current.ID()
}

// betterResponsive: higher ratio, then smaller id on exact ties.
func betterResponsive(candidate, current User) bool {
	if current == nil {
		return true
	}
	if candidate.Responsiveness() != current.Responsiveness() {
		return candidate.Responsiveness() > current.Responsiveness()
	}
	return candidate.ID() < current.ID()
}

func betterLiar(candidate, current *LiarUser) bool {
	if current == nil {
		return true
	}
	return candidate.NumLies() > current.NumLies()
}
