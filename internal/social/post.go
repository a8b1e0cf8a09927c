package social

import "sort"

// Comment is an immutable record of a stance taken by a user against one post.
type Comment struct {
	authorID string
	postID   int
	stance   string
	message  string
}

func newComment(authorID string, postID int, stance, message string) *Comment {
	return &Comment{authorID: authorID, postID: postID, stance: stance, message: message}
}

func (c *Comment) AuthorID() string { return c.authorID }
func (c *Comment) PostID() int      { return c.postID }
func (c *Comment) Stance() string   { return c.stance }
func (c *Comment) Message() string  { return c.message }

// Post carries a frozen copy of the author's friend set taken at creation
// time; friendships formed later never widen who may comment.
type Post struct {
	id        int
	authorID  string
	hashtags  []string
	tagSet    map[string]struct{}
	truthful  bool
	message   string
	friendIDs []string
	friendSet map[string]struct{}
	comments  []*Comment
}

func newPost(id int, authorID string, hashtags []string, truthful bool, message string, friendIDs []string) *Post {
	p := &Post{
		id:        id,
		authorID:  authorID,
		truthful:  truthful,
		message:   message,
		tagSet:    map[string]struct{}{},
		friendSet: map[string]struct{}{},
	}
	for _, tag := range hashtags {
		if _, ok := p.tagSet[tag]; ok {
			continue
		}
		p.tagSet[tag] = struct{}{}
		p.hashtags = append(p.hashtags, tag)
	}
	sort.Strings(p.hashtags)
	p.friendIDs = append(p.friendIDs, friendIDs...)
	sort.Strings(p.friendIDs)
	for _, friendID := range p.friendIDs {
		p.friendSet[friendID] = struct{}{}
	}
	return p
}

func (p *Post) ID() int          { return p.id }
func (p *Post) AuthorID() string { return p.authorID }
func (p *Post) Truthful() bool   { return p.truthful }
func (p *Post) Message() string  { return p.message }

func (p *Post) Hashtags() []string {
	return append([]string(nil), p.hashtags...)
}

func (p *Post) HasHashtag(tag string) bool {
	_, ok := p.tagSet[tag]
	return ok
}

// AuthorFriends returns the creation-time snapshot, sorted by id.
func (p *Post) AuthorFriends() []string {
	return append([]string(nil), p.friendIDs...)
}

func (p *Post) authorFriend(userID string) bool {
	_, ok := p.friendSet[userID]
	return ok
}

func (p *Post) addComment(c *Comment) {
	p.comments = append(p.comments, c)
}

func (p *Post) NumComments() int { return len(p.comments) }

// Comments returns the comments in the order they were made.
func (p *Post) Comments() []*Comment {
	return append([]*Comment(nil), p.comments...)
}
