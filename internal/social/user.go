package social

import (
	"sort"
	"strings"
)

type Kind string

const (
	KindNaive        Kind = "naive"
	KindLiar         Kind = "liar"
	KindSelfcentered Kind = "selfcentered"
	KindFanatic      Kind = "fanatic"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(s)) {
	case KindNaive:
		return KindNaive, nil
	case KindLiar:
		return KindLiar, nil
	case KindSelfcentered:
		return KindSelfcentered, nil
	case KindFanatic:
		return KindFanatic, nil
	}
	return "", ErrUnknownKind
}

// parseStance maps a declared stance to the truth value it claims.
func parseStance(stance string) bool {
	return strings.EqualFold(stance, "true")
}

// User is the closed set of behavior variants. How truthfulness is derived,
// whether a comment is permitted, and how lies are counted vary per kind;
// everything else lives on the shared account base.
type User interface {
	ID() string
	Kind() Kind
	NumFriends() int
	NumPosts() int
	NumComments() int
	Responsiveness() float64
	CanCommentPost(post *Post, comment *Comment) error

	addFriend(other User) error
	isFriend(id string) bool
	friends() []User
	newPost(id int, hashtags []string, stance, message string) *Post
	postByID(id int) (*Post, bool)
	allPosts() []*Post
	recordComment(c *Comment, on *Post)
	receiveComment(p *Post, c *Comment)
	commentsAbout(hashtag string) []*Comment
}

type madeComment struct {
	comment *Comment
	on      *Post
}

type account struct {
	id          string
	kind        Kind
	friendSet   map[string]User
	friendOrder []string
	posts       []*Post
	postIndex   map[int]*Post
	made        []madeComment
	commented   map[int]struct{}
	received    int
}

func newAccount(id string, kind Kind) account {
	return account{
		id:        id,
		kind:      kind,
		friendSet: map[string]User{},
		postIndex: map[int]*Post{},
		commented: map[int]struct{}{},
	}
}

func (a *account) ID() string      { return a.id }
func (a *account) Kind() Kind      { return a.kind }
func (a *account) NumFriends() int { return len(a.friendOrder) }
func (a *account) NumPosts() int   { return len(a.posts) }

// NumComments counts comments made plus comments received on own posts.
func (a *account) NumComments() int { return len(a.made) + a.received }

func (a *account) addFriend(other User) error {
	if other.ID() == a.id {
		return ErrSelfFriendship
	}
	if _, ok := a.friendSet[other.ID()]; ok {
		return ErrUsersAlreadyFriends
	}
	a.friendSet[other.ID()] = other
	i := sort.SearchStrings(a.friendOrder, other.ID())
	a.friendOrder = append(a.friendOrder, "")
	copy(a.friendOrder[i+1:], a.friendOrder[i:])
	a.friendOrder[i] = other.ID()
	return nil
}

func (a *account) isFriend(id string) bool {
	_, ok := a.friendSet[id]
	return ok
}

func (a *account) friends() []User {
	out := make([]User, 0, len(a.friendOrder))
	for _, id := range a.friendOrder {
		out = append(out, a.friendSet[id])
	}
	return out
}

func (a *account) newPost(id int, hashtags []string, stance, message string) *Post {
	return a.makePost(id, hashtags, parseStance(stance), message)
}

// makePost freezes the current friend set into the post's snapshot.
func (a *account) makePost(id int, hashtags []string, truthful bool, message string) *Post {
	p := newPost(id, a.id, hashtags, truthful, message, a.friendOrder)
	a.posts = append(a.posts, p)
	a.postIndex[id] = p
	return p
}

func (a *account) postByID(id int) (*Post, bool) {
	p, ok := a.postIndex[id]
	return p, ok
}

func (a *account) allPosts() []*Post {
	return append([]*Post(nil), a.posts...)
}

func (a *account) CanCommentPost(post *Post, comment *Comment) error {
	if post.AuthorID() == a.id || post.authorFriend(a.id) {
		return nil
	}
	return ErrUnauthorizedComment
}

func (a *account) recordComment(c *Comment, on *Post) {
	a.made = append(a.made, madeComment{comment: c, on: on})
	a.commented[on.ID()] = struct{}{}
}

func (a *account) receiveComment(p *Post, c *Comment) {
	p.addComment(c)
	a.received++
}

func (a *account) commentsAbout(hashtag string) []*Comment {
	var out []*Comment
	for _, mc := range a.made {
		if mc.on.HasHashtag(hashtag) {
			out = append(out, mc.comment)
		}
	}
	return out
}

// Responsiveness is the share of posts visible to this user (its own plus
// its friends') that it has commented on. No visible posts means 0.
func (a *account) Responsiveness() float64 {
	visible := len(a.posts)
	for _, id := range a.friendOrder {
		visible += a.friendSet[id].NumPosts()
	}
	if visible == 0 {
		return 0
	}
	return float64(len(a.commented)) / float64(visible)
}

// NaiveUser records stances at face value and may comment on its own posts
// and on posts whose author had befriended it by post time.
type NaiveUser struct {
	account
}

func newNaiveUser(id string) *NaiveUser {
	return &NaiveUser{account: newAccount(id, KindNaive)}
}

// LiarUser inverts every declared stance and keeps count of its lies.
type LiarUser struct {
	account
	lies int
}

func newLiarUser(id string) *LiarUser {
	return &LiarUser{account: newAccount(id, KindLiar)}
}

func (u *LiarUser) newPost(id int, hashtags []string, stance, message string) *Post {
	u.lies++
	return u.makePost(id, hashtags, !parseStance(stance), message)
}

func (u *LiarUser) recordComment(c *Comment, on *Post) {
	if parseStance(c.Stance()) != on.Truthful() {
		u.lies++
	}
	u.account.recordComment(c, on)
}

func (u *LiarUser) NumLies() int { return u.lies }

// SelfcenteredUser only ever comments on its own posts.
type SelfcenteredUser struct {
	account
}

func newSelfcenteredUser(id string) *SelfcenteredUser {
	return &SelfcenteredUser{account: newAccount(id, KindSelfcentered)}
}

func (u *SelfcenteredUser) CanCommentPost(post *Post, comment *Comment) error {
	if post.AuthorID() != u.id {
		return ErrUnauthorizedComment
	}
	return nil
}

// FanaticUser behaves like a naive user but declares hashtag interests at
// registration, which feed the per-hashtag fanatic rankings.
type FanaticUser struct {
	account
	fanaticisms map[string]int
}

func newFanaticUser(id string, fanaticisms map[string]int) *FanaticUser {
	interests := make(map[string]int, len(fanaticisms))
	for tag, intensity := range fanaticisms {
		interests[tag] = intensity
	}
	return &FanaticUser{account: newAccount(id, KindFanatic), fanaticisms: interests}
}

func (u *FanaticUser) FanaticAbout(tag string) bool {
	_, ok := u.fanaticisms[tag]
	return ok
}

func (u *FanaticUser) Fanaticisms() map[string]int {
	out := make(map[string]int, len(u.fanaticisms))
	for tag, intensity := range u.fanaticisms {
		out[tag] = intensity
	}
	return out
}
