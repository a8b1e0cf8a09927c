package social

import (
	"fmt"
	"sort"
	"sync"
)

// Registry owns every user and post. All mutations and queries go through it;
// it links friendships, hands out global post ids, and refreshes the top
// trackers after each mutation. One mutex covers each whole operation since
// tracker updates read-then-write shared state.
type Registry struct {
	mu         sync.Mutex
	users      map[string]User
	userOrder  []string
	nextPostID int

	topPost       *Post
	topPoster     User
	topResponsive User
	topLiar       *LiarUser

	fanatics map[string][]*FanaticUser
}

func NewRegistry() *Registry {
	return &Registry{
		users:    map[string]User{},
		fanatics: map[string][]*FanaticUser{},
	}
}

func (r *Registry) RegisterUser(kind Kind, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var user User
	switch kind {
	case KindNaive:
		user = newNaiveUser(id)
	case KindLiar:
		user = newLiarUser(id)
	case KindSelfcentered:
		user = newSelfcenteredUser(id)
	case KindFanatic:
		user = newFanaticUser(id, nil)
	default:
		return ErrUnknownKind
	}
	return r.store(user)
}

// RegisterFanatic creates a fanatic preloaded with hashtag interests and
// enrolls it in the ranking of every hashtag it declared.
func (r *Registry) RegisterFanatic(id string, fanaticisms map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user := newFanaticUser(id, fanaticisms)
	if err := r.store(user); err != nil {
		return err
	}
	for tag := range user.fanaticisms {
		fans := r.fanatics[tag]
		i := sort.Search(len(fans), func(i int) bool { return fans[i].ID() >= id })
		fans = append(fans, nil)
		copy(fans[i+1:], fans[i:])
		fans[i] = user
		r.fanatics[tag] = fans
	}
	return nil
}

func (r *Registry) store(user User) error {
	if _, ok := r.users[user.ID()]; ok {
		return ErrDuplicateUser
	}
	r.users[user.ID()] = user
	i := sort.SearchStrings(r.userOrder, user.ID())
	r.userOrder = append(r.userOrder, "")
	copy(r.userOrder[i+1:], r.userOrder[i:])
	r.userOrder[i] = user.ID()
	return nil
}

// AddFriend links both users symmetrically. Redundant requests fail rather
// than silently no-op.
func (r *Registry) AddFriend(idA, idB string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.users[idA]
	if !ok {
		return ErrUnknownUser
	}
	b, ok := r.users[idB]
	if !ok {
		return ErrUnknownUser
	}
	if err := a.addFriend(b); err != nil {
		return err
	}
	return b.addFriend(a)
}

// Post creates a post under the next global id. The author's kind decides how
// the declared stance becomes the recorded truthfulness.
func (r *Registry) Post(id string, hashtags []string, stance, message string) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, id)
	}
	post := user.newPost(r.nextPostID, hashtags, stance, message)
	r.nextPostID++

	if betterPoster(user, r.topPoster) {
		r.topPoster = user
	}
	if liar, isLiar := user.(*LiarUser); isLiar && betterLiar(liar, r.topLiar) {
		r.topLiar = liar
	}
	return post, nil
}

// CommentPost authorizes the comment through the commenter's own capability
// hook before touching any state; a rejection leaves everything unchanged.
func (r *Registry) CommentPost(commenterID, authorID string, postID int, stance, message string) (*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	commenter, ok := r.users[commenterID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, commenterID)
	}
	author, ok := r.users[authorID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUser, authorID)
	}
	post, ok := author.postByID(postID)
	if !ok {
		return nil, ErrUnknownPost
	}

	comment := newComment(commenterID, postID, stance, message)
	if err := commenter.CanCommentPost(post, comment); err != nil {
		return nil, err
	}

	commenter.recordComment(comment, post)
	author.receiveComment(post, comment)

	if betterPost(post, r.topPost) {
		r.topPost = post
	}
	if betterPoster(author, r.topPoster) {
		r.topPoster = author
	}
	if betterResponsive(commenter, r.topResponsive) {
		r.topResponsive = commenter
	}
	if liar, isLiar := commenter.(*LiarUser); isLiar && betterLiar(liar, r.topLiar) {
		r.topLiar = liar
	}
	return comment, nil
}

func (r *Registry) TopPost() (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.topPost == nil {
		return nil, ErrNoTopPost
	}
	return r.topPost, nil
}

func (r *Registry) TopPoster() (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.topPoster == nil {
		return nil, ErrNoTopPoster
	}
	return r.topPoster, nil
}

func (r *Registry) TopResponsive() (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.topResponsive == nil {
		return nil, ErrNoTopResponsive
	}
	return r.topResponsive, nil
}

func (r *Registry) TopLiar() (*LiarUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.topLiar == nil {
		return nil, ErrNoTopLiar
	}
	return r.topLiar, nil
}

// Users lists every registered user in ascending id order.
func (r *Registry) Users() []User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]User, 0, len(r.userOrder))
	for _, id := range r.userOrder {
		out = append(out, r.users[id])
	}
	return out
}

func (r *Registry) User(id string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	return user, nil
}

// UserFriends lists a user's friends in ascending id order. A friendless
// user is an error, not an empty list.
func (r *Registry) UserFriends(id string) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	friends := user.friends()
	if len(friends) == 0 {
		return nil, fmt.Errorf("%w: %s has no friends", ErrEmptyCollection, id)
	}
	return friends, nil
}

// UserPosts lists a user's posts in creation order.
func (r *Registry) UserPosts(id string) ([]*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	posts := user.allPosts()
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: %s has no posts", ErrEmptyCollection, id)
	}
	return posts, nil
}

func (r *Registry) UserPost(id string, postID int) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	post, ok := user.postByID(postID)
	if !ok {
		return nil, ErrUnknownPost
	}
	return post, nil
}

// UserComments lists the comments a user made on posts carrying the hashtag,
// in the order they were made.
func (r *Registry) UserComments(id, hashtag string) ([]*Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrUnknownUser
	}
	comments := user.commentsAbout(hashtag)
	if len(comments) == 0 {
		return nil, fmt.Errorf("%w: %s has no comments about %s", ErrEmptyCollection, id, hashtag)
	}
	return comments, nil
}

// HashtagFanatics lists the fanatics that declared interest in the hashtag,
// in ascending id order.
func (r *Registry) HashtagFanatics(hashtag string) ([]*FanaticUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fans := r.fanatics[hashtag]
	if len(fans) == 0 {
		return nil, fmt.Errorf("%w: %s has no fanatics", ErrEmptyCollection, hashtag)
	}
	return append([]*FanaticUser(nil), fans...), nil
}
