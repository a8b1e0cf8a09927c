package social

import (
	"errors"
	"testing"
)

func mustRegister(t *testing.T, r *Registry, kind Kind, id string) {
	t.Helper()
	if err := r.RegisterUser(kind, id); err != nil {
		t.Fatalf("register %s: %v", id, err)
	}
}

func mustBefriend(t *testing.T, r *Registry, a, b string) {
	t.Helper()
	if err := r.AddFriend(a, b); err != nil {
		t.Fatalf("befriend %s %s: %v", a, b, err)
	}
}

func mustPost(t *testing.T, r *Registry, id string, hashtags []string, stance, message string) *Post {
	t.Helper()
	post, err := r.Post(id, hashtags, stance, message)
	if err != nil {
		t.Fatalf("post by %s: %v", id, err)
	}
	return post
}

func mustComment(t *testing.T, r *Registry, commenter, author string, postID int, stance, message string) {
	t.Helper()
	if _, err := r.CommentPost(commenter, author, postID, stance, message); err != nil {
		t.Fatalf("comment by %s on %s/%d: %v", commenter, author, postID, err)
	}
}

func TestRegisterDuplicateUser(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")

	if err := r.RegisterUser(KindLiar, "amy"); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser, got %v", err)
	}
	if err := r.RegisterFanatic("amy", map[string]int{"x": 1}); !errors.Is(err, ErrDuplicateUser) {
		t.Fatalf("expected ErrDuplicateUser for fanatic, got %v", err)
	}
}

func TestRegisterUnknownKind(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterUser(Kind("gullible"), "amy"); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestFriendshipSymmetry(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	mustBefriend(t, r, "amy", "bob")

	amy, _ := r.User("amy")
	bob, _ := r.User("bob")
	if !amy.isFriend("bob") || !bob.isFriend("amy") {
		t.Fatalf("friendship must be symmetric")
	}

	if err := r.AddFriend("amy", "bob"); !errors.Is(err, ErrUsersAlreadyFriends) {
		t.Fatalf("expected ErrUsersAlreadyFriends, got %v", err)
	}
	if err := r.AddFriend("bob", "amy"); !errors.Is(err, ErrUsersAlreadyFriends) {
		t.Fatalf("expected ErrUsersAlreadyFriends in reverse order, got %v", err)
	}
}

func TestFriendshipRejectsSelfAndUnknown(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")

	if err := r.AddFriend("amy", "amy"); !errors.Is(err, ErrSelfFriendship) {
		t.Fatalf("expected ErrSelfFriendship, got %v", err)
	}
	if err := r.AddFriend("amy", "ghost"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
	if err := r.AddFriend("ghost", "amy"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestPostIDsGloballyIncreasing(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")

	p0 := mustPost(t, r, "amy", []string{"x"}, "true", "one")
	p1 := mustPost(t, r, "bob", []string{"x"}, "true", "two")
	p2 := mustPost(t, r, "amy", []string{"x"}, "true", "three")

	if p0.ID() != 0 || p1.ID() != 1 || p2.ID() != 2 {
		t.Fatalf("post ids not globally increasing: %d %d %d", p0.ID(), p1.ID(), p2.ID())
	}
}

func TestFriendSnapshotFrozenAtPostTime(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	mustRegister(t, r, KindNaive, "cam")
	mustBefriend(t, r, "amy", "bob")

	post := mustPost(t, r, "amy", []string{"x"}, "true", "hi")

	mustBefriend(t, r, "amy", "cam")
	amy, _ := r.User("amy")
	if amy.NumFriends() != 2 {
		t.Fatalf("expected amy to have 2 live friends")
	}

	snapshot := post.AuthorFriends()
	if len(snapshot) != 1 || snapshot[0] != "bob" {
		t.Fatalf("snapshot must stay frozen at post time, got %v", snapshot)
	}

	// cam joined after the post, so cam still cannot comment on it
	if _, err := r.CommentPost("cam", "amy", post.ID(), "agree", "late"); !errors.Is(err, ErrUnauthorizedComment) {
		t.Fatalf("expected ErrUnauthorizedComment for post-snapshot friend, got %v", err)
	}
}

func TestCommentUnknownUserAndPost(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustPost(t, r, "amy", []string{"x"}, "true", "hi")

	if _, err := r.CommentPost("ghost", "amy", 0, "agree", "hi"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
	if _, err := r.CommentPost("amy", "ghost", 0, "agree", "hi"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
	if _, err := r.CommentPost("amy", "amy", 42, "agree", "hi"); !errors.Is(err, ErrUnknownPost) {
		t.Fatalf("expected ErrUnknownPost, got %v", err)
	}
}

func TestRejectedCommentLeavesStateUnchanged(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "zed")
	post := mustPost(t, r, "amy", []string{"x"}, "true", "hi")

	if _, err := r.CommentPost("zed", "amy", post.ID(), "agree", "hi"); !errors.Is(err, ErrUnauthorizedComment) {
		t.Fatalf("expected ErrUnauthorizedComment, got %v", err)
	}

	if post.NumComments() != 0 {
		t.Fatalf("rejected comment must not be recorded on the post")
	}
	zed, _ := r.User("zed")
	if zed.NumComments() != 0 {
		t.Fatalf("rejected comment must not be recorded on the commenter")
	}
	if _, err := r.TopPost(); !errors.Is(err, ErrNoTopPost) {
		t.Fatalf("rejected comment must not set the top post, got %v", err)
	}
}

func TestNoTopErrorsBeforeQualifyingEvents(t *testing.T) {
	r := NewRegistry()

	if _, err := r.TopPost(); !errors.Is(err, ErrNoTopPost) {
		t.Fatalf("expected ErrNoTopPost, got %v", err)
	}
	if _, err := r.TopPoster(); !errors.Is(err, ErrNoTopPoster) {
		t.Fatalf("expected ErrNoTopPoster, got %v", err)
	}
	if _, err := r.TopResponsive(); !errors.Is(err, ErrNoTopResponsive) {
		t.Fatalf("expected ErrNoTopResponsive, got %v", err)
	}
	if _, err := r.TopLiar(); !errors.Is(err, ErrNoTopLiar) {
		t.Fatalf("expected ErrNoTopLiar, got %v", err)
	}

	// a naive user posting and commenting never qualifies for top liar
	mustRegister(t, r, KindNaive, "amy")
	mustPost(t, r, "amy", []string{"x"}, "true", "hi")
	mustComment(t, r, "amy", "amy", 0, "agree", "self")
	if _, err := r.TopLiar(); !errors.Is(err, ErrNoTopLiar) {
		t.Fatalf("expected ErrNoTopLiar after naive activity, got %v", err)
	}
}

func TestTopPostComparatorOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"alice", "bob", "hub", "zed"} {
		mustRegister(t, r, KindNaive, id)
	}
	// hub is everyone's friend and does all the commenting
	mustBefriend(t, r, "hub", "alice")
	mustBefriend(t, r, "hub", "bob")
	mustBefriend(t, r, "hub", "zed")

	bobPost := mustPost(t, r, "bob", []string{"x"}, "true", "bob post")
	alicePost := mustPost(t, r, "alice", []string{"x"}, "true", "alice post")
	zedPost := mustPost(t, r, "zed", []string{"x"}, "true", "zed post")

	for i := 0; i < 3; i++ {
		mustComment(t, r, "hub", "bob", bobPost.ID(), "agree", "c")
	}
	top, err := r.TopPost()
	if err != nil {
		t.Fatalf("top post: %v", err)
	}
	if top.ID() != bobPost.ID() {
		t.Fatalf("expected bob's post on top")
	}

	// 3-3 tie: alice beats bob lexicographically
	for i := 0; i < 3; i++ {
		mustComment(t, r, "hub", "alice", alicePost.ID(), "agree", "c")
	}
	top, _ = r.TopPost()
	if top.ID() != alicePost.ID() {
		t.Fatalf("expected alice's post to win the tie, got author %s", top.AuthorID())
	}

	// comment count dominates every other level
	for i := 0; i < 5; i++ {
		mustComment(t, r, "hub", "zed", zedPost.ID(), "agree", "c")
	}
	top, _ = r.TopPost()
	if top.ID() != zedPost.ID() {
		t.Fatalf("expected zed's post on top, got author %s", top.AuthorID())
	}
}

func TestTopPostSameAuthorRecencyTieBreak(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	first := mustPost(t, r, "amy", []string{"x"}, "true", "first")
	second := mustPost(t, r, "amy", []string{"x"}, "true", "second")

	mustComment(t, r, "amy", "amy", first.ID(), "agree", "c")
	top, _ := r.TopPost()
	if top.ID() != first.ID() {
		t.Fatalf("expected first post on top")
	}

	// same author, same count: the larger post id wins
	mustComment(t, r, "amy", "amy", second.ID(), "agree", "c")
	top, _ = r.TopPost()
	if top.ID() != second.ID() {
		t.Fatalf("expected the more recent post to win the same-author tie")
	}
}

func TestTopPosterCountAndTies(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")

	mustPost(t, r, "bob", []string{"x"}, "true", "one")
	top, err := r.TopPoster()
	if err != nil {
		t.Fatalf("top poster: %v", err)
	}
	if top.ID() != "bob" {
		t.Fatalf("expected bob as first top poster")
	}

	// 1-1 post tie, no comments anywhere: amy wins on id
	mustPost(t, r, "amy", []string{"x"}, "true", "one")
	top, _ = r.TopPoster()
	if top.ID() != "amy" {
		t.Fatalf("expected amy to win the id tie, got %s", top.ID())
	}

	// post count dominates
	mustPost(t, r, "bob", []string{"x"}, "true", "two")
	top, _ = r.TopPoster()
	if top.ID() != "bob" {
		t.Fatalf("expected bob to retake the lead, got %s", top.ID())
	}
}

func TestTopResponsive(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	mustBefriend(t, r, "amy", "bob")

	mustPost(t, r, "amy", []string{"x"}, "true", "one")
	mustPost(t, r, "amy", []string{"x"}, "true", "two")

	// bob commented 1 of 2 visible posts
	mustComment(t, r, "bob", "amy", 0, "agree", "c")
	top, err := r.TopResponsive()
	if err != nil {
		t.Fatalf("top responsive: %v", err)
	}
	if top.ID() != "bob" {
		t.Fatalf("expected bob as top responsive")
	}

	// amy comments both of her own posts: 2/2 beats bob's 1/2
	mustComment(t, r, "amy", "amy", 0, "agree", "c")
	mustComment(t, r, "amy", "amy", 1, "agree", "c")
	top, _ = r.TopResponsive()
	if top.ID() != "amy" {
		t.Fatalf("expected amy to overtake, got %s", top.ID())
	}
	if got := top.Responsiveness(); got != 1 {
		t.Fatalf("expected responsiveness 1, got %v", got)
	}
}

func TestTopLiar(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindLiar, "lex")
	mustRegister(t, r, KindLiar, "mia")

	mustPost(t, r, "lex", []string{"x"}, "true", "one")
	top, err := r.TopLiar()
	if err != nil {
		t.Fatalf("top liar: %v", err)
	}
	if top.ID() != "lex" || top.NumLies() != 1 {
		t.Fatalf("expected lex with 1 lie, got %s with %d", top.ID(), top.NumLies())
	}

	mustPost(t, r, "mia", []string{"x"}, "true", "one")
	top, _ = r.TopLiar()
	if top.ID() != "lex" {
		t.Fatalf("tied liar must not displace the incumbent")
	}

	mustPost(t, r, "mia", []string{"x"}, "true", "two")
	top, _ = r.TopLiar()
	if top.ID() != "mia" || top.NumLies() != 2 {
		t.Fatalf("expected mia with 2 lies, got %s with %d", top.ID(), top.NumLies())
	}
}

func TestUsersIterationOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"zed", "amy", "mia", "bob"} {
		mustRegister(t, r, KindNaive, id)
	}

	users := r.Users()
	want := []string{"amy", "bob", "mia", "zed"}
	if len(users) != len(want) {
		t.Fatalf("expected %d users, got %d", len(want), len(users))
	}
	for i, u := range users {
		if u.ID() != want[i] {
			t.Fatalf("users out of order at %d: got %s want %s", i, u.ID(), want[i])
		}
	}
}

func TestUserFriendsIterationOrderAndEmpty(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"amy", "zed", "bob", "mia"} {
		mustRegister(t, r, KindNaive, id)
	}
	mustBefriend(t, r, "amy", "zed")
	mustBefriend(t, r, "amy", "bob")

	friends, err := r.UserFriends("amy")
	if err != nil {
		t.Fatalf("friends: %v", err)
	}
	if len(friends) != 2 || friends[0].ID() != "bob" || friends[1].ID() != "zed" {
		t.Fatalf("friends out of order")
	}

	if _, err := r.UserFriends("mia"); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := r.UserFriends("ghost"); !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
}

func TestUserPostsAndSinglePostLookup(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	first := mustPost(t, r, "amy", []string{"x"}, "true", "one")
	second := mustPost(t, r, "amy", []string{"y"}, "false", "two")

	posts, err := r.UserPosts("amy")
	if err != nil {
		t.Fatalf("posts: %v", err)
	}
	if len(posts) != 2 || posts[0].ID() != first.ID() || posts[1].ID() != second.ID() {
		t.Fatalf("posts must come back in creation order")
	}

	if _, err := r.UserPosts("bob"); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}

	got, err := r.UserPost("amy", second.ID())
	if err != nil {
		t.Fatalf("single post: %v", err)
	}
	if got.Message() != "two" {
		t.Fatalf("unexpected post")
	}
	if _, err := r.UserPost("amy", 99); !errors.Is(err, ErrUnknownPost) {
		t.Fatalf("expected ErrUnknownPost, got %v", err)
	}
}

func TestUserCommentsByHashtag(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	mustBefriend(t, r, "amy", "bob")

	tagged := mustPost(t, r, "amy", []string{"go", "news"}, "true", "tagged")
	plain := mustPost(t, r, "amy", []string{"misc"}, "true", "plain")

	mustComment(t, r, "bob", "amy", tagged.ID(), "agree", "on tagged")
	mustComment(t, r, "bob", "amy", plain.ID(), "agree", "on plain")

	comments, err := r.UserComments("bob", "go")
	if err != nil {
		t.Fatalf("comments: %v", err)
	}
	if len(comments) != 1 || comments[0].Message() != "on tagged" {
		t.Fatalf("expected only the comment on the tagged post")
	}

	if _, err := r.UserComments("bob", "sports"); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
	if _, err := r.UserComments("amy", "go"); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection for user with no comments, got %v", err)
	}
}

func TestHashtagFanatics(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterFanatic("zed", map[string]int{"go": 3, "cats": 1}); err != nil {
		t.Fatalf("register fanatic: %v", err)
	}
	if err := r.RegisterFanatic("amy", map[string]int{"go": 5}); err != nil {
		t.Fatalf("register fanatic: %v", err)
	}

	fans, err := r.HashtagFanatics("go")
	if err != nil {
		t.Fatalf("fanatics: %v", err)
	}
	if len(fans) != 2 || fans[0].ID() != "amy" || fans[1].ID() != "zed" {
		t.Fatalf("fanatics must come back in id order")
	}

	fans, err = r.HashtagFanatics("cats")
	if err != nil || len(fans) != 1 || fans[0].ID() != "zed" {
		t.Fatalf("unexpected cats fanatics: %v", err)
	}

	if _, err := r.HashtagFanatics("dogs"); !errors.Is(err, ErrEmptyCollection) {
		t.Fatalf("expected ErrEmptyCollection, got %v", err)
	}
}

func TestEndToEndScenario(t *testing.T) {
	r := NewRegistry()
	mustRegister(t, r, KindNaive, "amy")
	mustRegister(t, r, KindNaive, "bob")
	mustBefriend(t, r, "amy", "bob")

	post := mustPost(t, r, "amy", []string{"x"}, "true", "hi")
	if post.ID() != 0 {
		t.Fatalf("expected first post id 0, got %d", post.ID())
	}
	if friends := post.AuthorFriends(); len(friends) != 1 || friends[0] != "bob" {
		t.Fatalf("expected snapshot {bob}, got %v", friends)
	}

	mustComment(t, r, "bob", "amy", 0, "agree", "nice")
	if post.NumComments() != 1 {
		t.Fatalf("expected 1 comment")
	}

	topPoster, err := r.TopPoster()
	if err != nil || topPoster.ID() != "amy" {
		t.Fatalf("expected amy as top poster")
	}
	topPost, err := r.TopPost()
	if err != nil || topPost.AuthorID() != "amy" {
		t.Fatalf("expected amy as top post author")
	}
	topResponsive, err := r.TopResponsive()
	if err != nil || topResponsive.ID() != "bob" {
		t.Fatalf("expected bob as top responsive")
	}
}
