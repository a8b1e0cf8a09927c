package social

type RegisterUserRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

type RegisterFanaticRequest struct {
	ID          string         `json:"id"`
	Fanaticisms map[string]int `json:"fanaticisms"`
}

type FriendRequest struct {
	UserID1 string `json:"user_id_1"`
	UserID2 string `json:"user_id_2"`
}

type PostRequest struct {
	UserID   string   `json:"user_id"`
	Hashtags []string `json:"hashtags"`
	Stance   string   `json:"stance"`
	Message  string   `json:"message"`
}

type CommentRequest struct {
	CommenterID string `json:"commenter_id"`
	AuthorID    string `json:"author_id"`
	PostID      *int   `json:"post_id"`
	Stance      string `json:"stance"`
	Message     string `json:"message"`
}

type UserSummary struct {
	ID             string         `json:"id"`
	Kind           string         `json:"kind"`
	NumFriends     int            `json:"num_friends"`
	NumPosts       int            `json:"num_posts"`
	NumComments    int            `json:"num_comments"`
	Responsiveness float64        `json:"responsiveness"`
	Lies           *int           `json:"lies,omitempty"`
	Fanaticisms    map[string]int `json:"fanaticisms,omitempty"`
}

type PostView struct {
	ID            int           `json:"id"`
	AuthorID      string        `json:"author_id"`
	Hashtags      []string      `json:"hashtags"`
	Truthful      bool          `json:"truthful"`
	Message       string        `json:"message"`
	AuthorFriends []string      `json:"author_friends"`
	NumComments   int           `json:"num_comments"`
	Comments      []CommentView `json:"comments,omitempty"`
}

type CommentView struct {
	AuthorID string `json:"author_id"`
	PostID   int    `json:"post_id"`
	Stance   string `json:"stance"`
	Message  string `json:"message"`
}

func summarizeUser(u User) UserSummary {
	s := UserSummary{
		ID:             u.ID(),
		Kind:           string(u.Kind()),
		NumFriends:     u.NumFriends(),
		NumPosts:       u.NumPosts(),
		NumComments:    u.NumComments(),
		Responsiveness: u.Responsiveness(),
	}
	if liar, ok := u.(*LiarUser); ok {
		lies := liar.NumLies()
		s.Lies = &lies
	}
	if fanatic, ok := u.(*FanaticUser); ok {
		s.Fanaticisms = fanatic.Fanaticisms()
	}
	return s
}

func summarizeUsers(users []User) []UserSummary {
	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, summarizeUser(u))
	}
	return out
}

func viewComment(c *Comment) CommentView {
	return CommentView{
		AuthorID: c.AuthorID(),
		PostID:   c.PostID(),
		Stance:   c.Stance(),
		Message:  c.Message(),
	}
}

func viewPost(p *Post, withComments bool) PostView {
	view := PostView{
		ID:            p.ID(),
		AuthorID:      p.AuthorID(),
		Hashtags:      p.Hashtags(),
		Truthful:      p.Truthful(),
		Message:       p.Message(),
		AuthorFriends: p.AuthorFriends(),
		NumComments:   p.NumComments(),
	}
	if withComments {
		for _, c := range p.Comments() {
			view.Comments = append(view.Comments, viewComment(c))
		}
	}
	return view
}
