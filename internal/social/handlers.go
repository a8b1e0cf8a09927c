package social

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/goncalovirginia/Fakebook/internal/stream"
)

func RegisterRoutes(r fiber.Router, reg *Registry, hub *stream.Hub) {
	r.Post("/users", func(c *fiber.Ctx) error {
		var req RegisterUserRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.Kind == "" || req.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "kind and id required")
		}
		kind, err := ParseKind(req.Kind)
		if err != nil {
			return httpError(err)
		}
		if err := reg.RegisterUser(kind, req.ID); err != nil {
			return httpError(err)
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	r.Post("/users/fanatic", func(c *fiber.Ctx) error {
		var req RegisterFanaticRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.ID == "" || len(req.Fanaticisms) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "id and fanaticisms required")
		}
		if err := reg.RegisterFanatic(req.ID, req.Fanaticisms); err != nil {
			return httpError(err)
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	r.Post("/friends", func(c *fiber.Ctx) error {
		var req FriendRequest
		if err := c.BodyParser(&req); err != nil || req.UserID1 == "" || req.UserID2 == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id_1 and user_id_2 required")
		}
		if err := reg.AddFriend(req.UserID1, req.UserID2); err != nil {
			return httpError(err)
		}
		return c.SendStatus(fiber.StatusCreated)
	})

	r.Post("/posts", func(c *fiber.Ctx) error {
		var req PostRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.UserID == "" || req.Message == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id and message required")
		}
		post, err := reg.Post(req.UserID, req.Hashtags, req.Stance, req.Message)
		if err != nil {
			return httpError(err)
		}
		publishPost(hub, post)
		return c.Status(fiber.StatusCreated).JSON(viewPost(post, false))
	})

	r.Post("/comments", func(c *fiber.Ctx) error {
		var req CommentRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if req.CommenterID == "" || req.AuthorID == "" || req.PostID == nil {
			return fiber.NewError(fiber.StatusBadRequest, "commenter_id, author_id and post_id required")
		}
		comment, err := reg.CommentPost(req.CommenterID, req.AuthorID, *req.PostID, req.Stance, req.Message)
		if err != nil {
			return httpError(err)
		}
		if post, err := reg.UserPost(req.AuthorID, *req.PostID); err == nil {
			publishComment(hub, post, comment)
		}
		return c.Status(fiber.StatusCreated).JSON(viewComment(comment))
	})

	r.Get("/users", func(c *fiber.Ctx) error {
		return c.JSON(summarizeUsers(reg.Users()))
	})

	r.Get("/users/:id", func(c *fiber.Ctx) error {
		user, err := reg.User(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summarizeUser(user))
	})

	r.Get("/users/:id/friends", func(c *fiber.Ctx) error {
		friends, err := reg.UserFriends(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summarizeUsers(friends))
	})

	r.Get("/users/:id/posts", func(c *fiber.Ctx) error {
		posts, err := reg.UserPosts(c.Params("id"))
		if err != nil {
			return httpError(err)
		}
		views := make([]PostView, 0, len(posts))
		for _, p := range posts {
			views = append(views, viewPost(p, false))
		}
		return c.JSON(views)
	})

	r.Get("/users/:id/posts/:postID", func(c *fiber.Ctx) error {
		postID, err := strconv.Atoi(c.Params("postID"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "post id must be an integer")
		}
		post, err := reg.UserPost(c.Params("id"), postID)
		if err != nil {
			return httpError(err)
		}
		return c.JSON(viewPost(post, true))
	})

	r.Get("/users/:id/comments", func(c *fiber.Ctx) error {
		hashtag := c.Query("hashtag")
		if hashtag == "" {
			return fiber.NewError(fiber.StatusBadRequest, "hashtag required")
		}
		comments, err := reg.UserComments(c.Params("id"), hashtag)
		if err != nil {
			return httpError(err)
		}
		views := make([]CommentView, 0, len(comments))
		for _, cm := range comments {
			views = append(views, viewComment(cm))
		}
		return c.JSON(views)
	})

	r.Get("/hashtags/:hashtag/fanatics", func(c *fiber.Ctx) error {
		fans, err := reg.HashtagFanatics(c.Params("hashtag"))
		if err != nil {
			return httpError(err)
		}
		views := make([]UserSummary, 0, len(fans))
		for _, f := range fans {
			views = append(views, summarizeUser(f))
		}
		return c.JSON(views)
	})

	r.Get("/top/post", func(c *fiber.Ctx) error {
		post, err := reg.TopPost()
		if err != nil {
			return httpError(err)
		}
		return c.JSON(viewPost(post, true))
	})

	r.Get("/top/poster", func(c *fiber.Ctx) error {
		user, err := reg.TopPoster()
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summarizeUser(user))
	})

	r.Get("/top/responsive", func(c *fiber.Ctx) error {
		user, err := reg.TopResponsive()
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summarizeUser(user))
	})

	r.Get("/top/liar", func(c *fiber.Ctx) error {
		liar, err := reg.TopLiar()
		if err != nil {
			return httpError(err)
		}
		return c.JSON(summarizeUser(liar))
	})
}

func httpError(err error) *fiber.Error {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorizedComment):
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	case errors.Is(err, ErrDuplicateUser),
		errors.Is(err, ErrUsersAlreadyFriends),
		errors.Is(err, ErrSelfFriendship):
		return fiber.NewError(fiber.StatusConflict, err.Error())
	case errors.Is(err, ErrUnknownUser),
		errors.Is(err, ErrUnknownPost),
		errors.Is(err, ErrEmptyCollection),
		errors.Is(err, ErrNoTopPost),
		errors.Is(err, ErrNoTopPoster),
		errors.Is(err, ErrNoTopResponsive),
		errors.Is(err, ErrNoTopLiar):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

func publishPost(hub *stream.Hub, post *Post) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(stream.Event{
		Type:     "post",
		AuthorID: post.AuthorID(),
		PostID:   post.ID(),
		Message:  post.Message(),
	})
	if err != nil {
		return
	}
	for _, tag := range post.Hashtags() {
		hub.Broadcast(tag, payload)
	}
}

func publishComment(hub *stream.Hub, post *Post, comment *Comment) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(stream.Event{
		Type:     "comment",
		AuthorID: comment.AuthorID(),
		PostID:   comment.PostID(),
		Stance:   comment.Stance(),
		Message:  comment.Message(),
	})
	if err != nil {
		return
	}
	for _, tag := range post.Hashtags() {
		hub.Broadcast(tag, payload)
	}
}
