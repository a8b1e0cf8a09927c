package social

import "errors"

var (
	ErrUnknownUser         = errors.New("user does not exist")
	ErrDuplicateUser       = errors.New("user already registered")
	ErrUnknownKind         = errors.New("unknown user kind")
	ErrSelfFriendship      = errors.New("users cannot befriend themselves")
	ErrUsersAlreadyFriends = errors.New("users are already friends")
	ErrUnknownPost         = errors.New("post does not exist")
	ErrUnauthorizedComment = errors.New("user cannot comment on this post")

	ErrNoTopPost       = errors.New("no posts have been commented yet")
	ErrNoTopPoster     = errors.New("nobody has posted anything yet")
	ErrNoTopResponsive = errors.New("nobody has commented anything yet")
	ErrNoTopLiar       = errors.New("nobody has lied yet")

	ErrEmptyCollection = errors.New("nothing to list")
)
