package server

import (
	"Pulse/handler"
)

type Handlers struct {
	Auth       *handler.Auth
	Post       *handler.Post
	Comment    *handler.Comment
	Like       *handler.Like
	Friendship *handler.Friendship
	Message    *handler.Message
	Feed       *handler.Feed
}
