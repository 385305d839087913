//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),
	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),
	wire.Struct(new(CommentService), "*"),
	wire.Bind(new(ICommentService), new(*CommentService)),
	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),
	wire.Struct(new(FriendshipService), "*"),
	wire.Bind(new(IFriendshipService), new(*FriendshipService)),
	wire.Struct(new(MessageService), "*"),
	wire.Bind(new(IMessageService), new(*MessageService)),
	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),
	wire.Struct(new(CacheSyncService), "*"),
)
