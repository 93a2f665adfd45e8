package handlers

import (
	"blog-cms/helper"
	"blog-cms/middleware"
	"blog-cms/models"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Router bundles everything the HTTP routes are built from.
type Router struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Posts    *PostHandler
	Comments *CommentHandler
	Mediator *middleware.Mediator
	Helper   *helper.HTTPHelper
	Log      *zap.Logger
}

func (rt *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(rt.Log),
		middleware.CORS(),
		gzip.Gzip(gzip.DefaultCompression),
	)

	router.GET("/health", func(c *gin.Context) {
		rt.Helper.SendSuccess(c, gin.H{"status": "healthy"})
	})

	authenticated := rt.Mediator.Authenticated()
	adminOnly := rt.Mediator.RequireRole(models.RoleAdmin)

	router.POST("/register", rt.Auth.Register)
	router.POST("/login", rt.Auth.Login)
	router.POST("/logout", rt.Auth.Logout)

	users := router.Group("/users", authenticated, adminOnly)
	{
		users.GET("", rt.Users.GetUsers)
		users.GET("/roles", rt.Users.GetRoles)
		users.PATCH("/:id", rt.Users.EditUser)
		users.DELETE("/:id", rt.Users.DeleteUser)
	}

	posts := router.Group("/posts")
	{
		posts.GET("", rt.Posts.GetPosts)
		posts.GET("/:id", rt.Posts.GetPost)
		posts.POST("", authenticated, adminOnly, rt.Posts.AddPost)
		posts.PATCH("/:id", authenticated, adminOnly, rt.Posts.EditPost)
		posts.DELETE("/:id", authenticated, adminOnly, rt.Posts.DeletePost)

		posts.POST("/:id/comments", authenticated, rt.Comments.AddComment)
		posts.DELETE("/:id/comments/:commentId", authenticated,
			rt.Mediator.RequireRole(models.RoleAdmin, models.RoleModerator),
			rt.Comments.DeleteComment)
	}

	return router
}
