// Package router assembles the gin engine and route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	usershandler "user_backend/internal/feature/users/transport/handler"
	platformhandler "user_backend/internal/platform/http/handler"
)

// NewRouter builds the gin engine with all routes registered.
func NewRouter(users *usershandler.UserHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/healthz", platformhandler.Health)

	u := r.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", users.List)
		u.GET("/:userId", users.Get)
		u.PUT("/:userId", users.Update)
		u.DELETE("/:userId", users.Delete)
	}

	return r
}
