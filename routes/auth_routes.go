package routes

import (
	"github.com/gin-gonic/gin"

	authControllers "github.com/premstore/storefront-api/controllers/auth"
)

func SetupAuthRoutes(api *gin.RouterGroup, deps *Deps) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", authControllers.Register(deps.Store))
		auth.POST("/login", authControllers.Login(deps.Store))
		auth.GET("/user/:id", authControllers.GetUser(deps.Store))
	}
}
