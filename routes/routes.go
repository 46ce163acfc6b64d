package routes

import (
	"shop-api/controllers"
	"shop-api/repositories"
	"shop-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes wires the handlers against the repository implementations the
// given mode resolves to. Controllers only ever see the repository interfaces.
func SetupRoutes(router *gin.Engine, mode string) error {
	itemRepo, userRepo, err := repositories.New(mode)
	if err != nil {
		return err
	}

	itemCtrl := controllers.NewItemController(services.NewItemService(itemRepo))
	userCtrl := controllers.NewUserController(services.NewUserService(userRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/items/", itemCtrl.CreateItem)
	router.GET("/items/", itemCtrl.GetAllItems)

	router.POST("/users/", userCtrl.CreateUser)
	router.GET("/users/:user_id", userCtrl.GetUserByID)
	router.POST("/users/:user_id/cart", userCtrl.AddItemToCart)
	router.GET("/users/:user_id/cart", userCtrl.GetCartItems)

	return nil
}
