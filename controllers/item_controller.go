package controllers

import (
	"errors"
	"net/http"

	"shop-api/models"
	"shop-api/services"

	"github.com/gin-gonic/gin"
)

type ItemController struct {
	itemService *services.ItemService
}

func NewItemController(itemService *services.ItemService) *ItemController {
	return &ItemController{
		itemService: itemService,
	}
}

// @Summary Create an item
// @Description Create a new catalog item with a unique name
// @Tags Items
// @Accept json
// @Produce json
// @Param item body models.CreateItemRequest true "Item to create"
// @Success 200 {object} models.ItemResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /items/ [post]
func (ctrl *ItemController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   err.Error(),
		})
		return
	}

	item, err := ctrl.itemService.CreateItem(req)
	if err != nil {
		if errors.Is(err, services.ErrItemExists) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Success: false,
				Message: "Item with this name already exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to create item",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary List items
// @Description Get all catalog items
// @Tags Items
// @Produce json
// @Success 200 {object} models.ListItemsResponse
// @Router /items/ [get]
func (ctrl *ItemController) GetAllItems(c *gin.Context) {
	result, err := ctrl.itemService.ListItems()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to retrieve items",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
