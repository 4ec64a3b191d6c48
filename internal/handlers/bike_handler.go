package handlers

import (
	"net/http"

	"minivutto_backend/internal/middleware"
	"minivutto_backend/internal/services"
	"minivutto_backend/internal/services/dto"
	"minivutto_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type BikeHandler struct {
	*BaseHandler
	bikeService services.BikeService
}

func NewBikeHandler(base *BaseHandler, bikeService services.BikeService) *BikeHandler {
	return &BikeHandler{
		BaseHandler: base,
		bikeService: bikeService,
	}
}

func (h *BikeHandler) ListBikes(c *gin.Context) {
	var query dto.BikeListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	bikes, err := h.bikeService.ListBikes(db, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (h *BikeHandler) GetBike(c *gin.Context) {
	db := h.GetDB(c)

	bike, err := h.bikeService.GetBike(db, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bike)
}

func (h *BikeHandler) MyListings(c *gin.Context) {
	sellerID := middleware.GetUserID(c)
	if sellerID == "" {
		apperrors.HandleError(c, apperrors.ErrMissingToken)
		return
	}

	db := h.GetDB(c)

	bikes, err := h.bikeService.ListBySeller(db, sellerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bikes)
}

func (h *BikeHandler) CreateBike(c *gin.Context) {
	sellerID := middleware.GetUserID(c)
	if sellerID == "" {
		apperrors.HandleError(c, apperrors.ErrMissingToken)
		return
	}

	var req dto.BikeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	bike, err := h.bikeService.CreateBike(db, sellerID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Bike added successfully",
		"bike":    bike,
	})
}

// UpdateBike runs behind the ownership guard; by the time we are here the
// caller is the seller of :id.
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	var req dto.BikeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	bike, err := h.bikeService.UpdateBike(db, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bike updated successfully",
		"bike":    bike,
	})
}

func (h *BikeHandler) DeleteBike(c *gin.Context) {
	db := h.GetDB(c)

	if err := h.bikeService.DeleteBike(db, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Bike deleted successfully"})
}
