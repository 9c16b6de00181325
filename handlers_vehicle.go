package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dsback/models"
	"dsback/store"
)

type createVehicleRequest struct {
	VIN     string  `json:"vin" binding:"required,len=17"`
	Make    string  `json:"make" binding:"required"`
	Model   string  `json:"model" binding:"required"`
	Year    int     `json:"year" binding:"required"`
	Color   string  `json:"color"`
	Mileage int64   `json:"mileage" binding:"gte=0"`
	Price   float64 `json:"price" binding:"gte=0"`
	Status  string  `json:"status" binding:"omitempty,oneof=available rented maintenance sold"`
}

func (a *app) createVehicle(c *gin.Context) {
	var req createVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v := models.Vehicle{
		VIN:     req.VIN,
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Color:   req.Color,
		Mileage: req.Mileage,
		Price:   req.Price,
		Status:  req.Status,
	}
	if v.Status == "" {
		v.Status = models.VehicleAvailable
	}
	if err := a.vehicles.Create(c.Request.Context(), &v); err != nil {
		a.storeError(c, "create vehicle", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (a *app) listVehicles(c *gin.Context) {
	out, err := a.vehicles.List(c.Request.Context())
	if err != nil {
		a.storeError(c, "list vehicles", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *app) vehicleMakes(c *gin.Context) {
	out, err := a.vehicles.Makes(c.Request.Context())
	if err != nil {
		a.storeError(c, "vehicle makes", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *app) searchVehicles(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	out, err := a.vehicles.Search(c.Request.Context(), q)
	if err != nil {
		a.storeError(c, "search vehicles", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *app) getVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	v, err := a.vehicles.GetByID(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "get vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (a *app) getVehicleByVIN(c *gin.Context) {
	v, err := a.vehicles.GetByVIN(c.Request.Context(), c.Param("vin"))
	if err != nil {
		a.storeError(c, "get vehicle by vin", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

type updateVehicleRequest struct {
	VIN     *string  `json:"vin" binding:"omitempty,len=17"`
	Make    *string  `json:"make"`
	Model   *string  `json:"model"`
	Year    *int     `json:"year"`
	Color   *string  `json:"color"`
	Mileage *int64   `json:"mileage" binding:"omitempty,gte=0"`
	Price   *float64 `json:"price" binding:"omitempty,gte=0"`
	Status  *string  `json:"status" binding:"omitempty,oneof=available rented maintenance sold"`
}

func (a *app) updateVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	v, err := a.vehicles.Update(c.Request.Context(), id, store.VehicleUpdate{
		VIN:     req.VIN,
		Make:    req.Make,
		Model:   req.Model,
		Year:    req.Year,
		Color:   req.Color,
		Mileage: req.Mileage,
		Price:   req.Price,
		Status:  req.Status,
	})
	if err != nil {
		a.storeError(c, "update vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (a *app) deleteVehicle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := a.vehicles.Delete(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "delete vehicle", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
