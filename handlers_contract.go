package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dsback/models"
	"dsback/store"
)

type createContractRequest struct {
	ContractNumber string     `json:"contract_number" binding:"required"`
	VehicleID      uint       `json:"vehicle_id" binding:"required"`
	CustomerID     uint       `json:"customer_id" binding:"required"`
	VINNumber      string     `json:"vin_number" binding:"required,len=17"`
	CustomerName   string     `json:"customer_name" binding:"required"`
	CustomerPhone  string     `json:"customer_phone" binding:"required"`
	StartDate      time.Time  `json:"start_date" binding:"required"`
	EndDate        *time.Time `json:"end_date"`
	PaymentAmount  float64    `json:"payment_amount" binding:"gte=0"`
	TaxAmount      float64    `json:"tax_amount" binding:"gte=0"`
	DepositAmount  float64    `json:"deposit_amount" binding:"gte=0"`
	Status         string     `json:"status" binding:"omitempty,oneof=active returned completed cancelled"`
	CreatedBy      string     `json:"created_by"`
}

// createContract stores the contract as submitted. The vin_number,
// customer_name and customer_phone snapshots come pre-resolved from the
// caller and are not derived from the referenced rows here.
func (a *app) createContract(c *gin.Context) {
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ct := models.Contract{
		ContractNumber: req.ContractNumber,
		VehicleID:      req.VehicleID,
		CustomerID:     req.CustomerID,
		VINNumber:      req.VINNumber,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PaymentAmount:  req.PaymentAmount,
		TaxAmount:      req.TaxAmount,
		DepositAmount:  req.DepositAmount,
		Status:         req.Status,
		CreatedBy:      req.CreatedBy,
	}
	if ct.Status == "" {
		ct.Status = models.ContractActive
	}
	if err := a.contracts.Create(c.Request.Context(), &ct); err != nil {
		a.storeError(c, "create contract", err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (a *app) listContracts(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	out, err := a.contracts.List(c.Request.Context(), skip, limit)
	if err != nil {
		a.storeError(c, "list contracts", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *app) getContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ct, err := a.contracts.GetByID(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "get contract", err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (a *app) getContractByNumber(c *gin.Context) {
	ct, err := a.contracts.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		a.storeError(c, "get contract by number", err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (a *app) searchContracts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter q"})
		return
	}
	out, err := a.contracts.Search(c.Request.Context(), q)
	if err != nil {
		a.storeError(c, "search contracts", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateContractRequest struct {
	ContractNumber *string    `json:"contract_number"`
	VehicleID      *uint      `json:"vehicle_id"`
	CustomerID     *uint      `json:"customer_id"`
	VINNumber      *string    `json:"vin_number" binding:"omitempty,len=17"`
	CustomerName   *string    `json:"customer_name"`
	CustomerPhone  *string    `json:"customer_phone"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	PaymentAmount  *float64   `json:"payment_amount" binding:"omitempty,gte=0"`
	TaxAmount      *float64   `json:"tax_amount" binding:"omitempty,gte=0"`
	DepositAmount  *float64   `json:"deposit_amount" binding:"omitempty,gte=0"`
	Status         *string    `json:"status" binding:"omitempty,oneof=active returned completed cancelled"`
	CreatedBy      *string    `json:"created_by"`
}

func (a *app) updateContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ct, err := a.contracts.Update(c.Request.Context(), id, store.ContractUpdate{
		ContractNumber: req.ContractNumber,
		VehicleID:      req.VehicleID,
		CustomerID:     req.CustomerID,
		VINNumber:      req.VINNumber,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		PaymentAmount:  req.PaymentAmount,
		TaxAmount:      req.TaxAmount,
		DepositAmount:  req.DepositAmount,
		Status:         req.Status,
		CreatedBy:      req.CreatedBy,
	})
	if err != nil {
		a.storeError(c, "update contract", err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (a *app) deleteContract(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := a.contracts.Delete(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "delete contract", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
