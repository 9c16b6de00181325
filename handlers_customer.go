package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dsback/models"
	"dsback/store"
)

type createCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Address   string `json:"address"`
}

func (a *app) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cust := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	}
	if err := a.customers.Create(c.Request.Context(), &cust); err != nil {
		a.storeError(c, "create customer", err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (a *app) listCustomers(c *gin.Context) {
	out, err := a.customers.List(c.Request.Context())
	if err != nil {
		a.storeError(c, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (a *app) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := a.customers.GetByID(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "get customer", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *app) getCustomerByPhone(c *gin.Context) {
	cust, err := a.customers.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		a.storeError(c, "get customer by phone", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *app) searchCustomers(c *gin.Context) {
	out, err := a.customers.Search(c.Request.Context(), c.Param("name"))
	if err != nil {
		a.storeError(c, "search customers", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type updateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Address   *string `json:"address"`
}

func (a *app) updateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cust, err := a.customers.Update(c.Request.Context(), id, store.CustomerUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		a.storeError(c, "update customer", err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (a *app) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := a.customers.Delete(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "delete customer", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.Status(http.StatusNoContent)
}
