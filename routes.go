package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"dsback/pkg/objstore"
	"dsback/store"
)

// app bundles the entity stores and collaborators the handlers need. The
// stores never touch HTTP; handlers are the only place errors become status
// codes.
type app struct {
	vehicles  *store.VehicleStore
	customers *store.CustomerStore
	contracts *store.ContractStore
	images    *store.ContractImageStore
	files     objstore.Store
	log       *logrus.Logger
}

func newApp(db *gorm.DB, files objstore.Store, log *logrus.Logger) *app {
	return &app{
		vehicles:  store.NewVehicleStore(db),
		customers: store.NewCustomerStore(db),
		contracts: store.NewContractStore(db),
		images:    store.NewContractImageStore(db),
		files:     files,
		log:       log,
	}
}

func setupRoutes(r *gin.Engine, a *app) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	v := api.Group("/vehicles")
	v.POST("/new", a.createVehicle)
	v.GET("", a.listVehicles)
	v.GET("/makes", a.vehicleMakes)
	v.GET("/search", a.searchVehicles)
	v.GET("/vin/:vin", a.getVehicleByVIN)
	v.GET("/:id", a.getVehicle)
	v.PUT("/:id", a.updateVehicle)
	v.DELETE("/:id", a.deleteVehicle)

	cu := api.Group("/customers")
	cu.POST("/new", a.createCustomer)
	cu.GET("", a.listCustomers)
	cu.GET("/phone/:phone", a.getCustomerByPhone)
	cu.GET("/search/:name", a.searchCustomers)
	cu.GET("/:id", a.getCustomer)
	cu.PUT("/:id", a.updateCustomer)
	cu.DELETE("/:id", a.deleteCustomer)

	co := api.Group("/contracts")
	co.POST("/new", a.createContract)
	co.GET("", a.listContracts)
	co.GET("/search", a.searchContracts)
	co.GET("/number/:number", a.getContractByNumber)
	co.GET("/:id", a.getContract)
	co.PUT("/:id", a.updateContract)
	co.DELETE("/:id", a.deleteContract)

	cf := api.Group("/contract-files")
	cf.POST("/upload", a.uploadContractFile)
	cf.GET("/contract/:id", a.listContractFiles)
	cf.DELETE("/:id", a.deleteContractFile)
}

// requestLogger tags each request with an id and writes one access-log line
// when the handler chain finishes.
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
		}).Info("request")
	}
}

// pathID parses the :id parameter, answering 400 itself on garbage input.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// storeError maps a store failure to a response: not-found is an expected
// condition answered with a generic 404; anything else is logged server-side
// and answered with a generic 500.
func (a *app) storeError(c *gin.Context, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	a.log.WithField("op", op).WithError(err).Error("store failure")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
