package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"dsback/models"
	"dsback/pkg/objstore"
)

const maxUploadSize = 10 << 20 // 10 MB

var allowedMimeTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// uploadContractFile accepts a multipart upload, streams the bytes to the
// object store and records a metadata row referencing the contract. The
// operation is single-shot: a store failure leaves no metadata row behind.
func (a *app) uploadContractFile(c *gin.Context) {
	if a.files == nil {
		a.log.Error("upload requested but no object store is configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file storage not configured"})
		return
	}

	contractID, err := strconv.ParseUint(c.PostForm("contract_id"), 10, 32)
	if err != nil || contractID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contract_id"})
		return
	}
	if _, err := a.contracts.GetByID(c.Request.Context(), uint(contractID)); err != nil {
		a.storeError(c, "upload contract lookup", err)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported file type"})
		return
	}

	src, err := file.Open()
	if err != nil {
		a.log.WithError(err).Error("open uploaded file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	defer src.Close()

	key := objstore.ObjectKey(uint(contractID), file.Filename, time.Now())
	if err := a.files.Put(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		a.log.WithField("key", key).WithError(err).Error("object store put failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file storage failed"})
		return
	}

	img := models.ContractImage{
		ContractID:  uint(contractID),
		FileName:    file.Filename,
		FileURL:     a.files.PublicURL(key),
		FileSize:    file.Size,
		MimeType:    contentType,
		Description: c.PostForm("description"),
		UploadedBy:  c.PostForm("uploaded_by"),
		StoragePath: key,
	}
	if err := a.images.Create(c.Request.Context(), &img); err != nil {
		a.storeError(c, "create contract file record", err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (a *app) listContractFiles(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	out, err := a.images.ListByContract(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "list contract files", err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// deleteContractFile removes the metadata row and then best-effort deletes
// the stored object. The row is the source of truth; an object-store delete
// failure is logged, not surfaced.
func (a *app) deleteContractFile(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	img, err := a.images.GetByID(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "get contract file", err)
		return
	}
	removed, err := a.images.Delete(c.Request.Context(), id)
	if err != nil {
		a.storeError(c, "delete contract file", err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if a.files != nil && img.StoragePath != "" {
		if err := a.files.Delete(c.Request.Context(), img.StoragePath); err != nil {
			a.log.WithField("key", img.StoragePath).WithError(err).Warn("object store delete failed")
		}
	}
	c.Status(http.StatusNoContent)
}
