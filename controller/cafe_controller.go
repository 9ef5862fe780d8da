package controller

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"cafe-manager/model"
	"cafe-manager/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxLogoSize = 2 << 20 // 2 MiB

type CafeController struct {
	service   *service.CafeService
	uploadDir string
}

func NewCafeController(svc *service.CafeService, uploadDir string) *CafeController {
	return &CafeController{service: svc, uploadDir: uploadDir}
}

func (ctl *CafeController) List(c *gin.Context) {
	views, err := ctl.service.List(c.Query("location"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch cafes"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *CafeController) Create(c *gin.Context) {
	var req model.CafeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	id, err := ctl.service.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create cafe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctl *CafeController) Update(c *gin.Context) {
	var req model.CafeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := ctl.service.Update(&req); err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Cafe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *CafeController) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Cafe id is required"})
		return
	}

	if err := ctl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrCafeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Cafe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// UploadLogo stores a logo image and returns the path to reference as
// logo_url. Files over 2 MiB are rejected.
func (ctl *CafeController) UploadLogo(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Logo file is required"})
		return
	}

	if file.Size > maxLogoSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": fmt.Sprintf("File size must be less than 2MB. Received: %.2fMB", float64(file.Size)/(1<<20)),
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowedExts := map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	if !allowedExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid file type, only JPG/JPEG/PNG allowed"})
		return
	}

	logoDir := filepath.Join(ctl.uploadDir, "cafes")
	if err := os.MkdirAll(logoDir, 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create upload directory"})
		return
	}

	filename := fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(logoDir, filename)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to save file"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"file_path": "uploads/cafes/" + filename,
		"filename":  filename,
	})
}

func conflictDetail(err error) (string, bool) {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "Email address already in use", true
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return "Referenced cafe does not exist", true
	}
	return "", false
}
