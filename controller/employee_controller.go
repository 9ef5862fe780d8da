package controller

import (
	"errors"
	"fmt"
	"net/http"

	"cafe-manager/model"
	"cafe-manager/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type EmployeeController struct {
	service *service.EmployeeService
}

func NewEmployeeController(svc *service.EmployeeService) *EmployeeController {
	return &EmployeeController{service: svc}
}

func (ctl *EmployeeController) List(c *gin.Context) {
	views, err := ctl.service.List(c.Query("cafe"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch employees"})
		return
	}
	c.JSON(http.StatusOK, views)
}

func (ctl *EmployeeController) Create(c *gin.Context) {
	var req model.EmployeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	id, err := ctl.service.Create(&req)
	if err != nil {
		if detail, ok := conflictDetail(err); ok {
			c.JSON(http.StatusConflict, gin.H{"detail": detail})
			return
		}
		if errors.Is(err, service.ErrIDGenerationExhausted) {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to create employee"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (ctl *EmployeeController) Update(c *gin.Context) {
	var req model.EmployeeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	if err := ctl.service.Update(&req); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Employee not found"})
			return
		}
		if detail, ok := conflictDetail(err); ok {
			c.JSON(http.StatusConflict, gin.H{"detail": detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *EmployeeController) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Employee id is required"})
		return
	}

	if err := ctl.service.Delete(id); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Employee not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to delete employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Export streams the employee roster as an Excel workbook, honoring the
// same optional cafe filter as List.
func (ctl *EmployeeController) Export(c *gin.Context) {
	views, err := ctl.service.List(c.Query("cafe"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to fetch employees"})
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	headers := []interface{}{"ID", "Name", "Email Address", "Phone Number", "Gender", "Days Worked", "Cafe"}
	if err := xl.SetSheetRow("Sheet1", "A1", &headers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to build export"})
		return
	}
	for i, view := range views {
		cafe := ""
		if view.Cafe != nil {
			cafe = *view.Cafe
		}
		row := []interface{}{view.ID, view.Name, view.EmailAddress, view.PhoneNumber, string(view.Gender), view.DaysWorked, cafe}
		cell := fmt.Sprintf("A%d", i+2)
		if err := xl.SetSheetRow("Sheet1", cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to build export"})
			return
		}
	}

	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xl.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to write export"})
	}
}
