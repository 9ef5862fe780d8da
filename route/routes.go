package route

import (
	"net/http"

	"cafe-manager/controller"

	"github.com/gin-gonic/gin"
)

func Register(router *gin.Engine, prefix string, cafes *controller.CafeController, employees *controller.EmployeeController) {
	api := router.Group(prefix)

	cafeGroup := api.Group("/cafes")
	{
		cafeGroup.GET("", cafes.List)
		cafeGroup.POST("", cafes.Create)
		cafeGroup.PUT("", cafes.Update)
		cafeGroup.DELETE("", cafes.Delete)
		cafeGroup.POST("/upload-logo", cafes.UploadLogo)
	}

	employeeGroup := api.Group("/employees")
	{
		employeeGroup.GET("", employees.List)
		employeeGroup.POST("", employees.Create)
		employeeGroup.PUT("", employees.Update)
		employeeGroup.DELETE("", employees.Delete)
		employeeGroup.GET("/export", employees.Export)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
