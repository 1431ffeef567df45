package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type dataResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dataResponse{OK: true, Data: data})
}
