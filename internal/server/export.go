package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (s *Server) ExportPersonsCSV(c *gin.Context) {
	data, err := s.personSvc.ExportCSV(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="persons.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func (s *Server) ExportPersonsExcel(c *gin.Context) {
	data, err := s.personSvc.ExportExcel(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="persons.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}
