package http

import (
	_ "embed"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed index.html
var indexHTML []byte

func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func (s *Server) handleOptions(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.Options())
}

func (s *Server) handleBoroughBar(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.BoroughBarChart())
}

func (s *Server) handleBoroughPie(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.BoroughPieChart())
}

func (s *Server) handleYearly(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.YearlyTrendsChart())
}

func (s *Server) handleSeasonal(c *gin.Context) {
	borough := c.DefaultQuery("borough", "All")
	c.JSON(http.StatusOK, s.catalog.SeasonalChart(borough))
}

func (s *Server) handleComparison(c *gin.Context) {
	crimeType := c.Query("crime_type")
	if crimeType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crime_type is required"})
		return
	}

	var boroughs []string
	for _, b := range strings.Split(c.Query("boroughs"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			boroughs = append(boroughs, b)
		}
	}

	c.JSON(http.StatusOK, s.catalog.ComparisonChart(crimeType, boroughs))
}

func (s *Server) handleStats(c *gin.Context) {
	crimeType := c.Query("crime_type")
	if crimeType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "crime_type is required"})
		return
	}

	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = parsed
	}

	c.JSON(http.StatusOK, s.catalog.StatsAndTable(crimeType, page))
}

func (s *Server) handleMap(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.MapFigure(c.Query("crime_type")))
}
