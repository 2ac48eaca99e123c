package handlers

import (
	"net/http"

	"aerovoice/models"
	"aerovoice/services/flights"
	"aerovoice/utils"

	"github.com/gin-gonic/gin"
)

type flightsQuery struct {
	Origin      string `json:"origin" form:"origin"`
	Destination string `json:"destination" form:"destination"`
	Date        string `json:"date" form:"date"`
	Class       string `json:"class" form:"class"`
}

// FlightsLookupHandler serves availability for a route from the static route
// table, optionally class-filtered. Accepts a JSON body or query params.
func FlightsLookupHandler(c *gin.Context) {
	var q flightsQuery
	if c.Request.Method == http.MethodPost {
		if err := c.ShouldBindJSON(&q); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid flights request", err.Error())
			return
		}
	} else {
		if err := c.ShouldBindQuery(&q); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid flights query", err.Error())
			return
		}
	}

	if q.Origin == "" || q.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination are required"})
		return
	}

	offers := flights.LocalFlights(q.Origin, q.Destination)
	if q.Class != "" {
		offers = flights.FilterByClass(offers, q.Class)
	}
	if offers == nil {
		offers = []models.FlightOffer{}
	}

	c.JSON(http.StatusOK, gin.H{
		"route":   flights.RouteKey(q.Origin, q.Destination),
		"date":    q.Date,
		"flights": offers,
	})
}
