package api

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func (s *APIServer) GetStations(c *fiber.Ctx) error {
	stations, err := s.Data.GetAllStations(c.UserContext())
	if err != nil {
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Database error",
			Message: "Failed to retrieve stations",
			Stack:   &errStr,
		})
	}

	return c.JSON(stations)
}

func (s *APIServer) GetLines(c *fiber.Ctx) error {
	lines, err := s.Data.GetAllLines(c.UserContext())
	if err != nil {
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Database error",
			Message: "Failed to retrieve lines",
			Stack:   &errStr,
		})
	}

	response := make([]LineResponse, 0, len(lines))
	for i := range lines {
		line := &lines[i]
		response = append(response, LineResponse{
			ID:         line.ID,
			Name:       line.Name,
			Color:      line.Color,
			ExtraFare:  line.ExtraFare,
			StationIDs: line.StationIDs(),
		})
	}

	return c.JSON(response)
}
