package api

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
)

func (s *APIServer) GetPath(c *fiber.Ctx) error {
	source := c.Query("source")
	target := c.Query("target")

	if source == "" || target == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "source and target query parameters are required",
		})
	}

	metric, err := types.ParseEdgeWeight(c.Query("type", "distance"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "type must be distance or duration",
		})
	}

	path, err := s.Routes.FindShortestPath(c.UserContext(), source, target, metric)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrStationNotFound):
			return c.Status(http.StatusNotFound).JSON(NotFoundResponse{
				Error: err.Error(),
			})
		case errors.Is(err, types.ErrDuplicateStation), errors.Is(err, types.ErrNoPath):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "Bad Request",
				Message: err.Error(),
			})
		}

		s.Logger.Errorw("failed to compute path", "error", err, "source", source, "target", target)
		errStr := err.Error()
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Internal error",
			Message: "Failed to compute path",
			Stack:   &errStr,
		})
	}

	return c.JSON(path)
}
