package api

import "github.com/gofiber/fiber/v2"

func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/health", s.GetHealth)
	router.Get("/stations", s.GetStations)
	router.Get("/lines", s.GetLines)
	router.Get("/paths", s.GetPath)
}
