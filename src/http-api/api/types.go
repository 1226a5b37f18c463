package api

import "github.com/jack-barr3tt/metro-engine/src/common/types"

type ErrorResponse struct {
	Error   string  `json:"error"`
	Message string  `json:"message"`
	Stack   *string `json:"stack,omitempty"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type LineResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Color      string  `json:"color,omitempty"`
	ExtraFare  int     `json:"extra_fare"`
	StationIDs []int64 `json:"station_ids"`
}

type PathResponse = types.RouteResponse
