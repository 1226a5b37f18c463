package data

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jackc/pgx/v5"
)

func (dc *DataClient) GetAllStations(ctx context.Context) ([]types.Station, error) {
	rows, err := dc.pg.Query(ctx, `
		SELECT id, name
		FROM station
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := []types.Station{}
	for rows.Next() {
		var station types.Station
		if err := rows.Scan(&station.ID, &station.Name); err != nil {
			return nil, err
		}
		stations = append(stations, station)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stations, nil
}

func (dc *DataClient) GetStationByID(ctx context.Context, id int64) (types.Station, error) {
	var station types.Station
	err := dc.pg.QueryRow(ctx, `
		SELECT id, name FROM station
		WHERE id = $1
	`, id).Scan(&station.ID, &station.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Station{}, fmt.Errorf("%w: id %d", types.ErrStationNotFound, id)
	}
	if err != nil {
		return types.Station{}, err
	}

	return station, nil
}

func (dc *DataClient) GetStationByName(ctx context.Context, name string) (types.Station, error) {
	var station types.Station
	err := dc.pg.QueryRow(ctx, `
		SELECT id, name FROM station
		WHERE name = $1
	`, name).Scan(&station.ID, &station.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return types.Station{}, fmt.Errorf("%w: %q", types.ErrStationNotFound, name)
	}
	if err != nil {
		return types.Station{}, err
	}

	return station, nil
}

type stationFinder interface {
	GetStationByID(ctx context.Context, id int64) (types.Station, error)
	GetStationByName(ctx context.Context, name string) (types.Station, error)
}

// FindStation treats a numeric reference as a station id and anything else as
// a station name. A numeric reference that matches no id is retried as a name
// so stations named with digits stay reachable.
func (dc *DataClient) FindStation(ctx context.Context, ref string) (types.Station, error) {
	return findStation(ctx, dc, ref)
}

func findStation(ctx context.Context, finder stationFinder, ref string) (types.Station, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return types.Station{}, fmt.Errorf("%w: empty reference", types.ErrStationNotFound)
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		station, err := finder.GetStationByID(ctx, id)
		if !errors.Is(err, types.ErrStationNotFound) {
			return station, err
		}
	}
	return finder.GetStationByName(ctx, ref)
}
