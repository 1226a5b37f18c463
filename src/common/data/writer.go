package data

import (
	"context"
	"fmt"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
)

// ReplaceNetwork swaps the stored network for the given one in a single
// transaction and drops the cached snapshot once committed. Lines are
// validated before anything is written.
func (dc *DataClient) ReplaceNetwork(ctx context.Context, network *types.Network) error {
	for i := range network.Lines {
		if err := network.Lines[i].Validate(); err != nil {
			return err
		}
	}

	tx, err := dc.pg.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, "TRUNCATE TABLE section, line, station RESTART IDENTITY"); err != nil {
		return err
	}

	for _, station := range network.Stations {
		_, err := tx.Exec(ctx, "INSERT INTO station (id, name) VALUES ($1, $2)", station.ID, station.Name)
		if err != nil {
			return fmt.Errorf("inserting station %q: %w", station.Name, err)
		}
	}

	for _, line := range network.Lines {
		_, err := tx.Exec(ctx,
			"INSERT INTO line (id, name, color, extra_fare) VALUES ($1, $2, NULLIF($3, ''), $4)",
			line.ID, line.Name, line.Color, line.ExtraFare,
		)
		if err != nil {
			return fmt.Errorf("inserting line %q: %w", line.Name, err)
		}

		for _, section := range line.Sections {
			_, err := tx.Exec(ctx,
				"INSERT INTO section (line_id, pre_station_id, station_id, distance, duration) VALUES ($1, $2, $3, $4, $5)",
				line.ID, section.PreStationID, section.StationID, section.Distance, section.Duration,
			)
			if err != nil {
				return fmt.Errorf("inserting section of line %q: %w", line.Name, err)
			}
		}
	}

	for _, table := range []string{"station", "line"} {
		_, err := tx.Exec(ctx, fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)",
			table,
		))
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if err := dc.InvalidateNetwork(ctx); err != nil {
		dc.logger.Warnw("failed to drop cached network snapshot", "error", err)
	}

	return nil
}
