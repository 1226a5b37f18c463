package data

import (
	"context"
	"database/sql"

	"github.com/jack-barr3tt/metro-engine/src/common/types"
)

func (dc *DataClient) GetAllLines(ctx context.Context) ([]types.Line, error) {
	rows, err := dc.pg.Query(ctx, `
		SELECT id, name, color, extra_fare
		FROM line
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []types.Line{}
	index := make(map[int64]int)

	for rows.Next() {
		var line types.Line
		var color sql.NullString

		if err := rows.Scan(&line.ID, &line.Name, &color, &line.ExtraFare); err != nil {
			return nil, err
		}
		if color.Valid {
			line.Color = color.String
		}
		line.Sections = []types.Section{}

		index[line.ID] = len(lines)
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	sectionRows, err := dc.pg.Query(ctx, `
		SELECT line_id, pre_station_id, station_id, distance, duration
		FROM section
		ORDER BY line_id, id
	`)
	if err != nil {
		return nil, err
	}
	defer sectionRows.Close()

	for sectionRows.Next() {
		var section types.Section
		if err := sectionRows.Scan(
			&section.LineID,
			&section.PreStationID,
			&section.StationID,
			&section.Distance,
			&section.Duration,
		); err != nil {
			return nil, err
		}

		i, ok := index[section.LineID]
		if !ok {
			dc.logger.Warnw("section references unknown line", "line_id", section.LineID, "station_id", section.StationID)
			continue
		}
		lines[i].Sections = append(lines[i].Sections, section)
	}

	if err = sectionRows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
