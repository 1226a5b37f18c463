package route

import "github.com/jack-barr3tt/metro-engine/src/common/types"

var (
	gangnam   = types.Station{ID: 1, Name: "Gangnam"}
	yeoksam   = types.Station{ID: 2, Name: "Yeoksam"}
	seolleung = types.Station{ID: 3, Name: "Seolleung"}
	samseong  = types.Station{ID: 4, Name: "Samseong"}
	daegu     = types.Station{ID: 6, Name: "Daegu"}
	dongDaegu = types.Station{ID: 7, Name: "DongDaegu"}
)

func allStations() []types.Station {
	return []types.Station{gangnam, yeoksam, seolleung, samseong, daegu, dongDaegu}
}

func head(lineID, station int64) types.Section {
	return types.Section{LineID: lineID, StationID: station, Distance: 10, Duration: 10}
}

func link(lineID, from, to int64, distance, duration int) types.Section {
	return types.Section{
		LineID:       lineID,
		PreStationID: types.Int64Ptr(from),
		StationID:    to,
		Distance:     distance,
		Duration:     duration,
	}
}

// line two runs Gangnam -> Yeoksam -> Seolleung -> Samseong, 10/10 per hop.
func lineTwo() types.Line {
	return types.Line{
		ID:   2,
		Name: "Line 2",
		Sections: []types.Section{
			head(2, gangnam.ID),
			link(2, gangnam.ID, yeoksam.ID, 10, 10),
			link(2, yeoksam.ID, seolleung.ID, 10, 10),
			link(2, seolleung.ID, samseong.ID, 10, 10),
		},
	}
}

// line three runs Daegu -> DongDaegu and shares nothing with line two.
func lineThree() types.Line {
	return types.Line{
		ID:   3,
		Name: "Line 3",
		Sections: []types.Section{
			head(3, daegu.ID),
			link(3, daegu.ID, dongDaegu.ID, 10, 10),
		},
	}
}

// express is a slow but short shortcut Gangnam -> Samseong.
func express() types.Line {
	return types.Line{
		ID:        9,
		Name:      "Express",
		ExtraFare: 900,
		Sections: []types.Section{
			head(9, gangnam.ID),
			link(9, gangnam.ID, samseong.ID, 15, 60),
		},
	}
}
