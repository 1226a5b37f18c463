package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jack-barr3tt/metro-engine/src/common/data"
	"github.com/jack-barr3tt/metro-engine/src/common/fare"
	"github.com/jack-barr3tt/metro-engine/src/common/route"
	"github.com/jack-barr3tt/metro-engine/src/common/types"
	"github.com/jack-barr3tt/metro-engine/src/common/utils"
	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"
)

func newDataClient() (*data.DataClient, func(), error) {
	db, err := utils.NewPostgresConnection()
	if err != nil {
		return nil, nil, err
	}
	rdb := utils.NewRedisClient()

	closer := func() {
		rdb.Close()
		db.Close()
	}

	return data.NewDataClient(db, rdb, utils.GetLogger(), utils.GetEnvDuration("NETWORK_CACHE_TTL", data.DefaultSnapshotTTL)), closer, nil
}

func routeCommand() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "find the shortest path between two stations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "source station id or name", Required: true},
			&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "target station id or name", Required: true},
			&cli.StringFlag{Name: "type", Value: "distance", Usage: "edge weight to minimise: distance or duration"},
			&cli.StringFlag{Name: "fare-policy", EnvVars: []string{"FARE_POLICY_FILE"}, Usage: "YAML fare policy file"},
			&cli.BoolFlag{Name: "bidirectional", EnvVars: []string{"ROUTE_BIDIRECTIONAL"}, Usage: "allow travel against section direction"},
			&cli.BoolFlag{Name: "debug", Usage: "dump the full response"},
		},
		Action: func(c *cli.Context) error {
			metric, err := types.ParseEdgeWeight(c.String("type"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			policy, err := fare.LoadPolicy(c.String("fare-policy"))
			if err != nil {
				return err
			}

			dc, closer, err := newDataClient()
			if err != nil {
				return err
			}
			defer closer()

			service := route.NewService(dc, dc, policy, route.Config{ReverseEdges: c.Bool("bidirectional")}, utils.GetLogger())

			response, err := service.FindShortestPath(c.Context, c.String("source"), c.String("target"), metric)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if c.Bool("debug") {
				pretty.Println(response)
				return nil
			}

			names := make([]string, 0, len(response.Stations))
			for _, station := range response.Stations {
				names = append(names, station.Name)
			}
			fmt.Fprintln(c.App.Writer, strings.Join(names, " -> "))
			fmt.Fprintf(c.App.Writer, "distance %d  duration %d  fare %d\n", response.Distance, response.Duration, response.Fare)
			return nil
		},
	}
}

func stationsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stations",
		Usage: "list every station",
		Action: func(c *cli.Context) error {
			dc, closer, err := newDataClient()
			if err != nil {
				return err
			}
			defer closer()

			stations, err := dc.GetAllStations(c.Context)
			if err != nil {
				return err
			}
			for _, station := range stations {
				fmt.Fprintf(c.App.Writer, "%d\t%s\n", station.ID, station.Name)
			}
			return nil
		},
	}
}

func linesCommand() *cli.Command {
	return &cli.Command{
		Name:  "lines",
		Usage: "list every line with its stations in order",
		Action: func(c *cli.Context) error {
			dc, closer, err := newDataClient()
			if err != nil {
				return err
			}
			defer closer()

			lines, err := dc.GetAllLines(c.Context)
			if err != nil {
				return err
			}
			for i := range lines {
				fmt.Fprintf(c.App.Writer, "%d\t%s\t%v\n", lines[i].ID, lines[i].Name, lines[i].StationIDs())
			}
			return nil
		},
	}
}

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()
	log := utils.GetLogger()

	app := &cli.App{
		Name:  "metro",
		Usage: "query the metro network from the command line",
		Commands: []*cli.Command{
			routeCommand(),
			stationsCommand(),
			linesCommand(),
		},
	}

	if err := app.RunContext(context.Background(), os.Args); err != nil {
		log.Fatalw("command failed", "error", err)
	}
}
