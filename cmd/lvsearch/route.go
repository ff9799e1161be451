// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/citymap"
	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/routing"
	"github.com/katalvlaran/lvsearch/search"
)

type routeFlags struct {
	width, height int
	mapFile       string
	start         string
	endTag        string
	astar         bool
	heuristic     string
	out           string
	waypoints     []string
}

func newRouteCmd(a *app, withWaypoints bool) *cobra.Command {
	f := &routeFlags{}
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Shortest route from a start location to a tagged location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f.apply(cmd, &a.cfg)
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.runRoute(cmd, withWaypoints)
		},
	}
	if withWaypoints {
		cmd.Use = "waypoints"
		cmd.Short = "Shortest route that covers every waypoint tag before the end tag"
		cmd.Flags().StringArrayVar(&f.waypoints, "waypoint", nil, "waypoint tag to cover (repeatable)")
	}
	cmd.Flags().IntVar(&f.width, "width", 0, "grid width")
	cmd.Flags().IntVar(&f.height, "height", 0, "grid height")
	cmd.Flags().StringVar(&f.mapFile, "map", "", "YAML map document (replaces the grid)")
	cmd.Flags().StringVar(&f.start, "start", "", "start location ID")
	cmd.Flags().StringVar(&f.endTag, "end-tag", "", "tag of the destination")
	cmd.Flags().BoolVar(&f.astar, "astar", false, "use A* instead of uniform-cost search")
	cmd.Flags().StringVar(&f.heuristic, "heuristic", "", "A* heuristic: straight, northsouth, zero")
	cmd.Flags().StringVar(&f.out, "out", "", "write the path as JSON to this file")

	return cmd
}

// apply copies every flag the user set over the configuration.
func (f *routeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	rc := &cfg.Route
	if fl.Changed("width") {
		rc.Map.Source, rc.Map.Width = config.SourceGrid, f.width
	}
	if fl.Changed("height") {
		rc.Map.Source, rc.Map.Height = config.SourceGrid, f.height
	}
	if fl.Changed("map") {
		rc.Map.Source, rc.Map.File = config.SourceFile, f.mapFile
	}
	if fl.Changed("start") {
		rc.Start = f.start
	}
	if fl.Changed("end-tag") {
		rc.EndTag = f.endTag
	}
	if fl.Changed("astar") {
		rc.AStar = f.astar
	}
	if fl.Changed("heuristic") {
		rc.Heuristic = f.heuristic
	}
	if fl.Changed("out") {
		rc.Out = f.out
	}
	if fl.Changed("waypoint") {
		cfg.Waypoints.Tags = f.waypoints
	}
}

func loadMap(mc config.MapConfig) (*citymap.Map, error) {
	switch mc.Source {
	case config.SourceFile:
		return citymap.LoadFile(mc.File)
	default:
		return citymap.NewGridMap(mc.Width, mc.Height)
	}
}

func heuristicFor[M comparable](rc config.RouteConfig, m *citymap.Map) search.Heuristic[M] {
	switch rc.Heuristic {
	case config.HeuristicNorthSouth:
		return routing.NewNorthSouthHeuristic[M](rc.EndTag, m)
	case config.HeuristicZero:
		return routing.ZeroHeuristic[M]{}
	default:
		return routing.NewStraightLineHeuristic[M](rc.EndTag, m)
	}
}

func solveRoute[M comparable](a *app, p search.Problem[M], m *citymap.Map) (*search.Result[M], error) {
	rc := a.cfg.Route
	opt := search.WithLogger(a.logger)
	if rc.AStar {
		return search.AStar(p, heuristicFor[M](rc, m), opt)
	}

	return search.UniformCostSearch(p, opt)
}

func (a *app) runRoute(cmd *cobra.Command, withWaypoints bool) error {
	rc := a.cfg.Route
	m, err := loadMap(rc.Map)
	if err != nil {
		return err
	}
	if !m.HasLocation(rc.Start) {
		a.logger.Warn("start location is not on the map", "start", rc.Start)
	}

	var (
		found    bool
		cost     float64
		actions  []string
		explored int
		tags     []string
	)
	if withWaypoints {
		p, err := routing.NewWaypointsShortestPathProblem(rc.Start, a.cfg.Waypoints.Tags, rc.EndTag, m)
		if err != nil {
			return err
		}
		res, err := solveRoute[routing.Coverage](a, p, m)
		if err != nil {
			return err
		}
		found, cost, actions, explored, tags = res.Found, res.PathCost, res.Actions, res.NumStatesExplored, p.WaypointTags()
	} else {
		res, err := solveRoute[search.NoMemory](a, routing.NewShortestPathProblem(rc.Start, rc.EndTag, m), m)
		if err != nil {
			return err
		}
		found, cost, actions, explored = res.Found, res.PathCost, res.Actions, res.NumStatesExplored
	}

	out := cmd.OutOrStdout()
	if !found {
		fmt.Fprintf(out, "no path from %s to %s (explored %d states)\n", rc.Start, rc.EndTag, explored)
		return nil
	}
	path := routing.ExtractPath(rc.Start, actions)
	fmt.Fprintf(out, "cost: %g\n", cost)
	fmt.Fprintf(out, "path: %s\n", strings.Join(path, " -> "))
	fmt.Fprintf(out, "explored: %d\n", explored)

	if rc.Out != "" {
		if err := writePath(rc.Out, routing.PathDocument{WaypointTags: tags, Path: path}); err != nil {
			return err
		}
		a.logger.Info("path written", "file", rc.Out)
	}

	return nil
}

func writePath(name string, doc routing.PathDocument) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return routing.WritePathJSON(f, doc)
}
