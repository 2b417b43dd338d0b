// Command routeplanner prints the shortest road route between two
// coordinates, with its length and a street-by-street itinerary.
//
// The road network comes from exactly one source:
//
//	routeplanner -hcl ./maps/krakow -from 50.0680,19.9123 -to 50.0765,20.0335
//	routeplanner -place Krakow -from ... -to ...      (graph database, GRAPH_URI)
//	routeplanner -demo 8x8 -from ... -to ...          (synthetic street grid)
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/katalvlaran/lvroute/builder"
	"github.com/katalvlaran/lvroute/geo"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/mapdata"
	"github.com/katalvlaran/lvroute/planner"
	"github.com/katalvlaran/lvroute/roadnet"
)

var (
	errNoSource      = errors.New("one of -hcl, -place or -demo is required")
	errManySources   = errors.New("-hcl, -place and -demo are mutually exclusive")
	errMissingPoints = errors.New("both -from and -to are required")
	errBadPoint      = errors.New("coordinate must be \"lat,lon\"")
	errBadGrid       = errors.New("grid must be \"ROWSxCOLS\"")
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

type options struct {
	hcl     stringList
	place   string
	demo    string
	seed    int64
	from    string
	to      string
	algo    string
	geojson string
	save    bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("routeplanner", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&opts.hcl, "hcl", "HCL network file or directory (repeatable)")
	fs.StringVar(&opts.place, "place", "", "Load the named place from the graph database (GRAPH_URI)")
	fs.StringVar(&opts.demo, "demo", "", "Route over a synthetic ROWSxCOLS street grid")
	fs.Int64Var(&opts.seed, "seed", 1, "Seed for the synthetic grid's road detours")
	fs.StringVar(&opts.from, "from", "", "Start coordinate as lat,lon")
	fs.StringVar(&opts.to, "to", "", "Destination coordinate as lat,lon")
	fs.StringVar(&opts.algo, "algo", "", "Search algorithm: dijkstra or astar (default ROUTE_ALGORITHM)")
	fs.StringVar(&opts.geojson, "geojson", "", "Write the route as a GeoJSON feature to this file")
	fs.BoolVar(&opts.save, "save", false, "Store the loaded network in the graph database")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	sources := 0
	for _, set := range []bool{len(opts.hcl) > 0, opts.place != "", opts.demo != ""} {
		if set {
			sources++
		}
	}
	switch {
	case sources == 0:
		return options{}, errNoSource
	case sources > 1:
		return options{}, errManySources
	case opts.from == "" || opts.to == "":
		return options{}, errMissingPoints
	}

	return opts, nil
}

func run(ctx context.Context, stdout, stderr io.Writer, args []string) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := logging.New(stderr, cfg.Logging).With("component", "routeplanner")
	ctx = logging.WithLogger(ctx, logger)

	algoName := cfg.Route.Algorithm
	if opts.algo != "" {
		algoName = opts.algo
	}
	algorithm, err := planner.ParseAlgorithm(algoName)
	if err != nil {
		return err
	}
	from, err := parsePoint(opts.from)
	if err != nil {
		return fmt.Errorf("-from: %w", err)
	}
	to, err := parsePoint(opts.to)
	if err != nil {
		return fmt.Errorf("-to: %w", err)
	}

	ds, err := loadDataset(ctx, logger, cfg, opts)
	if err != nil {
		return err
	}
	if opts.save {
		if err := saveDataset(ctx, logger, cfg, ds); err != nil {
			return err
		}
	}

	net, err := roadnet.Build(ds)
	if err != nil {
		return fmt.Errorf("build road network: %w", err)
	}
	if n := net.Graph().Dangling(); n > 0 {
		logger.Warn("Roads lead to undeclared intersections", "count", n)
	}
	logger.Info("Road network ready", "place", net.Place(),
		"intersections", net.Graph().Order(), "arcs", net.Graph().Size())

	p, err := planner.New(net, planner.WithLogger(logger), planner.WithAlgorithm(algorithm))
	if err != nil {
		return err
	}
	plan, err := p.Plan(from, to)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, plan.Summary())
	if itinerary := plan.Itinerary(); itinerary != "" {
		fmt.Fprintln(stdout, itinerary)
	}

	if opts.geojson != "" {
		raw, err := plan.GeoJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.geojson, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.geojson, err)
		}
		logger.Info("Wrote route GeoJSON", "path", opts.geojson)
	}

	return nil
}

func loadDataset(ctx context.Context, logger *slog.Logger, cfg config.Config, opts options) (roadnet.Dataset, error) {
	switch {
	case len(opts.hcl) > 0:
		return mapdata.LoadHCL(ctx, opts.hcl...)

	case opts.place != "":
		client, err := buildGraphClient(ctx, logger, cfg)
		if err != nil {
			return roadnet.Dataset{}, err
		}
		defer closeClient(logger, client)
		return mapdata.NewStore(client, logger).Load(ctx, opts.place)

	default:
		rows, cols, err := parseGrid(opts.demo)
		if err != nil {
			return roadnet.Dataset{}, fmt.Errorf("-demo: %w", err)
		}
		return builder.BuildDataset([]builder.BuilderOption{
			builder.WithPlace(fmt.Sprintf("Demo %dx%d", rows, cols)),
			builder.WithSeed(opts.seed),
			builder.WithDetour(1, 1.3),
		}, builder.Grid(rows, cols))
	}
}

func saveDataset(ctx context.Context, logger *slog.Logger, cfg config.Config, ds roadnet.Dataset) error {
	client, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer closeClient(logger, client)

	return mapdata.NewStore(client, logger).Save(ctx, ds)
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (mapdata.Client, error) {
	client, err := mapdata.NewNeo4jClient(ctx, mapdata.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	})
	if err != nil {
		return nil, fmt.Errorf("create graph client: %w", err)
	}
	logger.Info("Connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)

	return client, nil
}

func closeClient(logger *slog.Logger, client mapdata.Client) {
	if err := client.Close(context.Background()); err != nil {
		logger.Warn("Closing graph client failed", "error", err)
	}
}

func parsePoint(s string) (geo.Point, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, fmt.Errorf("%w, got %q", errBadPoint, s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w, got %q: %w", errBadPoint, s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("%w, got %q: %w", errBadPoint, s, err)
	}
	p := geo.Point{Lat: lat, Lon: lon}
	if !p.Valid() {
		return geo.Point{}, fmt.Errorf("%w, got %q: out of range", errBadPoint, s)
	}

	return p, nil
}

func parseGrid(s string) (rows, cols int, err error) {
	rStr, cStr, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w, got %q", errBadGrid, s)
	}
	if rows, err = strconv.Atoi(rStr); err != nil {
		return 0, 0, fmt.Errorf("%w, got %q: %w", errBadGrid, s, err)
	}
	if cols, err = strconv.Atoi(cStr); err != nil {
		return 0, 0, fmt.Errorf("%w, got %q: %w", errBadGrid, s, err)
	}

	return rows, cols, nil
}
