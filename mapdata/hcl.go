package mapdata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/katalvlaran/lvroute/internal/logging"
	"github.com/katalvlaran/lvroute/roadnet"
)

// ErrNoNetworkFiles is returned when LoadHCL finds no .hcl file.
var ErrNoNetworkFiles = errors.New("mapdata: no .hcl network files found")

const hclExtension = ".hcl"

// hclNetworkFile is the top-level structure of a network file for decoding.
type hclNetworkFile struct {
	Place string     `hcl:"place,optional"`
	Nodes []*hclNode `hcl:"node,block"`
	Roads []*hclRoad `hcl:"road,block"`
}

type hclNode struct {
	ID  string  `hcl:"id,label"`
	Lat float64 `hcl:"lat"`
	Lon float64 `hcl:"lon"`
}

type hclRoad struct {
	From   int64    `hcl:"from"`
	To     int64    `hcl:"to"`
	Length float64  `hcl:"length"`
	Name   string   `hcl:"name,optional"`
	Names  []string `hcl:"names,optional"`
	Oneway bool     `hcl:"oneway,optional"`
}

// unitsContext exposes length units and a few numeric helpers to road
// expressions.
func unitsContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"m":  cty.NumberFloatVal(1),
			"km": cty.NumberFloatVal(1000),
			"mi": cty.NumberFloatVal(1609.344),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
		},
	}
}

// LoadHCL parses every .hcl file under paths (files or directories, in the
// order given, directories walked in lexical order) and merges them into one
// Dataset. The place is taken from the first file that names one.
func LoadHCL(ctx context.Context, paths ...string) (roadnet.Dataset, error) {
	logger := logging.FromContext(ctx)

	var files []string
	for _, p := range paths {
		found, err := findFilesByExtension(p, hclExtension)
		if err != nil {
			return roadnet.Dataset{}, fmt.Errorf("mapdata: find network files in %s: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return roadnet.Dataset{}, fmt.Errorf("%w in %v", ErrNoNetworkFiles, paths)
	}

	parser := hclparse.NewParser()
	var ds roadnet.Dataset
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return roadnet.Dataset{}, err
		}
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return roadnet.Dataset{}, fmt.Errorf("mapdata: parse %s: %w", file, diags)
		}
		part, err := decodeNetwork(file, hclFile.Body)
		if err != nil {
			return roadnet.Dataset{}, err
		}
		logger.Debug("Loaded network file", "file", file, "nodes", len(part.Nodes), "roads", len(part.Edges))

		if ds.Place == "" {
			ds.Place = part.Place
		}
		ds.Nodes = append(ds.Nodes, part.Nodes...)
		ds.Edges = append(ds.Edges, part.Edges...)
	}
	logger.Info("Loaded road network", "files", len(files), "place", ds.Place,
		"nodes", len(ds.Nodes), "roads", len(ds.Edges))

	return ds, nil
}

// ParseHCL decodes a single network document held in memory.
func ParseHCL(filename string, src []byte) (roadnet.Dataset, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return roadnet.Dataset{}, fmt.Errorf("mapdata: parse %s: %w", filename, diags)
	}

	return decodeNetwork(filename, hclFile.Body)
}

func decodeNetwork(filename string, body hcl.Body) (roadnet.Dataset, error) {
	var parsed hclNetworkFile
	if diags := gohcl.DecodeBody(body, unitsContext(), &parsed); diags.HasErrors() {
		return roadnet.Dataset{}, fmt.Errorf("mapdata: decode %s: %w", filename, diags)
	}

	ds := roadnet.Dataset{
		Place: parsed.Place,
		Nodes: make([]roadnet.NodeRecord, 0, len(parsed.Nodes)),
		Edges: make([]roadnet.EdgeRecord, 0, len(parsed.Roads)),
	}
	for _, n := range parsed.Nodes {
		id, err := strconv.ParseInt(strings.TrimSpace(n.ID), 10, 64)
		if err != nil {
			return roadnet.Dataset{}, fmt.Errorf("mapdata: %s: node label %q is not an integer id: %w", filename, n.ID, err)
		}
		ds.Nodes = append(ds.Nodes, roadnet.NodeRecord{ID: id, Lat: n.Lat, Lon: n.Lon})
	}
	for _, r := range parsed.Roads {
		names := r.Names
		if r.Name != "" {
			names = append([]string{r.Name}, names...)
		}
		ds.Edges = append(ds.Edges, roadnet.EdgeRecord{
			From:   r.From,
			To:     r.To,
			Length: r.Length,
			Names:  names,
			Oneway: r.Oneway,
		})
	}

	return ds, nil
}

// findFilesByExtension returns root itself when it is a file, otherwise
// every file under root whose name ends with extension.
func findFilesByExtension(root, extension string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
