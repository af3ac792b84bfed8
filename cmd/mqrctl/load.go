package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/444lessio/mqrtree/internal/geom"
	"github.com/444lessio/mqrtree/internal/morton"
	"github.com/444lessio/mqrtree/internal/mqrtree"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
)

// record is the payload mqrctl indexes: just enough to print a result row.
type record struct {
	ID string
	X  float64
	Y  float64
}

func runLoad(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return die("usage: mqrctl load <file.jsonl>")
	}

	rects, bounds, err := readJSONL(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	if len(rects) == 0 {
		return die("no rectangles found in %s", ctx.Args().Get(0))
	}

	if ctx.Bool("sort-morton") {
		less := morton.Compare(bounds)
		sort.Slice(rects, func(i, j int) bool { return less(rects[i].Env, rects[j].Env) })
	}

	tree := mqrtree.New[record]()
	start := time.Now()
	for _, r := range rects {
		if err := tree.Insert(r.Payload, r.Env); err != nil {
			return die("insert %q: %v", r.Payload.ID, err)
		}
	}
	fmt.Printf("loaded %d rectangles in %s\n", tree.Len(), time.Since(start))

	if bbox := ctx.String("bbox"); bbox != "" {
		if err := runBBoxQuery(tree, bbox); err != nil {
			return err
		}
	}
	if knn := ctx.String("knn"); knn != "" {
		if err := runKNNQuery(tree, knn); err != nil {
			return err
		}
	}
	return nil
}

// readJSONL reads loosely-shaped JSON lines with gjson rather than a fixed
// struct — each line may carry either a rectangle (min_x/max_x/min_y/max_y)
// or a bare point (x/y).
func readJSONL(path string) ([]mqrtree.Item[record], geom.Envelope, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, geom.Envelope{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var items []mqrtree.Item[record]
	var bounds geom.Envelope
	first := true

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !gjson.Valid(line) {
			return nil, geom.Envelope{}, fmt.Errorf("line %d: invalid JSON", lineNo)
		}

		parsed := gjson.Parse(line)
		id := parsed.Get("id").String()
		if id == "" {
			id = fmt.Sprintf("rect-%d", lineNo)
		}

		var env geom.Envelope
		if parsed.Get("min_x").Exists() {
			env, err = geom.New(
				parsed.Get("min_x").Float(), parsed.Get("max_x").Float(),
				parsed.Get("min_y").Float(), parsed.Get("max_y").Float(),
			)
		} else {
			env = geom.NewFromPoint(parsed.Get("x").Float(), parsed.Get("y").Float())
		}
		if err != nil {
			return nil, geom.Envelope{}, fmt.Errorf("line %d: %w", lineNo, err)
		}

		centroid := env.Centroid()
		items = append(items, mqrtree.Item[record]{
			Payload: record{ID: id, X: centroid.X, Y: centroid.Y},
			Env:     env,
		})
		if first {
			bounds = env
			first = false
		} else {
			bounds = bounds.Union(env)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, geom.Envelope{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return items, bounds, nil
}

func runBBoxQuery(tree *mqrtree.Tree[record], spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return die("--bbox wants min_x,max_x,min_y,max_y")
	}
	vals, err := parseFloats(parts)
	if err != nil {
		return err
	}
	query, err := geom.New(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		return err
	}

	results := tree.Search(query)
	printResults("region search", results)
	return nil
}

func runKNNQuery(tree *mqrtree.Tree[record], spec string) error {
	parts := strings.Split(spec, ",")
	if len(parts) != 3 {
		return die("--knn wants x,y,k")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return err
	}
	k, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return err
	}

	results, err := tree.KNN(geom.Point{X: x, Y: y}, k)
	if err != nil {
		return err
	}
	printResults("k-NN", results)
	return nil
}

func parseFloats(parts []string) ([4]float64, error) {
	var out [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return out, fmt.Errorf("parsing %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

func printResults(title string, results []record) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "ID", "X", "Y"})
	for i, r := range results {
		t.AppendRow(table.Row{i + 1, r.ID, r.X, r.Y})
	}
	fmt.Printf("%s: %d result(s)\n", title, len(results))
	t.Render()
}
