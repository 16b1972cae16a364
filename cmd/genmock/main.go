// Command genmock reads cave entrance submissions from a CSV file and writes
// two fixtures: the raw submissions as the form would publish them, and the
// resolved entrances the pipeline produces from them. It runs the real domain
// resolution with a fixed clock so the output is reproducible.
//
// The CSV header must include cave_id, latitude and longitude; name,
// latitude_notation and longitude_notation are optional.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  --csv data/mock/entrances.csv \
//	  --raw-out data/mock/entrances_raw.json \
//	  --resolved-out data/mock/entrances_resolved.json
package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/jessevdk/go-flags"
	"github.com/jonboulle/clockwork"
)

var (
	receivedAt  = time.Date(2024, time.April, 26, 0, 0, 0, 0, time.UTC)
	processedAt = time.Date(2024, time.April, 27, 6, 0, 0, 0, time.UTC)
)

var requiredColumns = []string{"cave_id", "latitude", "longitude"}

type options struct {
	CSV         string `long:"csv" description:"CSV file of entrance submissions" required:"true"`
	RawOut      string `long:"raw-out" description:"Output path for raw submission fixture" required:"true"`
	ResolvedOut string `long:"resolved-out" description:"Output path for resolved entrance fixture" required:"true"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func run(opts options) error {
	domain.SetClock(clockwork.NewFakeClockAt(processedAt))
	defer domain.SetClock(nil)

	f, err := os.Open(opts.CSV)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	submissions, entrances, err := processCSV(f)
	if err != nil {
		return fmt.Errorf("processing %s: %w", opts.CSV, err)
	}
	log.Printf("processed %d submissions", len(submissions))

	if err := writeJSON(opts.RawOut, submissions); err != nil {
		return fmt.Errorf("writing raw fixture: %w", err)
	}
	log.Printf("wrote raw fixture: %s", opts.RawOut)

	if err := writeJSON(opts.ResolvedOut, entrances); err != nil {
		return fmt.Errorf("writing resolved fixture: %w", err)
	}
	log.Printf("wrote resolved fixture: %s", opts.ResolvedOut)

	printStats(os.Stdout, entrances)
	return nil
}

func processCSV(r io.Reader) ([]domain.RawEntrance, []domain.Entrance, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, errors.New("no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", col)
		}
	}

	submissions := make([]domain.RawEntrance, 0, len(rows)-1)
	entrances := make([]domain.Entrance, 0, len(rows)-1)

	for line, row := range rows[1:] {
		sub := domain.RawEntrance{
			CaveID:            get(row, colIdx, "cave_id"),
			Name:              get(row, colIdx, "name"),
			Latitude:          get(row, colIdx, "latitude"),
			Longitude:         get(row, colIdx, "longitude"),
			LatitudeNotation:  get(row, colIdx, "latitude_notation"),
			LongitudeNotation: get(row, colIdx, "longitude_notation"),
		}

		// Run the actual pipeline resolution.
		payload, err := json.Marshal(sub)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: marshal submission: %w", line+2, err)
		}
		parsed, err := domain.ParseRawEvent(domain.RawEvent{Value: payload, Timestamp: receivedAt})
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", line+2, err)
		}

		submissions = append(submissions, sub)
		entrances = append(entrances, domain.EnrichEntrance(parsed))
	}

	return submissions, entrances, nil
}

func get(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

// statsResult holds aggregated counts for printStats reporting.
type statsResult struct {
	statusCounts   map[string]int
	notationCounts map[string]int
	reasonCounts   map[string]int
}

func collectStats(entrances []domain.Entrance) statsResult {
	s := statsResult{
		statusCounts:   map[string]int{},
		notationCounts: map[string]int{},
		reasonCounts:   map[string]int{},
	}
	for i := range entrances {
		e := &entrances[i]
		s.statusCounts[e.Status]++
		for _, axis := range []domain.AxisResult{e.Latitude, e.Longitude} {
			s.notationCounts[axis.Notation.Key()]++
			if axis.Reason != "" {
				s.reasonCounts[string(axis.Reason)]++
			}
		}
	}
	return s
}

func printStats(w io.Writer, entrances []domain.Entrance) {
	stats := collectStats(entrances)

	fmt.Fprintln(w, "\n=== Stats for updating test assertions ===")
	fmt.Fprintf(w, "Total: %d\n", len(entrances))
	fmt.Fprintf(w, "By status: valid=%d, incomplete=%d, invalid=%d\n",
		stats.statusCounts[domain.StatusValid],
		stats.statusCounts[domain.StatusIncomplete],
		stats.statusCounts[domain.StatusInvalid])
	printCounts(w, "By notation", stats.notationCounts)
	printCounts(w, "By failure reason", stats.reasonCounts)
}

func printCounts(w io.Writer, title string, counts map[string]int) {
	fmt.Fprintf(w, "%s:", title)
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		fmt.Fprintf(w, " %s=%d", k, counts[k])
	}
	fmt.Fprintln(w)
}
