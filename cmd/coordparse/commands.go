package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/couchcryptid/cave-coords-service/internal/domain"
	"github.com/jessevdk/go-flags"
	"gopkg.in/yaml.v3"
)

type globalOptions struct {
	Output string `short:"o" long:"output" description:"Output format" choice:"text" choice:"json" choice:"yaml" default:"text" env:"COORDPARSE_OUTPUT"`
}

type app struct {
	opts globalOptions
	in   io.Reader
	out  io.Writer
}

func newApp(in io.Reader, out io.Writer) *app {
	return &app{in: in, out: out}
}

func (a *app) parser() *flags.Parser {
	p := flags.NewParser(&a.opts, flags.Default)

	mustAdd(p, "detect", "Detect the notation of each value", &detectCommand{app: a})
	mustAdd(p, "normalize", "Convert each value to signed decimal degrees", &normalizeCommand{app: a})
	mustAdd(p, "pair", "Extract a latitude,longitude pair from each value", &pairCommand{app: a})
	mustAdd(p, "notations", "List the supported notations", &notationsCommand{app: a})
	return p
}

func mustAdd(p *flags.Parser, name, short string, data any) {
	if _, err := p.AddCommand(name, short, short, data); err != nil {
		panic(err)
	}
}

// record is one output row. Only the fields relevant to the command are set.
type record struct {
	Input    string   `json:"input,omitempty" yaml:"input,omitempty"`
	Notation string   `json:"notation,omitempty" yaml:"notation,omitempty"`
	Label    string   `json:"label,omitempty" yaml:"label,omitempty"`
	Value    *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	DDM      string   `json:"ddm,omitempty" yaml:"ddm,omitempty"`
	DMS      string   `json:"dms,omitempty" yaml:"dms,omitempty"`
	Lat      *float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lng      *float64 `json:"lng,omitempty" yaml:"lng,omitempty"`
	Reason   string   `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error    string   `json:"error,omitempty" yaml:"error,omitempty"`
}

func (r record) text() string {
	switch {
	case r.Error != "":
		return r.Input + "\terror: " + r.Error
	case r.Lat != nil && r.Lng != nil:
		return r.Input + "\t" + domain.FormatDecimal(*r.Lat) + "," + domain.FormatDecimal(*r.Lng)
	case r.Value != nil:
		return r.Input + "\t" + domain.FormatDecimal(*r.Value) + "\t" + r.DMS
	case r.Input == "":
		return r.Notation + "\t" + r.Label
	case r.Notation == "":
		return r.Input + "\t-"
	default:
		return r.Input + "\t" + r.Notation
	}
}

type detectCommand struct {
	app *app
}

func (c *detectCommand) Execute(args []string) error {
	inputs, err := c.app.inputs(args)
	if err != nil {
		return err
	}
	records := make([]record, len(inputs))
	for i, in := range inputs {
		records[i] = record{Input: in}
		if n, ok := domain.DetectNotation(in); ok {
			records[i].Notation = n.Key()
			records[i].Label = n.Label()
		}
	}
	return c.app.write(records)
}

type normalizeCommand struct {
	app *app

	Axis     string `short:"a" long:"axis" description:"Axis the values belong to" choice:"lat" choice:"lng" default:"lat"`
	Notation string `short:"n" long:"notation" description:"Notation key; detected per value when omitted, falling back to dd"`
}

func (c *normalizeCommand) Execute(args []string) error {
	axis, err := domain.ParseAxis(c.Axis)
	if err != nil {
		return err
	}
	var fixed *domain.Notation
	if c.Notation != "" {
		n, err := domain.ParseNotation(c.Notation)
		if err != nil {
			return err
		}
		fixed = &n
	}

	inputs, err := c.app.inputs(args)
	if err != nil {
		return err
	}

	records := make([]record, len(inputs))
	failed := 0
	for i, in := range inputs {
		n := domain.DecimalDegrees
		if fixed != nil {
			n = *fixed
		} else if detected, ok := domain.DetectNotation(in); ok {
			n = detected
		}

		rec := record{Input: in, Notation: n.Key()}
		v, err := domain.Normalize(in, n, axis)
		if err != nil {
			rec.Reason = string(domain.ReasonOf(err))
			rec.Error = err.Error()
			failed++
		} else {
			rec.Value = &v
			rec.DDM = domain.FormatDDM(v, axis)
			rec.DMS = domain.FormatDMS(v, axis)
		}
		records[i] = rec
	}

	if err := c.app.write(records); err != nil {
		return err
	}
	return failures(failed, len(inputs))
}

type pairCommand struct {
	app *app
}

func (c *pairCommand) Execute(args []string) error {
	inputs, err := c.app.inputs(args)
	if err != nil {
		return err
	}

	records := make([]record, len(inputs))
	failed := 0
	for i, in := range inputs {
		rec := record{Input: in}
		if p, ok := domain.ExtractPair(in); ok {
			rec.Lat, rec.Lng = &p.Lat, &p.Lng
		} else {
			rec.Reason = string(domain.ReasonNoMatch)
			rec.Error = "not a latitude,longitude pair"
			failed++
		}
		records[i] = rec
	}

	if err := c.app.write(records); err != nil {
		return err
	}
	return failures(failed, len(inputs))
}

type notationsCommand struct {
	app *app
}

func (c *notationsCommand) Execute(_ []string) error {
	notations := domain.Notations()
	records := make([]record, len(notations))
	for i, n := range notations {
		records[i] = record{Notation: n.Key(), Label: n.Label()}
	}
	return c.app.write(records)
}

func failures(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d values could not be parsed", failed, total)
}

// inputs returns args, or the non-blank lines of stdin when no args are given.
func (a *app) inputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(a.in)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func (a *app) write(records []record) error {
	switch a.opts.Output {
	case "json":
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		for _, r := range records {
			fmt.Fprintln(tw, r.text())
		}
		return tw.Flush()
	}
}
