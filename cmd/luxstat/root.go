// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/lux/array"
	"github.com/katalvlaran/lux/kind"
	"github.com/katalvlaran/lux/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// app holds the flag values and I/O of one invocation.
type app struct {
	in  io.Reader
	out io.Writer
	log *slog.Logger

	file     string
	kindName string
	dims     []int
	values   []string

	axes       []int
	keepDims   bool
	double     bool
	omitNaN    bool
	population bool
	fullWidth  bool
	inPlace    bool
	width      int
	verbose    bool
}

// routine is the common signature of the reductions and RunSum.
type routine func(x *array.Array, axes []int, opts ...stats.Option) (*array.Array, error)

var routines = []struct {
	name  string
	short string
	run   routine
}{
	{"total", "Sum over the given axes", stats.Total},
	{"mean", "Arithmetic mean over the given axes", stats.Mean},
	{"variance", "Variance over the given axes", stats.Variance},
	{"sdev", "Standard deviation over the given axes", stats.SDev},
	{"min", "Smallest element over the given axes", stats.Min},
	{"max", "Largest element over the given axes", stats.Max},
	{"runsum", "Running sum along one axis", stats.RunSum},
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out}
	root := &cobra.Command{
		Use:           appName,
		Short:         "Array statistics over selected axes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")

	for _, r := range routines {
		cmd := &cobra.Command{
			Use:   r.name,
			Short: r.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.run(cmd, r.name, r.run)
			},
		}
		a.inputFlags(cmd)
		root.AddCommand(cmd)
	}

	smooth := &cobra.Command{
		Use:   "smooth",
		Short: "Boxcar average along one axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, "smooth", func(x *array.Array, axes []int, opts ...stats.Option) (*array.Array, error) {
				return stats.Smooth(x, axes, a.width, opts...)
			})
		},
	}
	a.inputFlags(smooth)
	smooth.Flags().IntVarP(&a.width, "width", "w", 3, "window width")
	smooth.Flags().BoolVar(&a.fullWidth, "full-width", false, "copy edge elements instead of truncating the window")
	root.AddCommand(smooth)

	root.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "Print the element kinds and their promotion table",
		Args:  cobra.NoArgs,
		RunE:  func(*cobra.Command, []string) error { return a.kinds() },
	})

	return root
}

// inputFlags registers the array input and policy flags shared by routines.
func (a *app) inputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&a.file, "file", "f", "", `YAML input document ("-" for stdin)`)
	f.StringVarP(&a.kindName, "kind", "k", "double", "element kind of --values")
	f.IntSliceVarP(&a.dims, "dims", "d", nil, "dimensions of --values (default: one dimension)")
	f.StringSliceVar(&a.values, "values", nil, "element values, first dimension fastest")
	f.IntSliceVarP(&a.axes, "axis", "a", nil, "axis to operate on (repeatable; default: whole array)")
	f.BoolVar(&a.keepDims, "keepdims", false, "keep reduced axes with extent 1")
	f.BoolVar(&a.double, "double", false, "compute in double precision")
	f.BoolVar(&a.omitNaN, "omit-nan", false, "skip NaN elements")
	f.BoolVar(&a.population, "population", false, "population instead of sample moments")
	f.BoolVar(&a.inPlace, "in-place", false, "let the result reuse the input storage")
}

func (a *app) options() []stats.Option {
	var opts []stats.Option
	if a.keepDims {
		opts = append(opts, stats.WithKeepDims())
	}
	if a.double {
		opts = append(opts, stats.WithDouble())
	}
	if a.omitNaN {
		opts = append(opts, stats.WithOmitNaN())
	}
	if a.population {
		opts = append(opts, stats.WithPopulation())
	}
	if a.fullWidth {
		opts = append(opts, stats.WithFullWidth())
	}
	if a.inPlace {
		opts = append(opts, stats.WithInPlace())
	}

	return opts
}

// input returns the array described by --file or the value flags.
func (a *app) input() (*array.Array, error) {
	doc := inputDoc{Kind: a.kindName, Dims: a.dims, Values: a.values}
	switch a.file {
	case "":
		if len(a.values) == 0 {
			return nil, errors.New("no input: use --file or --values")
		}
	case "-":
		d, err := decodeDoc(a.in)
		if err != nil {
			return nil, err
		}
		doc = d
	default:
		fh, err := os.Open(a.file)
		if err != nil {
			return nil, errors.Wrap(err, "open input")
		}
		defer fh.Close()
		d, err := decodeDoc(fh)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", a.file)
		}
		doc = d
	}

	return doc.build()
}

func (a *app) run(cmd *cobra.Command, name string, fn routine) error {
	x, err := a.input()
	if err != nil {
		return err
	}
	var axes []int
	if cmd.Flags().Changed("axis") {
		axes = a.axes
	}
	a.log.Debug("input", "op", name, "array", x.String(), "axes", axes)

	res, err := fn(x, axes, a.options()...)
	if err != nil {
		return err
	}
	a.log.Debug("result", "op", name, "array", res.String())

	return encodeArray(a.out, res)
}

// kindRow is one line of the kinds table.
type kindRow struct {
	Name    string            `yaml:"name"`
	Size    int               `yaml:"size"`
	Promote map[string]string `yaml:"promote"`
}

func (a *app) kinds() error {
	all := kind.All()
	rows := make([]kindRow, 0, len(all))
	for _, k := range all {
		row := kindRow{Name: k.String(), Size: k.Size(), Promote: map[string]string{}}
		for _, other := range all {
			if j, err := kind.Join(k, other); err == nil {
				row.Promote[other.String()] = j.String()
			}
		}
		rows = append(rows, row)
	}
	a.log.Debug("kinds", "count", len(rows))

	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(rows); err != nil {
		return errors.Wrap(err, "encode kinds")
	}

	return enc.Close()
}
