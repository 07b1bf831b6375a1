// Package main provides the CLI entrypoint for vkenum-generator.
//
// vkenum-generator reads one or more API registry documents (vk.xml and
// vendor fragments), resolves every enumeration constant and writes the C
// introspection sources:
//   - vk_enum_to_str.c and vk_enum_to_str.h: value to name conversions,
//     struct sizes and object type names
//   - vk_enum_defines.h: extension numbers and bitmask helpers
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"vkenum-generator/internal/config"
	"vkenum-generator/internal/gen"
	"vkenum-generator/internal/logging"
	"vkenum-generator/internal/registry"
	"vkenum-generator/internal/resolve"
)

const version = "0.4.0"

// options holds the parsed command line flags.
type options struct {
	xmlFiles   []string
	outDir     string
	configPath string
	logLevel   string
	dumpModel  bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "vkenum-generator",
		Short: "Generate Vulkan enum to string C sources",
		Long: `Generate enum to string conversion functions, struct size and object
name lookups and bitmask helpers for Vulkan from vk.xml.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringArrayVar(&opts.xmlFiles, "xml", nil, "Registry XML file (repeatable, merged in order)")
	cmd.Flags().StringVar(&opts.outDir, "outdir", "", "Output directory (required)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Generator config YAML")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.dumpModel, "dump-model", false, "Dump the resolved model to stderr")

	if err := cmd.MarkFlagRequired("xml"); err != nil {
		panic(err)
	}

	if err := cmd.MarkFlagRequired("outdir"); err != nil {
		panic(err)
	}

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vkenum-generator:", err)
		os.Exit(1)
	}
}

// run executes the load, resolve, generate and write pipeline. Nothing is
// written unless every stage succeeds.
func run(opts options, stderr io.Writer) error {
	level := opts.logLevel
	if level == "" {
		level = logging.GetLogLevel()
	}

	log := logging.NewLogger("vkenum-generator", level, stderr)

	cfg := config.Default()

	if opts.configPath != "" {
		var err error

		cfg, err = config.LoadFile(opts.configPath)
		if err != nil {
			return err
		}
	}

	docs, err := registry.LoadFiles(opts.xmlFiles)
	if err != nil {
		return err
	}

	reg, err := registry.Merge(cfg.MergeOptions(), docs...)
	if err != nil {
		return err
	}

	ctx, err := resolve.Resolve(reg, cfg.ResolveConfig(log))
	if err != nil {
		return fmt.Errorf("resolving registry: %w", err)
	}

	if opts.dumpModel {
		dumpModel(stderr, ctx)
	}

	generator := gen.NewGenerator(cfg.GeneratorConfig(log))

	files, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating artifacts: %w", err)
	}

	if err := gen.WriteFiles(files, opts.outDir); err != nil {
		return err
	}

	logSummary(log, ctx, generator, files)

	return nil
}

func logSummary(log hclog.Logger, ctx *resolve.Context, generator *gen.Generator, files []gen.GeneratedFile) {
	diags := ctx.Diagnostics
	diags.Merge(generator.Diagnostics())

	for _, w := range diags.Warnings {
		log.Debug("warning", "diagnostic", w.String())
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Filename)
	}

	log.Info("artifacts written",
		"files", names,
		"enums", ctx.Enums.Len(),
		"bitmasks", ctx.Bitmasks.Len(),
		"structs", ctx.Structs.Len(),
		"warnings", len(diags.Warnings))
}

// enumSummary is the dumped view of one enumeration.
type enumSummary struct {
	Name        string
	Kind        resolve.EnumKind
	BitWidth    int
	Guard       string
	MaxEnumName string
	AllBits     uint64
	Values      []resolve.NamedValue
}

// modelSummary is the dumped view of the resolved context.
type modelSummary struct {
	Enums       []enumSummary
	Bitmasks    []enumSummary
	Extensions  []*resolve.Extension
	Structs     []*resolve.Struct
	ObjectTypes []resolve.ObjectType
}

func dumpModel(w io.Writer, ctx *resolve.Context) {
	summary := modelSummary{
		Extensions:  ctx.Extensions.Sorted(),
		Structs:     ctx.Structs.Sorted(),
		ObjectTypes: ctx.ObjectTypes.Entries(),
	}

	for _, e := range ctx.Enums.Sorted() {
		summary.Enums = append(summary.Enums, summarize(e))
	}

	for _, e := range ctx.Bitmasks.Sorted() {
		summary.Bitmasks = append(summary.Bitmasks, summarize(e))
	}

	cfg := spew.ConfigState{
		Indent:                  "  ",
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	cfg.Fdump(w, summary, ctx.Diagnostics)
}

func summarize(e *resolve.Enum) enumSummary {
	s := enumSummary{
		Name:        e.Name,
		Kind:        e.Kind,
		BitWidth:    e.BitWidth,
		Guard:       e.Guard,
		MaxEnumName: e.MaxEnumName,
		Values:      e.Values(),
	}

	if e.IsBitmask() {
		s.AllBits = e.AllBits()
	}

	return s
}
