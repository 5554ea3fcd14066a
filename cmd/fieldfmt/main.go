package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/svcfmt/fieldfmt/internal/config"
	"github.com/svcfmt/fieldfmt/internal/fieldfmt"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger()

// zerologAdapter exposes the CLI logger through the formatter's Logger
// interface.
type zerologAdapter struct{ z zerolog.Logger }

func (a zerologAdapter) Debugf(format string, args ...any) { a.z.Debug().Msgf(format, args...) }
func (a zerologAdapter) Infof(format string, args ...any)  { a.z.Info().Msgf(format, args...) }
func (a zerologAdapter) Warnf(format string, args ...any)  { a.z.Warn().Msgf(format, args...) }
func (a zerologAdapter) Errorf(format string, args ...any) { a.z.Error().Msgf(format, args...) }

func newFormatter() *fieldfmt.Formatter {
	return fieldfmt.New(fieldfmt.WithLogger(zerologAdapter{z: log}))
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "fieldfmt",
		Short:        "Format raw field values for display",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFormatCmd(), newRenderCmd(), newKindsCmd())
	return root
}

func newFormatCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:     "format <value>",
		Short:   "Format a single raw value",
		Example: `  fieldfmt format --kind monetary 1234.565`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := fieldfmt.ParseKind(kindName)
			if err != nil {
				return err
			}
			out, err := newFormatter().Format(kind, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "", "formatter kind (see 'fieldfmt kinds')")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newRenderCmd() *cobra.Command {
	var schemasPath, schemaName, inputPath string

	cmd := &cobra.Command{
		Use:     "render",
		Short:   "Render a record through a declared schema",
		Example: `  fieldfmt render --schemas schemas.yaml --schema invoice --input invoice.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := config.NewLoader().BuildRegistry(schemasPath)
			if err != nil {
				return err
			}

			record, err := readRecord(inputPath)
			if err != nil {
				return err
			}

			s, err := registry.Get(schemaName)
			if err != nil {
				return err
			}
			formatted, err := s.Render(newFormatter(), record)
			if err != nil {
				return err
			}

			log.Debug().Str("schema", schemaName).Int("fields", len(formatted)).Msg("record rendered")
			for _, field := range s.Fields {
				if out, ok := formatted[field.Name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", field.Name, out)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&schemasPath, "schemas", "", "schema definition file (YAML)")
	cmd.Flags().StringVar(&schemaName, "schema", "", "schema name to render with")
	cmd.Flags().StringVar(&inputPath, "input", "", "record file (JSON or YAML)")
	_ = cmd.MarkFlagRequired("schemas")
	_ = cmd.MarkFlagRequired("schema")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List formatter kinds and aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "kinds:   "+strings.Join(fieldfmt.KindNames(), ", "))
			fmt.Fprintln(cmd.OutOrStdout(), "aliases: "+strings.Join(fieldfmt.KindAliases(), ", "))
			return nil
		},
	}
}

// readRecord loads a flat record from a JSON or YAML file. JSON numbers
// are decoded as json.Number so monetary values keep their precision.
func readRecord(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	record := make(map[string]any)
	if strings.HasSuffix(path, ".json") {
		dec := json.NewDecoder(strings.NewReader(string(data)))
		dec.UseNumber()
		if err := dec.Decode(&record); err != nil {
			return nil, fmt.Errorf("failed to parse JSON record: %w", err)
		}
		return record, nil
	}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse YAML record: %w", err)
	}
	return record, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
