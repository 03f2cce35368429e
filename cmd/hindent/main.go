package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gibiansky/hindent"
	"github.com/gibiansky/hindent/internal/astjson"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "hindent [file]",
		Short:   "Pretty-print Haskell source from its syntax tree",
		Long:    "Hindent renders a JSON-encoded Haskell syntax tree as formatted source code.\nThe layout is driven by a named style; see `hindent styles` for the available ones.",
		Version: fmt.Sprintf("%s (commit %s)", version, commit),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			processGlobalFlags()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return formatHandler(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindEnv("no-color", "NO_COLOR")

	rootCmd.Flags().StringP("style", "s", "gibiansky", "Formatting style")
	rootCmd.Flags().Int("max-columns", 0, "Override the style's column budget")
	rootCmd.Flags().Int("indent", -1, "Override the style's indentation width")
	rootCmd.Flags().BoolP("write", "w", false, "Write the result back to the source file")
	rootCmd.Flags().Bool("stdin", false, "Read the syntax tree from stdin")
	viper.BindPFlag("style", rootCmd.Flags().Lookup("style"))

	stylesCmd := &cobra.Command{
		Use:   "styles",
		Short: "List the available formatting styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return stylesHandler(format)
		},
	}
	stylesCmd.Flags().StringP("output", "o", "text", "Output format (json or text)")
	rootCmd.AddCommand(stylesCmd)

	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func formatHandler(cmd *cobra.Command, args []string) error {
	input, filePath, err := getInput(cmd, args)
	if err != nil {
		return err
	}

	node, err := astjson.Decode(input)
	if err != nil {
		return err
	}

	opts := []hindent.Option{}
	styleName := viper.GetString("style")
	style, ok := hindent.Lookup(styleName)
	if !ok {
		return fmt.Errorf("unknown style: %s", styleName)
	}
	opts = append(opts, hindent.WithStyle(style))
	if f := cmd.Flags().Lookup("max-columns"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("max-columns")
		opts = append(opts, hindent.WithMaxColumns(n))
	}
	if f := cmd.Flags().Lookup("indent"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("indent")
		opts = append(opts, hindent.WithIndentSpaces(n))
	}

	start := time.Now()
	formatted, state, err := hindent.FormatWithState(node, opts...)
	if err != nil {
		return err
	}
	log.Debug().
		Str("style", style.Name).
		Int("lines", state.Line()+1).
		Dur("elapsed", time.Since(start)).
		Msg("render complete")

	write, _ := cmd.Flags().GetBool("write")
	if write && filePath != "" {
		return os.WriteFile(filePath, []byte(formatted), 0o644)
	}
	fmt.Print(formatted)
	return nil
}

// Reads global flags from Viper and adjusts the environment accordingly.
func processGlobalFlags() {
	noColor := viper.GetBool("no-color") || !isTerminalIO()
	if noColor {
		disableColor()
	}
	level := zerolog.WarnLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:     os.Stderr,
		NoColor: noColor,
	}).Level(level).With().Timestamp().Logger()
}
