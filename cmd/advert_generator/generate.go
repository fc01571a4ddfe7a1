package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/advert-generator/internal/advert"
	"github.com/jonathan/advert-generator/internal/config"
	"github.com/jonathan/advert-generator/internal/form"
	"github.com/jonathan/advert-generator/internal/observability"
	"github.com/jonathan/advert-generator/internal/session"
	"github.com/jonathan/advert-generator/internal/types"
)

var (
	genTitle      string
	genLocation   string
	genRelocation bool
	genNotes      string
	genNotesFile  string
	genOut        string
	genDryRun     bool
	genConfigPath string
	genAPIKey     string
	genModel      string
	genVerbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one advert from the command line",
	Long: `Generate a single job advert and write the markdown to stdout or --out.

With --dry-run the prompt is printed instead and no API call is made.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genTitle, "title", "", "Job title (required)")
	generateCmd.Flags().StringVar(&genLocation, "location", string(types.DefaultLocation), "Location: Budapest, Denver or Remote")
	generateCmd.Flags().BoolVar(&genRelocation, "relocation", false, "Offer relocation support (ignored for Remote)")
	generateCmd.Flags().StringVar(&genNotes, "notes", "", "Raw requirements and hiring notes")
	generateCmd.Flags().StringVar(&genNotesFile, "notes-file", "", "Read notes from file ('-' for stdin)")
	generateCmd.Flags().StringVarP(&genOut, "out", "o", "", "Write the advert to this file instead of stdout")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Print the prompt without calling the API")
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config.json file")
	generateCmd.Flags().StringVar(&genAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "Gemini model name")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print the form and result summary to stderr")
	rootCmd.AddCommand(generateCmd)
}

// buildInput assembles and normalizes the form input from flag values.
func buildInput(title, location string, relocation bool, notes string) (types.JobFormInput, error) {
	loc, err := types.ParseLocation(location)
	if err != nil {
		return types.JobFormInput{}, fmt.Errorf("--location: %w", err)
	}

	state, err := form.FromInput(types.JobFormInput{
		JobTitle:             title,
		Location:             loc,
		RelocationApplicable: relocation,
		RawNotes:             notes,
	})
	if err != nil {
		return types.JobFormInput{}, err
	}
	if !state.CanSubmit() {
		return types.JobFormInput{}, errors.New("--title and --notes (or --notes-file) are required")
	}
	input := state.Input()
	if err := input.Validate(); err != nil {
		return types.JobFormInput{}, fmt.Errorf("invalid input: %w", err)
	}
	return input, nil
}

func readNotes(cmd *cobra.Command) (string, error) {
	if genNotesFile == "" {
		return genNotes, nil
	}

	var (
		data []byte
		err  error
	)
	if genNotesFile == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(genNotesFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read notes: %w", err)
	}
	return string(data), nil
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	notes, err := readNotes(cmd)
	if err != nil {
		return err
	}
	input, err := buildInput(genTitle, genLocation, genRelocation, notes)
	if err != nil {
		return err
	}

	var printer *observability.Printer
	if genVerbose {
		printer = observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintJobForm(input)
	}

	if genDryRun {
		return writeOutput(cmd, advert.BuildPrompt(input))
	}

	cfg, err := resolveConfig(config.Config{APIKey: genAPIKey, Model: genModel}, genConfigPath, os.Getenv)
	if err != nil {
		return err
	}
	gen, logger, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	sess, err := session.NewWithInput(gen, logger.Named("session"), input)
	if err != nil {
		return err
	}
	result, err := sess.Submit(cmd.Context())
	if err != nil {
		return err
	}
	if printer != nil {
		printer.PrintResult(result)
	}
	if result.Status == types.StatusFailed {
		return errors.New(result.ErrorMessage)
	}

	return writeOutput(cmd, result.Content)
}

func writeOutput(cmd *cobra.Command, content string) error {
	if genOut == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(genOut, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", genOut, err)
	}
	return nil
}
