// Package main provides the CLI entrypoint for pass-phrase.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/verte-zerg/pass-phrase/internal/config"
	"github.com/verte-zerg/pass-phrase/internal/entropy"
	"github.com/verte-zerg/pass-phrase/internal/generator"
	"github.com/verte-zerg/pass-phrase/internal/model"
	"github.com/verte-zerg/pass-phrase/internal/tui"
	"github.com/verte-zerg/pass-phrase/internal/wordlist"
)

type options struct {
	num         int
	minLength   int
	maxLength   int
	validChars  string
	verbose     bool
	interactive bool
	color       bool
	wordFiles   map[model.Role]*string
}

// randomSource backs the secure sampler; nil selects crypto/rand.Reader.
var randomSource io.Reader

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{wordFiles: make(map[model.Role]*string, len(model.Roles))}
	rootCmd := &cobra.Command{
		Use:           "pass-phrase",
		Short:         "Generate memorable adjective-noun-verb-adjective-noun passphrases",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          tooManyArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerateCmd(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(underscoreToDash)
	for _, role := range model.Roles {
		opts.wordFiles[role] = flags.String(string(role), "", fmt.Sprintf("list of valid %s for the passphrase", role))
	}
	flags.IntVarP(&opts.num, "num", "n", model.DefaultNum, "number of passphrases to generate")
	flags.IntVar(&opts.minLength, "min", model.DefaultMinLength, "minimum length of a valid word")
	flags.IntVar(&opts.maxLength, "max", model.DefaultMaxLength, "maximum length of a valid word")
	flags.StringVar(&opts.validChars, "valid-chars", model.DefaultCharFilter, "valid chars, regexp style (e.g. '[a-z]')")
	flags.BoolVarP(&opts.verbose, "verbose", "V", false, "report entropy metrics for the given options")
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "pick passphrases interactively")
	flags.BoolVar(&opts.color, "color", false, "force coloured report output")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func tooManyArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: too many arguments", model.ErrInvalidConfiguration)
	}
	return nil
}

func underscoreToDash(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

func runGenerateCmd(cmd *cobra.Command, opts *options) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := buildConfig(cmd, opts, fileCfg.Generate)
	if err := cfg.Validate(); err != nil {
		return err
	}

	paths, err := config.ResolveAll(cfg.Paths)
	if err != nil {
		return err
	}
	lists, err := wordlist.LoadAll(paths, cfg.Filter)
	if err != nil {
		return err
	}

	source := generator.DetectSource(randomSource)
	if source != generator.SourceSecure {
		warnf(cmd.ErrOrStderr(), "WARNING: system does not provide a cryptographically secure random number generator.\n")
		warnf(cmd.ErrOrStderr(), "Continuing with less-secure generator.\n")
	}
	gen := generator.New(generator.NewSampler(source, randomSource))

	out := cmd.OutOrStdout()
	if cfg.Verbose {
		report := entropy.ForLists(lists)
		renderOpts := entropy.RenderOptions{Color: entropy.ShouldUseColor(out, cfg.Color)}
		if err := entropy.Render(out, report, lists.Paths, renderOpts); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if cfg.Interactive {
		return runPicker(out, gen, lists)
	}

	phrases, err := gen.Generate(lists, cfg.Num)
	if err != nil {
		return err
	}
	return writePhrases(out, phrases)
}

func runPicker(out io.Writer, gen *generator.Generator, lists model.WordLists) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("%w: --interactive requires a terminal", model.ErrInvalidConfiguration)
	}
	picker, err := tui.NewModel(gen, lists)
	if err != nil {
		return err
	}
	program := tea.NewProgram(picker, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run picker: %w", err)
	}
	if err := picker.Err(); err != nil {
		return err
	}
	return writePhrases(out, picker.Accepted())
}

func writePhrases(w io.Writer, phrases []model.Passphrase) error {
	for _, p := range phrases {
		if _, err := fmt.Fprintln(w, p.String()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func buildConfig(cmd *cobra.Command, opts *options, file config.GenerateConfig) model.Config {
	applyIntConfig(cmd, "num", &opts.num, file.Num)
	applyIntConfig(cmd, "min", &opts.minLength, file.MinLength)
	applyIntConfig(cmd, "max", &opts.maxLength, file.MaxLength)
	applyStringConfig(cmd, "valid-chars", &opts.validChars, file.ValidChars)
	applyBoolConfig(cmd, "verbose", &opts.verbose, file.Verbose)

	paths := make(map[model.Role]string, len(model.Roles))
	for _, role := range model.Roles {
		target := opts.wordFiles[role]
		applyStringConfig(cmd, string(role), target, file.WordFile(role))
		if *target != "" {
			paths[role] = *target
		}
	}

	return model.Config{
		Num:         opts.num,
		Verbose:     opts.verbose,
		Interactive: opts.interactive,
		Color:       opts.color,
		Filter: model.FilterCriteria{
			MinLength:   opts.minLength,
			MaxLength:   opts.maxLength,
			CharPattern: opts.validChars,
		},
		Paths: paths,
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pass-phrase configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# num = %d                # Number of passphrases to generate
# min = %d                # Minimum word length
# max = %d               # Maximum word length
# valid-chars = %q       # Valid chars, regexp style (e.g. "[a-z]")
# verbose = false         # Report entropy metrics
# adjectives = "~/.config/pass-phrase/adjectives.txt"
# nouns = "~/.config/pass-phrase/nouns.txt"
# verbs = "~/.config/pass-phrase/verbs.txt"
`,
		model.DefaultNum,
		model.DefaultMinLength,
		model.DefaultMaxLength,
		model.DefaultCharFilter,
	)
}

func warnf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
