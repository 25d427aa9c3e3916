package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/oukeidos/wcgen/internal/files"
	"github.com/oukeidos/wcgen/internal/generator"
	"github.com/oukeidos/wcgen/internal/logger"
	"github.com/oukeidos/wcgen/internal/render"
	"github.com/oukeidos/wcgen/internal/settings"
	"github.com/oukeidos/wcgen/internal/stopwords"
)

type generateOptions struct {
	exclude      []string
	excludeFile  string
	useSettings  bool
	settingsPath string
	width        int
	height       int
	maxWords     int
	seed         int64
	trim         bool
	yes          bool
	noClobber    bool
	logFilePath  string
	debug        bool
}

func defaultGenerateOptions() generateOptions {
	def := render.DefaultOptions()
	return generateOptions{width: def.Width, height: def.Height, maxWords: def.MaxWords}
}

func newGenerateCmd() *cobra.Command {
	opts := defaultGenerateOptions()
	cmd := &cobra.Command{
		Use:   "generate <input.txt> <output.png>",
		Short: "Render a word cloud from a text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				_ = cmd.Usage()
				return fmt.Errorf("input and output files are required")
			}
			return runGenerate(cmd, args, &opts)
		},
		SilenceUsage: true,
	}

	cmd.SetUsageTemplate(subcommandUsageTemplate)
	addGenerateFlags(cmd, &opts)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, opts *generateOptions) {
	cmd.Flags().StringArrayVar(&opts.exclude, "exclude", nil, "Extra word to exclude (repeatable)")
	cmd.Flags().StringVar(&opts.excludeFile, "exclude-file", "", "Text file with one excluded word per line")
	cmd.Flags().BoolVar(&opts.useSettings, "use-settings", false, "Also exclude the words saved by the desktop app")
	cmd.Flags().StringVar(&opts.settingsPath, "settings-file", "", "Settings file used by --use-settings (default ~/"+settings.FileName+")")
	cmd.Flags().IntVar(&opts.width, "width", opts.width, "Image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "Image height in pixels")
	cmd.Flags().IntVar(&opts.maxWords, "max-words", opts.maxWords, "Maximum number of words drawn")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Layout random seed (0 picks one)")
	cmd.Flags().BoolVar(&opts.trim, "trim", false, "Crop the image to the drawn words")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Overwrite output file without asking")
	cmd.Flags().BoolVar(&opts.noClobber, "no-clobber", false, "Write to a new numbered file instead of overwriting")
	cmd.Flags().StringVar(&opts.logFilePath, "log-file", "", "Path to save machine-readable JSONL logs")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
}

func runGenerate(cmd *cobra.Command, args []string, opts *generateOptions) error {
	if len(args) < 2 {
		return fmt.Errorf("input and output files are required")
	}
	errOut := cmd.ErrOrStderr()
	if len(args) > 2 {
		fmt.Fprintf(errOut, "Warning: expected 2 arguments but got %d. Did you forget quotes around file paths?\n", len(args))
		fmt.Fprintf(errOut, "  Using input: %s\n", args[0])
		fmt.Fprintf(errOut, "  Using output: %s\n", args[1])
	}
	inputPath, outputPath := args[0], args[1]
	if err := validateOutputExtension(outputPath); err != nil {
		return err
	}
	if opts.yes && opts.noClobber {
		return fmt.Errorf("--yes and --no-clobber cannot be used together")
	}
	if err := initLogging(opts.debug, opts.logFilePath); err != nil {
		return err
	}

	exclusions, err := collectExclusions(opts)
	if err != nil {
		return err
	}

	outputPath, proceed, err := resolveOutputPath(outputPath, opts)
	if err != nil {
		return err
	}
	if !proceed {
		logger.Info("Output file exists. Aborted by user.", "path", outputPath)
		return nil
	}

	ropts := render.DefaultOptions()
	ropts.Width = opts.width
	ropts.Height = opts.height
	ropts.MaxWords = opts.maxWords
	ropts.Seed = opts.seed
	ropts.Trim = opts.trim
	r, err := render.New(ropts)
	if err != nil {
		return fmt.Errorf("invalid render options: %w", err)
	}
	worker, err := generator.NewWorker(r)
	if err != nil {
		return err
	}

	req := generator.NewRequest(inputPath, outputPath, "")
	req.ExclusionWords = exclusions

	ctx, stop := signalContext()
	defer stop()
	start := time.Now()
	res := worker.Generate(ctx, req)
	if res.Status != generator.StatusSuccess {
		if ctx.Err() != nil {
			logger.Warn("Generation canceled", "error", res.Err)
			return nil
		}
		return res.Err
	}
	logger.Info("Word cloud saved", "path", res.OutputPath, "elapsed", time.Since(start).Round(time.Millisecond).String())
	fmt.Fprintf(cmd.OutOrStdout(), "Saved word cloud to %s\n", res.OutputPath)
	return nil
}

func validateOutputExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".png" {
		return nil
	}
	if ext == "" {
		ext = "(none)"
	}
	return fmt.Errorf("unsupported output extension %q (supported: .png)", ext)
}

// collectExclusions merges --exclude, --exclude-file and, with
// --use-settings, the desktop app's saved list. Standard stopwords are added
// later by the generator.
func collectExclusions(opts *generateOptions) (stopwords.Set, error) {
	set := stopwords.Set{}
	set.Add(opts.exclude...)
	if opts.excludeFile != "" {
		data, err := os.ReadFile(opts.excludeFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read exclusion file %s: %w", opts.excludeFile, err)
		}
		set = stopwords.Merge(set, stopwords.ParseCustom(string(data)))
	}
	if opts.useSettings {
		store := settings.NewStore(opts.settingsPath)
		saved := store.Load()
		logger.Debug("Using saved exclusion list", "path", store.Path())
		set = stopwords.Merge(set, stopwords.ParseCustom(saved.ExclusionList))
	}
	return set, nil
}

// resolveOutputPath applies --no-clobber or asks before overwriting. The
// bool is false when the user declined.
func resolveOutputPath(path string, opts *generateOptions) (string, bool, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return path, true, nil
		}
		return "", false, fmt.Errorf("failed to stat output path: %w", err)
	}
	if opts.noClobber {
		alt, changed, err := files.SafePath(path)
		if err != nil {
			return "", false, err
		}
		if changed {
			logger.Info("Output exists, writing to a new file", "requested", path, "path", alt)
		}
		return alt, true, nil
	}
	ok, err := newConfirmer().ConfirmOverwrite(path, opts.yes)
	if err != nil {
		return "", false, err
	}
	if ok {
		logger.Info("Overwriting output file", "path", path)
	}
	return path, ok, nil
}
