package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jsfmt/internal/driver"
	"jsfmt/internal/format"
	"jsfmt/internal/observ"
	"jsfmt/internal/project"
	"jsfmt/internal/trace"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path|-> [path...]",
	Short: "Format JavaScript source files",
	Long: `Format rewrites JavaScript files in place. Directories are walked for files
with the configured extensions; "-" formats stdin to stdout.

Options come from format defaults, then .jsfmt.toml (found by walking up
from the working directory, or given by --config), then explicit flags.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	addFormatFlags(fmtCmd)
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("check", false, "check if files are properly formatted")
	cmd.Flags().String("format", "text", "output format (text|json)")
	cmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	cmd.Flags().Bool("verify", false, "re-format the output and fail on any difference (ignored with -k)")
	cmd.Flags().Int("jobs", 0, "files formatted in parallel (0 = GOMAXPROCS)")
	cmd.Flags().Bool("cache", false, "skip files recorded as formatted in the user cache")
	cmd.Flags().Bool("clear-cache", false, "drop the formatting cache before the run")
	cmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	cmd.Flags().String("config", "", "path to a .jsfmt.toml file")

	cmd.Flags().IntP("indent-size", "s", 4, "indentation size")
	cmd.Flags().StringP("indent-char", "c", " ", "indentation character")
	cmd.Flags().BoolP("disable-preserve-newlines", "d", false, "do not preserve existing line breaks")
	cmd.Flags().Int("max-preserve-newlines", format.DefaultOptions().MaxPreserveNewlines, "maximum consecutive line breaks kept (0 = unlimited)")
	cmd.Flags().BoolP("jslint-happy", "j", false, "more jslint-compatible output")
	cmd.Flags().StringP("brace-style", "b", "collapse", "brace style (collapse|expand|end-expand)")
	cmd.Flags().BoolP("keep-array-indentation", "k", false, "keep array indentation")
	cmd.Flags().IntP("indent-level", "l", 0, "initial indentation level")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	verify, err := cmd.Flags().GetBool("verify")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	opts, files, err := resolveFormatOptions(cmd)
	if err != nil {
		return err
	}

	ctx, span := trace.StartSpan(cmd.Context(), trace.ScopeDriver, "fmt")
	defer span.End("")

	if len(args) == 1 && args[0] == "-" {
		res, err := driver.FormatReader(ctx, os.Stdin, opts)
		if err != nil {
			return err
		}
		if check {
			if res.Changed {
				return errors.New("fmt: formatting changes required")
			}
			return nil
		}
		_, err = os.Stdout.Write(res.Formatted)
		return err
	}
	for _, a := range args {
		if a == "-" {
			return fmt.Errorf("fmt: \"-\" cannot be combined with other paths")
		}
	}

	var timer *observ.Timer
	if showTimings {
		timer = observ.NewTimer()
	}
	req := driver.FormatOptions{
		Check:   check,
		Stdout:  writeToStdout,
		Verify:  verify,
		Options: opts,
		Files:   files,
		Jobs:    jobs,
		Timer:   timer,
	}
	err = timer.Measure("cache", func() (err error) {
		req.Cache, err = openCache(cmd)
		return err
	})
	if err != nil {
		return err
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	plain := writeToStdout || quiet || outputFormat != "text"
	useUI, err := useProgressUI(uiFlag, plain, isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	var results []driver.FormatResult
	if useUI {
		results, err = runFormatWithUI(ctx, "jsfmt fmt", args, &req)
	} else {
		results, err = driver.FormatPaths(ctx, args, req)
	}
	if err != nil {
		return err
	}

	if showTimings {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	var hasErrors, hasChanges bool
	switch {
	case outputFormat == "json":
		if err := renderFmtJSON(os.Stdout, results, check); err != nil {
			return err
		}
		hasErrors, hasChanges = summarize(results)
	case writeToStdout:
		hasErrors = renderFmtStdout(os.Stdout, os.Stderr, results)
	default:
		hasErrors, hasChanges = renderFmtText(os.Stdout, os.Stderr, results, check, quiet)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

// resolveFormatOptions layers defaults, the config file and explicit flags.
func resolveFormatOptions(cmd *cobra.Command) (format.Options, project.Files, error) {
	opts := format.DefaultOptions()
	var files project.Files

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return opts, files, err
	}
	if configPath == "" {
		found, ok, err := project.FindConfig(".")
		if err != nil {
			return opts, files, err
		}
		if ok {
			configPath = found
		}
	}
	if configPath != "" {
		cfg, err := project.LoadConfig(configPath)
		if err != nil {
			return opts, files, err
		}
		if opts, err = cfg.Apply(opts); err != nil {
			return opts, files, err
		}
		files = cfg.Files
	}

	flags := cmd.Flags()
	if flags.Changed("indent-size") {
		opts.IndentSize, _ = flags.GetInt("indent-size")
	}
	if flags.Changed("indent-char") {
		opts.IndentChar, _ = flags.GetString("indent-char")
	}
	if flags.Changed("disable-preserve-newlines") {
		disable, _ := flags.GetBool("disable-preserve-newlines")
		opts.PreserveNewlines = !disable
	}
	if flags.Changed("max-preserve-newlines") {
		opts.MaxPreserveNewlines, _ = flags.GetInt("max-preserve-newlines")
	}
	if flags.Changed("jslint-happy") {
		opts.JSLintHappy, _ = flags.GetBool("jslint-happy")
	}
	if flags.Changed("brace-style") {
		raw, _ := flags.GetString("brace-style")
		if opts.BraceStyle, err = format.ParseBraceStyle(raw); err != nil {
			return opts, files, err
		}
	}
	if flags.Changed("keep-array-indentation") {
		opts.KeepArrayIndentation, _ = flags.GetBool("keep-array-indentation")
	}
	if flags.Changed("indent-level") {
		opts.IndentLevel, _ = flags.GetInt("indent-level")
	}
	return opts, files, opts.Validate()
}

func openCache(cmd *cobra.Command) (*driver.DiskCache, error) {
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return nil, err
	}
	clearCache, err := cmd.Flags().GetBool("clear-cache")
	if err != nil {
		return nil, err
	}
	if !useCache && !clearCache {
		return nil, nil
	}
	cache, err := driver.OpenDiskCache("jsfmt")
	if err != nil {
		return nil, err
	}
	if clearCache {
		if err := cache.DropAll(); err != nil {
			return nil, fmt.Errorf("fmt: clear cache: %w", err)
		}
	}
	if !useCache {
		return nil, nil
	}
	return cache, nil
}

func summarize(results []driver.FormatResult) (hasErrors, hasChanges bool) {
	for _, res := range results {
		hasErrors = hasErrors || res.Err != nil
		hasChanges = hasChanges || res.Changed
	}
	return hasErrors, hasChanges
}

func renderFmtStdout(out, errOut io.Writer, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out, errOut io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(errOut, "%s %s: %v\n", color.RedString("fmt:"), res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", color.YellowString("reformatted"), res.Path)
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Cached   bool   `json:"cached,omitempty"`
		Error    string `json:"error,omitempty"`
		CheckRun bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = strings.TrimSpace(res.Err.Error())
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
