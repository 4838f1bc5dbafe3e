package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"jsfmt/internal/driver"
	"jsfmt/internal/format"
	"jsfmt/internal/project"
	"jsfmt/internal/version"
)

// buildReport is what `jsfmt version` can print. Build fields come from
// ldflags, the formatter fields describe what a fmt run in the current
// directory would key its cache on.
type buildReport struct {
	Tool    string `json:"tool"`
	Version string `json:"version"`

	Commit  string `json:"git_commit,omitempty"`
	Message string `json:"git_message,omitempty"`
	Built   string `json:"build_date,omitempty"`

	CacheSchema   uint16 `json:"cache_schema,omitempty"`
	Config        string `json:"config,omitempty"`
	OptionsDigest string `json:"options_digest,omitempty"`
	BraceStyle    string `json:"brace_style,omitempty"`
}

// reportFields selects which optional parts of buildReport are filled.
type reportFields struct {
	hash, message, date bool
	formatter           bool
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("message", false, "include git commit message")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
	versionCmd.Flags().Bool("full", false, "include build metadata, cache schema and the effective options digest")
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show jsfmt build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		full, _ := flags.GetBool("full")
		hash, _ := flags.GetBool("hash")
		message, _ := flags.GetBool("message")
		date, _ := flags.GetBool("date")
		outFormat, _ := flags.GetString("format")

		fields := reportFields{
			hash:      hash || full,
			message:   message || full,
			date:      date || full,
			formatter: full,
		}
		report, err := collectBuildReport(".", fields)
		if err != nil {
			return err
		}

		switch strings.ToLower(outFormat) {
		case "json":
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		case "pretty":
			writeBuildReport(cmd.OutOrStdout(), report)
			return nil
		default:
			return fmt.Errorf("unsupported format %q (must be pretty or json)", outFormat)
		}
	},
}

// collectBuildReport fills the requested fields. The formatter section
// resolves the config that fmt would pick up from dir, so a broken config
// surfaces here as an error as well.
func collectBuildReport(dir string, fields reportFields) (buildReport, error) {
	r := buildReport{Tool: "jsfmt", Version: strings.TrimSpace(version.Version)}
	if r.Version == "" {
		r.Version = "dev"
	}
	if fields.hash {
		r.Commit = orUnknown(version.GitCommit)
	}
	if fields.message {
		r.Message = orUnknown(version.GitMessage)
	}
	if fields.date {
		r.Built = orUnknown(version.BuildDate)
	}
	if !fields.formatter {
		return r, nil
	}

	opts := format.DefaultOptions()
	r.Config = "none"
	path, ok, err := project.FindConfig(dir)
	if err != nil {
		return r, err
	}
	if ok {
		cfg, err := project.LoadConfig(path)
		if err != nil {
			return r, err
		}
		if opts, err = cfg.Apply(opts); err != nil {
			return r, err
		}
		r.Config = path
	}
	r.CacheSchema = driver.CacheSchemaVersion
	r.OptionsDigest = project.OptionsDigest(opts).Hex()
	r.BraceStyle = opts.BraceStyle.String()
	return r, nil
}

func writeBuildReport(out io.Writer, r buildReport) {
	fmt.Fprintf(out, "%s %s\n", r.Tool, version.Colored(r.Version))
	line := func(label, value string) {
		if value != "" {
			fmt.Fprintf(out, "%-9s %s\n", label+":", value)
		}
	}
	line("commit", r.Commit)
	line("message", r.Message)
	line("built", r.Built)
	if r.OptionsDigest == "" {
		return
	}
	line("config", r.Config)
	line("braces", r.BraceStyle)
	line("options", r.OptionsDigest)
	line("cache", fmt.Sprintf("schema v%d", r.CacheSchema))
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}
