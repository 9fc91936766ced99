package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.Floater/internal/config"
)

func demoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive floating menu playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return executeDemo(cmd.OutOrStdout(), cfg)
		},
	}
	addOverrideFlags(cmd)
	return cmd
}

func placeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Compute a floating position from a reference rect and menu size",
		Long: `Compute where a floating menu of the given size goes next to a reference
rectangle. All values are pixels relative to the viewport.

  floater place --ref 100,50,150,120 --size 40x32 --direction top`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := placeRequestFromFlags(cmd)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("output")
			return executePlace(cmd.OutOrStdout(), req, format)
		},
	}
	cmd.Flags().String("ref", "", "reference rect as top,left,right,bottom (required)")
	cmd.Flags().String("size", "", "menu size as WIDTHxHEIGHT (required)")
	cmd.Flags().String("direction", "bottom", "left, top, right or bottom")
	cmd.Flags().String("offset", "0,0", "offset adjustment as top,left")
	cmd.Flags().Float64("scroll", 0, "vertical document scroll offset")
	cmd.Flags().StringP("output", "o", "text", "output format: text, json or yaml")
	_ = cmd.MarkFlagRequired("ref")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func previewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Open a menu headlessly and print one composed frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			width, _ := cmd.Flags().GetInt("width")
			height, _ := cmd.Flags().GetInt("height")
			trigger, _ := cmd.Flags().GetInt("trigger")
			if width <= 0 || height <= 0 {
				tw, th := terminalSize(os.Stdout)
				if width <= 0 {
					width = tw
				}
				if height <= 0 {
					height = th
				}
			}
			return executePreview(cmd.OutOrStdout(), cfg, previewRequest{
				Width:   width,
				Height:  height,
				Trigger: trigger,
			})
		},
	}
	addOverrideFlags(cmd)
	cmd.Flags().Int("width", 0, "frame width in cells (0 = terminal width)")
	cmd.Flags().Int("height", 0, "frame height in cells (0 = terminal height)")
	cmd.Flags().Int("trigger", 0, "index of the trigger whose menu is opened")
	return cmd
}

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create floater.toml in the current directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			path, err := config.InitFile(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}

func traceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Inspect recorded controller traces",
	}

	cmd.AddCommand(traceShowCmd(), traceListCmd())
	return cmd
}

func traceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print every event of a trace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTrace(cmd.OutOrStdout(), args[0])
		},
	}
}

func traceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List trace files (default: [trace] dir from floater.toml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			} else {
				cfg, err := loadConfig(cmd)
				if err != nil {
					return err
				}
				dir = cfg.Trace.Dir
			}
			if dir == "" {
				return fmt.Errorf("no trace directory: pass one or set [trace] dir in %s", config.FileName)
			}
			return listTraces(cmd.OutOrStdout(), dir)
		},
	}
}

// addOverrideFlags registers the flags that override floater.toml for a run.
func addOverrideFlags(cmd *cobra.Command) {
	cmd.Flags().String("direction", "", "override [menu] direction")
	cmd.Flags().String("strategy", "", "override [mount] strategy (auto, portal or fallback)")
	cmd.Flags().Bool("clamp", false, "start with the clamping dynamic offset")
}

// loadConfig loads the --config file (or the discovered one, or defaults) and
// applies any override flags the command defines.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("direction"); f != nil && f.Changed {
		cfg.Menu.Direction = f.Value.String()
	}
	if f := cmd.Flags().Lookup("strategy"); f != nil && f.Changed {
		cfg.Mount.Strategy = f.Value.String()
	}
	if f := cmd.Flags().Lookup("clamp"); f != nil && f.Changed {
		cfg.Menu.DynamicOffset = f.Value.String() == "true"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}
