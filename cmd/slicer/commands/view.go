package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/slicer/internal/app"
)

func (c *CLI) newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <program> <entity>",
		Short: "Slice a program from an entity and browse its usages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			outputMode, _ := flags.GetString("output-mode")
			ci, _ := flags.GetBool("ci")
			watch, _ := flags.GetBool("watch")
			noPreview, _ := flags.GetBool("no-preview")
			autoScroll, _ := flags.GetBool("auto-scroll")
			logFormat, _ := flags.GetString("log-format")
			verbose, _ := flags.GetBool("verbose")

			// If --ci is set, override output-mode to "linear"
			if ci {
				outputMode = "linear"
			}

			opts := app.ViewOptions{
				ProgramPath: args[0],
				EntityID:    args[1],
				OutputMode:  outputMode,
				LogFormat:   logFormat,
				Verbose:     verbose,
				Watch:       watch,
				NoPreview:   noPreview,
				AutoScroll:  autoScroll,
			}
			// Unset numeric flags keep the settings file value.
			if flags.Changed("depth") {
				depth, _ := flags.GetInt("depth")
				opts.Depth = &depth
			}
			if flags.Changed("workers") {
				workers, _ := flags.GetInt("workers")
				opts.Workers = &workers
			}

			return c.app.View(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output-mode=linear)")
	cmd.Flags().IntP("depth", "d", 0, "Levels the linear output expands (default from settings)")
	cmd.Flags().IntP("workers", "j", 0, "Concurrent child computations (default from settings)")
	cmd.Flags().BoolP("watch", "w", false, "Reload the program when its file changes")
	cmd.Flags().Bool("no-preview", false, "Hide the usage preview")
	cmd.Flags().Bool("auto-scroll", false, "Navigate to the source of every selected usage")
	cmd.Flags().String("log-format", "text", "Log format: text or json")
	cmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
	return cmd
}
