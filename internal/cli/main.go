package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:          "hardsub <video_id>",
		Short:        "Burn translated Burmese subtitles into a YouTube video",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args)
		},
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	// Visible flags
	root.Flags().String("job", "", "Path to a job JSON file (\"-\" for stdin); overrides the video_id argument")
	root.Flags().String("style", "", "Subtitle presentation style (default opaque_black)")
	root.Flags().String("bucket", "", "Object storage bucket")
	root.Flags().String("endpoint", "", "Object storage endpoint URL")
	root.Flags().String("polished-prefix", "", "Key prefix of the polished subtitle track")
	root.Flags().String("hardsub-prefix", "", "Key prefix of the published hardsub")

	// Hidden tuning flags (internal)
	root.Flags().String("font", "Noto Sans Myanmar", "Subtitle font family")
	root.Flags().Int("font-size", 24, "Subtitle font size")
	root.Flags().Int("max-height", 1080, "Maximum video height to download")
	_ = root.Flags().MarkHidden("font")
	_ = root.Flags().MarkHidden("font-size")
	_ = root.Flags().MarkHidden("max-height")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
