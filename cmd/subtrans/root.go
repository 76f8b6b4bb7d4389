package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "subtrans",
		Short:        "Batch subtitle translation and audio extraction toolkit",
		SilenceUsage: true,
	}

	root.AddCommand(
		newTranslateCommand(),
		newExtractAudioCommand(),
	)

	return root
}
