package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/mgamesdev/docfx-markdown-gen/internal/gen"
)

var (
	debug      bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:     "docfx-markdown-gen",
	Short:   "Convert docfx YAML output into a Docusaurus markdown tree",
	Version: gen.Version,
	Run:     runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml, or DFMG_CONFIG)")

	rootCmd.AddCommand(generateCmd)
}
