package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mgamesdev/docfx-markdown-gen/internal/config"
	"github.com/mgamesdev/docfx-markdown-gen/internal/docfx"
	"github.com/mgamesdev/docfx-markdown-gen/internal/gen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the markdown tree from the configured yamlPath",
	Run:   runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Info("configuration loaded", "yamlPath", cfg.YamlPath, "outputPath", cfg.OutputPath)

	// The output tree is rebuilt from scratch every run.
	if err := os.RemoveAll(cfg.OutputPath); err != nil {
		slog.Error("failed to clear output directory", "error", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(cfg.OutputPath, 0o755); err != nil {
		slog.Error("failed to create output directory", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	graph, err := docfx.Load(cmd.Context(), cfg.YamlPath, logger)
	if err != nil {
		slog.Error("failed to load item documents", "error", err)
		os.Exit(1)
	}
	logger.Info("item graph loaded", "items", graph.Len(), "elapsed", time.Since(start))

	start = time.Now()
	if err := gen.Generate(cmd.Context(), graph, cfg, logger); err != nil {
		slog.Error("markdown generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("output written", "path", cfg.OutputPath, "elapsed", time.Since(start))
}
