package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/artfolio/gallery/internal/app"
	catalogUsecase "github.com/artfolio/gallery/internal/catalog/usecase"
	"github.com/artfolio/gallery/internal/config"
)

// RunCleanFavorites removes favorite rows that reference deleted designs.
// Supports both text/JSON output formats.
//
// Requirements: Database must be migrated and accessible.
func RunCleanFavorites(ctx context.Context, format string) error {
	cfg := config.Load()

	container := app.NewContainer(cfg)
	logger := container.Logger()
	defer closeContainer(container, logger)

	useCase, err := container.FavoriteUseCase()
	if err != nil {
		return fmt.Errorf("failed to initialize favorite use case: %w", err)
	}

	return cleanFavorites(ctx, useCase, logger, os.Stdout, format)
}

// cleanFavorites executes the cleanup and writes the result to out.
func cleanFavorites(
	ctx context.Context,
	useCase catalogUsecase.FavoriteUseCase,
	logger *slog.Logger,
	out io.Writer,
	format string,
) error {
	logger.Info("cleaning orphaned favorites")

	count, err := useCase.CleanOrphans(ctx)
	if err != nil {
		return fmt.Errorf("failed to clean orphaned favorites: %w", err)
	}

	if format == "json" {
		outputCleanJSON(out, count)
	} else {
		outputCleanText(out, count)
	}

	logger.Info("cleanup completed", slog.Int64("count", count))
	return nil
}

// outputCleanText outputs the result in human-readable text format.
func outputCleanText(out io.Writer, count int64) {
	fmt.Fprintf(out, "Removed %d orphaned favorite(s)\n", count)
}

// outputCleanJSON outputs the result in JSON format for machine consumption.
func outputCleanJSON(out io.Writer, count int64) {
	result := map[string]interface{}{
		"count": count,
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		return
	}

	fmt.Fprintln(out, string(jsonBytes))
}
