package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/unisonfm/unison/src/features/config"
	"github.com/unisonfm/unison/src/features/logging"
	"github.com/unisonfm/unison/src/features/sources"
	"github.com/unisonfm/unison/src/infra/metadata"
	"github.com/unisonfm/unison/src/infra/sources/demo"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	cfg := cfgManager.Get()

	// Real deployments register per-provider clients here; demo mode
	// wires the built-in catalogs instead.
	var primaries []sources.Source
	var metadataSources []sources.MetadataSource
	if cfg.Demo {
		demoSource := demo.New()
		primaries = append(primaries, demoSource)
		metadataSources = append(metadataSources, metadata.NewDemoMusicBrainz())
		slog.Info("Loaded built-in demo catalog (demo mode)", "name", demoSource.Name())
	}
	if len(primaries) == 0 {
		slog.Error("No sources configured, nothing to aggregate")
		os.Exit(1)
	}

	manager := sources.NewManager(primaries, metadataSources,
		sources.WithSimilarityThreshold(cfg.Sources.SimilarityThreshold),
		sources.WithReleaseSearchLimit(cfg.Sources.ReleaseSearchLimit),
		sources.WithArtworkPriority(cfg.Sources.ArtworkPriority),
	)

	ctx := context.Background()

	query := "thriller"
	results := manager.SearchAll(ctx, query)
	slog.Info("Aggregate search completed", "query", query, "tracks", len(results.Tracks), "albums", len(results.Albums))
	for _, album := range results.Albums {
		slog.Info("Album",
			"title", album.Title,
			"artist", album.LeadArtist(),
			"year", album.Year,
			"genres", album.Genres,
			"sources", len(album.SourceIDs),
		)
	}

	for _, playlist := range manager.ListAllPlaylists(ctx) {
		slog.Info("Playlist", "name", playlist.Name, "source", playlist.Source, "tracks", playlist.TrackCount)
	}
}
