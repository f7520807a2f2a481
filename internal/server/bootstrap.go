package server

import (
	"context"

	"grantbook/internal/config"
	"grantbook/internal/grantee"
	"grantbook/internal/loader"
	"grantbook/internal/log"
	"grantbook/internal/query"
)

// Bootstrap wires a server from validated configuration: it loads the
// transaction snapshot, the optional grantee metadata table and builds
// the engine. Both binaries start here.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Server, error) {
	src, err := loader.New(loader.Config{
		Type:         loader.SourceType(cfg.DataSource),
		CSVPath:      cfg.CSVPath,
		SQLiteDBPath: cfg.SQLiteDBPath,
		SQLiteTable:  cfg.SQLiteTable,
	}, logger)
	if err != nil {
		return nil, err
	}

	snapshot, err := loader.LoadSnapshot(ctx, src)
	if err != nil {
		return nil, err
	}
	logger.Info("transactions loaded",
		log.FieldBackend, cfg.DataSource,
		log.FieldRecordCount, len(snapshot.Records))

	var meta *grantee.MetadataTable
	keywords := grantee.DefaultKeywords()
	if cfg.MetadataPath != "" {
		meta, keywords, err = grantee.LoadMetadata(cfg.MetadataPath)
		if err != nil {
			return nil, err
		}
		logger.Info("grantee metadata loaded", log.FieldPath, cfg.MetadataPath)
	}

	engine := query.NewEngine(meta, keywords, logger)
	return New(engine, snapshot, logger), nil
}
