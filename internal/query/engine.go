package query

import (
	"grantbook/internal/grantee"
	"grantbook/internal/log"
)

// Engine runs the four operations. It owns only the static grantee
// metadata and classifier configuration; the transaction snapshot is
// passed per call, so concurrent queries over a shared snapshot are
// safe by construction.
type Engine struct {
	meta     *grantee.MetadataTable
	keywords grantee.Keywords
	logger   *log.Logger
}

// NewEngine creates an engine. A nil metadata table behaves as an
// empty one; a nil logger logs to the default handler.
func NewEngine(meta *grantee.MetadataTable, kw grantee.Keywords, logger *log.Logger) *Engine {
	if meta == nil {
		meta = grantee.NewMetadataTable(nil)
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Engine{
		meta:     meta,
		keywords: kw,
		logger:   logger.WithComponent(log.ComponentQuery),
	}
}
