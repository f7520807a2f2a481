// Package server exposes the query engine over MCP (stdio and
// streamable HTTP) and a minimal REST-like POST endpoint. Transports
// only translate: parameter decoding in, payload or tagged error out.
package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"grantbook/internal/loader"
	"grantbook/internal/log"
	"grantbook/internal/query"
)

const (
	serverName    = "grantbook"
	serverVersion = "1.0.0"
)

// Tool names.
const (
	ToolListTransactions = "list_transactions"
	ToolListGrantees     = "list_grantees"
	ToolShowGrantee      = "show_grantee"
	ToolAggregate        = "aggregate_transactions"
)

// Server binds the engine and a loaded snapshot to the MCP tool
// surface.
type Server struct {
	engine   *query.Engine
	snapshot *loader.Snapshot
	mcp      *server.MCPServer
	logger   *log.Logger
}

// New creates the server and registers the four tools.
func New(engine *query.Engine, snapshot *loader.Snapshot, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	s := &Server{
		engine:   engine,
		snapshot: snapshot,
		logger:   logger.WithComponent(log.ComponentServer),
	}
	s.mcp = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio",
		log.FieldRecordCount, len(s.snapshot.Records))
	return server.ServeStdio(s.mcp)
}

// StreamableHTTP returns the MCP-over-HTTP handler.
func (s *Server) StreamableHTTP() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(s.mcp)
}

func (s *Server) registerTools() {
	listTxns := mcp.NewTool(ToolListTransactions,
		mcp.WithDescription("List grant transactions with filters, fuzzy search, sorting, field projection and optional grouping"),
		mcp.WithString("charity", mcp.Description("Exact charity name (case-insensitive)")),
		mcp.WithNumber("year", mcp.Description("Match transactions whose dates fall in this year")),
		mcp.WithNumber("min_year", mcp.Description("Lower bound on the transaction year")),
		mcp.WithNumber("max_year", mcp.Description("Upper bound on the transaction year")),
		mcp.WithNumber("min_amount", mcp.Description("Inclusive lower bound on the grant amount")),
		mcp.WithNumber("max_amount", mcp.Description("Inclusive upper bound on the grant amount")),
		mcp.WithString("search", mcp.Description("Fuzzy search across all record fields")),
		mcp.WithString("category", mcp.Description("Grantee category to keep")),
		mcp.WithString("status", mcp.Description("Grant status to keep")),
		mcp.WithString("sort_by", mcp.Description("Field to sort by, e.g. Amount or Sent Date")),
		mcp.WithString("sort_order", mcp.Description("asc or desc")),
		mcp.WithArray("fields", mcp.Description("Fields to keep in the output records")),
		mcp.WithString("group_by", mcp.Description("Group results by a field name or 'year'")),
	)
	s.mcp.AddTool(listTxns, s.handleListTransactions)

	listGrantees := mcp.NewTool(ToolListGrantees,
		mcp.WithDescription("List unique grantee organizations with totals and classification"),
		mcp.WithNumber("year", mcp.Description("Only count transactions from this year")),
		mcp.WithString("sort_by", mcp.Description("name, ein, recent or total")),
	)
	s.mcp.AddTool(listGrantees, s.handleListGrantees)

	showGrantee := mcp.NewTool(ToolShowGrantee,
		mcp.WithDescription("Show one grantee: totals, status and yearly breakdowns, full history"),
		mcp.WithString("charity", mcp.Required(), mcp.Description("Charity name; substring matching is used as a fallback")),
		mcp.WithString("ein", mcp.Description("EIN to disambiguate organizations sharing a name")),
	)
	s.mcp.AddTool(showGrantee, s.handleShowGrantee)

	aggregate := mcp.NewTool(ToolAggregate,
		mcp.WithDescription("Group filtered transactions into count/total buckets"),
		mcp.WithString("group_by", mcp.Required(),
			mcp.Description("category, grantee, year, international, is_beloved or status")),
		mcp.WithNumber("year", mcp.Description("Match transactions whose dates fall in this year")),
		mcp.WithNumber("min_year", mcp.Description("Lower bound on the transaction year")),
		mcp.WithNumber("max_year", mcp.Description("Upper bound on the transaction year")),
		mcp.WithNumber("min_amount", mcp.Description("Inclusive lower bound on the grant amount")),
		mcp.WithNumber("max_amount", mcp.Description("Inclusive upper bound on the grant amount")),
		mcp.WithString("charity", mcp.Description("Exact charity name (case-insensitive)")),
		mcp.WithString("category", mcp.Description("Grantee category to keep")),
		mcp.WithString("sort_by", mcp.Description("count, total_amount or name")),
	)
	s.mcp.AddTool(aggregate, s.handleAggregate)
}

func (s *Server) handleListTransactions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.callTool(ctx, ToolListTransactions, req.GetArguments())
}

func (s *Server) handleListGrantees(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.callTool(ctx, ToolListGrantees, req.GetArguments())
}

func (s *Server) handleShowGrantee(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.callTool(ctx, ToolShowGrantee, req.GetArguments())
}

func (s *Server) handleAggregate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.callTool(ctx, ToolAggregate, req.GetArguments())
}
