package server

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"grantbook/internal/log"
	"grantbook/internal/query"
)

// Dispatch runs one tool by name against the loaded snapshot. Both the
// MCP handlers and the REST endpoint funnel through here so argument
// decoding and error tagging behave identically on every transport.
func (s *Server) Dispatch(ctx context.Context, tool string, args map[string]any) (any, error) {
	switch tool {
	case ToolListTransactions:
		p, err := listTransactionsParams(args)
		if err != nil {
			return nil, err
		}
		return s.engine.ListTransactions(s.snapshot.Records, p)
	case ToolListGrantees:
		p, err := listGranteesParams(args)
		if err != nil {
			return nil, err
		}
		return s.engine.ListGrantees(s.snapshot.Records, p)
	case ToolShowGrantee:
		p, err := showGranteeParams(args)
		if err != nil {
			return nil, err
		}
		return s.engine.ShowGrantee(s.snapshot.Records, p)
	case ToolAggregate:
		p, err := aggregateParams(args)
		if err != nil {
			return nil, err
		}
		return s.engine.Aggregate(s.snapshot.Records, p)
	default:
		return nil, &query.NotFoundError{Msg: fmt.Sprintf("unknown tool %q", tool)}
	}
}

func (s *Server) callTool(ctx context.Context, tool string, args map[string]any) (*mcp.CallToolResult, error) {
	start := time.Now()
	result, err := s.Dispatch(ctx, tool, args)
	if err != nil {
		s.logger.Warn("tool call failed",
			log.FieldTool, tool,
			log.FieldError, err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Debug("tool call served",
		log.FieldTool, tool,
		log.FieldDuration, time.Since(start))
	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s result: %w", tool, err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}

func listTransactionsParams(args map[string]any) (query.ListTransactionsParams, error) {
	var p query.ListTransactionsParams
	var err error
	if p.Charity, err = stringArg(args, "charity"); err != nil {
		return p, err
	}
	if p.Year, err = intArg(args, "year"); err != nil {
		return p, err
	}
	if p.MinYear, err = intArg(args, "min_year"); err != nil {
		return p, err
	}
	if p.MaxYear, err = intArg(args, "max_year"); err != nil {
		return p, err
	}
	if p.MinAmount, err = floatArg(args, "min_amount"); err != nil {
		return p, err
	}
	if p.MaxAmount, err = floatArg(args, "max_amount"); err != nil {
		return p, err
	}
	if p.Search, err = stringArg(args, "search"); err != nil {
		return p, err
	}
	if p.Category, err = stringArg(args, "category"); err != nil {
		return p, err
	}
	if p.Status, err = stringArg(args, "status"); err != nil {
		return p, err
	}
	if p.SortBy, err = stringArg(args, "sort_by"); err != nil {
		return p, err
	}
	if p.SortOrder, err = stringArg(args, "sort_order"); err != nil {
		return p, err
	}
	if p.Fields, err = stringSliceArg(args, "fields"); err != nil {
		return p, err
	}
	if p.GroupBy, err = stringArg(args, "group_by"); err != nil {
		return p, err
	}
	return p, nil
}

func listGranteesParams(args map[string]any) (query.ListGranteesParams, error) {
	var p query.ListGranteesParams
	var err error
	if p.Year, err = intArg(args, "year"); err != nil {
		return p, err
	}
	if p.SortBy, err = stringArg(args, "sort_by"); err != nil {
		return p, err
	}
	return p, nil
}

func showGranteeParams(args map[string]any) (query.ShowGranteeParams, error) {
	var p query.ShowGranteeParams
	var err error
	if p.Charity, err = stringArg(args, "charity"); err != nil {
		return p, err
	}
	if p.EIN, err = stringArg(args, "ein"); err != nil {
		return p, err
	}
	return p, nil
}

func aggregateParams(args map[string]any) (query.AggregateParams, error) {
	var p query.AggregateParams
	var err error
	if p.GroupBy, err = stringArg(args, "group_by"); err != nil {
		return p, err
	}
	if p.Year, err = intArg(args, "year"); err != nil {
		return p, err
	}
	if p.MinYear, err = intArg(args, "min_year"); err != nil {
		return p, err
	}
	if p.MaxYear, err = intArg(args, "max_year"); err != nil {
		return p, err
	}
	if p.MinAmount, err = floatArg(args, "min_amount"); err != nil {
		return p, err
	}
	if p.MaxAmount, err = floatArg(args, "max_amount"); err != nil {
		return p, err
	}
	if p.Charity, err = stringArg(args, "charity"); err != nil {
		return p, err
	}
	if p.Category, err = stringArg(args, "category"); err != nil {
		return p, err
	}
	if p.SortBy, err = stringArg(args, "sort_by"); err != nil {
		return p, err
	}
	return p, nil
}

// Argument decoding. Absent and null both mean "not provided"; a
// present value of the wrong JSON type is a validation error, never a
// silent zero.

func typeErr(key, want string, got any) error {
	return &query.ValidationError{Msg: fmt.Sprintf("parameter %q must be a %s, got %T", key, want, got)}
}

func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", typeErr(key, "string", v)
	}
	return s, nil
}

func intArg(args map[string]any, key string) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, &query.ValidationError{Msg: fmt.Sprintf("parameter %q must be an integer, got %v", key, n)}
		}
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, typeErr(key, "number", v)
	}
}

func floatArg(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	default:
		return 0, typeErr(key, "number", v)
	}
}

func stringSliceArg(args map[string]any, key string) ([]string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, typeErr(key, "list of strings", item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, typeErr(key, "list of strings", v)
	}
}
