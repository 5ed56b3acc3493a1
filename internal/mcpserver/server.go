// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the communication-log tools for LLM integration via
// stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/haldor/keepintouch/internal/logservice"
	"github.com/haldor/keepintouch/internal/models"
)

// Server wraps the MCP server with the keepintouch tools.
type Server struct {
	mcp      *server.MCPServer
	services map[models.Kind]*logservice.Service
}

// New creates a new MCP server with all tools registered. services
// maps each available kind to its service layer.
func New(services map[models.Kind]*logservice.Service) *Server {
	s := &Server{services: services}

	s.mcp = server.NewMCPServer(
		"keepintouch",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("collect_record",
		mcp.WithDescription("Submit one communication record (call, email, or SMS). "+
			"The record MUST follow the record format contract; read it first via "+
			"the get_record_contract tool or the keepintouch://record-format resource."),
		mcp.WithString("service", mcp.Required(), mcp.Description("One of: calls, email, sms")),
		mcp.WithString("record", mcp.Required(), mcp.Description("The record as a JSON object string")),
	), s.collectRecord)

	s.mcp.AddTool(mcp.NewTool("list_records",
		mcp.WithDescription("Return the full record log of a service as JSON, in insertion order."),
		mcp.WithString("service", mcp.Required(), mcp.Description("One of: calls, email, sms")),
	), s.listRecords)

	s.mcp.AddTool(mcp.NewTool("analyze_inactivity",
		mcp.WithDescription("Flag senders that have not been heard from in the last 7 days."),
		mcp.WithString("service", mcp.Required(), mcp.Description("One of: calls, email, sms")),
	), s.analyzeInactivity)

	s.mcp.AddTool(mcp.NewTool("get_record_contract",
		mcp.WithDescription("Returns the canonical record format contract. "+
			"Call this before submitting records to ensure correct structure."),
	), s.getRecordContract)

	// Resource: record format contract.
	s.mcp.AddResource(
		mcp.NewResource("keepintouch://record-format", "Record Format Contract",
			mcp.WithResourceDescription("Canonical record shapes that all submissions must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readRecordFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) serviceFor(req mcp.CallToolRequest) (*logservice.Service, error) {
	name, err := req.RequireString("service")
	if err != nil {
		return nil, err
	}
	svc, ok := s.services[models.Kind(name)]
	if !ok {
		return nil, fmt.Errorf("unknown service %q (want calls, email, or sms)", name)
	}
	return svc, nil
}

func (s *Server) collectRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc, err := s.serviceFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	raw, err := req.RequireString("record")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var rec models.Record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("record is not a JSON object: %v", err)), nil
	}
	if err := svc.Collect(ctx, rec); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(svc.Schema().CollectedMessage), nil
}

func (s *Server) listRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc, err := s.serviceFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	recs, err := svc.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(recs, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) analyzeInactivity(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	svc, err := s.serviceFor(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	insights, err := svc.Analyze(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(insights) == 0 {
		return mcp.NewToolResultText("no inactive senders"), nil
	}
	return mcp.NewToolResultText(strings.Join(insights, "\n")), nil
}

func (s *Server) getRecordContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(RecordFormatContract), nil
}

func (s *Server) readRecordFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "keepintouch://record-format",
			MIMEType: "text/markdown",
			Text:     RecordFormatContract,
		},
	}, nil
}
