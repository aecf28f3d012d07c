// ABOUTME: MCP tools for transcript reading, rendering, and planning.
// ABOUTME: Maps CLI functionality to MCP tool interface.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kyle-sutherland/slackdump2markdown/internal/docops"
	"github.com/kyle-sutherland/slackdump2markdown/internal/markdown"
	"github.com/kyle-sutherland/slackdump2markdown/internal/transcript"
)

func (s *Server) registerTools() {
	// list_messages
	s.server.AddTool(&mcp.Tool{
		Name:        "list_messages",
		Description: "List the messages in a Slack export directory, sorted chronologically",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"dir": {"type": "string", "description": "Export directory containing JSON files"},
				"limit": {"type": "integer", "description": "Max results", "default": 50}
			},
			"required": ["dir"]
		}`),
	}, s.handleListMessages)

	// render_markdown
	s.server.AddTool(&mcp.Tool{
		Name:        "render_markdown",
		Description: "Render a Slack export as a markdown conversation log",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"dir": {"type": "string", "description": "Export directory containing JSON files"},
				"title": {"type": "string", "description": "Document title", "default": "Slack Conversation Log"}
			},
			"required": ["dir"]
		}`),
	}, s.handleRenderMarkdown)

	// plan_operations
	s.server.AddTool(&mcp.Tool{
		Name:        "plan_operations",
		Description: "Assemble the document operation stream offline and return its dump",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"dir": {"type": "string", "description": "Export directory containing JSON files"},
				"title": {"type": "string", "description": "Document title", "default": "Slack Conversation Log"}
			},
			"required": ["dir"]
		}`),
	}, s.handlePlanOperations)
}

func toolError(format string, args ...any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
		IsError: true,
	}
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

func (s *Server) handleListMessages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Dir   string `json:"dir"`
		Limit int    `json:"limit"`
	}
	params.Limit = 50 // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	msgs, err := transcript.ReadDir(params.Dir)
	if err != nil {
		return toolError("failed to read export: %v", err), nil
	}
	if params.Limit > 0 && len(msgs) > params.Limit {
		msgs = msgs[:params.Limit]
	}

	type item struct {
		Date        string `json:"date"`
		Time        string `json:"time"`
		Author      string `json:"author"`
		Body        string `json:"body"`
		Attachments int    `json:"attachments"`
	}
	items := make([]item, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, item{
			Date:        m.Date,
			Time:        m.Time,
			Author:      m.Author,
			Body:        m.Body,
			Attachments: len(m.Attachments),
		})
	}

	data, _ := json.MarshalIndent(items, "", "  ")
	return toolText(string(data)), nil
}

func (s *Server) handleRenderMarkdown(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Dir   string `json:"dir"`
		Title string `json:"title"`
	}
	params.Title = "Slack Conversation Log" // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	msgs, err := transcript.ReadDir(params.Dir)
	if err != nil {
		return toolError("failed to read export: %v", err), nil
	}

	return toolText(markdown.Render(params.Title, msgs)), nil
}

func (s *Server) handlePlanOperations(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Dir   string `json:"dir"`
		Title string `json:"title"`
	}
	params.Title = "Slack Conversation Log" // default
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	msgs, err := transcript.ReadDir(params.Dir)
	if err != nil {
		return toolError("failed to read export: %v", err), nil
	}

	assembler := docops.NewAssembler(docops.LocalStore{}, params.Dir, s.logger)
	batch, err := assembler.Assemble(ctx, params.Title, msgs)
	if err != nil {
		return toolError("failed to assemble batch: %v", err), nil
	}

	return toolText(batch.Dump()), nil
}
