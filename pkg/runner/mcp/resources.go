package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerBoardResource(srv, svc)
	registerItemTemplate(srv, svc)
}

func registerBoardResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"lanes://board",
		"Board",
		mcp.WithResourceDescription("Every lane with its items in board order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		dto, err := svc.Board(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, dto)
	})
}

func registerItemTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"lanes://items/{id}",
		"Item Details",
		mcp.WithTemplateDescription("A single item with its lane and position."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("item id is required")
		}

		dto, err := svc.Item(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"item": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg unwraps a URI template variable, which may arrive as a string
// or a single element list.
func templateArg(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
