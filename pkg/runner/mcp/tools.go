package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerListBoardTool(srv, svc)
	registerAddItemTool(srv, svc)
	registerMoveItemTool(srv, svc)
	registerEditItemTool(srv, svc)
	registerSearchItemsTool(srv, svc)
	registerGetItemTool(srv, svc)
}

func registerListBoardTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_board",
		mcp.WithDescription("List every lane and its items in board order."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dto, err := svc.Board(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add an item to the end of the first lane."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new item."),
		),
		mcp.WithString("description",
			mcp.Description("Optional longer description."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title       string `json:"title"`
			Description string `json:"description"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddItem(ctx, args.Title, args.Description)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerMoveItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"move_item",
		mcp.WithDescription("Move an item within its lane or into another lane."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier to move."),
		),
		mcp.WithString("lane",
			mcp.Required(),
			mcp.Description("Destination lane name (case-insensitive)."),
		),
		mcp.WithString("position",
			mcp.Description("Where to insert: start, end (default), or before:<id>."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		lane, err := request.RequireString("lane")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.MoveItem(ctx, MoveItemOptions{
			ID:         id,
			TargetLane: lane,
			Position:   request.GetString("position", ""),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerEditItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"edit_item",
		mcp.WithDescription("Replace the title or description of an item."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier to modify."),
		),
		mcp.WithString("field",
			mcp.Required(),
			mcp.Description("Field to replace."),
			mcp.Enum("title", "description"),
		),
		mcp.WithString("value",
			mcp.Required(),
			mcp.Description("New field text."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		field, err := request.RequireString("field")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		value, err := request.RequireString("value")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EditItem(ctx, id, field, value)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerSearchItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_items",
		mcp.WithDescription("Find the first item whose title or description matches a case-insensitive pattern."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Regular expression, or plain text when it is not a valid pattern."),
		),
		mcp.WithBoolean("all",
			mcp.Description("Return every match instead of the first."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		all := request.GetBool("all", false)

		results, err := svc.Search(ctx, query, all)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_item",
		mcp.WithDescription("Fetch a single item by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Item identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.Item(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
