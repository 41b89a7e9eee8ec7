package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerAddItemTool(srv, svc)
	registerUpdateItemTool(srv, svc)
	registerToggleItemTool(srv, svc)
	registerDeleteItemTool(srv, svc)
	registerSetThemeTool(srv, svc)
	registerListItemsTool(srv, svc)
}

type idArgs struct {
	ID *int `json:"id"`
}

func (a idArgs) require() (int, error) {
	if a.ID == nil {
		return 0, fmt.Errorf("id is required")
	}
	return *a.ID, nil
}

func registerAddItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"add_item",
		mcp.WithDescription("Add an item to the list. The id is assigned automatically."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Short title of the item."),
		),
		mcp.WithString("note",
			mcp.Description("Optional longer note."),
		),
		mcp.WithBoolean("isDaily",
			mcp.Description("Reset the item to pending every day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Title   string `json:"title"`
			Note    string `json:"note"`
			IsDaily bool   `json:"isDaily"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddItem(ctx, AddItemOptions{
			Title:   args.Title,
			Note:    args.Note,
			IsDaily: args.IsDaily,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerUpdateItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_item",
		mcp.WithDescription("Change fields of an existing item. Omitted fields are left as they are."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item identifier to modify."),
		),
		mcp.WithString("title",
			mcp.Description("New title."),
		),
		mcp.WithString("note",
			mcp.Description("New note. An empty string clears it."),
		),
		mcp.WithBoolean("isDaily",
			mcp.Description("Whether the item resets every day."),
		),
		mcp.WithBoolean("isDone",
			mcp.Description("Mark the item done or pending."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			idArgs
			Title   *string `json:"title"`
			Note    *string `json:"note"`
			IsDaily *bool   `json:"isDaily"`
			IsDone  *bool   `json:"isDone"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		id, err := args.require()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.UpdateItem(ctx, UpdateItemOptions{
			ID:      id,
			Title:   args.Title,
			Note:    args.Note,
			IsDaily: args.IsDaily,
			IsDone:  args.IsDone,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerToggleItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"toggle_item",
		mcp.WithDescription("Flip an item between done and pending."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item identifier to toggle."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args idArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		id, err := args.require()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ToggleItem(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerDeleteItemTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"delete_item",
		mcp.WithDescription("Remove an item from the list."),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Item identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args idArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		id, err := args.require()
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.DeleteItem(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"deleted": dto,
		})
	})
}

func registerSetThemeTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"set_theme",
		mcp.WithDescription("Switch the color theme."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Theme name."),
			mcp.Enum("light", "dark"),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.SetTheme(ctx, name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListItemsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_items",
		mcp.WithDescription("List items, pending first."),
		mcp.WithBoolean("pendingOnly",
			mcp.Description("Leave out items that are done."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			PendingOnly bool `json:"pendingOnly"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		sum, err := svc.ListItems(ctx, args.PendingOnly)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
