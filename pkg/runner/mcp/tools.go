package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

type toolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

func registerTools(srv *server.MCPServer, svc *Service, log logrus.FieldLogger) {
	add := func(tool mcp.Tool, h toolHandler) {
		srv.AddTool(tool, logged(log, tool.Name, h))
	}
	add(createEntryTool(svc))
	add(listEntriesTool(svc))
	add(getEntryTool(svc))
	add(moveEntryTool(svc))
	add(deleteEntryTool(svc))
	add(getStatsTool(svc))
	add(getCalendarTool(svc))
	add(getPromptTool(svc))
	add(listTagsTool(svc))
}

// logged reports each call with its duration. Tool failures are results, not
// errors, so they are logged from the result.
func logged(log logrus.FieldLogger, name string, h toolHandler) toolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := h(ctx, request)
		fields := logrus.Fields{"tool": name, "duration": time.Since(start).String()}
		switch {
		case err != nil:
			log.WithFields(fields).WithError(err).Error("tool call failed")
		case result != nil && result.IsError:
			log.WithFields(fields).Warn("tool returned an error")
		default:
			log.WithFields(fields).Debug("tool call")
		}
		return result, err
	}
}

func createEntryTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Write a new journal entry. Word count and daily goal are updated."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Body of the entry."),
		),
		mcp.WithString("title",
			mcp.Description(`Title of the entry. Defaults to "New Entry".`),
		),
		mcp.WithString("folder",
			mcp.Description(`Folder name or id. Defaults to "All Entries".`),
		),
		mcp.WithArray("tags",
			mcp.Description("Tag names or ids. Unknown names are created."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("notes",
			mcp.Description("Notes kept alongside the entry."),
		),
		mcp.WithString("date",
			mcp.Description("Optional RFC3339 timestamp or YYYY-MM-DD day the entry was written."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args CreateEntryOptions
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		dto, err := svc.CreateEntry(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func listEntriesTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List entries newest first, optionally filtered by folder, tag, date range or text."),
		mcp.WithString("folder",
			mcp.Description("Folder name or id."),
		),
		mcp.WithString("tag",
			mcp.Description("Tag name or id."),
		),
		mcp.WithString("range",
			mcp.Description("all, month, year or FROM..TO with YYYY-MM-DD days."),
		),
		mcp.WithString("query",
			mcp.Description("Case-insensitive text to look for in titles and bodies."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries (default 20)."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		opts := ListEntriesOptions{
			Folder: request.GetString("folder", ""),
			Tag:    request.GetString("tag", ""),
			Range:  request.GetString("range", "all"),
			Query:  request.GetString("query", ""),
			Limit:  request.GetInt("limit", 20),
		}
		entries, err := svc.ListEntries(ctx, opts)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": entries,
			"count":   len(entries),
		})
	}
}

func getEntryTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier or unique identifier prefix."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func moveEntryTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"move_entry",
		mcp.WithDescription("Move an entry to the end of another folder."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to move."),
		),
		mcp.WithString("folder",
			mcp.Required(),
			mcp.Description("Destination folder name or id."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		folder, err := request.RequireString("folder")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.MoveEntry(ctx, id, folder)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	}
}

func deleteEntryTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"delete_entry",
		mcp.WithDescription("Delete an entry permanently."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.DeleteEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{"deleted": dto})
	}
}

func getStatsTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"get_stats",
		mcp.WithDescription("Writing statistics: totals, streak, averages, record, rank and progress to the next rank."),
		mcp.WithString("range",
			mcp.Description("all, month, year or FROM..TO with YYYY-MM-DD days."),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rep, err := svc.Stats(ctx, request.GetString("range", "all"))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(rep)
	}
}

func getCalendarTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"get_calendar",
		mcp.WithDescription("Month grid of writing days, 42 Sunday-first cells with a status each."),
		mcp.WithString("month",
			mcp.Description(`Month as YYYY-MM or "January 2024". Defaults to the current month.`),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cal, err := svc.Calendar(ctx, request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(cal)
	}
}

func getPromptTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"get_prompt",
		mcp.WithDescription("A random writing prompt."),
		mcp.WithString("theme",
			mcp.Description("Prompt theme. Defaults to the configured theme."),
			mcp.Enum("all", "creative", "journaling"),
		),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, err := svc.Prompt(ctx, request.GetString("theme", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(p), nil
	}
}

func listTagsTool(svc *Service) (mcp.Tool, toolHandler) {
	tool := mcp.NewTool(
		"list_tags",
		mcp.WithDescription("List the tag palette."),
	)

	return tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		tags, err := svc.ListTags(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tags":  tags,
			"count": len(tags),
		})
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
