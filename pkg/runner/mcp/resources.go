package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	foldersURI = "writersblock://folders"
	tagsURI    = "writersblock://tags"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerFoldersResource(srv, svc)
	registerTagsResource(srv, svc)
	registerFolderTemplate(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerFoldersResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		foldersURI,
		"Folders",
		mcp.WithResourceDescription("All journal folders with entry and word counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListFolders(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"folders": summaries,
			"count":   len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTagsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		tagsURI,
		"Tags",
		mcp.WithResourceDescription("The tag palette shared by every entry."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tags, err := svc.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"tags":  tags,
			"count": len(tags),
		})
	})
}

func registerFolderTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"writersblock://folders/{name}",
		"Folder Entries",
		mcp.WithTemplateDescription("Entries that belong to a folder, newest first."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		name := templateArg(request, "name")
		if name == "" {
			return nil, fmt.Errorf("folder name is required")
		}

		entries, err := svc.ListEntries(ctx, ListEntriesOptions{Folder: name})
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"folder":  name,
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"writersblock://entries/{id}",
		"Entry Details",
		mcp.WithTemplateDescription("Full text and metadata of a single entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request, "id")
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// templateArg reads a URI template variable, which arrives either as a
// string or as a one-element list.
func templateArg(request mcp.ReadResourceRequest, key string) string {
	switch v := request.Params.Arguments[key].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
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
