package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getPortfolioTool defines the get_portfolio MCP tool.
var getPortfolioTool = mcp.NewTool("get_portfolio",
	mcp.WithDescription("Get the full portfolio document as one JSON object, one key per section."),
)

// getSectionTool defines the get_section MCP tool.
var getSectionTool = mcp.NewTool("get_section",
	mcp.WithDescription("Get a single portfolio section as JSON."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Section key, e.g. title, introduction, projects, or a custom section id"),
	),
)

// listSectionsTool defines the list_sections MCP tool.
var listSectionsTool = mcp.NewTool("list_sections",
	mcp.WithDescription("List all section keys: standard sections in display order, then custom sections."),
)

// getSettingsTool defines the get_settings MCP tool.
var getSettingsTool = mcp.NewTool("get_settings",
	mcp.WithDescription("Get the current theme settings: palette, font, sizes, spacing, dark mode."),
)

// updateSectionTool defines the update_section MCP tool.
var updateSectionTool = mcp.NewTool("update_section",
	mcp.WithDescription("Replace a portfolio section wholesale with the given JSON value. Requires dev mode."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Section key to replace"),
	),
	mcp.WithString("value",
		mcp.Required(),
		mcp.Description("The complete section as a JSON object"),
	),
)

// addItemTool defines the add_item MCP tool.
var addItemTool = mcp.NewTool("add_item",
	mcp.WithDescription("Append an item to a section's sub-collection. For the skills section pass {\"category\": name, \"item\": skill}. Requires dev mode."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section key"),
	),
	mcp.WithString("collection",
		mcp.Required(),
		mcp.Description("Sub-collection name, e.g. items, content, awards, categories"),
	),
	mcp.WithString("item",
		mcp.Required(),
		mcp.Description("The item to append, as JSON"),
	),
)

// removeItemTool defines the remove_item MCP tool.
var removeItemTool = mcp.NewTool("remove_item",
	mcp.WithDescription("Remove an item from a section's sub-collection by index. Requires dev mode."),
	mcp.WithString("section",
		mcp.Required(),
		mcp.Description("Section key"),
	),
	mcp.WithString("collection",
		mcp.Required(),
		mcp.Description("Sub-collection name"),
	),
	mcp.WithNumber("index",
		mcp.Required(),
		mcp.Description("Zero-based index of the item to remove"),
	),
	mcp.WithString("category",
		mcp.Description("Category name, for category-map collections like skills"),
	),
)

// addCustomSectionTool defines the add_custom_section MCP tool.
var addCustomSectionTool = mcp.NewTool("add_custom_section",
	mcp.WithDescription("Add a new custom section seeded with sample content. Requires dev mode."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Section id; lowercased, spaces become underscores"),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Display title of the section"),
	),
	mcp.WithString("type",
		mcp.Description("Section layout"),
		mcp.Enum("custom", "gallery", "timeline"),
	),
	mcp.WithString("description",
		mcp.Description("Seed text for the section's first paragraph or item"),
	),
)

// removeSectionTool defines the remove_section MCP tool.
var removeSectionTool = mcp.NewTool("remove_section",
	mcp.WithDescription("Remove a custom section. Standard sections cannot be removed. Requires dev mode."),
	mcp.WithString("key",
		mcp.Required(),
		mcp.Description("Custom section key to remove"),
	),
)
