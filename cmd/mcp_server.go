package cmd

import (
	"context"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"

	"github.com/axctl/controller/internal/ax"
	"github.com/axctl/controller/internal/capture"
	"github.com/axctl/controller/internal/keys"
	"github.com/axctl/controller/internal/model"
	"github.com/axctl/controller/internal/platform"
	"github.com/axctl/controller/internal/version"
)

// mcpServer wraps the MCP server with the platform provider. The provider
// mutex serializes tool calls since event posting is not concurrency safe.
type mcpServer struct {
	provider   *platform.Provider
	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
}

// newMCPServer creates and configures an MCP server with all controller tools.
func newMCPServer() (*mcpServer, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{provider: provider}
	s.mcp = mcpserver.NewMCPServer("controller", version.Version)
	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// find
	s.mcp.AddTool(
		mcp.NewTool("find",
			mcp.WithDescription("Locate the first UI element matching an attribute query and return its attributes"),
			mcp.WithString("role", mcp.Description("Match accessibility role (e.g. 'AXButton')")),
			mcp.WithString("title", mcp.Description("Match element title")),
			mcp.WithString("identifier", mcp.Description("Match accessibility identifier")),
			mcp.WithString("description", mcp.Description("Match accessibility description")),
			mcp.WithString("app", mcp.Description("Scope the search to this application")),
		),
		s.handleFind,
	)

	// click
	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Click at screen coordinates or on an element located by attribute query"),
			mcp.WithNumber("x", mcp.Description("Click at X coordinate")),
			mcp.WithNumber("y", mcp.Description("Click at Y coordinate")),
			mcp.WithString("role", mcp.Description("Match accessibility role")),
			mcp.WithString("title", mcp.Description("Match element title")),
			mcp.WithString("identifier", mcp.Description("Match accessibility identifier")),
			mcp.WithString("description", mcp.Description("Match accessibility description")),
			mcp.WithString("app", mcp.Description("Scope the search to this application")),
			mcp.WithString("button", mcp.Description("Mouse button: left, right")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleClick(request, false)
		},
	)

	// double_click
	s.mcp.AddTool(
		mcp.NewTool("double_click",
			mcp.WithDescription("Double-click at screen coordinates or on an element located by attribute query"),
			mcp.WithNumber("x", mcp.Description("Click at X coordinate")),
			mcp.WithNumber("y", mcp.Description("Click at Y coordinate")),
			mcp.WithString("role", mcp.Description("Match accessibility role")),
			mcp.WithString("title", mcp.Description("Match element title")),
			mcp.WithString("identifier", mcp.Description("Match accessibility identifier")),
			mcp.WithString("description", mcp.Description("Match accessibility description")),
			mcp.WithString("app", mcp.Description("Scope the search to this application")),
		),
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return s.handleClick(request, true)
		},
	)

	// type
	s.mcp.AddTool(
		mcp.NewTool("type",
			mcp.WithDescription("Type text at the current focus, one character at a time"),
			mcp.WithString("text", mcp.Description("Text to type"), mcp.Required()),
		),
		s.handleType,
	)

	// keypress
	s.mcp.AddTool(
		mcp.NewTool("keypress",
			mcp.WithDescription("Press a key combination (e.g. 'command+c', 'shift+tab', 'return')"),
			mcp.WithString("keys", mcp.Description("Key combo, tokens joined by '+'"), mcp.Required()),
			mcp.WithNumber("pid", mcp.Description("Deliver to this process instead of the system event stream")),
		),
		s.handleKeyPress,
	)

	// set_text
	s.mcp.AddTool(
		mcp.NewTool("set_text",
			mcp.WithDescription("Set the value of a located element via the accessibility value attribute"),
			mcp.WithString("text", mcp.Description("Text value to set"), mcp.Required()),
			mcp.WithString("role", mcp.Description("Match accessibility role")),
			mcp.WithString("title", mcp.Description("Match element title")),
			mcp.WithString("identifier", mcp.Description("Match accessibility identifier")),
			mcp.WithString("description", mcp.Description("Match accessibility description")),
			mcp.WithString("app", mcp.Description("Scope the search to this application")),
		),
		s.handleSetText,
	)

	// scroll
	s.mcp.AddTool(
		mcp.NewTool("scroll",
			mcp.WithDescription("Scroll at screen coordinates by line deltas"),
			mcp.WithNumber("x", mcp.Description("Scroll at X coordinate"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Scroll at Y coordinate"), mcp.Required()),
			mcp.WithNumber("delta_x", mcp.Description("Horizontal scroll lines")),
			mcp.WithNumber("delta_y", mcp.Description("Vertical scroll lines")),
		),
		s.handleScroll,
	)

	// dump_ui
	s.mcp.AddTool(
		mcp.NewTool("dump_ui",
			mcp.WithDescription("Serialize the accessibility hierarchy of an application or the system-wide tree"),
			mcp.WithString("app", mcp.Description("Dump this application's tree instead of the system-wide tree")),
			mcp.WithNumber("max_depth", mcp.Description("Maximum recursion depth (default: 10)")),
		),
		s.handleDumpUI,
	)

	// screenshot
	s.mcp.AddTool(
		mcp.NewTool("screenshot",
			mcp.WithDescription("Write a placeholder capture of the screen or a region into the screenshots directory"),
			mcp.WithString("region", mcp.Description("Capture region as exactly four integers \"x,y,w,h\"")),
		),
		s.handleScreenshot,
	)

	// screen_dimensions
	s.mcp.AddTool(
		mcp.NewTool("screen_dimensions",
			mcp.WithDescription("Report the main screen's frame size in points"),
		),
		s.handleScreenDimensions,
	)

	// scale_factor
	s.mcp.AddTool(
		mcp.NewTool("scale_factor",
			mcp.WithDescription("Report the main screen's device-pixel to point ratio"),
		),
		s.handleScaleFactor,
	)

	// dock_bounding_box
	s.mcp.AddTool(
		mcp.NewTool("dock_bounding_box",
			mcp.WithDescription("Report the desktop dock's bounding box derived from screen frames"),
		),
		s.handleDockBoundingBox,
	)
}

// stringParam extracts a string parameter with a default.
func stringParam(params map[string]interface{}, key, def string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return def
}

// floatParam extracts a numeric parameter with a default. JSON numbers
// arrive as float64.
func floatParam(params map[string]interface{}, key string, def float64) float64 {
	if v, ok := params[key].(float64); ok {
		return v
	}
	return def
}

// intParam extracts an integer parameter with a default.
func intParam(params map[string]interface{}, key string, def int) int {
	if v, ok := params[key].(float64); ok {
		return int(v)
	}
	return def
}

// hasParam reports whether the client supplied the parameter at all.
func hasParam(params map[string]interface{}, key string) bool {
	_, ok := params[key]
	return ok
}

func queryFromParams(params map[string]interface{}) ax.Query {
	query := ax.Query{}
	for _, key := range []string{ax.AttrRole, ax.AttrTitle, ax.AttrIdentifier, ax.AttrDescription} {
		if v := stringParam(params, key, ""); v != "" {
			query[key] = v
		}
	}
	return query
}

func yamlResult(v interface{}) *mcp.CallToolResult {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultText(string(b))
}

func (s *mcpServer) handleFind(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	query := queryFromParams(params)
	if len(query) == 0 {
		return mcp.NewToolResultError("specify at least one of role, title, identifier, description"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	node, err := locateElement(s.provider, stringParam(params, "app", ""), query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(node.Info()), nil
}

func (s *mcpServer) handleClick(request mcp.CallToolRequest, double bool) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	var button platform.MouseButton
	if !double {
		var err error
		button, err = platform.ParseMouseButton(stringParam(params, "button", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var target model.Point
	if hasParam(params, "x") || hasParam(params, "y") {
		target = model.Point{
			X: floatParam(params, "x", 0),
			Y: floatParam(params, "y", 0),
		}
	} else {
		query := queryFromParams(params)
		if len(query) == 0 {
			return mcp.NewToolResultError("specify x/y coordinates or an attribute query"), nil
		}
		node, err := locateElement(s.provider, stringParam(params, "app", ""), query)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		target = elementCenter(node)
	}

	var err error
	if double {
		err = s.provider.Input.DoubleClick(target)
	} else {
		err = s.provider.Input.Click(target, button)
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("clicked at %g,%g", target.X, target.Y)), nil
}

func (s *mcpServer) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if err := s.provider.Input.TypeText(text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("typed %d characters", len([]rune(text)))), nil
}

func (s *mcpServer) handleKeyPress(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	keysText := stringParam(params, "keys", "")
	if keysText == "" {
		return mcp.NewToolResultError("keys is required"), nil
	}
	combo := keys.Parse(keysText)
	pid := intParam(params, "pid", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if err := s.provider.Input.KeyPress(combo, pid); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("pressed %s", keysText)), nil
}

func (s *mcpServer) handleSetText(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}
	query := queryFromParams(params)
	if len(query) == 0 {
		return mcp.NewToolResultError("specify at least one of role, title, identifier, description"), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	node, err := locateElement(s.provider, stringParam(params, "app", ""), query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.provider.ValueSetter.SetValue(node, text); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText("set text on element"), nil
}

func (s *mcpServer) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	pos := model.Point{
		X: floatParam(params, "x", 0),
		Y: floatParam(params, "y", 0),
	}
	deltaX := intParam(params, "delta_x", 0)
	deltaY := intParam(params, "delta_y", 0)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	if err := s.provider.Input.Scroll(pos, deltaX, deltaY); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("scrolled at %g,%g", pos.X, pos.Y)), nil
}

func (s *mcpServer) handleDumpUI(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	app := stringParam(params, "app", "")
	maxDepth := intParam(params, "max_depth", 10)

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	var (
		root ax.Node
		err  error
	)
	if app != "" {
		root, err = s.provider.Locator.AppRoot(app)
	} else {
		root, err = s.provider.Locator.SystemRoot()
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(ax.Dump(root, maxDepth)), nil
}

func (s *mcpServer) handleScreenshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()

	region := defaultRegion
	if regionText := stringParam(params, "region", ""); regionText != "" {
		r, err := platform.ParseRegion(regionText)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		region = r
	} else if dims, err := s.provider.Screen.Dimensions(); err == nil {
		region = model.Rect{Width: dims.Width, Height: dims.Height}
	}

	path, err := capture.WritePlaceholder(screenshotDir, region)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("screenshot saved: %s", path)), nil
}

func (s *mcpServer) handleScreenDimensions(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dims, err := s.provider.Screen.Dimensions()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(DimensionsResult{Success: true, Width: dims.Width, Height: dims.Height}), nil
}

func (s *mcpServer) handleScaleFactor(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scale, err := s.provider.Screen.ScaleFactor()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("scale_factor: %g", scale)), nil
}

func (s *mcpServer) handleDockBoundingBox(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	box, err := s.provider.Screen.DockBounds()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return yamlResult(DockResult{Success: true, BoundingBox: box}), nil
}
