package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Catobat/overworld-slide-puzzle/game/engine"
	"github.com/Catobat/overworld-slide-puzzle/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Overworld Slide Puzzle",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Overworld Slide Puzzle - MCP Interface

This is a thin client that proxies all requests to the REST API server.

PUZZLE OBJECTIVE:
Slide every tile back onto its home cell. The board mixes 1x1 and 2x2 tiles
with 1x1 and 2x2 gaps. A move always names a gap and a direction; the tile on
the opposite side of the gap slides in. Some boards wrap around one or both
edges.

AVAILABLE TOOLS:
- puzzle_state: Get the current board state with an ASCII rendering
- move: Execute a single move (gap ID + direction) - requires intent explanation
- valid_moves: List every legal move in the current position
- shuffle: Randomize the board with a seeded walk
- reset_puzzle: Return the board to its solved layout
- move_history: View past moves
- create_session: Create a new puzzle session
- get_session: Get session details
- list_sessions: List all active sessions
- list_configs: List available board configurations
- puzzle_instructions: Get comprehensive puzzle rules and strategy notes
- describe_cell: Get detailed info about a specific board cell

NOTE: The 'intent' parameter on the move tool serves as rubber duck debugging - explain your reasoning!`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new puzzle session with optional config selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the board config to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active puzzle sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Puzzle operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_state",
		Description: "Get the current board state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePuzzleState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move a tile into a gap. Name the gap by ID and the direction the incoming tile should travel.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"gap_id": map[string]interface{}{
					"type":        "integer",
					"description": "ID of the gap to move into",
				},
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"up", "down", "left", "right"},
					"description": "Direction the incoming tile travels (the gap moves the opposite way)",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this move (serves as a rubber duck to help explain your reasoning)",
				},
				"dry_run": map[string]interface{}{
					"type":        "boolean",
					"description": "Only check legality, do not change the board",
				},
			},
			Required: []string{"session_id", "gap_id", "direction"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "valid_moves",
		Description: "List every legal move in the current position",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleValidMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "shuffle",
		Description: "Randomize the board with a seeded random walk of legal moves",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"steps": map[string]interface{}{
					"type":        "integer",
					"description": "Number of shuffle steps (default 1000)",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Seed for the deterministic walk (default: current time)",
				},
				"reassign_gaps": map[string]interface{}{
					"type":        "boolean",
					"description": "Also permute gap identities within each size class before walking",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleShuffle)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_puzzle",
		Description: "Reset the board to its solved home layout",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleReset)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get move history for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board configurations",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "puzzle_instructions",
		Description: "Get comprehensive puzzle rules and strategy notes",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handlePuzzleInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific board cell: which entity covers it, its size class, whether it is a gap, and whether the entity sits on its home cell.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to describe (0-based; wrapped boards accept out-of-range values)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to describe (0-based; wrapped boards accept out-of-range values)",
				},
			},
			Required: []string{"session_id", "x", "y"},
		},
	}, c.handleDescribeCell)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatBoardState(session.BoardState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		solved := ""
		if s.BoardState != nil && s.BoardState.Solved {
			solved = ", solved"
		}
		result += fmt.Sprintf("- %s (Config: %s, Created: %s%s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"), solved)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.BoardState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatBoardState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	gapIDRaw, ok := args["gap_id"].(float64)
	if !ok {
		return mcp.NewToolResultError("gap_id must be an integer"), nil
	}
	direction, _ := args["direction"].(string)
	intent, _ := args["intent"].(string)
	dryRun, _ := args["dry_run"].(bool)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"gap_id":    int(gapIDRaw),
		"direction": direction,
		"dry_run":   dryRun,
	}

	var result service.MoveResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/move", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatMoveResult(&result)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleValidMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var result service.ValidMovesResult
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/valid-moves", sessionID), nil, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Valid Moves (%d):\n\n", result.Count))
	for _, m := range result.Moves {
		kind := "small tile"
		switch {
		case m.IsGapSwap:
			kind = "gap swap"
		case m.IsLarge:
			kind = "large tile"
		}
		b.WriteString(fmt.Sprintf("- gap %d %s (%s)\n", m.GapID, m.Direction, kind))
	}
	if result.Count == 0 {
		b.WriteString("(no legal moves)\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	body := map[string]interface{}{}
	if steps, ok := args["steps"].(float64); ok {
		body["steps"] = int(steps)
	}
	if seed, ok := args["seed"].(float64); ok {
		body["seed"] = int64(seed)
	}
	if reassign, ok := args["reassign_gaps"].(bool); ok {
		body["reassign_gaps"] = reassign
	}

	var result service.ShuffleResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/shuffle", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := fmt.Sprintf("Shuffled: %d steps, seed %d, reassigned gaps: %t\n\n%s",
		result.Steps, result.Seed, result.Reassigned, formatBoardState(result.BoardState))
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var response struct {
		Message string             `json:"message"`
		State   *engine.BoardState `json:"state"`
	}

	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/reset", sessionID), nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("%s\n\n%s", response.Message, formatBoardState(response.State))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		wrap := "none"
		switch {
		case config.WrapX && config.WrapY:
			wrap = "both axes"
		case config.WrapX:
			wrap = "horizontal"
		case config.WrapY:
			wrap = "vertical"
		}
		result += fmt.Sprintf("• %s (id: %s)\n  %s\n  Grid: %dx%d, Wrap: %s, Large tiles: %d, Gaps: %d small / %d large\n\n",
			config.Name, config.ConfigID, config.Description,
			config.Width, config.Height, wrap,
			config.LargePieces, config.SmallGaps, config.LargeGaps)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handlePuzzleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Overworld Slide Puzzle - Complete Instructions

PUZZLE OBJECTIVE:
Slide every tile back onto its home cell. The puzzle is solved when all
tiles and all gaps sit exactly where they started.

BOARD MODEL:
• The board is a W x H grid, fully tiled by entities with no empty cells.
• Entities are 1x1 (small) or 2x2 (large), and each is either a tile or a gap.
• Gaps are first-class entities: each gap permanently stands in for one home
  cell (or a 2x2 block of them) and must return there for the solve.
• Some boards wrap horizontally, vertically, or both. On a wrapped axis a
  coordinate of -1 means the far edge; entities may straddle the seam.

MOVES:
Every move names a GAP and a DIRECTION. The direction is where the incoming
tile travels; the gap itself moves the opposite way. Five things can happen:
1. Small tile into small gap: they swap cells.
2. A column/row pair of two small entities slides into a large gap; the gap
   shifts one cell against the move direction.
3. A large tile slides one cell into a pair of adjacent small gaps; the two
   gaps reappear behind it.
4. Two equal-size gaps adjacent along the move axis swap identities in place.
5. A large tile slides two cells into large gap space. With one gap this is a
   clean swap. With two or more aligned large gaps the move cascades: the
   gaps retreat and displaced small tiles backfill the vacated cells.
A move that cannot complete does nothing and reports failure. There are no
partial moves.

GRID LEGEND (puzzle_state rendering):
• . - small tile on its home cell
• + - small tile away from home
• # - large tile (all four cells)
• o - small gap
• O - large gap (all four cells)

STRATEGY NOTES FOR AI AGENTS:
• Use valid_moves before planning; the legal move set is often small.
• Every successful move has an exact inverse: the same gap, opposite
  direction. Use this to back out of dead ends.
• Large tiles only travel through large gap space or paired small gaps, so
  route the gaps first, then the tile.
• Gap identity matters: two gaps of the same size can stand on each other's
  home cells and the puzzle is NOT solved. Use gap swaps (case 4) to fix
  parity at the end.
• On wrapped boards the shortest path may cross the seam; describe_cell
  accepts out-of-range coordinates and reports the normalized cell.

SESSION MANAGEMENT:
- Multiple puzzle sessions can run simultaneously
- Sessions maintain independent state and configuration
- Use session-specific tools for multi-puzzle management

TOOLS SUMMARY:
- create_session / get_session / list_sessions: manage sessions
- puzzle_state / describe_cell / valid_moves: inspect the board
- move: execute one move (set dry_run to probe without changing the board)
- shuffle: seeded randomization; same seed and step count reproduce the walk
- reset_puzzle: return to the solved layout
- move_history: paginated record of past moves`

	return mcp.NewToolResultText(instructions), nil
}

func (c *Client) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	x := int(args["x"].(float64))
	y := int(args["y"].(float64))

	var info service.CellInfo
	path := fmt.Sprintf("/api/sessions/%s/cell?x=%d&y=%d", sessionID, x, y)
	err := c.apiCall("GET", path, nil, &info)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !info.Valid {
		return mcp.NewToolResultError(fmt.Sprintf(
			"Coordinates (%d, %d) are outside the board and the board does not wrap there", x, y)), nil
	}

	kind := "small tile"
	switch {
	case info.IsGap && info.IsLarge:
		kind = "large gap (2x2)"
	case info.IsGap:
		kind = "small gap"
	case info.IsLarge:
		kind = "large tile (2x2)"
	}

	home := "away from its home cell"
	if info.AtHome {
		home = "on its home cell"
	}

	result := fmt.Sprintf(`Cell at position (%d, %d):
Normalized: (%d, %d)
Entity ID: %d
Type: %s
Footprint offset: (%d, %d)
Home: the entity is %s`,
		x, y,
		info.Normalized.X, info.Normalized.Y,
		info.EntityID,
		kind,
		info.OffX, info.OffY,
		home)

	if info.IsGap {
		result += "\n\nThis cell is gap space. A move naming this gap pulls the entity on the opposite side of the direction into it."
	}

	return mcp.NewToolResultText(result), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatBoardState(session.BoardState))
}

// formatBoardState renders a BoardState as an ASCII grid plus a per-gap
// listing, reconstructing cell occupancy from the piece positions.
func formatBoardState(state *engine.BoardState) string {
	if state == nil {
		return "No board state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Config: %s | Grid: %dx%d | Wrap: x=%t y=%t | Solved: %t\n\n",
		state.ConfigName, state.Width, state.Height, state.WrapX, state.WrapY, state.Solved))

	type cellTag struct {
		gap, large, home bool
		occupied         bool
	}
	grid := make([][]cellTag, state.Height)
	for y := range grid {
		grid[y] = make([]cellTag, state.Width)
	}

	norm := func(v, n int, wrap bool) (int, bool) {
		if wrap {
			v = ((v % n) + n) % n
			return v, true
		}
		return v, v >= 0 && v < n
	}

	for _, p := range state.Pieces {
		size := 1
		if p.IsLarge {
			size = 2
		}
		atHome := p.X == p.HomeX && p.Y == p.HomeY
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				x, okX := norm(p.X+dx, state.Width, state.WrapX)
				y, okY := norm(p.Y+dy, state.Height, state.WrapY)
				if !okX || !okY {
					continue
				}
				grid[y][x] = cellTag{gap: p.IsGap, large: p.IsLarge, home: atHome, occupied: true}
			}
		}
	}

	for y := 0; y < state.Height; y++ {
		for x := 0; x < state.Width; x++ {
			t := grid[y][x]
			switch {
			case !t.occupied:
				result.WriteString("?")
			case t.gap && t.large:
				result.WriteString("O")
			case t.gap:
				result.WriteString("o")
			case t.large:
				result.WriteString("#")
			case t.home:
				result.WriteString(".")
			default:
				result.WriteString("+")
			}
		}
		result.WriteString("\n")
	}

	result.WriteString("\nGaps:\n")
	for _, p := range state.Pieces {
		if !p.IsGap {
			continue
		}
		size := "small"
		if p.IsLarge {
			size = "large"
		}
		home := ""
		if p.X == p.HomeX && p.Y == p.HomeY {
			home = " [home]"
		}
		result.WriteString(fmt.Sprintf("- gap %d (%s) at (%d,%d), home (%d,%d)%s\n",
			p.ID, size, p.X, p.Y, p.HomeX, p.HomeY, home))
	}

	if state.Solved {
		result.WriteString("\n🎉 SOLVED!")
	}

	return result.String()
}

func formatMoveResult(result *service.MoveResult) string {
	response := ""
	if result.Success {
		response = "✓ Move successful\n"
	} else {
		response = "✗ Move failed\n"
	}
	if result.DryRun {
		response += "(dry run, board unchanged)\n"
	}

	if result.Move != nil {
		m := result.Move
		kind := "small tile"
		switch {
		case m.GapSwap:
			kind = "gap swap"
		case m.Chain:
			kind = "large tile chain"
		case m.MovedLarge:
			kind = "large tile"
		}
		response += fmt.Sprintf("Move: gap %d %s (%d,%d)→(%d,%d) %s\n",
			m.GapID, m.Direction, m.GapFrom.X, m.GapFrom.Y, m.GapTo.X, m.GapTo.Y, kind)
	}

	if result.Message != "" {
		response += result.Message + "\n"
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	response += "\n" + formatBoardState(result.BoardState)
	return response
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Move History (Page %d/%d) - Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		status := "✓"
		if !move.Success {
			status = "✗"
		}
		kind := ""
		switch {
		case move.GapSwap:
			kind = " [gap swap]"
		case move.Chain:
			kind = " [chain]"
		case move.MovedLarge:
			kind = " [large]"
		}
		result += fmt.Sprintf("%d. gap %d %s %s%s\n",
			move.MoveNumber, move.GapID, move.Direction, status, kind)
	}

	if len(history.Moves) == 0 {
		result += "(no moves recorded)"
	}

	return result
}
