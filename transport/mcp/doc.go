// Package mcp provides the Model Context Protocol server for the slide puzzle.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for puzzle operations
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - puzzle_state: Get current board state with an ASCII rendering
//   - move: Execute one move naming a gap and a direction
//   - valid_moves: Enumerate every legal move in the position
//   - shuffle: Seeded randomization of the board
//   - reset_puzzle: Return the board to its solved layout
//   - move_history: Retrieve move history with pagination
//   - describe_cell: Inspect one cell, including wrapped coordinates
//   - create_session / get_session / list_sessions: manage sessions
//   - list_configs: List available board configurations
//   - puzzle_instructions: Full rules and strategy notes
//
// Thin Client Design:
//
// The MCP server holds no game state. Every tool handler proxies to the REST
// API, so HTTP clients, WebSocket watchers, and MCP agents always observe the
// same session state.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: The /mcp endpoint on the main server for remote integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//
//	// Stdio mode
//	server.ServeStdio(client.GetMCPServer())
//
//	// HTTP mode
//	response := client.GetMCPServer().HandleMessage(ctx, body)
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Solve puzzles autonomously
//   - Probe moves with dry runs before committing
//   - Manage multiple puzzle sessions
//   - Reproduce positions via seeded shuffles
package mcp
