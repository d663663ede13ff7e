// Package api provides HTTP REST API handlers for the slide puzzle server.
//
// The api package implements:
//   - RESTful endpoints for puzzle operations
//   - Session management endpoints
//   - Configuration listing, creation, and retrieval
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session (optional config_id)
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Puzzle Operations:
//   - GET /api/sessions/{id}/state - Get current board state
//   - POST /api/sessions/{id}/move - Execute a move (gap_id, direction, dry_run)
//   - GET /api/sessions/{id}/valid-moves - Enumerate every legal move
//   - POST /api/sessions/{id}/shuffle - Seeded randomization (steps, seed, reassign_gaps)
//   - POST /api/sessions/{id}/reset - Return to the solved layout
//   - GET /api/sessions/{id}/history - Move history with pagination
//   - GET /api/sessions/{id}/cell?x=&y= - Describe one board cell
//
// Configuration:
//   - GET /api/configs - List available configurations
//   - POST /api/configs - Save a new configuration
//   - GET /api/configs/{name} - Get a configuration
//
// Health:
//   - GET /api/health - Liveness check
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A move request names a gap and the
// direction the incoming tile travels:
//
//	{
//	  "gap_id": 3,
//	  "direction": "up|down|left|right",
//	  "dry_run": true|false
//	}
//
// An illegal move is not an HTTP error: the response carries success=false
// and the unchanged board, matching the engine's no-partial-moves contract.
//
// Usage:
//
//	server := api.NewServer(gameService, hub)
//	http.ListenAndServe(":8080", server)
//
// Error Handling:
//
// Request errors are returned as JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
