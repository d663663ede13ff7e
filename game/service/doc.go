// Package service provides the business logic layer for the slide puzzle server.
//
// The service package implements:
//   - Multi-session puzzle management
//   - Move processing, dry runs, and valid-move enumeration
//   - Seeded shuffling and board reset
//   - Move history with pagination
//   - Cell inspection for wrapped and non-wrapped boards
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level puzzle
// operations. SessionManager handles session creation, retrieval, and
// lifecycle. ConfigManager manages board configuration loading and saving.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the puzzle engine, providing session isolation, configuration management,
// and event extraction. Each session maintains its own engine instance with
// independent state.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute a move: gap 3, incoming tile travels right
//	result, err := gameService.Move(ctx, sessionInfo.ID, 3, "right", false)
//
// Events:
//
// Successful operations yield GameEvents (move, chain, gap_swap, shuffle,
// solved, reset) that transports forward to connected clients. Failed moves
// are recorded in the history but emit no events.
package service
