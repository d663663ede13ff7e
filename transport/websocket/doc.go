// Package websocket provides WebSocket transport for the slide puzzle server.
//
// The websocket package implements:
//   - Real-time state push to connected clients
//   - Session-aware WebSocket connections
//   - Automatic board broadcasting after successful operations
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by dedicated
// read and write goroutines that manage keepalive and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//   - State updates: {session_id, board_state, event: "state_update"}
//   - Custom events: {session_id, event, data}
//
// Incoming client messages are ignored; the socket is a push channel. All
// puzzle operations go through the REST API, which broadcasts the resulting
// state here.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=<id>) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a successful move
//	hub.BroadcastToSession(sessionID, boardState)
//
// Connection Lifecycle:
//
// 1. Client connects with session ID
// 2. Connection registered with hub
// 3. Client receives state updates as moves happen
// 4. Disconnection triggers cleanup; empty sessions are dropped
//
// Concurrency:
//
// The hub serializes register, unregister, and broadcast through its event
// loop. Multiple clients can connect, disconnect, and receive messages
// simultaneously without blocking each other; a client that stops draining
// its send buffer is disconnected.
package websocket
