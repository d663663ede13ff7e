// Package session provides session management for the slide puzzle server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Session lifecycle management
//   - File-backed persistence with rehydration
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each session carries its own puzzle engine instance plus metadata like
// creation time and last access time. FilePersistence stores sessions as JSON
// files and rebuilds engines through the config manager on load.
//
// Session Identifiers:
//
// Generated IDs are UUIDs; callers may also supply their own. Lookups are
// case-insensitive, so an ID pasted in any casing resolves to the same
// session.
//
// Concurrency:
//
// The manager is thread-safe and supports concurrent operations. Multiple
// goroutines can safely create, retrieve, and modify different sessions
// simultaneously. Internal locking ensures data consistency.
//
// Usage:
//
//	manager := session.NewManager()
//
//	// Create a new session
//	sess, err := manager.Create("", boardConfig)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Retrieve existing session
//	sess, err = manager.Get(sessionID)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// List all active sessions
//	sessions := manager.List()
//
// Persistence:
//
// With NewManagerWithPersistence each create and save writes through to disk,
// Get falls back to disk when a session is not in memory, and
// LoadPersistedSessions restores the whole directory at startup. Deleting the
// file of a live session removes it from memory on the next filesystem sync.
//
// Cleanup:
//
// Sessions can be explicitly deleted or may expire based on inactivity.
// CleanupExpiredSessions removes sessions idle beyond a caller-supplied age.
package session
