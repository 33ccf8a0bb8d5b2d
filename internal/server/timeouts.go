package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Kept above the deck request deadline so deadline-bounded responses still get written.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
