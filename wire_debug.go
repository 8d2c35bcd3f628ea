package client

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Decode tracing for debugging wire-contract mismatches.
//
// When to use:
//   - Set OMNIDEX_DEBUG=true or DEBUG=true environment variable
//   - During development against a new backend build, when a field
//     rename or enum addition on the server starts rejecting payloads
//
// Security considerations:
//   - Traces include full wire documents, which may carry user data.
//     Only enable in development/staging environments.

// logDecodeFailure emits the rejected document alongside the decode
// error so the offending field can be found without re-capturing
// traffic.
func logDecodeFailure(model string, data []byte, err error) {
	const maxDump = 4096
	dump := data
	if len(dump) > maxDump {
		dump = dump[:maxDump]
	}
	log.Debug().
		Str("model", model).
		Err(err).
		Str("payload", string(dump)).
		Msg("wire decode failed")
}

// wireDebugRequested checks if decode tracing should be enabled.
//
// Both environment variables are supported:
//   - OMNIDEX_DEBUG for targeted client tracing
//   - DEBUG for broader application debugging
func wireDebugRequested() bool {
	return os.Getenv("OMNIDEX_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
