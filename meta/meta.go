// meta/meta.go
package meta

// MIN_SKILL is the lowest search depth offered at the skill prompt.
const MIN_SKILL = 1

// MAX_SKILL is the highest search depth offered at the skill prompt.
const MAX_SKILL = 10

// DEFAULT_PLY is the search depth used when none is configured.
const DEFAULT_PLY = 4

// MAX_TURNS caps the engine's turn loop as a safety net.
const MAX_TURNS = 200
