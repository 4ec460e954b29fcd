// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Skill is a locally authored growth record. This service treats skills as
// read-only source data; authoring lives in the main application.
type Skill struct {
	ID        uuid.UUID // The unique ID for this skill record, also used as the remote record key.
	UserID    uuid.UUID // The account that authored the skill.
	Name      string    // Short human-readable skill name.
	Category  string    // Free-form grouping label, e.g. "craft", "language".
	CreatedAt time.Time // Timestamp of when the skill was authored; defines sync order.
}

// SyncFailure records one skill that could not be pushed during a sync pass.
type SyncFailure struct {
	SkillID uuid.UUID // The skill whose push failed.
	Reason  string    // Human-readable cause, safe to show to the user.
}

// SyncResult summarizes a single sync pass over a user's skills. It is built
// fresh per invocation and never persisted.
type SyncResult struct {
	Attempted int           // Number of skills the pass tried to push.
	Succeeded int           // Number of pushes acknowledged by the server.
	Failed    int           // Number of pushes that failed.
	Failures  []SyncFailure // Per-record causes, in the order the skills were attempted.
}
