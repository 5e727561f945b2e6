package model

import "time"

// AuditEntry is one record in the append-only session audit log
type AuditEntry struct {
	ID      string
	Type    string
	Payload map[string]any
	At      time.Time
}

// AdminCredential backs the password-gated admin role check.
// A session with no stored credential leaves the gate open.
type AdminCredential struct {
	PasswordHash string
	UpdatedAt    time.Time
}
