package models

import "time"

// ReviewState es el estado de una review tal como lo reporta el proveedor.
type ReviewState string

const (
	ReviewCommented        ReviewState = "COMMENTED"
	ReviewApproved         ReviewState = "APPROVED"
	ReviewChangesRequested ReviewState = "CHANGES_REQUESTED"
)

// Review representa una review enviada sobre una PR. La secuencia de
// reviews de una PR se asume en orden cronológico de envío.
type Review struct {
	Author      User
	State       ReviewState
	SubmittedAt time.Time
}
