package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store,omitempty" example:"postgres"`
}

// RejectionResponse describes why a proposed commitment was not admitted.
type RejectionResponse struct {
	Error      string `json:"error" example:"class #3 is full (20 of 20 spots taken)"`
	Reason     string `json:"reason" example:"class_full"`
	ConflictID int    `json:"conflict_id,omitempty" example:"3"`
}

type ValidationErrorResponse struct {
	Error   string            `json:"error" example:"validation failed"`
	Details []ValidationError `json:"details"`
}
