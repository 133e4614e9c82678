package domain

import "time"

type ComplaintStatus string

const (
	ComplaintStatusPending    ComplaintStatus = "PENDING"
	ComplaintStatusInProgress ComplaintStatus = "IN_PROGRESS"
	ComplaintStatusResolved   ComplaintStatus = "RESOLVED"
)

type ComplaintPriority string

const (
	ComplaintPriorityLow    ComplaintPriority = "LOW"
	ComplaintPriorityMedium ComplaintPriority = "MEDIUM"
	ComplaintPriorityHigh   ComplaintPriority = "HIGH"
)

// Complaint is a support ticket filed by a user. Only PENDING complaints may
// be edited or withdrawn by their owner; once support picks one up it is
// frozen from the user's side.
type Complaint struct {
	ID        int32             `json:"id"`
	OwnerID   int32             `json:"owner_id"`
	Subject   string            `json:"subject"`
	Message   string            `json:"message"`
	Status    ComplaintStatus   `json:"status"`
	Priority  ComplaintPriority `json:"priority"`
	CreatedOn time.Time         `json:"created_on"`
	UpdatedOn time.Time         `json:"updated_on"`
}
