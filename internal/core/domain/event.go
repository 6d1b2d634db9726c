package domain

// ChangeType describes which store mutation produced a ChangeEvent.
type ChangeType string

const (
	Created       ChangeType = "CREATED"
	Updated       ChangeType = "UPDATED"
	StatusChanged ChangeType = "STATUS_CHANGED"
)

// ChangeEvent is delivered to store observers after a successful mutation.
type ChangeEvent struct {
	Type ChangeType
	Kind LogKind
	ID   string
}
