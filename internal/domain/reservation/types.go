package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo encodes the lifecycle: the forward path never skips a state
// and cancellation is reachable from pending and confirmed only.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusShipped || next == StatusCancelled
	case StatusShipped:
		return next == StatusDelivered
	default:
		return false
	}
}

// DisplayCategory is the user-facing label for a status. The mapping is a
// design contract: five mutually exclusive categories, nothing else.
type DisplayCategory string

const (
	CategoryAwaitingConfirmation DisplayCategory = "awaiting confirmation"
	CategoryConfirmed            DisplayCategory = "confirmed"
	CategoryInTransit            DisplayCategory = "in transit"
	CategoryCompleted            DisplayCategory = "completed"
	CategoryCancelled            DisplayCategory = "cancelled"
)

func (c DisplayCategory) String() string {
	return string(c)
}

// DisplayCategoryOf is total over all strings: an unrecognized status from the
// store renders as pending's category instead of failing the page.
// NOTE: this intentionally preserves the legacy dashboard behavior, even
// though it can make a corrupted status look like a fresh reservation.
func DisplayCategoryOf(raw string) DisplayCategory {
	switch Status(raw) {
	case StatusConfirmed:
		return CategoryConfirmed
	case StatusShipped:
		return CategoryInTransit
	case StatusDelivered:
		return CategoryCompleted
	case StatusCancelled:
		return CategoryCancelled
	default:
		return CategoryAwaitingConfirmation
	}
}
