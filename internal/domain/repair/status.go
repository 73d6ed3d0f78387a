package repair

// Repair status is free text on the wire; these are the values the shop
// actually works with.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusInShop    Status = "in-shop"
	StatusCompleted Status = "completed"
)

// InitialStatus is what a repair gets when the request doesn't say.
func InitialStatus() Status {
	return StatusScheduled
}
