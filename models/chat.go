package models

// ChatRequest is the body of POST /api/chat. Messages holds the visible
// transcript with the newest user message last.
type ChatRequest struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages" binding:"required,min=1"`
}

// PlanningState is what the assistant has learned about the event so far.
type PlanningState struct {
	GuestCount  int      `json:"guestCount,omitempty"`
	EventDate   string   `json:"eventDate,omitempty"`
	Budget      int64    `json:"budget,omitempty"`
	City        string   `json:"city,omitempty"`
	Shortlisted []string `json:"shortlisted,omitempty"`
	Booked      []string `json:"booked,omitempty"`
}

// Empty reports whether nothing has been recorded yet.
func (p PlanningState) Empty() bool {
	return p.GuestCount == 0 && p.EventDate == "" && p.Budget == 0 && p.City == "" &&
		len(p.Shortlisted) == 0 && len(p.Booked) == 0
}
