package ticket

// Helper methods for TicketStatus
func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	switch ts {
	case TicketStatusReserved, TicketStatusPaid:
		return true
	default:
		return false
	}
}

// IsPaid returns true if the ticket has been paid for
func (ts TicketStatus) IsPaid() bool {
	return ts == TicketStatusPaid
}

// GetAllTicketStatuses returns all valid ticket statuses
func GetAllTicketStatuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusReserved,
		TicketStatusPaid,
	}
}
