package find_conflicts

import (
	"github.com/m04kA/AgriRent-BookingService/internal/domain"
	findConflicts "github.com/m04kA/AgriRent-BookingService/internal/usecase/find_conflicts"
)

// ConflictsResponse HTTP response model
type ConflictsResponse struct {
	EquipmentID int64      `json:"equipmentId"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	HasHard     bool       `json:"hasHardConflict"`
	Conflicts   []Conflict `json:"conflicts"`
}

// Conflict пересекающееся бронирование
type Conflict struct {
	BookingID int64  `json:"bookingId"`
	UserID    int64  `json:"userId"`
	Status    string `json:"status"`
	Severity  string `json:"severity"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findConflicts.Response) *ConflictsResponse {
	conflicts := make([]Conflict, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		conflicts[i] = Conflict{
			BookingID: c.BookingID,
			UserID:    c.UserID,
			Status:    string(c.Status),
			Severity:  string(c.Severity),
			StartDate: c.Range.Start.Format(domain.DateFormat),
			EndDate:   c.Range.End.Format(domain.DateFormat),
		}
	}

	return &ConflictsResponse{
		EquipmentID: resp.EquipmentID,
		StartDate:   resp.Range.Start.Format(domain.DateFormat),
		EndDate:     resp.Range.End.Format(domain.DateFormat),
		HasHard:     resp.HasHard,
		Conflicts:   conflicts,
	}
}
