package models

import "time"

// LatenessRecord is one tardiness event tied to a student.
type LatenessRecord struct {
	// ID is assigned by the database.
	ID int64 `json:"id"`

	StudentID   string `json:"student_id"`
	Reason      string `json:"reason"`
	MinutesLate int    `json:"minutes_late"`

	// ArrivalTime is assigned by the database at insertion.
	ArrivalTime time.Time `json:"arrival_time"`
}

// TableName returns the name of the database table
// associated with the LatenessRecord model.
func (r LatenessRecord) TableName() string {
	return "lateness_records"
}

// ScanRequest is the body of /api/scan.
type ScanRequest struct {
	StudentID   string `json:"student_id"`
	Reason      string `json:"reason"`
	MinutesLate int    `json:"minutes_late"`
}

// AdminRecord is a lateness record joined with the attributes of the student
// it belongs to, as shown on the administrative dashboard.
type AdminRecord struct {
	StudentID     string    `json:"student_id"`
	Name          string    `json:"name"`
	Level         string    `json:"level"`
	Grade         string    `json:"grade"`
	ClassGroup    string    `json:"class_group"`
	Ship          string    `json:"ship"`
	Date          time.Time `json:"date"`
	TotalLateness int       `json:"total_lateness"`
	Reason        string    `json:"reason"`
}
