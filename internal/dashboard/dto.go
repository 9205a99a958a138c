package dashboard

// StatsResponse aggregates the dashboard counters. TotalBooks is the sum of
// copies across all rows, not the row count.
type StatsResponse struct {
	TotalBooks    int `json:"totalBooks"`
	TotalStudents int `json:"totalStudents"`
	TotalStaff    int `json:"totalStaff"`
	OverdueBooks  int `json:"overdueBooks"`
}
