package staff

// Staff is one row of the staff table.
type Staff struct {
	ID   string
	Name string
	Role string
}
