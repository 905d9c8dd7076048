package models

// Server is a VPN endpoint descriptor as stored in the servers table.
//
// Rows are seeded by the migrations and never mutated; the per-request
// load/ping jitter happens in the service layer on a copy.
type Server struct {
	ID       int64
	Name     string
	Location string
	Country  string
	Flag     string
	IP       string
	Load     int
	Ping     int
	Premium  bool
}
