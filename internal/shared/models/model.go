// Package models contains the wire-level types of the FBIV VPN HTTP API.
//
// The same structs are encoded by the server handlers and decoded by the
// CLI client, so the two sides cannot drift apart.
package models

import "time"

// UserProjection is the public view of a user account.
//
// It is the only user shape that ever leaves the server: the password
// hash is not part of it and must never be added here.
type UserProjection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Subscription string `json:"subscription"`
}

// AuthResponse is the body of successful register and login calls.
//
// Token is a signed bearer token; the client sends it back in the
// Authorization header on protected routes.
type AuthResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Token   string         `json:"token"`
	User    UserProjection `json:"user"`
}

// Server describes one VPN endpoint shown in the server list.
//
// Load and Ping are display values jittered per request; they are not
// live measurements.
type Server struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Country  string `json:"country"`
	Flag     string `json:"flag"`
	IP       string `json:"ip"`
	Load     int    `json:"load"`
	Ping     int    `json:"ping"`
	Premium  bool   `json:"premium"`
}

// ConnectRequest selects the server to connect to.
type ConnectRequest struct {
	ServerID int64 `json:"serverId"`
}

// ConnectResponse reports the outcome of a connect call.
type ConnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Server  Server `json:"server"`
}

// DisconnectResponse reports the outcome of a disconnect call.
// Disconnecting while already disconnected is a success.
type DisconnectResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SpeedTestRequest is a speed-test sample submitted by the client.
type SpeedTestRequest struct {
	DownloadSpeed float64 `json:"downloadSpeed"`
	UploadSpeed   float64 `json:"uploadSpeed"`
	Ping          int     `json:"ping"`
	Jitter        float64 `json:"jitter"`
	Server        string  `json:"server"`
}

// SpeedTest echoes a stored speed-test record. Records are immutable
// once created.
type SpeedTest struct {
	ID            string    `json:"id"`
	DownloadSpeed float64   `json:"downloadSpeed"`
	UploadSpeed   float64   `json:"uploadSpeed"`
	Ping          int       `json:"ping"`
	Jitter        float64   `json:"jitter"`
	Server        string    `json:"server"`
	Timestamp     time.Time `json:"timestamp"`
}

// TopServer is the trimmed server shape used in global stats.
type TopServer struct {
	ID       int64  `json:"id"`
	Location string `json:"location"`
	Flag     string `json:"flag"`
	Ping     int    `json:"ping"`
	Load     int    `json:"load"`
}

// Stats holds the randomized global counters for the landing page.
type Stats struct {
	TotalUsers     int64       `json:"totalUsers"`
	TotalServers   int         `json:"totalServers"`
	TotalCountries int         `json:"totalCountries"`
	TopServers     []TopServer `json:"topServers"`
}

// Profile is the extended account view for the account page.
type Profile struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Subscription  string        `json:"subscription"`
	JoinDate      string        `json:"joinDate"`
	Notifications Notifications `json:"notifications"`
}

// Notifications are the account notification preferences.
type Notifications struct {
	Email     bool `json:"email"`
	Security  bool `json:"security"`
	Marketing bool `json:"marketing"`
}

// Usage summarizes the account's VPN usage. DataLimit of -1 means
// unlimited.
type Usage struct {
	DataUsed         float64 `json:"dataUsed"`
	DataLimit        float64 `json:"dataLimit"`
	ConnectionsToday int     `json:"connectionsToday"`
	TotalConnections int     `json:"totalConnections"`
	DevicesConnected int     `json:"devicesConnected"`
	MaxDevices       int     `json:"maxDevices"`
}

// Subscription describes the account's current plan.
type Subscription struct {
	Plan        string   `json:"plan"`
	Status      string   `json:"status"`
	NextBilling string   `json:"nextBilling"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
}

// Device is one device registered to the account.
type Device struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	LastUsed string `json:"lastUsed"`
	Status   string `json:"status"`
}

// Session is one past VPN connection of the account.
type Session struct {
	ID        string `json:"id"`
	Server    string `json:"server"`
	StartTime string `json:"startTime"`
	Duration  string `json:"duration"`
	DataUsed  string `json:"dataUsed"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Version   string    `json:"version"`
}

// ErrorResponse is the error body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}
