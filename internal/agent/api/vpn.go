package api

import sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"

// Servers fetches the server list with its display jitter.
func (c *Client) Servers() ([]sm.Server, error) {
	var resp []sm.Server
	if err := c.GetJSON("/api/servers", &resp, ""); err != nil {
		return nil, err
	}
	return resp, nil
}

// Connect records a connection to the given server. token may be empty
// for an anonymous connection.
func (c *Client) Connect(serverID int64, token string) (sm.ConnectResponse, error) {
	var resp sm.ConnectResponse
	if err := c.PostJSON("/api/connect", sm.ConnectRequest{ServerID: serverID}, &resp, token); err != nil {
		return sm.ConnectResponse{}, err
	}
	return resp, nil
}

// Disconnect clears the recorded connection. Always succeeds when
// already disconnected.
func (c *Client) Disconnect(token string) (sm.DisconnectResponse, error) {
	var resp sm.DisconnectResponse
	if err := c.PostJSON("/api/disconnect", nil, &resp, token); err != nil {
		return sm.DisconnectResponse{}, err
	}
	return resp, nil
}

// Stats fetches the global counters.
func (c *Client) Stats() (sm.Stats, error) {
	var resp sm.Stats
	if err := c.GetJSON("/api/stats", &resp, ""); err != nil {
		return sm.Stats{}, err
	}
	return resp, nil
}
