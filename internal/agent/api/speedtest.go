package api

import sm "github.com/fbivlabs/fbiv-vpn/internal/shared/models"

// SubmitSpeedTest stores a measured sample and returns the stored
// record.
func (c *Client) SubmitSpeedTest(req sm.SpeedTestRequest, token string) (sm.SpeedTest, error) {
	var resp sm.SpeedTest
	if err := c.PostJSON("/api/speedtest", req, &resp, token); err != nil {
		return sm.SpeedTest{}, err
	}
	return resp, nil
}

// SpeedTestHistory lists the most recent samples, newest first.
func (c *Client) SpeedTestHistory(token string) ([]sm.SpeedTest, error) {
	var resp []sm.SpeedTest
	if err := c.GetJSON("/api/speedtest/history", &resp, token); err != nil {
		return nil, err
	}
	return resp, nil
}
