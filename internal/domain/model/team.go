package model

// SignupRequest is forwarded by the gateway to the backend signup endpoint.
type SignupRequest struct {
	TeamName string `json:"team_name"`
	Password string `json:"password"`
}

// SignupResponse is what the gateway returns after minting a token.
type SignupResponse struct {
	Token  string `json:"token"`
	TeamID string `json:"team_id"`
}

// AuthVerifyResponse reports whether a stored token is still good.
// Verification never fails with an error status; invalid and absent
// tokens both collapse to Valid=false over a 200 response.
type AuthVerifyResponse struct {
	Valid    bool   `json:"valid"`
	TeamID   string `json:"team_id,omitempty"`
	TeamName string `json:"team_name,omitempty"`
}
