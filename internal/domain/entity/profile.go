package entity

// Profile is a family member's health-record profile. Only ownership is relevant here.
type Profile struct {
	ID             string `json:"id"`
	OwnerAccountID string `json:"owner_account_id"`
}
