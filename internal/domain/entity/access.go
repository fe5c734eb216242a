package entity

// AccessOutcome is the result of a successful pass through the access gate.
type AccessOutcome struct {
	Identity   Identity       `json:"identity"`
	Subscribed bool           `json:"subscribed"`
	Device     *DeviceCheck   `json:"device,omitempty"`
	Profile    *ProfileAccess `json:"profile,omitempty"`
}

// DeviceCheck is the device registry's verdict for a request.
type DeviceCheck struct {
	DeviceID     string `json:"device_id"`
	Registered   bool   `json:"registered"`
	Allowed      bool   `json:"allowed"`
	LimitApplied bool   `json:"limit_applied"`
}

// ProfileAccess records which profile role check the request passed.
type ProfileAccess struct {
	ProfileID    string `json:"profile_id"`
	RequiredRole Role   `json:"required_role"`
	Owner        bool   `json:"owner"`
}
