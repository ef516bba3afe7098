package gate

// DTOs do serviço remoto de identidade/aprovação. O serviço é dono desses
// dados; aqui só trafegam.

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

type UserProfile struct {
	Principal string `json:"principal"`
	Name      string `json:"name"`
	Phone     string `json:"phone,omitempty"`
}

type UserApprovalInfo struct {
	Principal string         `json:"principal"`
	Name      string         `json:"name,omitempty"`
	Status    ApprovalStatus `json:"status"`
}

type PaymentProofStatus string

const (
	ProofSubmitted PaymentProofStatus = "submitted"
	ProofApproved  PaymentProofStatus = "approved"
	ProofRejected  PaymentProofStatus = "rejected"
)

type PaymentProof struct {
	ID          int64              `json:"id"`
	Principal   string             `json:"principal"`
	FileURL     string             `json:"file_url"`
	Status      PaymentProofStatus `json:"status"`
	SubmittedAt string             `json:"submitted_at"`
}

type PaymentProofUpdate struct {
	FileURL string `json:"file_url"`
	Notes   string `json:"notes,omitempty"`
}

type accessStateResponse struct {
	Approved      bool `json:"approved"`
	PaywallActive bool `json:"paywall_active"`
}

type submitProofResponse struct {
	ID int64 `json:"id"`
}
