package models

import "time"

// Verification document types and statuses.
const (
	DocBusinessLicense = "business_license"
	DocCertification   = "certification"
	DocTaxRegistration = "tax_registration"
	DocIdentity        = "identity"

	DocPending  = "pending"
	DocVerified = "verified"
	DocRejected = "rejected"
)

type Document struct {
	ID           string `json:"id"`
	SupplierID   string `json:"supplierId"`
	SupplierName string `json:"supplierName"`

	Type    string `json:"type"`
	Name    string `json:"name"`
	FileURL string `json:"fileUrl"`

	Status       string `json:"status"`
	RejectReason string `json:"rejectReason,omitempty"`

	SubmittedAt time.Time  `json:"submittedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
}
