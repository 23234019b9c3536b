package models

// ReportMemo is a free-text annotation attached to one field of a
// property's income/expense report.
type ReportMemo struct {
	PropertyID int64  `json:"propertyId"`
	Field      string `json:"field"`
	Value      string `json:"value"`
	UpdatedAt  string `json:"updatedAt"`
}

// UpdateMemoRequest sets the value of a memo.
type UpdateMemoRequest struct {
	Value string `json:"value"`
}
