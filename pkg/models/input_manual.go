package models

import "slices"

// WorkProgress is the state of one checklist item.
type WorkProgress string

const (
	WorkProgressCompleted  WorkProgress = "COMPLETED"
	WorkProgressInProgress WorkProgress = "IN_PROGRESS"
)

// Label returns the mark shown on the checklist.
func (p WorkProgress) Label() string {
	switch p {
	case WorkProgressCompleted:
		return "●"
	case WorkProgressInProgress:
		return "確認中"
	default:
		return string(p)
	}
}

// SheetNames is the catalogue of report sheets the checklist tracks, in
// binder order.
var SheetNames = []string{
	"表紙",
	"物件概要",
	"レントロール",
	"水道光熱通信料",
	"預託金等",
	"駐車場契約状況",
	"駐輪場契約状況",
	"水道料明細",
	"月額家賃入金明細",
	"月額家賃入金履歴",
	"未収金前受金",
	"収入支出明細",
	"収支報告",
	"リーシングレポート",
	"管理作業実績表",
	"駐車場契約内容",
	"請求書",
	"水道料金表",
}

// InputManualEntry is one line of the monthly input checklist.
type InputManualEntry struct {
	ID           int64        `json:"id"`
	Order        int          `json:"order"`
	SheetName    string       `json:"sheetName"`
	WorkProgress WorkProgress `json:"workProgress"`
	WorkContent  string       `json:"workContent"`
	CreatedAt    string       `json:"created_at"`
}

// CreateInputManualRequest represents the request to add a checklist line.
type CreateInputManualRequest struct {
	Order        int          `json:"order"`
	SheetName    string       `json:"sheetName"`
	WorkProgress WorkProgress `json:"workProgress"`
	WorkContent  string       `json:"workContent"`
	CreatedAt    string       `json:"created_at,omitempty"`
}

// Validate checks required fields.
func (r *CreateInputManualRequest) Validate() error {
	if r.SheetName == "" {
		return missingField("sheetName")
	}
	if !slices.Contains(SheetNames, r.SheetName) {
		return invalidField("sheetName", r.SheetName)
	}
	switch r.WorkProgress {
	case WorkProgressCompleted, WorkProgressInProgress:
	case "":
		return missingField("workProgress")
	default:
		return invalidField("workProgress", r.WorkProgress)
	}
	if r.CreatedAt != "" {
		if _, _, _, ok := ParseDate(r.CreatedAt); !ok {
			return invalidField("created_at", r.CreatedAt)
		}
	}
	return nil
}
