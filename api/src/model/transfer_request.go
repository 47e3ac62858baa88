package model

import "time"

const TransferRequestsTable = "transfer_requests"

type TransferStatus string

const (
	TransferPending  TransferStatus = "pending"
	TransferApproved TransferStatus = "approved"
	TransferDeclined TransferStatus = "declined"
)

type TransferRequest struct {
	Id              int            `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentId       int            `gorm:"index;not null" json:"student_id"`
	Student         *Student       `gorm:"foreignKey:StudentId" json:"-"`
	FromInstituteId *int           `json:"from_institute_id"`
	ToInstituteId   int            `gorm:"index;not null" json:"to_institute_id"`
	ToInstitute     *Institute     `gorm:"foreignKey:ToInstituteId" json:"-"`
	Status          TransferStatus `gorm:"type:varchar(16);not null;index" json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (TransferRequest) TableName() string {
	return TransferRequestsTable
}

func (r TransferRequest) IsPending() bool {
	return r.Status == TransferPending
}

func (r TransferRequest) ChangeKeys() map[string]int {
	keys := map[string]int{
		"id":              r.Id,
		"student_id":      r.StudentId,
		"to_institute_id": r.ToInstituteId,
	}
	if r.FromInstituteId != nil {
		keys["from_institute_id"] = *r.FromInstituteId
	}
	return keys
}
