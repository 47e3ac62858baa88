package model

import "time"

type Student struct {
	Id                 int        `gorm:"primaryKey;autoIncrement" json:"id"`
	WalletAddress      string     `gorm:"uniqueIndex;not null" json:"wallet_address"`
	DisplayName        string     `gorm:"not null" json:"display_name"`
	ContactEmail       string     `json:"contact_email"`
	CurrentInstituteId *int       `gorm:"index" json:"current_institute_id"`
	CurrentInstitute   *Institute `gorm:"foreignKey:CurrentInstituteId" json:"-"`
	PendingInstituteId *int       `json:"pending_institute_id"`
	PendingInstitute   *Institute `gorm:"foreignKey:PendingInstituteId" json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func (s Student) AffiliatedWith(instituteId int) bool {
	return s.CurrentInstituteId != nil && *s.CurrentInstituteId == instituteId
}

func (s Student) HasPendingTransfer() bool {
	return s.PendingInstituteId != nil
}
