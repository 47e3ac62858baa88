package model

import "time"

const AccessGrantsTable = "access_grants"

type AccessGrant struct {
	Id                 int          `gorm:"primaryKey;autoIncrement" json:"id"`
	CertificateId      int          `gorm:"index:idx_grant_viewer;not null" json:"certificate_id"`
	Certificate        *Certificate `gorm:"foreignKey:CertificateId" json:"-"`
	ViewerAddress      string       `gorm:"index:idx_grant_viewer;not null" json:"viewer_address"`
	GrantedByStudentId int          `gorm:"not null" json:"granted_by_student_id"`
	GrantedBy          *Student     `gorm:"foreignKey:GrantedByStudentId" json:"-"`
	ExpiresAt          time.Time    `gorm:"not null" json:"expires_at"`
	CreatedAt          time.Time    `json:"created_at"`
}

func (AccessGrant) TableName() string {
	return AccessGrantsTable
}

// ActiveAt reports whether the grant still allows viewing at now. The expiry instant itself is inclusive.
func (g AccessGrant) ActiveAt(now time.Time) bool {
	return !now.After(g.ExpiresAt)
}

func (g AccessGrant) ChangeKeys() map[string]int {
	return map[string]int{
		"id":                    g.Id,
		"certificate_id":        g.CertificateId,
		"granted_by_student_id": g.GrantedByStudentId,
	}
}

type AccessLog struct {
	Id            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CertificateId int       `gorm:"index;not null" json:"certificate_id"`
	ViewerAddress string    `gorm:"not null" json:"viewer_address"`
	ViewedAt      time.Time `gorm:"not null" json:"viewed_at"`
}
