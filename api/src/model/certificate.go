package model

import "time"

const CertificatesTable = "certificates"

// Certificate never changes after creation except for Approved going false -> true.
type Certificate struct {
	Id          int        `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentId   int        `gorm:"index;not null" json:"student_id"`
	Student     *Student   `gorm:"foreignKey:StudentId" json:"-"`
	InstituteId int        `gorm:"index;not null" json:"institute_id"`
	Institute   *Institute `gorm:"foreignKey:InstituteId" json:"-"`
	ContentId   string     `gorm:"not null" json:"content_id"`
	Approved    bool       `gorm:"not null;default:false;index" json:"approved"`
	IssuedAt    time.Time  `gorm:"not null;index" json:"issued_at"`
}

func (Certificate) TableName() string {
	return CertificatesTable
}

func (c Certificate) ChangeKeys() map[string]int {
	return map[string]int{
		"id":           c.Id,
		"student_id":   c.StudentId,
		"institute_id": c.InstituteId,
	}
}
