package model

import "time"

type LedgerAnchor struct {
	Id            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CertificateId int       `gorm:"uniqueIndex:idx_anchor_kind;not null" json:"certificate_id"`
	Kind          string    `gorm:"uniqueIndex:idx_anchor_kind;type:varchar(32);not null" json:"kind"`
	TxRef         string    `gorm:"not null" json:"tx_ref"`
	CreatedAt     time.Time `json:"created_at"`
}
