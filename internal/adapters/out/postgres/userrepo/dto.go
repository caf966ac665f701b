// Package userrepo persists user aggregates in the users table.
package userrepo

import (
	"time"

	"labflow/internal/core/domain/model/kernel"
	"labflow/internal/core/domain/model/user"

	"gorm.io/gorm"
)

// UserDTO maps the users table. DeletedAt is gorm's soft-delete column, so every
// query through this model implicitly filters out deleted users.
type UserDTO struct {
	ID           string         `gorm:"type:char(24);primaryKey"`
	Email        string         `gorm:"type:varchar(320);not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime:false"`
	DeletedAt    gorm.DeletedAt
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:           aggregate.ID().String(),
		Email:        aggregate.Email().String(),
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
	if deletedAt := aggregate.DeletedAt(); deletedAt != nil {
		dto.DeletedAt = gorm.DeletedAt{Time: *deletedAt, Valid: true}
	}
	return dto
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	var deletedAt *time.Time
	if dto.DeletedAt.Valid {
		ts := dto.DeletedAt.Time.UTC()
		deletedAt = &ts
	}

	return user.RestoreUser(id, email, dto.PasswordHash, dto.CreatedAt.UTC(), dto.UpdatedAt.UTC(), deletedAt)
}
