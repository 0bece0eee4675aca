package mapping

import (
	"database/sql"

	"github.com/SscSPs/rental_management_app/internal/core/domain"
	"github.com/SscSPs/rental_management_app/internal/models"
)

// ToModelAuthUser converts a domain AuthUser to a model AuthUser
func ToModelAuthUser(d domain.AuthUser) models.AuthUser {
	m := models.AuthUser{
		UserID:           d.ID,
		Email:            d.Email,
		PasswordHash:     nullString(d.PasswordHash),
		AuthProvider:     string(d.AuthProvider),
		ProviderUserID:   nullString(d.ProviderUserID),
		EmailVerified:    d.EmailVerified,
		RefreshTokenHash: nullString(d.RefreshTokenHash),
		CreatedAt:        d.CreatedAt,
	}
	if d.RefreshTokenExpiryTime != nil {
		m.RefreshTokenExpiryTime = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	if m.AuthProvider == "" {
		m.AuthProvider = string(domain.ProviderLocal)
	}
	return m
}

// ToDomainAuthUser converts a model AuthUser to a domain AuthUser
func ToDomainAuthUser(m models.AuthUser) domain.AuthUser {
	d := domain.AuthUser{
		ID:               m.UserID,
		Email:            m.Email,
		PasswordHash:     m.PasswordHash.String,
		AuthProvider:     domain.AuthProvider(m.AuthProvider),
		ProviderUserID:   m.ProviderUserID.String,
		EmailVerified:    m.EmailVerified,
		RefreshTokenHash: m.RefreshTokenHash.String,
		CreatedAt:        m.CreatedAt,
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

func ToModelProfile(d domain.Profile) models.Profile {
	return models.Profile{
		UserID:    d.ID,
		FullName:  d.FullName,
		Email:     d.Email,
		Role:      d.Role,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDomainProfile(m models.Profile) domain.Profile {
	return domain.Profile{
		ID:        m.UserID,
		FullName:  m.FullName,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
