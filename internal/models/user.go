package models

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/util"
)

// SacProfile is the access level inside the intelligence reports module.
type SacProfile string

const (
	SacProfileNone    SacProfile = "SEM_ACESSO"
	SacProfileReader  SacProfile = "LEITOR"
	SacProfileAnalyst SacProfile = "ANALISTA"
	SacProfileFocal   SacProfile = "FOCAL"
)

// Valid reports whether p is a known profile.
func (p SacProfile) Valid() bool {
	switch p {
	case SacProfileNone, SacProfileReader, SacProfileAnalyst, SacProfileFocal:
		return true
	}
	return false
}

// Patent is the military rank of an officer.
type Patent string

var patents = []Patent{"SD", "CB", "3SGT", "2SGT", "1SGT", "ST", "ASP", "2TEN", "1TEN", "CAP", "MAJ", "TENCEL", "CEL"}

// Valid reports whether p is a known rank.
func (p Patent) Valid() bool {
	for _, known := range patents {
		if p == known {
			return true
		}
	}
	return false
}

// User is a member of the unit. New accounts start inactive and unapproved:
// activation proves the email address, approval is granted by an admin.
type User struct {
	ID               uint       `json:"id" gorm:"primaryKey"`
	UUID             string     `json:"uuid" gorm:"uniqueIndex;size:36"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	Name             string     `json:"name"`
	CPF              string     `json:"cpf" gorm:"uniqueIndex;size:11"`
	Phone            string     `json:"phone"`
	Patent           Patent     `json:"patent" gorm:"size:10"`
	PasswordHash     string     `json:"-"`
	IsActive         bool       `json:"is_active" gorm:"index"`
	IsApproved       bool       `json:"is_approved"`
	IsAdmin          bool       `json:"is_admin"`
	IsSuperuser      bool       `json:"is_superuser"`
	IsOperations     bool       `json:"is_operacoes"`
	IsSac            bool       `json:"is_sac"`
	SacProfile       SacProfile `json:"sac_profile" gorm:"size:15"`
	SpecialCPFAccess bool       `json:"acesso_especial_cpf"`
	ActivationToken  string     `json:"-" gorm:"index"`
	ResetToken       string     `json:"-" gorm:"index"`
	ResetExpires     *time.Time `json:"-"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	FailedLogins     int        `json:"-"`
	LockedUntil      *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UUID == "" {
		u.UUID = uuid.New().String()
	}
	if u.SacProfile == "" {
		u.SacProfile = SacProfileNone
	}
	return nil
}

// BeforeSave keeps name and CPF in their canonical forms.
func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Name = util.NormalizeUpper(u.Name)
	u.CPF = util.DigitsOnly(u.CPF)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return nil
}

// SetPassword hashes and sets the user's password.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword compares the provided password with the stored hash.
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// HasFullOperationsAccess is true for superusers, admins and the operations staff.
func (u *User) HasFullOperationsAccess() bool {
	return u.IsSuperuser || u.IsAdmin || u.IsOperations
}

// CanLogin reports whether the account finished activation and approval.
func (u *User) CanLogin() bool {
	return u.IsActive && (u.IsApproved || u.IsSuperuser)
}

// NormalizeCPF strips punctuation from a CPF.
func NormalizeCPF(cpf string) string { return util.DigitsOnly(cpf) }

// ValidCPF accepts 11 digits (punctuation ignored) that are not all the same digit.
func ValidCPF(cpf string) bool {
	d := util.DigitsOnly(cpf)
	if len(d) != 11 {
		return false
	}
	return strings.Count(d, d[:1]) != len(d)
}

// Validate checks the fields a user submits at registration or profile edit.
func (u *User) Validate() error {
	if _, err := mail.ParseAddress(u.Email); err != nil {
		return Invalid("email", "endereço de e-mail inválido")
	}
	if strings.TrimSpace(u.Name) == "" {
		return Invalid("name", "nome é obrigatório")
	}
	if !ValidCPF(u.CPF) {
		return Invalid("cpf", "CPF deve conter 11 dígitos válidos")
	}
	if u.Patent != "" && !u.Patent.Valid() {
		return Invalid("patent", "patente inválida")
	}
	if u.SacProfile != "" && !u.SacProfile.Valid() {
		return Invalid("sac_profile", "perfil SAC inválido")
	}
	if p := util.DigitsOnly(u.Phone); u.Phone != "" && (len(p) < 10 || len(p) > 11) {
		return Invalid("phone", "celular deve conter DDD e número")
	}
	return nil
}

// UserChangeLog records a single field change on a user account.
type UserChangeLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	ChangedByID *uint     `json:"changed_by_id"`
	FieldName   string    `json:"field_name" gorm:"size:100"`
	OldValue    string    `json:"old_value" gorm:"type:text"`
	NewValue    string    `json:"new_value" gorm:"type:text"`
	ChangedAt   time.Time `json:"changed_at" gorm:"autoCreateTime"`
}

// TokenBlacklist holds revoked JWT ids until they would have expired anyway.
type TokenBlacklist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	JTI       string    `json:"jti" gorm:"uniqueIndex;size:64"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}
