package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
)

// ProfileInput carries the fields a user may change on their own profile.
type ProfileInput struct {
	Name   *string        `json:"name"`
	Phone  *string        `json:"phone"`
	Patent *models.Patent `json:"patent"`
}

// AccessInput carries the admin-managed access flags.
type AccessInput struct {
	IsAdmin          *bool              `json:"is_admin"`
	IsOperations     *bool              `json:"is_operacoes"`
	IsSac            *bool              `json:"is_sac"`
	SacProfile       *models.SacProfile `json:"sac_profile"`
	SpecialCPFAccess *bool              `json:"acesso_especial_cpf"`
	IsActive         *bool              `json:"is_active"`
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns users ordered by name; pending restricts to unapproved accounts.
func (s *UserService) List(pending bool) ([]models.User, error) {
	var users []models.User
	q := s.db.Order("name")
	if pending {
		q = q.Where("is_approved = ? AND is_superuser = ?", false, false)
	}
	if err := q.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

type fieldChange struct {
	column   string
	field    string
	old, new string
	value    interface{}
}

// UpdateProfile applies in to user and logs each changed field.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, in ProfileInput) (*models.User, error) {
	next := *user
	if in.Name != nil {
		next.Name = *in.Name
	}
	if in.Phone != nil {
		next.Phone = *in.Phone
	}
	if in.Patent != nil {
		next.Patent = *in.Patent
	}
	if err := next.Validate(); err != nil {
		return nil, err
	}
	// Normalize before diffing so cosmetic edits are not logged.
	_ = next.BeforeSave(nil)

	var changes []fieldChange
	if next.Name != user.Name {
		changes = append(changes, fieldChange{"name", "name", user.Name, next.Name, next.Name})
	}
	if next.Phone != user.Phone {
		changes = append(changes, fieldChange{"phone", "phone", user.Phone, next.Phone, next.Phone})
	}
	if next.Patent != user.Patent {
		changes = append(changes, fieldChange{"patent", "patent", string(user.Patent), string(next.Patent), next.Patent})
	}
	return s.apply(ctx, user, user, changes)
}

// UpdateAccess changes access flags of target on behalf of an admin.
func (s *UserService) UpdateAccess(ctx context.Context, targetID uint, in AccessInput, actor *models.User) (*models.User, error) {
	target, err := s.Get(targetID)
	if err != nil {
		return nil, err
	}

	var changes []fieldChange
	flag := func(column string, cur bool, v *bool) {
		if v != nil && *v != cur {
			changes = append(changes, fieldChange{column, column, strconv.FormatBool(cur), strconv.FormatBool(*v), *v})
		}
	}
	flag("is_admin", target.IsAdmin, in.IsAdmin)
	flag("is_operations", target.IsOperations, in.IsOperations)
	flag("is_sac", target.IsSac, in.IsSac)
	flag("special_cpf_access", target.SpecialCPFAccess, in.SpecialCPFAccess)
	flag("is_active", target.IsActive, in.IsActive)
	if in.SacProfile != nil && *in.SacProfile != target.SacProfile {
		if !in.SacProfile.Valid() {
			return nil, models.Invalid("sac_profile", "perfil SAC inválido")
		}
		changes = append(changes, fieldChange{"sac_profile", "sac_profile", string(target.SacProfile), string(*in.SacProfile), *in.SacProfile})
	}
	return s.apply(ctx, target, actor, changes)
}

func (s *UserService) apply(ctx context.Context, target, actor *models.User, changes []fieldChange) (*models.User, error) {
	if len(changes) == 0 {
		return target, nil
	}
	updates := make(map[string]interface{}, len(changes))
	for _, c := range changes {
		updates[c.column] = c.value
	}

	err := s.db.WithContext(WithActor(ctx, actor.ID)).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(target).Updates(updates).Error; err != nil {
			return err
		}
		for _, c := range changes {
			if err := tx.Create(&models.UserChangeLog{
				UserID:      target.ID,
				ChangedByID: &actor.ID,
				FieldName:   c.field,
				OldValue:    c.old,
				NewValue:    c.new,
			}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Get(target.ID)
}

// ChangeLog lists the recorded field changes of a user, newest first.
func (s *UserService) ChangeLog(userID uint) ([]models.UserChangeLog, error) {
	var logs []models.UserChangeLog
	err := s.db.Where("user_id = ?", userID).Order("changed_at desc, id desc").Find(&logs).Error
	return logs, err
}

// CreateSuperuser creates an active, approved superuser with full access.
func (s *UserService) CreateSuperuser(email, password, name, cpf string) (*models.User, error) {
	u := &models.User{
		Email:        email,
		Name:         name,
		CPF:          cpf,
		IsActive:     true,
		IsApproved:   true,
		IsSuperuser:  true,
		IsAdmin:      true,
		IsOperations: true,
		IsSac:        true,
		SacProfile:   models.SacProfileFocal,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := ValidatePassword(password); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or CPF already registered", ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

// ResetPassword sets a new password for the user with email, unlocking the account.
func (s *UserService) ResetPassword(email, password string) error {
	var u models.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		return err
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}
	return s.db.Model(&u).Updates(map[string]interface{}{
		"password_hash": u.PasswordHash,
		"failed_logins": 0,
		"locked_until":  nil,
	}).Error
}
