package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
	"github.com/arcanosig/arcano/backend/internal/util"
)

const (
	specialNumberLen   = 11
	specialPasswordLen = 8
	passwordAlphabet   = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
)

// ShareInput is the create payload. ExpiresAt is ignored for especial shares.
type ShareInput struct {
	Kind      models.ShareKind `json:"kind"`
	ExpiresAt *time.Time       `json:"expires_at"`
}

// ShareCredentials are the fields a visitor submits to open a share.
type ShareCredentials struct {
	CPF             string `json:"cpf"`
	Password        string `json:"password"`
	SpecialNumber   string `json:"special_number"`
	SpecialPassword string `json:"special_password"`
}

// ShareInfo is what an anonymous visitor learns before authenticating.
type ShareInfo struct {
	Kind         models.ShareKind  `json:"kind"`
	ReportNumber string            `json:"report_number"`
	ReportKind   models.ReportKind `json:"report_kind"`
	ExpiresAt    *time.Time        `json:"expires_at,omitempty"`
	RequiresCPF  bool              `json:"requires_cpf"`
}

type ShareService struct {
	db  *gorm.DB
	now func() time.Time
	log *logrus.Entry
}

func NewShareService(db *gorm.DB) *ShareService {
	return &ShareService{db: db, now: utcNow, log: logger.Component("shares")}
}

// Create issues a share link for a report. Only FOCAL users may share.
func (s *ShareService) Create(ctx context.Context, actor *models.User, reportID string, in ShareInput) (*models.ReportShare, error) {
	if !permissions.CanShare(actor) {
		return nil, permissions.ErrForbidden
	}
	if !in.Kind.Valid() {
		return nil, models.Invalid("kind", "tipo de compartilhamento inválido")
	}
	var report models.Report
	if err := s.db.First(&report, "id = ?", reportID).Error; err != nil {
		return nil, err
	}

	token, err := randomToken(32)
	if err != nil {
		return nil, err
	}
	now := s.now()
	share := &models.ReportShare{
		ReportID:    report.ID,
		CreatedByID: actor.ID,
		Kind:        in.Kind,
		Token:       token,
		Active:      true,
	}
	switch in.Kind {
	case models.ShareSpecial:
		if share.SpecialNumber, err = randomFrom("0123456789", specialNumberLen); err != nil {
			return nil, err
		}
		if share.SpecialPassword, err = randomFrom(passwordAlphabet, specialPasswordLen); err != nil {
			return nil, err
		}
		exp := now.Add(models.SpecialShareTTL)
		share.ExpiresAt = &exp
	default:
		if in.ExpiresAt != nil {
			if !in.ExpiresAt.After(now) {
				return nil, models.Invalid("expires_at", "a data de expiração deve estar no futuro")
			}
			exp := in.ExpiresAt.UTC()
			share.ExpiresAt = &exp
		}
	}
	share.CreatedAt = now
	if err := s.db.WithContext(ctx).Create(share).Error; err != nil {
		return nil, err
	}
	share.Report = &report
	s.log.WithFields(logrus.Fields{"report": report.NumberYear, "kind": share.Kind}).Info("report shared")
	return share, nil
}

func (s *ShareService) List(actor *models.User, reportID string) ([]models.ReportShare, error) {
	if !permissions.CanShare(actor) {
		return nil, permissions.ErrForbidden
	}
	var list []models.ReportShare
	err := s.db.Where("report_id = ?", reportID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (s *ShareService) byToken(token string) (*models.ReportShare, error) {
	var share models.ReportShare
	if err := s.db.Preload("Report").First(&share, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &share, nil
}

// Info describes a valid share. Unknown tokens yield ErrNotFound, expired or
// revoked ones ErrShareExpired.
func (s *ShareService) Info(token string) (*ShareInfo, error) {
	share, err := s.byToken(token)
	if err != nil {
		return nil, err
	}
	if !share.IsValid(s.now()) {
		return nil, ErrShareExpired
	}
	info := &ShareInfo{
		Kind:        share.Kind,
		ExpiresAt:   share.ExpiresAt,
		RequiresCPF: share.Kind == models.ShareCPF,
	}
	if share.Report != nil {
		info.ReportNumber, info.ReportKind = share.Report.NumberYear, share.Report.Kind
	}
	return info, nil
}

// Access checks creds against the share and records the attempt. On
// success the share's counter is bumped and the share, with its report, is returned.
func (s *ShareService) Access(ctx context.Context, token string, creds ShareCredentials, meta RequestMeta) (*models.ReportShare, error) {
	share, err := s.byToken(token)
	if err != nil {
		s.record(ctx, nil, meta, err)
		return nil, err
	}
	if !share.IsValid(s.now()) {
		s.record(ctx, share, meta, ErrShareExpired)
		return nil, ErrShareExpired
	}
	if err := s.checkCredentials(share, creds); err != nil {
		s.record(ctx, share, meta, err)
		return nil, err
	}
	if err := s.grant(ctx, share, meta); err != nil {
		return nil, err
	}
	return share, nil
}

// DirectAccess opens an especial share without credentials.
func (s *ShareService) DirectAccess(ctx context.Context, token string, meta RequestMeta) (*models.ReportShare, error) {
	share, err := s.byToken(token)
	if err != nil {
		s.record(ctx, nil, meta, err)
		return nil, err
	}
	if share.Kind != models.ShareSpecial {
		s.record(ctx, share, meta, permissions.ErrForbidden)
		return nil, permissions.ErrForbidden
	}
	if !share.IsValid(s.now()) {
		s.record(ctx, share, meta, ErrShareExpired)
		return nil, ErrShareExpired
	}
	if err := s.grant(ctx, share, meta); err != nil {
		return nil, err
	}
	return share, nil
}

func (s *ShareService) checkCredentials(share *models.ReportShare, creds ShareCredentials) error {
	switch share.Kind {
	case models.ShareCPF:
		if strings.TrimSpace(creds.CPF) == "" || creds.Password == "" {
			return models.Invalid("cpf", "CPF e senha são obrigatórios")
		}
		var user models.User
		err := s.db.Where("cpf = ?", models.NormalizeCPF(creds.CPF)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		if err != nil {
			return err
		}
		if !user.IsActive || !user.CheckPassword(creds.Password) {
			return ErrInvalidCredentials
		}
		return nil
	case models.ShareSpecial:
		if strings.TrimSpace(creds.SpecialNumber) == "" || creds.SpecialPassword == "" {
			return models.Invalid("special_number", "número e senha especiais são obrigatórios")
		}
		numberOK := subtle.ConstantTimeCompare([]byte(creds.SpecialNumber), []byte(share.SpecialNumber)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(creds.SpecialPassword), []byte(share.SpecialPassword)) == 1
		if !numberOK || !passwordOK {
			return ErrInvalidCredentials
		}
		return nil
	default:
		return permissions.ErrForbidden
	}
}

func (s *ShareService) grant(ctx context.Context, share *models.ReportShare, meta RequestMeta) error {
	now := s.now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ReportShare{}).Where("id = ?", share.ID).Updates(map[string]interface{}{
			"accesses":       gorm.Expr("accesses + 1"),
			"last_access_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Create(s.accessRow(share, meta, nil, now)).Error
	})
	if err != nil {
		return err
	}
	share.Accesses++
	share.LastAccessAt = &now
	metrics.IncShareAccess("success")
	return nil
}

func (s *ShareService) accessRow(share *models.ReportShare, meta RequestMeta, cause error, at time.Time) *models.ShareAccess {
	row := &models.ShareAccess{
		IPAddress:  meta.IP,
		UserAgent:  util.Truncate(meta.UserAgent, 500),
		Success:    cause == nil,
		AccessedAt: at,
	}
	if share != nil {
		id := share.ID
		row.ShareID = &id
	}
	if cause != nil {
		row.Error = cause.Error()
	}
	return row
}

// record stores a failed attempt. Failures to log are only logged.
func (s *ShareService) record(ctx context.Context, share *models.ReportShare, meta RequestMeta, cause error) {
	metrics.IncShareAccess(accessResult(cause))
	if err := s.db.WithContext(ctx).Create(s.accessRow(share, meta, cause, s.now())).Error; err != nil {
		s.log.WithError(err).Warn("failed to record share access")
	}
}

func accessResult(err error) string {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrShareExpired):
		return "expired"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, permissions.ErrForbidden):
		return "forbidden"
	case errors.As(err, &verr):
		return "bad_request"
	default:
		return "error"
	}
}

// Deactivate revokes share id of report reportID.
func (s *ShareService) Deactivate(ctx context.Context, actor *models.User, reportID string, id uint) error {
	if !permissions.CanShare(actor) {
		return permissions.ErrForbidden
	}
	res := s.db.WithContext(ctx).Model(&models.ReportShare{}).Where("id = ? AND report_id = ?", id, reportID).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
