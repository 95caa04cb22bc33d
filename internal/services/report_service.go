package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/metrics"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
	"github.com/arcanosig/arcano/backend/internal/util"
)

// MaxPDFSize is the largest report PDF accepted.
const MaxPDFSize = 100 << 20

// ReportInput is the create payload.
type ReportInput struct {
	Kind    models.ReportKind       `json:"kind"`
	FocalID uint                    `json:"focal_id"`
	Counts  models.OccurrenceCounts `json:"counts"`
}

// ReportUpdate changes only the fields that are set.
type ReportUpdate struct {
	Kind    *models.ReportKind       `json:"kind"`
	FocalID *uint                    `json:"focal_id"`
	Counts  *models.OccurrenceCounts `json:"counts"`
}

// PDFUpload is an uploaded report file.
type PDFUpload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
}

// RequestMeta identifies the client of an access.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// ReportFilter narrows report listings.
type ReportFilter struct {
	Kind      models.ReportKind
	Year      int
	AnalystID uint
}

type ReportRank struct {
	ID          string            `json:"id"`
	NumberYear  string            `json:"numero_ano"`
	Kind        models.ReportKind `json:"kind"`
	AccessCount uint              `json:"access_count"`
}

type ReportStats struct {
	Total      int64                       `json:"total"`
	ByKind     map[models.ReportKind]int64 `json:"by_kind"`
	Accesses   int64                       `json:"total_accesses"`
	MostViewed []ReportRank                `json:"most_viewed"`
}

type ReportService struct {
	db            *gorm.DB
	storage       Storage
	mailer        Mailer
	notifications *NotificationService
	keyPrefix     string
	frontendURL   string
	now           func() time.Time
	log           *logrus.Entry
}

func NewReportService(db *gorm.DB, storage Storage, mailer Mailer, notifications *NotificationService, keyPrefix, frontendURL string) *ReportService {
	return &ReportService{
		db:            db,
		storage:       storage,
		mailer:        mailer,
		notifications: notifications,
		keyPrefix:     keyPrefix,
		frontendURL:   frontendURL,
		now:           utcNow,
		log:           logger.Component("reports"),
	}
}

func (s *ReportService) pdfKey(r *models.Report) string {
	return path.Join(s.keyPrefix, strconv.Itoa(r.Year), r.ID+".pdf")
}

// checkPDF validates size and sniffed content type and returns a reader
// positioned at the start of the file.
func checkPDF(up *PDFUpload) (io.Reader, error) {
	if up.Size > MaxPDFSize {
		return nil, models.Invalid("pdf", "o arquivo PDF não pode exceder 100MB")
	}
	if ct := strings.TrimSpace(strings.SplitN(up.ContentType, ";", 2)[0]); ct != "" && ct != "application/pdf" {
		return nil, models.Invalid("pdf", "apenas arquivos PDF são permitidos")
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(up.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if http.DetectContentType(head) != "application/pdf" {
		return nil, models.Invalid("pdf", "apenas arquivos PDF são permitidos")
	}
	return io.MultiReader(bytes.NewReader(head), up.Reader), nil
}

func (s *ReportService) loadFocal(db *gorm.DB, id uint) (*models.User, error) {
	if id == 0 {
		return nil, models.Invalid("focal_id", "o focal é obrigatório")
	}
	var focal models.User
	if err := db.First(&focal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.Invalid("focal_id", "focal não encontrado")
		}
		return nil, err
	}
	return &focal, nil
}

func changeLog(reportID string, userID uint, typ models.ReportChangeType, at time.Time) models.ReportChangeLog {
	l := models.ReportChangeLog{ChangeType: typ, ChangedAt: at}
	if reportID != "" {
		l.ReportID = &reportID
	}
	if userID != 0 {
		l.UserID = &userID
	}
	return l
}

// Create numbers and stores a report, then announces it to the SAC users.
func (s *ReportService) Create(ctx context.Context, actor *models.User, in ReportInput, pdf *PDFUpload) (*models.Report, error) {
	now := s.now()
	if err := permissions.CheckReport(actor, permissions.Create, nil, now); err != nil {
		return nil, err
	}
	if !in.Kind.Valid() {
		return nil, models.Invalid("kind", "tipo de relatório inválido")
	}
	focal, err := s.loadFocal(s.db, in.FocalID)
	if err != nil {
		return nil, err
	}

	r := &models.Report{
		ID:        uuid.New().String(),
		Year:      now.Year(),
		Kind:      in.Kind,
		AnalystID: actor.ID,
		FocalID:   focal.ID,
		Counts:    in.Counts,
		CreatedAt: now,
	}
	if pdf != nil {
		body, err := checkPDF(pdf)
		if err != nil {
			return nil, err
		}
		r.PDFPath = s.pdfKey(r)
		if err := s.storage.Save(ctx, r.PDFPath, body, pdf.Size, "application/pdf"); err != nil {
			return nil, fmt.Errorf("store report pdf: %w", err)
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var last uint
		if err := tx.Model(&models.Report{}).Where("year = ?", r.Year).
			Select("COALESCE(MAX(number), 0)").Scan(&last).Error; err != nil {
			return err
		}
		r.Number = last + 1
		r.NumberYear = models.FormatNumberYear(r.Number, r.Year)
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		entry := changeLog(r.ID, actor.ID, models.ChangeCreate, now)
		return tx.Create(&entry).Error
	})
	if err != nil {
		if r.PDFPath != "" {
			if derr := s.storage.Delete(ctx, r.PDFPath); derr != nil {
				s.log.WithError(derr).Warn("failed to remove orphaned report pdf")
			}
		}
		return nil, err
	}

	metrics.IncReportCreated()
	r.Analyst, r.Focal = actor, focal
	s.announce(r, focal)
	return r, nil
}

// announce emails every SAC user when the report went to a FOCAL profile.
func (s *ReportService) announce(r *models.Report, focal *models.User) {
	if focal.SacProfile != models.SacProfileFocal {
		return
	}
	var recipients []models.User
	if err := s.db.Where("is_sac = ? AND is_active = ? AND email <> ''", true, true).Find(&recipients).Error; err != nil {
		s.log.WithError(err).Error("failed to load report recipients")
		return
	}
	for i := range recipients {
		msg, err := newReportEmail(recipients[i].Email, r, r.Analyst.Name, s.frontendURL)
		if err != nil {
			s.log.WithError(err).Error("failed to render report email")
			return
		}
		s.mailer.Enqueue(msg)
	}
	if s.notifications != nil {
		s.notifications.SendExternal(AlertReport, newReportSubject(r.Kind), fmt.Sprintf("Relatório %s adicionado.", r.NumberYear))
	}
	s.log.WithFields(logrus.Fields{"report": r.NumberYear, "recipients": len(recipients)}).Info("report announced")
}

func (s *ReportService) List(actor *models.User, f ReportFilter) ([]models.Report, error) {
	if err := permissions.CheckReport(actor, permissions.Read, nil, s.now()); err != nil {
		return nil, err
	}
	q := s.db.Preload("Analyst").Preload("Focal").Order("created_at desc, number desc")
	if f.Kind != "" {
		q = q.Where("kind = ?", f.Kind)
	}
	if f.Year != 0 {
		q = q.Where("year = ?", f.Year)
	}
	if f.AnalystID != 0 {
		q = q.Where("analyst_id = ?", f.AnalystID)
	}
	var list []models.Report
	err := q.Find(&list).Error
	return list, err
}

// Get loads a report without recording an access.
func (s *ReportService) Get(id string) (*models.Report, error) {
	var r models.Report
	if err := s.db.Preload("Analyst").Preload("Focal").First(&r, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// View loads a report for a SAC reader and records the access.
func (s *ReportService) View(ctx context.Context, actor *models.User, id string, meta RequestMeta) (*models.Report, error) {
	if err := permissions.CheckReport(actor, permissions.Read, nil, s.now()); err != nil {
		return nil, err
	}
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := s.RecordAccess(ctx, actor, r, models.ChangeAccess, meta); err != nil {
		return nil, err
	}
	return r, nil
}

// RecordAccess logs an access of typ and bumps the report's access counter.
func (s *ReportService) RecordAccess(ctx context.Context, actor *models.User, r *models.Report, typ models.ReportChangeType, meta RequestMeta) error {
	now := s.now()
	entry := changeLog(r.ID, actor.ID, typ, now)
	entry.IPAddress = meta.IP
	if meta.UserAgent != "" {
		ua := util.ParseUserAgent(meta.UserAgent)
		entry.Device, entry.Browser = ua.Device, ua.Browser
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		r.AccessCount++
		r.LastViewedAt = &now
		return tx.Model(r).Updates(map[string]interface{}{
			"access_count":   gorm.Expr("access_count + 1"),
			"last_viewed_at": now,
		}).Error
	})
	if err != nil {
		r.AccessCount--
		return err
	}
	metrics.IncReportView(string(typ))
	return nil
}

type fieldValue struct {
	name, value string
}

// reportFields lists the user-editable fields of r in a stable order.
func reportFields(r *models.Report) []fieldValue {
	out := []fieldValue{
		{"kind", string(r.Kind)},
		{"focal_id", strconv.FormatUint(uint64(r.FocalID), 10)},
		{"pdf_path", r.PDFPath},
	}
	v := reflect.ValueOf(r.Counts)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := strings.SplitN(t.Field(i).Tag.Get("json"), ",", 2)[0]
		out = append(out, fieldValue{name, strconv.FormatUint(v.Field(i).Uint(), 10)})
	}
	return out
}

// Update applies in to the report, logging each changed field.
func (s *ReportService) Update(ctx context.Context, actor *models.User, id string, in ReportUpdate, pdf *PDFUpload) (*models.Report, error) {
	r, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if err := permissions.CheckReport(actor, permissions.Update, r, now); err != nil {
		return nil, err
	}
	before := reportFields(r)

	if in.Kind != nil {
		if !in.Kind.Valid() {
			return nil, models.Invalid("kind", "tipo de relatório inválido")
		}
		r.Kind = *in.Kind
	}
	if in.FocalID != nil {
		focal, err := s.loadFocal(s.db, *in.FocalID)
		if err != nil {
			return nil, err
		}
		r.FocalID, r.Focal = focal.ID, focal
	}
	if in.Counts != nil {
		r.Counts = *in.Counts
	}
	oldPDF := r.PDFPath
	if pdf != nil {
		body, err := checkPDF(pdf)
		if err != nil {
			return nil, err
		}
		r.PDFPath = path.Join(s.keyPrefix, strconv.Itoa(r.Year), fmt.Sprintf("%s-%d.pdf", r.ID, now.Unix()))
		if err := s.storage.Save(ctx, r.PDFPath, body, pdf.Size, "application/pdf"); err != nil {
			return nil, fmt.Errorf("store report pdf: %w", err)
		}
	}

	after := reportFields(r)
	var changes []models.ReportChangeLog
	for i := range before {
		if before[i].value == after[i].value {
			continue
		}
		entry := changeLog(r.ID, actor.ID, models.ChangeUpdate, now)
		entry.FieldName, entry.OldValue, entry.NewValue = before[i].name, before[i].value, after[i].value
		changes = append(changes, entry)
	}
	if len(changes) == 0 {
		return r, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Analyst", "Focal").Save(r).Error; err != nil {
			return err
		}
		return tx.Create(&changes).Error
	})
	if err != nil {
		if pdf != nil {
			if derr := s.storage.Delete(ctx, r.PDFPath); derr != nil {
				s.log.WithError(derr).Warn("failed to remove orphaned report pdf")
			}
		}
		return nil, err
	}
	if pdf != nil && oldPDF != "" {
		if err := s.storage.Delete(ctx, oldPDF); err != nil {
			s.log.WithError(err).WithField("report", r.NumberYear).Warn("failed to remove replaced pdf")
		}
	}
	return r, nil
}

// Delete removes a report and its stored PDF. The change log keeps the id.
func (s *ReportService) Delete(ctx context.Context, actor *models.User, id string) error {
	r, err := s.Get(id)
	if err != nil {
		return err
	}
	now := s.now()
	if err := permissions.CheckReport(actor, permissions.Delete, r, now); err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := changeLog("", actor.ID, models.ChangeDelete, now)
		entry.DeletedReportID = r.ID
		entry.OldValue = r.NumberYear
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		if err := tx.Where("report_id = ?", r.ID).Delete(&models.ReportShare{}).Error; err != nil {
			return err
		}
		return tx.Delete(r).Error
	})
	if err != nil {
		return err
	}
	if r.PDFPath != "" {
		if err := s.storage.Delete(ctx, r.PDFPath); err != nil {
			s.log.WithError(err).WithField("report", r.NumberYear).Warn("failed to remove report pdf")
		}
	}
	return nil
}

// PDFURL returns the public URL of the report PDF.
func (s *ReportService) PDFURL(r *models.Report) (string, error) {
	if r.PDFPath == "" {
		return "", ErrNotFound
	}
	return s.storage.URL(r.PDFPath), nil
}

// OpenPDF streams the stored PDF. The caller closes the reader.
func (s *ReportService) OpenPDF(ctx context.Context, r *models.Report) (io.ReadCloser, error) {
	if r.PDFPath == "" {
		return nil, ErrNotFound
	}
	rc, err := s.storage.Open(ctx, r.PDFPath)
	if errors.Is(err, ErrFileNotFound) {
		return nil, ErrNotFound
	}
	return rc, err
}

// Logs returns the change log of a report, newest first.
func (s *ReportService) Logs(actor *models.User, r *models.Report) ([]models.ReportChangeLog, error) {
	if !permissions.CanViewAuditLog(actor, r) {
		return nil, permissions.ErrForbidden
	}
	var logs []models.ReportChangeLog
	err := s.db.Where("report_id = ? OR deleted_report_id = ?", r.ID, r.ID).
		Order("changed_at desc, id desc").Find(&logs).Error
	return logs, err
}

func (s *ReportService) Stats(actor *models.User) (*ReportStats, error) {
	if err := permissions.CheckReport(actor, permissions.Read, nil, s.now()); err != nil {
		return nil, err
	}
	st := &ReportStats{ByKind: map[models.ReportKind]int64{}}
	if err := s.db.Model(&models.Report{}).Count(&st.Total).Error; err != nil {
		return nil, err
	}
	var byKind []struct {
		Kind  models.ReportKind
		Total int64
	}
	if err := s.db.Model(&models.Report{}).Select("kind, COUNT(*) AS total").Group("kind").Scan(&byKind).Error; err != nil {
		return nil, err
	}
	for _, k := range byKind {
		st.ByKind[k.Kind] = k.Total
	}
	if err := s.db.Model(&models.Report{}).Select("COALESCE(SUM(access_count), 0)").Scan(&st.Accesses).Error; err != nil {
		return nil, err
	}
	err := s.db.Model(&models.Report{}).Select("id, number_year, kind, access_count").
		Order("access_count desc, created_at desc").Limit(5).Scan(&st.MostViewed).Error
	if err != nil {
		return nil, err
	}
	return st, nil
}
