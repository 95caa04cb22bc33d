package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/models"
)

// MaxPhotoSize is the largest vehicle photo accepted.
const MaxPhotoSize = 10 << 20

var photoExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

var photoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PhotoUpload is an uploaded vehicle photo.
type PhotoUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	Description string
	TakenAt     *time.Time
}

type VehiclePhotoService struct {
	db      *gorm.DB
	storage Storage
	now     func() time.Time
	log     *logrus.Entry
}

func NewVehiclePhotoService(db *gorm.DB, storage Storage) *VehiclePhotoService {
	return &VehiclePhotoService{db: db, storage: storage, now: utcNow, log: logger.Component("vehicle_photos")}
}

// checkImage validates the extension and sniffs the content, returning a
// reader that replays the sniffed bytes.
func checkImage(up PhotoUpload) (io.Reader, string, error) {
	if up.Size > MaxPhotoSize {
		return nil, "", models.Invalid("imagem", "a foto não pode exceder 10MB")
	}
	if !photoExtensions[strings.ToLower(filepath.Ext(up.Filename))] {
		return nil, "", models.Invalid("imagem", "formatos aceitos: jpg, jpeg, png, webp")
	}
	head := make([]byte, 512)
	n, err := io.ReadFull(up.Reader, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	ct := http.DetectContentType(head)
	if _, ok := photoTypes[ct]; !ok {
		return nil, "", models.Invalid("imagem", "o arquivo não é uma imagem válida")
	}
	return io.MultiReader(bytes.NewReader(head), up.Reader), ct, nil
}

// Upload stores a photo of a vehicle that is out of service. A vehicle keeps
// at most models.MaxVehiclePhotos photos.
func (s *VehiclePhotoService) Upload(ctx context.Context, actor *models.User, vehicleID uint, up PhotoUpload) (*models.VehiclePhoto, error) {
	v, err := loadVehicle(s.db, vehicleID)
	if err != nil {
		return nil, err
	}
	if err := authorizeVehicle(s.db, actor, v.ID); err != nil {
		return nil, err
	}
	if v.Operational {
		return nil, models.Invalid("veiculo_id", "só é possível adicionar fotos de viaturas fora de condições de uso")
	}
	if strings.TrimSpace(up.Description) == "" {
		return nil, models.Invalid("descricao", "descrição é obrigatória")
	}
	var n int64
	if err := s.db.Model(&models.VehiclePhoto{}).Where("vehicle_id = ?", v.ID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n >= models.MaxVehiclePhotos {
		return nil, models.Invalid("imagem", fmt.Sprintf("limite máximo de %d fotos por viatura atingido", models.MaxVehiclePhotos))
	}
	body, ct, err := checkImage(up)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &models.VehiclePhoto{
		VehicleID:   v.ID,
		ContentType: ct,
		Size:        up.Size,
		Description: up.Description,
		TakenAt:     now,
		UploadedBy:  actor.ID,
	}
	if up.TakenAt != nil {
		p.TakenAt = up.TakenAt.UTC()
	}
	p.Path = path.Join("veiculos", "fotos", now.Format("2006"), now.Format("01"), uuid.New().String()+photoTypes[ct])
	if err := s.storage.Save(ctx, p.Path, body, up.Size, ct); err != nil {
		return nil, fmt.Errorf("store vehicle photo: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		if derr := s.storage.Delete(ctx, p.Path); derr != nil {
			s.log.WithError(derr).Warn("failed to remove orphaned vehicle photo")
		}
		return nil, err
	}
	p.URL = s.storage.URL(p.Path)
	return p, nil
}

// List returns the photos actor may see, newest first. vehicleID 0 lists all.
func (s *VehiclePhotoService) List(actor *models.User, vehicleID uint) ([]models.VehiclePhoto, error) {
	q := visibleVehicles(s.db, s.db.Model(&models.VehiclePhoto{}), actor, "vehicle_id")
	if vehicleID != 0 {
		q = q.Where("vehicle_id = ?", vehicleID)
	}
	var list []models.VehiclePhoto
	if err := q.Order("taken_at desc, id desc").Find(&list).Error; err != nil {
		return nil, err
	}
	for i := range list {
		list[i].URL = s.storage.URL(list[i].Path)
	}
	return list, nil
}

func (s *VehiclePhotoService) Get(actor *models.User, id uint) (*models.VehiclePhoto, error) {
	var p models.VehiclePhoto
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	if err := authorizeVehicle(s.db, actor, p.VehicleID); err != nil {
		return nil, err
	}
	p.URL = s.storage.URL(p.Path)
	return &p, nil
}

// Open streams the image. A missing file is ErrNotFound.
func (s *VehiclePhotoService) Open(ctx context.Context, p *models.VehiclePhoto) (io.ReadCloser, error) {
	rc, err := s.storage.Open(ctx, p.Path)
	if errors.Is(err, ErrFileNotFound) {
		return nil, ErrNotFound
	}
	return rc, err
}

// Delete removes the row, then the file. A file left behind is only logged.
func (s *VehiclePhotoService) Delete(ctx context.Context, actor *models.User, id uint) error {
	p, err := s.Get(actor, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(p).Error; err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, p.Path); err != nil {
		s.log.WithError(err).WithField("photo_id", p.ID).Warn("failed to remove vehicle photo")
	}
	return nil
}
