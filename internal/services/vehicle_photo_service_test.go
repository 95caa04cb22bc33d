package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func pngUpload(name, description string) PhotoUpload {
	body := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 64)...)
	return PhotoUpload{Reader: bytes.NewReader(body), Size: int64(len(body)), Filename: name, Description: description}
}

func newPhotoService(t *testing.T, f *fleetFixture) (*VehiclePhotoService, *LocalStorage) {
	t.Helper()
	storage := NewLocalStorage(t.TempDir())
	svc := NewVehiclePhotoService(f.db, storage)
	svc.now = f.clock.Now
	require.NoError(t, f.db.Model(f.vehicle).Update("operational", false).Error)
	return svc, storage
}

func TestVehiclePhotoService_Upload(t *testing.T) {
	f := newFleetFixture(t)
	svc, storage := newPhotoService(t, f)
	ctx := context.Background()

	p, err := svc.Upload(ctx, f.member, f.vehicle.ID, pngUpload("Pneu.PNG", "  pneu furado "))
	require.NoError(t, err)
	assert.Equal(t, "pneu furado", p.Description)
	assert.Equal(t, "image/png", p.ContentType)
	assert.True(t, strings.HasPrefix(p.Path, "veiculos/fotos/2026/03/"), p.Path)
	assert.True(t, strings.HasSuffix(p.Path, ".png"))
	assert.Equal(t, "/media/"+p.Path, p.URL)
	assert.Equal(t, f.clock.Now(), p.TakenAt)

	rc, err := svc.Open(ctx, p)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	rc.Close()
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngHeader))

	require.NoError(t, svc.Delete(ctx, f.commander, p.ID))
	_, err = storage.Open(ctx, p.Path)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestVehiclePhotoService_Rules(t *testing.T) {
	f := newFleetFixture(t)
	svc, _ := newPhotoService(t, f)
	ctx := context.Background()

	cases := []struct {
		name  string
		up    PhotoUpload
		field string
	}{
		{"no description", pngUpload("a.png", " "), "descricao"},
		{"bad extension", pngUpload("a.gif", "x"), "imagem"},
		{"not an image", PhotoUpload{Reader: strings.NewReader("%PDF-1.4 not an image"), Size: 21, Filename: "a.jpg", Description: "x"}, "imagem"},
		{"too large", PhotoUpload{Reader: strings.NewReader(""), Size: MaxPhotoSize + 1, Filename: "a.jpg", Description: "x"}, "imagem"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, f.admin, f.vehicle.ID, tc.up)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	_, err := svc.Upload(ctx, f.outsider, f.vehicle.ID, pngUpload("a.png", "x"))
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	for i := 0; i < models.MaxVehiclePhotos; i++ {
		_, err := svc.Upload(ctx, f.admin, f.vehicle.ID, pngUpload(fmt.Sprintf("%d.png", i), "avaria"))
		require.NoError(t, err)
	}
	_, err = svc.Upload(ctx, f.admin, f.vehicle.ID, pngUpload("extra.png", "avaria"))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "10 fotos")

	list, err := svc.List(f.member, f.vehicle.ID)
	require.NoError(t, err)
	assert.Len(t, list, models.MaxVehiclePhotos)
	assert.NotEmpty(t, list[0].URL)

	none, err := svc.List(f.outsider, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestVehiclePhotoService_OperationalVehicleRejected(t *testing.T) {
	f := newFleetFixture(t)
	svc := NewVehiclePhotoService(f.db, NewLocalStorage(t.TempDir()))

	_, err := svc.Upload(context.Background(), f.admin, f.vehicle.ID, pngUpload("a.png", "x"))
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "veiculo_id", verr.Field)
}
