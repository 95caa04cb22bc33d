package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/permissions"
)

type shareFixture struct {
	*reportFixture
	shares *ShareService
	report *models.Report
}

func newShareFixture(t *testing.T) *shareFixture {
	t.Helper()
	f := newReportFixture(t)
	shares := NewShareService(f.db)
	shares.now = f.clock.Now
	return &shareFixture{reportFixture: f, shares: shares, report: f.create(t, models.ReportFinal, pdfUpload(samplePDF))}
}

func (f *shareFixture) attempts(t *testing.T, shareID uint) []models.ShareAccess {
	t.Helper()
	var rows []models.ShareAccess
	require.NoError(t, f.db.Where("share_id = ?", shareID).Order("id").Find(&rows).Error)
	return rows
}

func TestShareService_CreateRequiresFocal(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	_, err := f.shares.Create(ctx, f.analyst, f.report.ID, ShareInput{Kind: models.ShareCPF})
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	var verr *models.ValidationError
	_, err = f.shares.Create(ctx, f.focal, f.report.ID, ShareInput{Kind: "publico"})
	assert.ErrorAs(t, err, &verr)

	past := f.clock.Now().Add(-time.Minute)
	_, err = f.shares.Create(ctx, f.focal, f.report.ID, ShareInput{Kind: models.ShareCPF, ExpiresAt: &past})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "expires_at", verr.Field)

	_, err = f.shares.Create(ctx, f.focal, "missing", ShareInput{Kind: models.ShareCPF})
	assert.Error(t, err)

	_, err = f.shares.List(f.reader, f.report.ID)
	assert.ErrorIs(t, err, permissions.ErrForbidden)
}

func TestShareService_SpecialShareLifecycle(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()

	// a caller supplied expiry is ignored for especial shares
	later := f.clock.Now().Add(30 * 24 * time.Hour)
	share, err := f.shares.Create(ctx, f.focal, f.report.ID, ShareInput{Kind: models.ShareSpecial, ExpiresAt: &later})
	require.NoError(t, err)
	assert.Len(t, share.Token, 43)
	assert.Regexp(t, `^[0-9]{11}$`, share.SpecialNumber)
	assert.Len(t, share.SpecialPassword, 8)
	require.NotNil(t, share.ExpiresAt)
	assert.True(t, share.ExpiresAt.Equal(f.clock.Now().Add(24*time.Hour)))

	info, err := f.shares.Info(share.Token)
	require.NoError(t, err)
	assert.Equal(t, "001/2026", info.ReportNumber)
	assert.False(t, info.RequiresCPF)

	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{SpecialNumber: share.SpecialNumber}, RequestMeta{IP: "200.1.1.1"})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{SpecialNumber: share.SpecialNumber, SpecialPassword: "wrong"}, RequestMeta{IP: "200.1.1.1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	got, err := f.shares.Access(ctx, share.Token, ShareCredentials{
		SpecialNumber: share.SpecialNumber, SpecialPassword: share.SpecialPassword,
	}, RequestMeta{IP: "200.1.1.1", UserAgent: "curl/8.0"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.Accesses)
	require.NotNil(t, got.Report)
	assert.Equal(t, f.report.ID, got.Report.ID)

	direct, err := f.shares.DirectAccess(ctx, share.Token, RequestMeta{IP: "200.1.1.2"})
	require.NoError(t, err)
	assert.Equal(t, uint(2), direct.Accesses)

	f.clock.Advance(24*time.Hour - time.Microsecond)
	_, err = f.shares.Info(share.Token)
	require.NoError(t, err)

	f.clock.Advance(time.Microsecond)
	_, err = f.shares.Info(share.Token)
	assert.ErrorIs(t, err, ErrShareExpired)
	_, err = f.shares.DirectAccess(ctx, share.Token, RequestMeta{})
	assert.ErrorIs(t, err, ErrShareExpired)

	rows := f.attempts(t, share.ID)
	require.Len(t, rows, 5)
	assert.False(t, rows[0].Success)
	assert.False(t, rows[1].Success)
	assert.Equal(t, ErrInvalidCredentials.Error(), rows[1].Error)
	assert.True(t, rows[2].Success)
	assert.Equal(t, "curl/8.0", rows[2].UserAgent)
	assert.True(t, rows[3].Success)
	assert.False(t, rows[4].Success)
}

func TestShareService_CPFShare(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	visitor := createUser(t, f.db, "visitante@pm.gov.br", nil)
	blocked := createUser(t, f.db, "inativo@pm.gov.br", func(u *models.User) { u.IsActive = false })

	share, err := f.shares.Create(ctx, f.focal, f.report.ID, ShareInput{Kind: models.ShareCPF})
	require.NoError(t, err)
	assert.Nil(t, share.ExpiresAt)
	assert.Empty(t, share.SpecialNumber)

	info, err := f.shares.Info(share.Token)
	require.NoError(t, err)
	assert.True(t, info.RequiresCPF)

	_, err = f.shares.DirectAccess(ctx, share.Token, RequestMeta{})
	assert.ErrorIs(t, err, permissions.ErrForbidden)

	var verr *models.ValidationError
	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{CPF: visitor.CPF}, RequestMeta{})
	assert.ErrorAs(t, err, &verr)

	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{CPF: visitor.CPF, Password: "errada"}, RequestMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{CPF: "99999999999", Password: testPassword}, RequestMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{CPF: blocked.CPF, Password: testPassword}, RequestMeta{})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	formatted := visitor.CPF[:3] + "." + visitor.CPF[3:6] + "." + visitor.CPF[6:9] + "-" + visitor.CPF[9:]
	got, err := f.shares.Access(ctx, share.Token, ShareCredentials{CPF: formatted, Password: testPassword}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.Accesses)

	list, err := f.shares.List(f.focal, f.report.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, uint(1), list[0].Accesses)

	assert.ErrorIs(t, f.shares.Deactivate(ctx, f.focal, "outro-relatorio", share.ID), gorm.ErrRecordNotFound)
	require.NoError(t, f.shares.Deactivate(ctx, f.focal, f.report.ID, share.ID))
	_, err = f.shares.Access(ctx, share.Token, ShareCredentials{CPF: visitor.CPF, Password: testPassword}, RequestMeta{})
	assert.ErrorIs(t, err, ErrShareExpired)
	assert.Error(t, f.shares.Deactivate(ctx, f.focal, f.report.ID, 9999))
}

func TestShareService_UnknownTokenIsRecorded(t *testing.T) {
	f := newShareFixture(t)
	_, err := f.shares.Access(context.Background(), "nope", ShareCredentials{}, RequestMeta{IP: "1.2.3.4"})
	assert.ErrorIs(t, err, ErrNotFound)

	var row models.ShareAccess
	require.NoError(t, f.db.Where("share_id IS NULL").First(&row).Error)
	assert.Equal(t, "1.2.3.4", row.IPAddress)
	assert.False(t, row.Success)
}

func TestShareService_DeletingReportRemovesShares(t *testing.T) {
	f := newShareFixture(t)
	ctx := context.Background()
	share, err := f.shares.Create(ctx, f.focal, f.report.ID, ShareInput{Kind: models.ShareSpecial})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, f.analyst, f.report.ID))
	_, err = f.shares.Info(share.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessResult(t *testing.T) {
	assert.Equal(t, "not_found", accessResult(ErrNotFound))
	assert.Equal(t, "expired", accessResult(ErrShareExpired))
	assert.Equal(t, "invalid_credentials", accessResult(ErrInvalidCredentials))
	assert.Equal(t, "forbidden", accessResult(permissions.ErrForbidden))
	assert.Equal(t, "bad_request", accessResult(models.Invalid("cpf", "x")))
	assert.Equal(t, "error", accessResult(assert.AnError))
}
