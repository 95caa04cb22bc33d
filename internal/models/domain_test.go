package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOccurrenceCounts_NonZero(t *testing.T) {
	c := OccurrenceCounts{Homicide: 2, DrugSeizure: 1}
	got := c.NonZero()
	assert.Equal(t, []Count{{"Homicídio", 2}, {"Apreensão de Drogas", 1}}, got)
	assert.Empty(t, OccurrenceCounts{}.NonZero())
}

func TestReportKind(t *testing.T) {
	assert.True(t, ReportFinal.Valid())
	assert.False(t, ReportKind("RASCUNHO").Valid())
	assert.Equal(t, "Final", ReportFinal.Label())
	assert.Equal(t, "Preliminar", ReportPreliminary.Label())
	assert.Equal(t, "042/2025", FormatNumberYear(42, 2025))
	assert.Equal(t, "1000/2025", FormatNumberYear(1000, 2025))
}

func TestReportShare_IsValid(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	exp := now.Add(SpecialShareTTL)

	s := &ReportShare{Active: true, ExpiresAt: &exp}
	assert.True(t, s.IsValid(now))
	assert.False(t, s.IsValid(exp))
	assert.False(t, s.IsValid(exp.Add(time.Second)))

	s.Active = false
	assert.False(t, s.IsValid(now))

	open := &ReportShare{Active: true}
	assert.True(t, open.IsValid(now.AddDate(5, 0, 0)))
}

func TestOperation_Status(t *testing.T) {
	today := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	op := &Operation{StartDate: Day(today).AddDate(0, 0, -2), EndDate: Day(today).AddDate(0, 0, 3), IsActive: true}

	assert.Equal(t, "Ativa", op.Status(today))
	assert.Equal(t, 6, op.DurationDays())
	assert.Equal(t, 3, op.DaysRemaining(today))

	op.IsActive = false
	assert.Equal(t, "Inativa", op.Status(today))

	op.EndDate = Day(today).AddDate(0, 0, -1)
	assert.Equal(t, "Encerrada", op.Status(today))
	assert.Equal(t, 0, op.DaysRemaining(today))
}

func TestVehicle_Validate(t *testing.T) {
	assert.NoError(t, (&Vehicle{Plate: "ABC1234", Model: "l200"}).Validate())
	assert.NoError(t, (&Vehicle{Plate: "abc1d23", Model: "outros"}).Validate())
	assert.Error(t, (&Vehicle{Plate: "AB12345", Model: "l200"}).Validate())
	assert.Error(t, (&Vehicle{Plate: "ABC1234", Model: "fusca"}).Validate())
}

func TestEquipment(t *testing.T) {
	assert.True(t, EquipmentPistol.IsWeapon())
	assert.False(t, EquipmentRadio.IsWeapon())
	assert.Equal(t, "Colete Reflexivo", EquipmentVest.Label())

	assert.False(t, StatusGood.IsDamaged())
	assert.False(t, EquipmentStatus("").IsDamaged())
	assert.True(t, StatusLost.IsDamaged())
	assert.True(t, StatusDamaged.NeedsDescription())
	assert.False(t, StatusLost.NeedsDescription())

	item := &CustodyItem{EquipmentType: EquipmentRifle}
	assert.Error(t, item.Validate())
	item.SerialNumber = "FZ-001"
	assert.NoError(t, item.Validate())
	assert.Equal(t, "Fuzil - FZ-001", item.DisplayLabel())

	assert.Error(t, (&CustodyItem{EquipmentType: "canhao"}).Validate())
}

func TestCustody_ShortID(t *testing.T) {
	c := &Custody{ID: "3f2a9c1e-aaaa-bbbb-cccc-000000000000"}
	assert.Equal(t, "3f2a9c1e", c.ShortID())
	assert.False(t, c.IsReturned())
}
