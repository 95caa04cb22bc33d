package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportKind distinguishes preliminary from final intelligence reports.
type ReportKind string

const (
	ReportPreliminary ReportKind = "PRELIMINAR"
	ReportFinal       ReportKind = "FINAL"
)

func (k ReportKind) Valid() bool {
	return k == ReportPreliminary || k == ReportFinal
}

// Label is the human form used in email subjects.
func (k ReportKind) Label() string {
	if k == ReportFinal {
		return "Final"
	}
	return "Preliminar"
}

// OccurrenceCounts are the per-report incident tallies.
type OccurrenceCounts struct {
	Homicide                 uint `json:"homicidio"`
	AttemptedHomicide        uint `json:"tentativa_homicidio"`
	RobberyHomicide          uint `json:"latrocinio"`
	AttemptedRobberyHomicide uint `json:"tentativa_latrocinio"`
	Femicide                 uint `json:"feminicidio"`
	AttemptedFemicide        uint `json:"tentativa_feminicidio"`
	PoliceInterventionDeath  uint `json:"morte_intervencao_policial"`
	ArrestWarrant            uint `json:"mandado_prisao"`
	CorpseFound              uint `json:"encontro_cadaver"`
	DrugSeizure              uint `json:"apreensao_drogas"`
	WeaponSeizure            uint `json:"apreensao_armas"`
	HighRepercussion         uint `json:"ocorrencia_repercussao"`
	OtherIncidents           uint `json:"outros_incidentes"`
}

// Count is a labelled non-zero counter.
type Count struct {
	Label string
	Value uint
}

// NonZero returns the labelled counters that are greater than zero, in display order.
func (o OccurrenceCounts) NonZero() []Count {
	all := []Count{
		{"Homicídio", o.Homicide},
		{"Tentativa de Homicídio", o.AttemptedHomicide},
		{"Latrocínio", o.RobberyHomicide},
		{"Tentativa de Latrocínio", o.AttemptedRobberyHomicide},
		{"Feminicídio", o.Femicide},
		{"Tentativa de Feminicídio", o.AttemptedFemicide},
		{"Morte por Intervenção Policial", o.PoliceInterventionDeath},
		{"Mandado de Prisão", o.ArrestWarrant},
		{"Encontro de Cadáver", o.CorpseFound},
		{"Apreensão de Drogas", o.DrugSeizure},
		{"Apreensão de Armas", o.WeaponSeizure},
		{"Ocorrência de Grande Repercussão", o.HighRepercussion},
		{"Outros Incidentes", o.OtherIncidents},
	}
	out := make([]Count, 0, len(all))
	for _, c := range all {
		if c.Value > 0 {
			out = append(out, c)
		}
	}
	return out
}

// Report is an intelligence report (SAC). Its number restarts every year.
type Report struct {
	ID           string           `json:"id" gorm:"primaryKey;size:36"`
	Number       uint             `json:"number" gorm:"uniqueIndex:idx_report_number_year"`
	Year         int              `json:"year" gorm:"uniqueIndex:idx_report_number_year;index"`
	NumberYear   string           `json:"numero_ano" gorm:"size:10;index"`
	Kind         ReportKind       `json:"kind" gorm:"size:10;index"`
	AnalystID    uint             `json:"analyst_id" gorm:"index"`
	Analyst      *User            `json:"analyst,omitempty"`
	FocalID      uint             `json:"focal_id"`
	Focal        *User            `json:"focal,omitempty"`
	PDFPath      string           `json:"pdf_path,omitempty"`
	AccessCount  uint             `json:"access_count"`
	LastViewedAt *time.Time       `json:"last_viewed_at,omitempty"`
	Counts       OccurrenceCounts `json:"counts" gorm:"embedded"`
	CreatedAt    time.Time        `json:"created_at" gorm:"index"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// FormatNumberYear renders the public report number, e.g. 007/2026.
func FormatNumberYear(number uint, year int) string {
	return fmt.Sprintf("%03d/%d", number, year)
}

// ReportChangeType is the kind of event recorded in a report's change log.
type ReportChangeType string

const (
	ChangeCreate   ReportChangeType = "create"
	ChangeUpdate   ReportChangeType = "update"
	ChangeDelete   ReportChangeType = "delete"
	ChangeAccess   ReportChangeType = "access"
	ChangeDownload ReportChangeType = "download"
	ChangeViewPDF  ReportChangeType = "view_pdf"
)

// ReportChangeLog is the audit trail of a report. DeletedReportID survives the report.
type ReportChangeLog struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	ReportID        *string          `json:"report_id" gorm:"size:36;index"`
	DeletedReportID string           `json:"deleted_report_id,omitempty" gorm:"size:36"`
	UserID          *uint            `json:"user_id" gorm:"index"`
	ChangeType      ReportChangeType `json:"change_type" gorm:"size:10"`
	FieldName       string           `json:"field_name,omitempty" gorm:"size:100"`
	OldValue        string           `json:"old_value,omitempty" gorm:"type:text"`
	NewValue        string           `json:"new_value,omitempty" gorm:"type:text"`
	IPAddress       string           `json:"ip_address,omitempty" gorm:"size:45"`
	Device          string           `json:"device,omitempty" gorm:"size:50"`
	Browser         string           `json:"browser,omitempty" gorm:"size:50"`
	ChangedAt       time.Time        `json:"changed_at" gorm:"index"`
}
