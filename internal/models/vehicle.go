package models

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var plateFormat = regexp.MustCompile(`^[A-Z]{3}[0-9][A-Z0-9][0-9]{2}$`)

// VehicleModel is the fleet model of a vehicle.
type VehicleModel string

var vehicleModels = map[VehicleModel]bool{
	"l200": true, "ranger": true, "tucson": true, "hilux": true, "duster": true, "outros": true,
}

// Vehicle is a fleet vehicle that may be assigned to one team.
type Vehicle struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Plate       string       `json:"prefixo" gorm:"uniqueIndex;size:7;not null"`
	Model       VehicleModel `json:"modelo" gorm:"size:20"`
	Operational bool         `json:"em_condicao"`
	Odometer    uint         `json:"km_atual"`
	Notes       string       `json:"observacoes" gorm:"type:text"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (v *Vehicle) BeforeSave(tx *gorm.DB) error {
	v.Plate = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(v.Plate), "-", ""))
	return nil
}

// Validate checks plate format and model. Call after normalizing the plate.
func (v *Vehicle) Validate() error {
	plate := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(v.Plate), "-", ""))
	if !plateFormat.MatchString(plate) {
		return Invalid("prefixo", "placa deve seguir o padrão AAA0000 ou AAA0A00")
	}
	if !vehicleModels[v.Model] {
		return Invalid("modelo", "modelo de viatura inválido")
	}
	return nil
}

// MaxVehiclePhotos caps the photos kept per vehicle.
const MaxVehiclePhotos = 10

// VehiclePhoto documents the condition of a vehicle out of service.
type VehiclePhoto struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VehicleID   uint      `json:"veiculo_id" gorm:"index:idx_vehicle_photo_taken"`
	Vehicle     *Vehicle  `json:"veiculo,omitempty"`
	Path        string    `json:"-" gorm:"size:255;not null"`
	ContentType string    `json:"content_type" gorm:"size:50"`
	Size        int64     `json:"tamanho"`
	Description string    `json:"descricao" gorm:"size:255;not null"`
	TakenAt     time.Time `json:"data_foto" gorm:"index:idx_vehicle_photo_taken,sort:desc"`
	UploadedBy  uint      `json:"enviado_por"`
	URL         string    `json:"url,omitempty" gorm:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *VehiclePhoto) BeforeSave(tx *gorm.DB) error {
	p.Description = strings.TrimSpace(p.Description)
	return nil
}

// FuelLog (abastecimento) is one refuelling of a vehicle.
type FuelLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VehicleID   uint      `json:"veiculo_id" gorm:"index:idx_fuel_vehicle_filled"`
	Vehicle     *Vehicle  `json:"veiculo,omitempty"`
	FilledAt    time.Time `json:"data" gorm:"index:idx_fuel_vehicle_filled,sort:desc;index"`
	Odometer    uint      `json:"km_atual" gorm:"index"`
	Liters      float64   `json:"litros" gorm:"type:decimal(7,3)"`
	TotalCost   float64   `json:"valor_total" gorm:"type:decimal(10,2)"`
	Station     string    `json:"posto" gorm:"size:100"`
	Notes       string    `json:"observacao" gorm:"type:text"`
	RecordedBy  uint      `json:"registrado_por"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (f *FuelLog) BeforeSave(tx *gorm.DB) error {
	f.Station = strings.ToUpper(strings.TrimSpace(f.Station))
	f.Notes = strings.ToUpper(strings.TrimSpace(f.Notes))
	return nil
}

// PricePerLiter is zero when no liters were recorded.
func (f *FuelLog) PricePerLiter() float64 {
	if f.Liters <= 0 {
		return 0
	}
	return f.TotalCost / f.Liters
}

// Validate checks the amounts of a fuel log. Odometer consistency needs the
// vehicle and its other logs, so the service checks it.
func (f *FuelLog) Validate() error {
	if f.Odometer < 1 {
		return Invalid("km_atual", "quilometragem deve ser maior que zero")
	}
	if f.Liters < 0.001 {
		return Invalid("litros", "quantidade de litros deve ser maior que zero")
	}
	if f.TotalCost < 0.01 {
		return Invalid("valor_total", "valor total deve ser maior que zero")
	}
	if len(f.Station) > 100 {
		return Invalid("posto", "nome do posto deve ter no máximo 100 caracteres")
	}
	return nil
}
