package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcceptanceStatus tracks the officer's confirmation of a custody.
type AcceptanceStatus string

const (
	AcceptancePending     AcceptanceStatus = "pendente"
	AcceptanceConfirmed   AcceptanceStatus = "confirmado"
	AcceptanceRejected    AcceptanceStatus = "rejeitado"
	AcceptanceInvalidated AcceptanceStatus = "invalidado"
)

// EquipmentType is the kind of item handed over in a custody.
type EquipmentType string

const (
	EquipmentPistol     EquipmentType = "pistola"
	EquipmentRifle      EquipmentType = "fuzil"
	EquipmentCarbine    EquipmentType = "carabina"
	EquipmentAmmo       EquipmentType = "municao"
	EquipmentTablet     EquipmentType = "tablet"
	EquipmentRadio      EquipmentType = "radio"
	EquipmentOther      EquipmentType = "outros"
	EquipmentVest       EquipmentType = "colete_reflexivo"
	EquipmentHelmet     EquipmentType = "capacete"
	EquipmentExpandable EquipmentType = "expagidor"
)

var equipmentLabels = map[EquipmentType]string{
	EquipmentPistol:     "Pistola",
	EquipmentRifle:      "Fuzil",
	EquipmentCarbine:    "Carabina",
	EquipmentAmmo:       "Munição",
	EquipmentTablet:     "Tablet",
	EquipmentRadio:      "Rádio",
	EquipmentOther:      "Outros",
	EquipmentVest:       "Colete Reflexivo",
	EquipmentHelmet:     "Capacete",
	EquipmentExpandable: "Expagidor",
}

func (t EquipmentType) Valid() bool { _, ok := equipmentLabels[t]; return ok }

func (t EquipmentType) Label() string {
	if l, ok := equipmentLabels[t]; ok {
		return l
	}
	return string(t)
}

// IsWeapon is true for types that must carry a serial number.
func (t EquipmentType) IsWeapon() bool {
	return t == EquipmentPistol || t == EquipmentRifle || t == EquipmentCarbine
}

// EquipmentStatus is the condition an item came back in.
type EquipmentStatus string

const (
	StatusGood       EquipmentStatus = "em_condicoes"
	StatusDamaged    EquipmentStatus = "danificado"
	StatusInoperable EquipmentStatus = "inoperante"
	StatusLost       EquipmentStatus = "extraviado"
)

func (s EquipmentStatus) Valid() bool {
	switch s {
	case StatusGood, StatusDamaged, StatusInoperable, StatusLost:
		return true
	}
	return false
}

// IsDamaged is true for any status other than em_condicoes.
func (s EquipmentStatus) IsDamaged() bool { return s != "" && s != StatusGood }

// NeedsDescription is true for statuses that require a damage description.
func (s EquipmentStatus) NeedsDescription() bool {
	return s == StatusDamaged || s == StatusInoperable
}

// Custody (cautela) is an equipment loan to an officer of a team.
type Custody struct {
	ID                 string           `json:"id" gorm:"primaryKey;size:36"`
	OfficerID          uint             `json:"officer_id" gorm:"index"`
	Officer            *User            `json:"officer,omitempty"`
	TeamID             uint             `json:"team_id" gorm:"index"`
	Team               *Team            `json:"team,omitempty"`
	DeliveredAt        time.Time        `json:"delivered_at"`
	ReturnedAt         *time.Time       `json:"returned_at,omitempty" gorm:"index"`
	ReturnNotes        string           `json:"return_notes,omitempty" gorm:"type:text"`
	AcceptanceStatus   AcceptanceStatus `json:"acceptance_status" gorm:"size:15;index"`
	AcceptanceProtocol string           `json:"acceptance_protocol" gorm:"size:50"`
	AcceptedAt         *time.Time       `json:"accepted_at,omitempty"`
	Items              []CustodyItem    `json:"items,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func (c *Custody) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.AcceptanceStatus == "" {
		c.AcceptanceStatus = AcceptancePending
	}
	return nil
}

// IsReturned reports whether the custody has been closed.
func (c *Custody) IsReturned() bool { return c.ReturnedAt != nil }

// ShortID is the first segment of the custody id, used in bulk protocols.
func (c *Custody) ShortID() string { return strings.SplitN(c.ID, "-", 2)[0] }

// CustodyItem is one piece of equipment inside a custody.
type CustodyItem struct {
	ID                string          `json:"id" gorm:"primaryKey;size:36"`
	CustodyID         string          `json:"custody_id" gorm:"size:36;index"`
	Custody           *Custody        `json:"custody,omitempty"`
	EquipmentType     EquipmentType   `json:"tipo_equipamento" gorm:"size:20"`
	SerialNumber      string          `json:"numero_serie,omitempty" gorm:"size:50"`
	Quantity          uint            `json:"quantidade"`
	ReturnedAt        *time.Time      `json:"returned_at,omitempty"`
	EquipmentStatus   EquipmentStatus `json:"status_equipamento,omitempty" gorm:"size:15"`
	DamageDescription string          `json:"descricao_danos,omitempty" gorm:"type:text"`
	ReturnConfirmed   bool            `json:"devolucao_confirmada"`
	ReturnProtocol    string          `json:"protocolo_devolucao,omitempty" gorm:"size:50"`
	Notes             string          `json:"observacoes,omitempty" gorm:"type:text"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (i *CustodyItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	if i.Quantity == 0 {
		i.Quantity = 1
	}
	return nil
}

// IsReturned reports whether the item is back.
func (i *CustodyItem) IsReturned() bool { return i.ReturnedAt != nil }

// DisplayLabel is the type label plus serial number when present.
func (i *CustodyItem) DisplayLabel() string {
	if i.SerialNumber == "" {
		return i.EquipmentType.Label()
	}
	return i.EquipmentType.Label() + " - " + i.SerialNumber
}

// Validate checks an item before it is attached to a custody.
func (i *CustodyItem) Validate() error {
	if !i.EquipmentType.Valid() {
		return Invalid("tipo_equipamento", "tipo de equipamento inválido")
	}
	if i.EquipmentType.IsWeapon() && strings.TrimSpace(i.SerialNumber) == "" {
		return Invalid("numero_serie", "número de série é obrigatório para armas")
	}
	return nil
}

// CustodyAcceptance is the officer's acknowledgement of a custody.
type CustodyAcceptance struct {
	ID         string           `json:"id" gorm:"primaryKey;size:36"`
	CustodyID  string           `json:"custody_id" gorm:"size:36;index"`
	Custody    *Custody         `json:"custody,omitempty"`
	Protocol   string           `json:"protocolo" gorm:"uniqueIndex;size:50"`
	Status     AcceptanceStatus `json:"status" gorm:"size:15;index"`
	AcceptedAt *time.Time       `json:"data_aceite,omitempty"`
	IPAddress  string           `json:"ip_aceite,omitempty" gorm:"size:45"`
	Notes      string           `json:"observacao,omitempty" gorm:"type:text"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (a *CustodyAcceptance) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = AcceptancePending
	}
	return nil
}
