package services

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/models"
)

// EventKind names a custody domain event.
type EventKind string

const (
	EventCustodyCreated      EventKind = "custody_created"
	EventAcceptanceConfirmed EventKind = "acceptance_confirmed"
	EventItemReturned        EventKind = "item_returned"
	EventCustodyReturned     EventKind = "custody_returned"
	EventDamageReported      EventKind = "damage_reported"
)

// Event carries the rows a handler needs. Custody is always set.
type Event struct {
	Kind        EventKind
	Custody     *models.Custody
	Item        *models.CustodyItem
	Acceptance  *models.CustodyAcceptance
	ActorID     uint
	CommanderID uint
}

// HubHandler reacts to an event inside the caller's transaction.
type HubHandler func(tx *gorm.DB, ev Event, out *Outbox) error

type externalAlert struct {
	category, title, message string
}

// Outbox collects side effects that must only happen after commit.
type Outbox struct {
	Notifications []models.Notification
	alerts        []externalAlert
}

// Alert queues an external provider alert.
func (o *Outbox) Alert(category, title, message string) {
	o.alerts = append(o.alerts, externalAlert{category, title, message})
}

// NotificationHub dispatches custody events to the registered handlers.
type NotificationHub struct {
	notifications *NotificationService
	mu            sync.RWMutex
	handlers      map[EventKind][]HubHandler
}

// NewNotificationHub returns a hub with the default custody handlers registered.
func NewNotificationHub(notifications *NotificationService) *NotificationHub {
	h := &NotificationHub{notifications: notifications, handlers: make(map[EventKind][]HubHandler)}
	h.Subscribe(EventCustodyCreated, h.onCustodyCreated)
	h.Subscribe(EventAcceptanceConfirmed, h.onAcceptanceConfirmed)
	h.Subscribe(EventItemReturned, h.onItemReturned)
	h.Subscribe(EventCustodyReturned, h.onCustodyReturned)
	h.Subscribe(EventDamageReported, h.onDamageReported)
	return h
}

// Subscribe appends fn to the handlers run for kind, in registration order.
func (h *NotificationHub) Subscribe(kind EventKind, fn HubHandler) {
	h.mu.Lock()
	h.handlers[kind] = append(h.handlers[kind], fn)
	h.mu.Unlock()
}

// Dispatch runs every handler of ev.Kind on tx. The first error aborts.
func (h *NotificationHub) Dispatch(tx *gorm.DB, ev Event, out *Outbox) error {
	if ev.Custody == nil {
		return fmt.Errorf("dispatch %s: missing custody", ev.Kind)
	}
	h.mu.RLock()
	handlers := append([]HubHandler(nil), h.handlers[ev.Kind]...)
	h.mu.RUnlock()

	for _, fn := range handlers {
		if err := fn(tx, ev, out); err != nil {
			return fmt.Errorf("dispatch %s: %w", ev.Kind, err)
		}
	}
	return nil
}

// Flush pushes the collected notifications and sends external alerts.
func (h *NotificationHub) Flush(out *Outbox) {
	h.notifications.Publish(out.Notifications)
	for _, a := range out.alerts {
		h.notifications.SendExternal(a.category, a.title, a.message)
	}
	out.Notifications, out.alerts = nil, nil
}

func (h *NotificationHub) create(tx *gorm.DB, out *Outbox, n models.Notification) error {
	if err := h.notifications.Create(tx, &n); err != nil {
		return err
	}
	out.Notifications = append(out.Notifications, n)
	return nil
}

func custodyLink(c *models.Custody) string { return fmt.Sprintf("/cautelas/detalhe/%s/", c.ID) }

func itemLink(i *models.CustodyItem) string { return fmt.Sprintf("/cautelas/item/%s/", i.ID) }

func (h *NotificationHub) onCustodyCreated(tx *gorm.DB, ev Event, out *Outbox) error {
	c := ev.Custody
	return h.create(tx, out, models.Notification{
		UserID:     c.OfficerID,
		Type:       models.NotificationCustodyPending,
		Title:      "Nova cautela pendente",
		Message:    fmt.Sprintf("Você possui uma nova cautela pendente de aceite (Protocolo: %s).", c.AcceptanceProtocol),
		Link:       custodyLink(c),
		ObjectType: models.ObjectCustody,
		ObjectID:   c.ID,
	})
}

func (h *NotificationHub) onAcceptanceConfirmed(tx *gorm.DB, ev Event, _ *Outbox) error {
	if ev.Acceptance == nil || ev.Acceptance.AcceptedAt == nil {
		return fmt.Errorf("acceptance without timestamp")
	}
	_, err := h.notifications.MarkRelatedAsRead(tx, ev.Custody.OfficerID, models.NotificationCustodyPending,
		models.ObjectCustody, ev.Custody.ID, *ev.Acceptance.AcceptedAt)
	return err
}

func (h *NotificationHub) onItemReturned(tx *gorm.DB, ev Event, out *Outbox) error {
	item := ev.Item
	if item == nil || item.ReturnedAt == nil {
		return fmt.Errorf("item without return timestamp")
	}
	at := *item.ReturnedAt
	if err := h.create(tx, out, models.Notification{
		UserID:     ev.Custody.OfficerID,
		Type:       models.NotificationReturnConfirmed,
		Title:      "Item devolvido",
		Message:    fmt.Sprintf("O item %s foi registrado como devolvido.", item.DisplayLabel()),
		Link:       itemLink(item),
		ObjectType: models.ObjectItem,
		ObjectID:   item.ID,
		Read:       true,
		ReadAt:     &at,
	}); err != nil {
		return err
	}
	if item.EquipmentStatus.IsDamaged() {
		return h.notifyDamage(tx, ev, out)
	}
	return nil
}

func (h *NotificationHub) onCustodyReturned(tx *gorm.DB, ev Event, out *Outbox) error {
	c := ev.Custody
	if c.ReturnedAt == nil {
		return fmt.Errorf("custody without return timestamp")
	}
	at := *c.ReturnedAt
	if err := h.create(tx, out, models.Notification{
		UserID:     c.OfficerID,
		Type:       models.NotificationReturnConfirmed,
		Title:      "Cautela devolvida",
		Message:    fmt.Sprintf("Todos os itens da cautela (Protocolo: %s) foram devolvidos.", c.AcceptanceProtocol),
		Link:       custodyLink(c),
		ObjectType: models.ObjectCustody,
		ObjectID:   c.ID,
		Read:       true,
		ReadAt:     &at,
	}); err != nil {
		return err
	}
	// The last item of a custody may itself come back damaged.
	if ev.Item != nil && ev.Item.EquipmentStatus.IsDamaged() {
		return h.notifyDamage(tx, ev, out)
	}
	return nil
}

func (h *NotificationHub) onDamageReported(tx *gorm.DB, ev Event, out *Outbox) error {
	if ev.Item == nil {
		return fmt.Errorf("damage report without item")
	}
	return h.notifyDamage(tx, ev, out)
}

// notifyDamage notifies the officer and the team commander about a damaged
// item and queues an external alert. On return events the officer's copy is
// already read when the officer registered the return.
func (h *NotificationHub) notifyDamage(tx *gorm.DB, ev Event, out *Outbox) error {
	item, c := ev.Item, ev.Custody
	base := models.Notification{
		Type:       models.NotificationEquipmentDamaged,
		Title:      "Equipamento com danos",
		Message:    fmt.Sprintf("O equipamento %s foi registrado com danos/problemas.", item.DisplayLabel()),
		Link:       itemLink(item),
		ObjectType: models.ObjectItem,
		ObjectID:   item.ID,
	}

	officer := base
	officer.UserID = c.OfficerID
	if ev.Kind != EventDamageReported && ev.ActorID == c.OfficerID && item.ReturnedAt != nil {
		at := *item.ReturnedAt
		officer.Read, officer.ReadAt = true, &at
	}
	if err := h.create(tx, out, officer); err != nil {
		return err
	}

	if ev.CommanderID != 0 && ev.CommanderID != c.OfficerID {
		commander := base
		commander.UserID = ev.CommanderID
		if err := h.create(tx, out, commander); err != nil {
			return err
		}
	}

	detail := item.EquipmentStatus
	msg := fmt.Sprintf("%s (Protocolo: %s) registrado como %s.", item.DisplayLabel(), c.AcceptanceProtocol, detail)
	if item.DamageDescription != "" {
		msg += " " + item.DamageDescription
	}
	out.Alert(AlertDamage, "Equipamento com danos", msg)
	return nil
}
