package services

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/logger"
	"github.com/arcanosig/arcano/backend/internal/models"
)

type actorKey struct{}

// WithActor attaches the acting user id to ctx. Pass the result to db.WithContext
// so history rows written by the audit callbacks carry the actor.
func WithActor(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFrom returns the acting user id stored in ctx, if any.
func ActorFrom(ctx context.Context) (uint, bool) {
	if ctx == nil {
		return 0, false
	}
	id, ok := ctx.Value(actorKey{}).(uint)
	return id, ok && id != 0
}

var auditedTables = map[string]bool{
	"users":               true,
	"reports":             true,
	"operations":          true,
	"teams":               true,
	"team_members":        true,
	"custodies":           true,
	"custody_items":       true,
	"custody_acceptances": true,
	"vehicles":            true,
	"vehicle_photos":      true,
	"fuel_logs":           true,
}

// AuditService captures a HistoryRecord for every mutation of an audited table.
type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Register installs the create/update/delete callbacks on the service's DB.
func (s *AuditService) Register() error {
	cb := s.db.Callback()
	if err := cb.Create().After("gorm:create").Register("arcano:history_create", capture(models.HistoryCreate)); err != nil {
		return fmt.Errorf("register create callback: %w", err)
	}
	if err := cb.Update().After("gorm:update").Register("arcano:history_update", capture(models.HistoryUpdate)); err != nil {
		return fmt.Errorf("register update callback: %w", err)
	}
	if err := cb.Delete().After("gorm:delete").Register("arcano:history_delete", capture(models.HistoryDelete)); err != nil {
		return fmt.Errorf("register delete callback: %w", err)
	}
	return nil
}

// List returns history rows, newest first. Empty filters match everything.
func (s *AuditService) List(table, recordID string, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	q := s.db.Order("created_at desc, id desc").Limit(limit)
	if table != "" {
		q = q.Where("table_name = ?", table)
	}
	if recordID != "" {
		q = q.Where("record_id = ?", recordID)
	}
	var out []models.HistoryRecord
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func capture(action models.HistoryAction) func(*gorm.DB) {
	return func(tx *gorm.DB) {
		stmt := tx.Statement
		if tx.Error != nil || stmt.Schema == nil || tx.RowsAffected == 0 {
			return
		}
		if !auditedTables[stmt.Schema.Table] {
			return
		}

		rv := reflect.Indirect(stmt.ReflectValue)
		var rows []reflect.Value
		switch rv.Kind() {
		case reflect.Struct:
			rows = append(rows, rv)
		case reflect.Slice, reflect.Array:
			for i := 0; i < rv.Len(); i++ {
				rows = append(rows, reflect.Indirect(rv.Index(i)))
			}
		default:
			return
		}

		var actor *uint
		if id, ok := ActorFrom(stmt.Context); ok {
			actor = &id
		}

		session := tx.Session(&gorm.Session{NewDB: true, SkipHooks: true})
		for _, row := range rows {
			recordID := ""
			if pk := stmt.Schema.PrioritizedPrimaryField; pk != nil {
				if v, zero := pk.ValueOf(stmt.Context, row); !zero {
					recordID = fmt.Sprint(v)
				}
			}
			if recordID == "" {
				continue
			}
			snapshot, err := json.Marshal(row.Interface())
			if err != nil {
				logger.Log().WithError(err).WithField("table", stmt.Schema.Table).Warn("history snapshot failed")
				continue
			}
			rec := models.HistoryRecord{
				Table:    stmt.Schema.Table,
				RecordID: recordID,
				Action:   action,
				ActorID:  actor,
				Snapshot: datatypes.JSON(snapshot),
			}
			if err := session.Create(&rec).Error; err != nil {
				_ = tx.AddError(fmt.Errorf("write history: %w", err))
				return
			}
		}
	}
}
