package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/gorm"

	"github.com/arcanosig/arcano/backend/internal/config"
	"github.com/arcanosig/arcano/backend/internal/database"
	"github.com/arcanosig/arcano/backend/internal/models"
	"github.com/arcanosig/arcano/backend/internal/services"
)

const seedPassword = "arcano-dev1"

// seedUsers are active, approved accounts for local development.
var seedUsers = []models.User{
	{Email: "admin@arcano.local", Name: "Administrador", CPF: "11144477735", Patent: "CAP", IsAdmin: true, IsSac: true, SacProfile: models.SacProfileFocal},
	{Email: "operacoes@arcano.local", Name: "Chefe de Operações", CPF: "52998224725", Patent: "1TEN", IsOperations: true},
	{Email: "comandante@arcano.local", Name: "Comandante de Equipe", CPF: "39053344705", Patent: "2SGT"},
	{Email: "soldado@arcano.local", Name: "Soldado Patrulheiro", CPF: "86288366757", Patent: "SD"},
	{Email: "sac@arcano.local", Name: "Analista SAC", CPF: "71428793860", Patent: "3SGT", IsSac: true, SacProfile: models.SacProfileAnalyst},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	fmt.Println("✓ Database migrated successfully")

	if err := seed(context.Background(), db); err != nil {
		log.Fatalf("seed: %v", err)
	}
	fmt.Printf("✓ Seed complete. Every account uses the password %q\n", seedPassword)
	os.Exit(0)
}

func seed(ctx context.Context, db *gorm.DB) error {
	users := make(map[string]*models.User, len(seedUsers))
	for i := range seedUsers {
		u := seedUsers[i]
		var existing models.User
		if err := db.Where("email = ?", u.Email).First(&existing).Error; err == nil {
			fmt.Printf("  user %s already exists\n", u.Email)
			users[u.Email] = &existing
			continue
		}
		u.IsActive, u.IsApproved = true, true
		if err := u.SetPassword(seedPassword); err != nil {
			return err
		}
		if err := db.Create(&u).Error; err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
		fmt.Printf("✓ Created user %s\n", u.Email)
		users[u.Email] = &u
	}

	var count int64
	if err := db.Model(&models.Operation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		fmt.Println("  operations already seeded")
		return nil
	}

	today := time.Now()
	op, err := services.NewOperationService(db).Create(ctx, services.OperationInput{
		Name:        "Operação Carnaval",
		Description: "Policiamento ostensivo no circuito central",
		StartDate:   today.Format("2006-01-02"),
		EndDate:     today.AddDate(0, 0, 10).Format("2006-01-02"),
	})
	if err != nil {
		return fmt.Errorf("create operation: %w", err)
	}
	fmt.Printf("✓ Created operation %s\n", op.Name)

	vehicle := &models.Vehicle{Plate: "QRS1A23", Model: "hilux", Operational: true, Odometer: 42000}
	if err := services.NewVehicleService(db, nil).Create(ctx, vehicle); err != nil {
		return fmt.Errorf("create vehicle: %w", err)
	}

	commander := users["comandante@arcano.local"]
	soldier := users["soldado@arcano.local"]
	team, err := services.NewTeamService(db).Create(ctx, services.TeamInput{
		Name:        "Alfa",
		OperationID: op.ID,
		CommanderID: commander.ID,
		VehicleID:   &vehicle.ID,
		MemberIDs:   []uint{soldier.ID},
	})
	if err != nil {
		return fmt.Errorf("create team: %w", err)
	}
	fmt.Printf("✓ Created team %s\n", team.Name)

	hub := services.NewNotificationHub(services.NewNotificationService(db, services.NewRealtimeHub()))
	custody, err := services.NewCustodyService(db, hub).Create(ctx, users["operacoes@arcano.local"], services.CustodyInput{
		OfficerID: soldier.ID,
		TeamID:    team.ID,
		Items: []services.ItemInput{
			{EquipmentType: models.EquipmentPistol, SerialNumber: "SZ12345", Quantity: 1},
			{EquipmentType: models.EquipmentAmmo, Quantity: 30},
			{EquipmentType: models.EquipmentRadio, SerialNumber: "RD-0091", Quantity: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("create custody: %w", err)
	}
	fmt.Printf("✓ Created custody %s\n", custody.ID)
	return nil
}
