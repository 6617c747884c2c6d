package router

import (
	"database/sql"

	mem "pet-clinic/internal/adapters/storage/memory"
	pg "pet-clinic/internal/adapters/storage/postgres"
	"pet-clinic/internal/config"
	"pet-clinic/internal/domain/appointments"
	"pet-clinic/internal/domain/inventory"
	"pet-clinic/internal/domain/medical"
	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/domain/pets"
	"pet-clinic/internal/domain/users"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"
)

// Services agrupa los servicios de dominio ya cableados. Lo usan el router
// y los comandos de mantenimiento del CLI.
type Services struct {
	Users         *users.Service
	Pets          *pets.Service
	Appointments  *appointments.Service
	Notifications *notifications.Service
	Medical       *medical.Service
	Inventory     *inventory.Service
}

type repos struct {
	users         users.Repository
	pets          pets.Repository
	appointments  appointments.Repository
	notifications notifications.Repository
	medical       medical.Repository
	inventory     inventory.Repository
}

func memoryRepos() repos {
	return repos{
		users:         mem.NewUserRepo(),
		pets:          mem.NewPetRepo(),
		appointments:  mem.NewAppointmentRepo(),
		notifications: mem.NewNotificationRepo(),
		medical:       mem.NewMedicalRepo(),
		inventory:     mem.NewInventoryRepo(),
	}
}

func postgresRepos(db *sql.DB) repos {
	return repos{
		users:         pg.NewUsersRepo(db),
		pets:          pg.NewPetsRepo(db),
		appointments:  pg.NewAppointmentsRepo(db),
		notifications: pg.NewNotificationsRepo(db),
		medical:       pg.NewMedicalRepo(db),
		inventory:     pg.NewInventoryRepo(db),
	}
}

// BuildServices: con db != nil usa Postgres; si no, todo en memoria.
// tokens y mailer pueden ser nil.
func BuildServices(cfg *config.Config, log logger.Logger, db *sql.DB, tokens auth.TokenIssuer, mailer notifications.Mailer) *Services {
	if log == nil {
		log = logger.NewNop()
	}

	rp := memoryRepos()
	if db != nil {
		rp = postgresRepos(db)
	}

	usersSvc := users.NewService(rp.users, tokens, log.With(map[string]any{"module": "users"}))
	petsSvc := pets.NewService(rp.pets)

	notifSvc := notifications.NewService(rp.notifications, log.With(map[string]any{"module": "notifications"}), notifications.Options{
		Location:  cfg.Clinic.Location(),
		Directory: usersSvc,
		Mailer:    mailer,
	})

	return &Services{
		Users: usersSvc,
		Pets:  petsSvc,
		Appointments: appointments.NewService(rp.appointments, petsSvc, usersSvc, notifSvc,
			cfg.Clinic.SlotDuration, log.With(map[string]any{"module": "appointments"})),
		Notifications: notifSvc,
		Medical:       medical.NewService(rp.medical, petsSvc, log.With(map[string]any{"module": "medical"})),
		Inventory:     inventory.NewService(rp.inventory, notifSvc, log.With(map[string]any{"module": "inventory"})),
	}
}
