package main

import (
	"context"
	"database/sql"
	"fmt"

	sesmail "pet-clinic/internal/adapters/mail/ses"
	pg "pet-clinic/internal/adapters/storage/postgres"
	"pet-clinic/internal/domain/notifications"
	"pet-clinic/internal/router"
)

// openDB abre Postgres y asegura el schema. DSN vacío => nil (in-memory).
func openDB(ctx context.Context) (*sql.DB, error) {
	if cfg.DB.DSN == "" {
		return nil, nil
	}
	db, err := pg.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	if err := pg.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// newMailer devuelve nil si el espejo por email está apagado.
func newMailer(ctx context.Context) (notifications.Mailer, error) {
	if !cfg.Notifications.Email.Enabled {
		return nil, nil
	}
	m, err := sesmail.New(ctx, sesmail.Config{
		Region:    cfg.Notifications.Email.Region,
		FromEmail: cfg.Notifications.Email.FromEmail,
	}, log.With(map[string]any{"module": "mail"}))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// maintenanceServices arma los servicios para los comandos que no levantan HTTP.
// Sin Postgres no tienen sentido: los datos en memoria mueren con el proceso.
func maintenanceServices(ctx context.Context, withMail bool) (*router.Services, func(), error) {
	db, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	if db == nil {
		return nil, nil, fmt.Errorf("db.dsn is required for this command")
	}

	var mailer notifications.Mailer
	if withMail {
		if mailer, err = newMailer(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
	}

	svcs := router.BuildServices(cfg, log, db, nil, mailer)
	return svcs, func() { _ = db.Close() }, nil
}
