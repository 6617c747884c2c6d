// Package ses manda el espejo por email de las notificaciones vía AWS SES.
package ses

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-clinic/internal/platform/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

// sendAPI es el subconjunto de *ses.Client que usamos (permite fakes en tests).
type sendAPI interface {
	SendEmail(ctx context.Context, in *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Config struct {
	Region    string
	FromEmail string
}

type Mailer struct {
	client sendAPI
	from   string
	log    logger.Logger
}

// New carga credenciales con la cadena por defecto de AWS (env, perfil, rol).
func New(ctx context.Context, cfg Config, log logger.Logger) (*Mailer, error) {
	if strings.TrimSpace(cfg.FromEmail) == "" {
		return nil, errors.New("ses: from email is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return newMailer(ses.NewFromConfig(awsCfg), cfg.FromEmail, log), nil
}

func newMailer(client sendAPI, from string, log logger.Logger) *Mailer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Mailer{client: client, from: from, log: log}
}

// Send implementa notifications.Mailer.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return errors.New("ses: missing recipient")
	}

	out, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body), Charset: aws.String(charset)},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("ses send: %w", err)
	}

	m.log.Debug("email sent", map[string]any{
		"to":         to,
		"message_id": aws.ToString(out.MessageId),
	})
	return nil
}
