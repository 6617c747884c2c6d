package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"pet-clinic/internal/platform/apperr"
	"pet-clinic/internal/platform/logger"
	"pet-clinic/internal/ports/auth"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotFound           = apperr.New(apperr.KindNotFound, "user not found")
	ErrEmailTaken         = apperr.New(apperr.KindConflict, "email already registered")
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthorized, "invalid email or password")
	ErrTokensDisabled     = errors.New("token issuer not configured")
)

const (
	minPasswordLen  = 8
	maxPasswordLen  = 72 // límite de bcrypt, en bytes
	profileCacheTTL = 5 * time.Minute
)

type Service struct {
	repo     Repository
	tokens   auth.TokenIssuer
	log      logger.Logger
	profiles *gocache.Cache
	cost     int
	now      func() time.Time
}

// NewService: tokens puede ser nil (modo dev sin secret); Login devuelve error interno.
func NewService(repo Repository, tokens auth.TokenIssuer, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		log:      log,
		profiles: gocache.New(profileCacheTTL, 2*profileCacheTTL),
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (in RegisterInput) validate() error {
	fe := apperr.FieldErrors{}
	email := normalizeEmail(in.Email)
	if email == "" {
		fe.Add("email", "required")
	} else if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		fe.Add("email", "must be a valid email address")
	}
	if len(in.Password) < minPasswordLen {
		fe.Add("password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	} else if len(in.Password) > maxPasswordLen {
		fe.Add("password", fmt.Sprintf("must be at most %d bytes", maxPasswordLen))
	}
	if strings.TrimSpace(in.FullName) == "" {
		fe.Add("fullName", "required")
	}
	return fe.Err()
}

// Register crea una cuenta owner.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	return s.Provision(ctx, in, auth.RoleOwner)
}

// ProvisionVet crea una cuenta vet (acción de admin).
func (s *Service) ProvisionVet(ctx context.Context, in RegisterInput) (User, error) {
	return s.Provision(ctx, in, auth.RoleVet)
}

// Provision crea una cuenta con los roles dados. La usa también el CLI.
func (s *Service) Provision(ctx context.Context, in RegisterInput, roles ...auth.Role) (User, error) {
	if err := in.validate(); err != nil {
		return User{}, err
	}
	if len(roles) == 0 {
		roles = []auth.Role{auth.RoleOwner}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	u := User{
		ID:           uuid.NewString(),
		Email:        normalizeEmail(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		Roles:        dedupeRoles(roles),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}

	s.log.Info("user provisioned", map[string]any{"user_id": u.ID, "roles": rolesString(u.Roles)})
	return u, nil
}

// Authenticate valida credenciales. Email desconocido y password incorrecto
// devuelven el mismo error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      User
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return LoginResult{}, err
	}
	if s.tokens == nil {
		return LoginResult{}, ErrTokensDisabled
	}
	tok, exp, err := s.tokens.Issue(ctx, u.Claims())
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: tok, ExpiresAt: exp, User: u}, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) ListByRole(ctx context.Context, role auth.Role) ([]User, error) {
	return s.repo.ListByRole(ctx, role)
}

func (s *Service) AssignRole(ctx context.Context, userID string, role auth.Role) (User, error) {
	return s.changeRoles(ctx, userID, func(roles []auth.Role) []auth.Role {
		return dedupeRoles(append(roles, role))
	})
}

func (s *Service) RemoveRole(ctx context.Context, userID string, role auth.Role) (User, error) {
	return s.changeRoles(ctx, userID, func(roles []auth.Role) []auth.Role {
		out := make([]auth.Role, 0, len(roles))
		for _, r := range roles {
			if r != role {
				out = append(out, r)
			}
		}
		return out
	})
}

func (s *Service) changeRoles(ctx context.Context, userID string, apply func([]auth.Role) []auth.Role) (User, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}

	next := apply(append([]auth.Role(nil), u.Roles...))
	if len(next) == 0 {
		return User{}, apperr.Invalid("role", "a user must keep at least one role")
	}

	u.Roles = next
	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}

	s.profiles.Delete(u.ID)
	s.log.Info("user roles changed", map[string]any{"user_id": u.ID, "roles": rolesString(u.Roles)})
	return u, nil
}

// Profile resuelve id -> datos de directorio, con cache corto.
func (s *Service) Profile(ctx context.Context, userID string) (Profile, error) {
	if v, ok := s.profiles.Get(userID); ok {
		return v.(Profile), nil
	}
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p := u.Profile()
	s.profiles.SetDefault(userID, p)
	return p, nil
}

// IDsByRole lo usa notifications para broadcasts por rol.
func (s *Service) IDsByRole(ctx context.Context, role auth.Role) ([]string, error) {
	us, err := s.repo.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out, nil
}

func dedupeRoles(in []auth.Role) []auth.Role {
	seen := make(map[auth.Role]struct{}, len(in))
	out := make([]auth.Role, 0, len(in))
	for _, r := range in {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func rolesString(roles []auth.Role) string {
	parts := make([]string, 0, len(roles))
	for _, r := range roles {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}
