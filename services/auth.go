package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dcode-github/estate-envision/models"
	"github.com/dcode-github/estate-envision/storage"
	"github.com/dcode-github/estate-envision/utils"
	"go.uber.org/zap"
)

const minPasswordLength = 6

var errInvalidCredentials = &Error{Kind: KindUnauthenticated, Message: "Invalid email or password."}

// LoginThrottle limits failed logins per email. A nil Counter disables it.
type LoginThrottle struct {
	Counter     AttemptCounter
	MaxAttempts int
	Window      time.Duration
}

type AuthService struct {
	users    UserRepository
	tokens   *utils.TokenService
	throttle LoginThrottle
	logger   *zap.Logger
}

func NewAuthService(users UserRepository, tokens *utils.TokenService, throttle LoginThrottle, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	switch {
	case name == "":
		return models.User{}, validation("Name is required.")
	case !utils.IsValidEmail(email):
		return models.User{}, validation("Please enter a valid email address.")
	case len(req.Password) < minPasswordLength:
		return models.User{}, validation("Password must be at least 6 characters long.")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("error checking existing user", zap.String("email", email), zap.Error(err))
		return models.User{}, internal("Registration failed. Please try again.", err)
	}
	if existing != nil {
		return models.User{}, conflict("An account with this email already exists.")
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("error hashing password", zap.Error(err))
		return models.User{}, internal("Registration failed. Please try again.", err)
	}

	now := time.Now().UTC()
	doc := &models.UserDocument{
		Email:          email,
		Name:           name,
		HashedPassword: hashed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.users.Insert(ctx, doc); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return models.User{}, conflict("An account with this email already exists.")
		}
		s.logger.Error("error inserting user", zap.String("email", email), zap.Error(err))
		return models.User{}, internal("Registration failed. Please try again.", err)
	}

	s.logger.Info("user registered", zap.String("userId", doc.ID.Hex()))
	return doc.ToUser(), nil
}

// Login checks the credentials and issues an access token. Unknown emails and
// wrong passwords fail with the same message. Emails are matched as stored;
// the throttle counts all spellings of an address together.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return models.LoginResponse{}, validation("Email and password are required.")
	}
	throttleKey := utils.NormalizeEmail(email)

	if s.locked(ctx, throttleKey) {
		return models.LoginResponse{}, &Error{
			Kind:    KindRateLimited,
			Message: "Too many failed login attempts. Please try again later.",
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("error finding user", zap.String("email", email), zap.Error(err))
		return models.LoginResponse{}, internal("Login failed. Please try again.", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.HashedPassword) {
		s.recordFailure(ctx, throttleKey)
		return models.LoginResponse{}, errInvalidCredentials
	}

	token, err := s.tokens.Issue(utils.Identity{UserID: user.ID.Hex(), Email: user.Email})
	if err != nil {
		s.logger.Error("error issuing token", zap.Error(err))
		return models.LoginResponse{}, internal("Login failed. Please try again.", err)
	}

	s.resetFailures(ctx, throttleKey)
	return models.LoginResponse{Token: token, User: user.ToUser()}, nil
}

// CurrentUser resolves the identity to a stored user. A nil identity or a
// user that no longer exists yields nil without error.
func (s *AuthService) CurrentUser(ctx context.Context, identity *utils.Identity) (*models.User, error) {
	if identity == nil {
		return nil, nil
	}
	doc, err := s.users.FindByID(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("error finding user", zap.String("userId", identity.UserID), zap.Error(err))
		return nil, internal("Failed to load user.", err)
	}
	if doc == nil {
		return nil, nil
	}
	user := doc.ToUser()
	return &user, nil
}

func (s *AuthService) Profile(ctx context.Context, identity *utils.Identity) (models.User, error) {
	if identity == nil {
		return models.User{}, ErrNotAuthenticated
	}
	user, err := s.CurrentUser(ctx, identity)
	if err != nil {
		return models.User{}, err
	}
	if user == nil {
		return models.User{}, notFound("User not found.")
	}
	return *user, nil
}

// Throttle lookups fail open: a redis outage must not block logins.
func (s *AuthService) locked(ctx context.Context, email string) bool {
	if s.throttle.Counter == nil || s.throttle.MaxAttempts <= 0 {
		return false
	}
	n, err := s.throttle.Counter.Failures(ctx, email)
	if err != nil {
		s.logger.Warn("error reading login attempts", zap.Error(err))
		return false
	}
	return n >= int64(s.throttle.MaxAttempts)
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle.Counter == nil {
		return
	}
	n, err := s.throttle.Counter.RecordFailure(ctx, email, s.throttle.Window)
	if err != nil {
		s.logger.Warn("error recording login attempt", zap.Error(err))
		return
	}
	if n == int64(s.throttle.MaxAttempts) {
		s.logger.Warn("login locked", zap.String("email", email), zap.Duration("window", s.throttle.Window))
	}
}

func (s *AuthService) resetFailures(ctx context.Context, email string) {
	if s.throttle.Counter == nil {
		return
	}
	if err := s.throttle.Counter.Reset(ctx, email); err != nil {
		s.logger.Warn("error resetting login attempts", zap.Error(err))
	}
}
