package usecase

import (
	"context"
	"errors"
	"strings"

	"healthcare-portal/internal/converter"
	"healthcare-portal/internal/delivery/dto"
	"healthcare-portal/internal/domain/entity"
	"healthcare-portal/internal/domain/repository"
	"healthcare-portal/pkg/jwt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidUserType    = errors.New("user type must be patient or doctor")
	ErrMissingSignupField = errors.New("email, password and name are required")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUnauthenticated    = errors.New("user not found in context")
	ErrForbidden          = errors.New("user type not allowed for this action")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenID string) error
	RestoreSession(ctx context.Context, tokenID string) (*dto.UserResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtService  *jwt.JWTService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtService *jwt.JWTService,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u.startSession(ctx, user)
}

func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || req.Password == "" || name == "" {
		return nil, ErrMissingSignupField
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	userType := entity.UserType(req.UserType)
	if userType != entity.UserTypePatient && userType != entity.UserTypeDoctor {
		return nil, ErrInvalidUserType
	}

	existing, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		Name:     name,
		UserType: userType,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyExists
		}
		withRequestID(ctx, u.log).Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	u.log.WithFields(logrus.Fields{"user_id": user.ID, "user_type": user.UserType}).Info("User signed up")

	return u.startSession(ctx, user)
}

// Logout ends the session. A session that is already gone is not an error.
func (u *authUsecase) Logout(ctx context.Context, tokenID string) error {
	if err := u.sessionRepo.Delete(ctx, tokenID); err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to delete session: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) RestoreSession(ctx context.Context, tokenID string) (*dto.UserResponse, error) {
	user, err := u.sessionRepo.FindByTokenID(ctx, tokenID)
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to load session: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) startSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.UserType))
	if err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, tokenID, user, u.jwtService.GetAccessExpiry()); err != nil {
		withRequestID(ctx, u.log).Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
		User:        converter.UserToResponse(user),
	}, nil
}
