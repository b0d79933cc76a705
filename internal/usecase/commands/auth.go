package commands

import (
	"context"

	"banana-farm-api/internal/domain/user"
	"banana-farm-api/internal/infra"
	"banana-farm-api/internal/pkg/errs"
	"banana-farm-api/internal/pkg/jwt"
	"banana-farm-api/internal/pkg/password"
	"banana-farm-api/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken           = errs.New("email is already registered")
	ErrInvalidCredentials   = errs.New("invalid email or password")
	ErrUserInactive         = errs.New("user account is inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type SignUpParams struct {
	Email    string
	Password string
	FullName string
	Phone    *string
}

type LoginResult struct {
	AccessToken string
	User        *queries.AuthorizedUserView
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	// FindByEmail returns the user view together with the stored password hash.
	FindByEmail(ctx context.Context, email user.Email) (*queries.AuthorizedUserView, string, error)
}

type AuthCommands interface {
	SignUp(ctx context.Context, params SignUpParams) (*LoginResult, error)
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) SignUp(ctx context.Context, params SignUpParams) (*LoginResult, error) {
	credentials, err := user.NewCredentials(params.Email, params.Password)
	if err != nil {
		return nil, err
	}
	fullName, err := user.NewFullName(params.FullName)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	// Every account starts as a new farmer; owner and admin roles are
	// granted out of band.
	newUser := user.NewUser(credentials.Email(), hash, fullName, params.Phone, user.RoleNewFarmer)
	if err := a.userRepo.Create(ctx, newUser); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return a.issueToken(newUser.ID(), newUser.Role(), &queries.AuthorizedUserView{
		ID:       newUser.ID(),
		Email:    newUser.Email().String(),
		FullName: newUser.FullName().String(),
		Phone:    newUser.Phone(),
		Role:     newUser.Role().String(),
		IsActive: true,
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	view, hash, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	return a.issueToken(view.ID, role, view)
}

func (a *authCommandsImpl) issueToken(userID uuid.UUID, role user.Role, view *queries.AuthorizedUserView) (*LoginResult, error) {
	token, err := a.jwtService.GenerateToken(userID, role)
	if err != nil {
		return nil, ErrTokenGeneration
	}
	return &LoginResult{AccessToken: token, User: view}, nil
}
