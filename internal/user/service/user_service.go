package service

import (
	"context"
	"fmt"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	accountmodel "github.com/growclear66-coder/EAARNbIT/internal/account/model"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	"github.com/growclear66-coder/EAARNbIT/internal/user/handler/dto"
	"github.com/growclear66-coder/EAARNbIT/internal/user/model"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

type UserRepository interface {
	Insert(ctx context.Context, u model.User) error
	SelectByLogin(ctx context.Context, login string) (*model.User, error)
}

type AccountRepository interface {
	Insert(ctx context.Context, account accountmodel.Account) error
}

type TransactionManager interface {
	DoWithSettings(ctx context.Context, s trm.Settings, fn func(ctx context.Context) error) error
}

type UserUseCase struct {
	repository UserRepository
	accounts   AccountRepository
	trManager  TransactionManager
	trSettings trm.Settings
	logger     *zap.Logger
}

func NewUserService(
	repository UserRepository,
	accounts AccountRepository,
	trManager TransactionManager,
	trSettings trm.Settings,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		repository: repository,
		accounts:   accounts,
		trManager:  trManager,
		trSettings: trSettings,
		logger:     logger,
	}
}

// Register creates the user together with a zeroed ledger account.
// The account row is provisioned nowhere else.
func (u *UserUseCase) Register(ctx context.Context, request dto.UserRegisterRequest) error {
	passHash, errHash := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if errHash != nil {
		return apperrors.NewValueError("unable to hash password", utils.Caller(), errHash)
	}

	userToSave := model.User{
		ID:       uuid.New().String(),
		Login:    request.Login,
		Password: passHash,
		Role:     model.RoleUser,
	}

	accountToSave := accountmodel.Account{
		ID:          uuid.New().String(),
		UserLogin:   request.Login,
		Balance:     decimal.Zero,
		TotalEarned: decimal.Zero,
		CreatedAt:   time.Now(),
	}

	err := u.trManager.DoWithSettings(ctx, u.trSettings, func(ctx context.Context) error {
		if errInsert := u.repository.Insert(ctx, userToSave); errInsert != nil {
			return errInsert
		}
		return u.accounts.Insert(ctx, accountToSave)
	})
	if err != nil {
		return fmt.Errorf("%s %w", utils.Caller(), err)
	}

	return nil
}

func (u *UserUseCase) Login(ctx context.Context, request dto.UserLoginRequest) (*model.User, error) {
	user, err := u.repository.SelectByLogin(ctx, request.Login)
	if err != nil {
		return nil, fmt.Errorf("%s %w", utils.Caller(), err)
	}

	if errPass := bcrypt.CompareHashAndPassword(user.Password, []byte(request.Password)); errPass != nil {
		return nil, apperrors.ErrInvalidPassword
	}

	return user, nil
}
