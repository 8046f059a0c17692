package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"tripplanner/internal/models/db_models"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/internal/repositories"
	"tripplanner/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      *utils.TokenIssuer
	log         *zap.Logger
}

func NewAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenIssuer, log *zap.Logger) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		log:         log.Named("account"),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *AccountService) Register(ctx context.Context, request request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	email := normalizeEmail(request.Email)

	existingAccount, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError(a.log, "find account by email", err)
	}
	if existingAccount != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, storeError(a.log, "hash password", err)
	}

	newAccount := &db_models.Account{
		Name:         request.DisplayName,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	if err := a.accountRepo.Insert(ctx, newAccount); err != nil {
		return nil, storeError(a.log, "insert account", conflictOr(err, utils.ErrEmailAlreadyExists))
	}

	a.log.Info("account registered", zap.String("account_id", newAccount.ID.String()))
	out := db_models.BuildAccountResponse(newAccount)
	return &out, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	account, err := a.accountRepo.FindByEmail(ctx, normalizeEmail(request.Email))
	if err != nil {
		return nil, storeError(a.log, "find account by email", err)
	}

	// unknown email and wrong password look the same to the caller
	if account == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.tokens.CreateToken(account.ID)
	if err != nil {
		return nil, storeError(a.log, "sign token", err)
	}

	return &response_models.LoginResponse{
		Token:   token,
		Account: db_models.BuildAccountResponse(account),
	}, nil
}

func (a *AccountService) Me(ctx context.Context, userID uuid.UUID) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindById(ctx, userID)
	if err != nil {
		return nil, storeError(a.log, "find account", err)
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	out := db_models.BuildAccountResponse(account)
	return &out, nil
}
