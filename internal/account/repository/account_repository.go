package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/account/model"
	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	db "github.com/growclear66-coder/EAARNbIT/internal/database"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
)

//go:embed queries/insert_account.sql
var insertAccount string

//go:embed queries/select_account_by_login.sql
var selectAccountByLogin string

//go:embed queries/select_account_by_id.sql
var selectAccountByID string

//go:embed queries/select_all_accounts.sql
var selectAllAccounts string

//go:embed queries/update_account.sql
var updateAccount string

type PostgresAccountRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresAccountRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresAccountRepository) Insert(ctx context.Context, account model.Account) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertAccount,
		account.ID, account.UserLogin, account.Balance, account.TotalEarned, account.Coins,
		account.SessionTaps, account.CooldownUntil, account.IsBlocked, account.CreatedAt)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return apperrors.ErrLoginAlreadyExists
	}

	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresAccountRepository) SelectByLogin(ctx context.Context, userLogin string) (*model.Account, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return r.selectOne(ctx, conn, selectAccountByLogin, userLogin)
}

func (r *PostgresAccountRepository) SelectByID(ctx context.Context, accountID string) (*model.Account, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)
	return r.selectOne(ctx, conn, selectAccountByID, accountID)
}

func (r *PostgresAccountRepository) SelectAll(ctx context.Context) ([]model.Account, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectAllAccounts)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	accounts, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Account])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return accounts, nil
}

// Update performs the conditional versioned write: the row is written only if
// its version still matches the one the caller read. Zero affected rows means
// a concurrent writer won and the caller must re-read and retry.
func (r *PostgresAccountRepository) Update(ctx context.Context, account model.Account) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, updateAccount,
		account.ID, account.Version, account.Balance, account.TotalEarned, account.Coins,
		account.SessionTaps, account.CooldownUntil, account.IsBlocked)

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.CheckViolation {
		return apperrors.ErrInsufficientFunds
	}

	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrVersionConflict
	}

	return nil
}

func (r *PostgresAccountRepository) selectOne(ctx context.Context, conn trmpgx.Tr, query string, arg any) (*model.Account, error) {
	var account model.Account
	err := conn.QueryRow(ctx, query, arg).
		Scan(&account.ID, &account.UserLogin, &account.Balance, &account.TotalEarned, &account.Coins,
			&account.SessionTaps, &account.CooldownUntil, &account.IsBlocked, &account.Version, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrAccountNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &account, nil
}
