package repository

import (
	"context"
	_ "embed"
	"errors"

	trmpgx "github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/growclear66-coder/EAARNbIT/internal/apperrors"
	db "github.com/growclear66-coder/EAARNbIT/internal/database"
	"github.com/growclear66-coder/EAARNbIT/internal/utils"
	"github.com/growclear66-coder/EAARNbIT/internal/withdrawal/model"
)

//go:embed queries/insert_withdrawal.sql
var insertWithdrawal string

//go:embed queries/select_withdrawal_by_id.sql
var selectWithdrawalByID string

//go:embed queries/select_withdrawals_by_login.sql
var selectWithdrawalsByLogin string

//go:embed queries/select_all_withdrawals.sql
var selectAllWithdrawals string

//go:embed queries/update_pending_withdrawal_status.sql
var updatePendingWithdrawalStatus string

type PostgresWithdrawalRepository struct {
	postgresPool *db.PostgresPool
	logger       *zap.Logger
	getter       *trmpgx.CtxGetter
}

func NewPostgresWithdrawalRepository(postgresPool *db.PostgresPool, logger *zap.Logger) *PostgresWithdrawalRepository {
	return &PostgresWithdrawalRepository{
		postgresPool: postgresPool,
		logger:       logger,
		getter:       trmpgx.DefaultCtxGetter,
	}
}

func (r *PostgresWithdrawalRepository) Insert(ctx context.Context, withdrawal model.Withdrawal) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	_, err := conn.Exec(ctx, insertWithdrawal,
		withdrawal.ID, withdrawal.AccountID, withdrawal.AccountLogin, withdrawal.Amount,
		withdrawal.Destination, withdrawal.Status, withdrawal.CreatedAt)
	if err != nil {
		return apperrors.NewValueError("insert failed", utils.Caller(), err)
	}

	return nil
}

func (r *PostgresWithdrawalRepository) SelectByID(ctx context.Context, id string) (*model.Withdrawal, error) {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	var withdrawal model.Withdrawal
	err := conn.QueryRow(ctx, selectWithdrawalByID, id).
		Scan(&withdrawal.ID, &withdrawal.AccountID, &withdrawal.AccountLogin, &withdrawal.Amount,
			&withdrawal.Destination, &withdrawal.Status, &withdrawal.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = apperrors.ErrWithdrawalNotFound
		} else {
			err = apperrors.NewValueError("query failed", utils.Caller(), err)
		}
		return nil, err
	}

	return &withdrawal, nil
}

// UpdatePendingStatus moves a request out of PENDING. The status predicate
// makes the terminal transition race-safe: a request already processed by a
// concurrent operator matches zero rows.
func (r *PostgresWithdrawalRepository) UpdatePendingStatus(ctx context.Context, id string, status model.Status) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.postgresPool.DB)

	tag, err := conn.Exec(ctx, updatePendingWithdrawalStatus, id, status)
	if err != nil {
		return apperrors.NewValueError("update failed", utils.Caller(), err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyProcessed
	}

	return nil
}

func (r *PostgresWithdrawalRepository) SelectByLogin(ctx context.Context, userLogin string) ([]model.Withdrawal, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectWithdrawalsByLogin, userLogin)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	withdrawals, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Withdrawal])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	if len(withdrawals) == 0 {
		return nil, apperrors.ErrNoWithdrawals
	}

	return withdrawals, nil
}

func (r *PostgresWithdrawalRepository) SelectAll(ctx context.Context) ([]model.Withdrawal, error) {
	queryRows, err := r.postgresPool.DB.Query(ctx, selectAllWithdrawals)
	if err != nil {
		return nil, apperrors.NewValueError("query failed", utils.Caller(), err)
	}
	defer queryRows.Close()

	withdrawals, err := pgx.CollectRows(queryRows, pgx.RowToStructByPos[model.Withdrawal])
	if err != nil {
		return nil, apperrors.NewValueError("unable to collect rows", utils.Caller(), err)
	}

	return withdrawals, nil
}
