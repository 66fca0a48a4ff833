package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const transactionColumns = `id, created_at, nft_id, seller_id, buyer_id, creator_id, price,
	royalties, status`

type TransactionRepository struct {
	db uow.DBTX
}

func NewTransactionRepository(db uow.DBTX) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create добавляет запись в журнал сделок. Журнал append-only: записи никогда
// не изменяются и не удаляются.
func (t *TransactionRepository) Create(
	ctx context.Context,
	args repoargs.CreateTransaction,
) (*domain.Transaction, error) {
	row := t.db.QueryRow(ctx, `
		INSERT INTO transactions (nft_id, seller_id, buyer_id, creator_id, price, royalties, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+transactionColumns,
		args.NFTID, args.SellerID, args.BuyerID, args.CreatorID, args.Price, args.Royalties, args.Status,
	)
	transaction, err := scanTransaction(row)
	if err != nil {
		return nil, convertErr(err, "creating transaction")
	}
	return transaction, nil
}

// GetByParticipantID возвращает сделки, где юзер был покупателем или продавцом,
// отсортированные по дате по убыванию.
func (t *TransactionRepository) GetByParticipantID(
	ctx context.Context,
	userID int64,
) ([]domain.Transaction, error) {
	rows, err := t.db.Query(ctx, `
		SELECT `+transactionColumns+` FROM transactions
		WHERE seller_id = $1 OR buyer_id = $1
		ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, convertErr(err, "getting transactions of user %d", userID)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "getting transactions of user %d", userID)
		}
		transactions = append(transactions, *transaction)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting transactions of user %d", userID)
	}
	return transactions, nil
}

// GetEarnings агрегирует заработок юзера: выручка с продаж за вычетом роялти плюс
// роялти, полученные как автором.
func (t *TransactionRepository) GetEarnings(
	ctx context.Context,
	userID int64,
) (*repoargs.EarningsAggregation, error) {
	row := t.db.QueryRow(ctx, `
		SELECT
			COALESCE((SELECT sum(price - royalties) FROM transactions
				WHERE seller_id = $1 AND status = 'Completed'), 0),
			COALESCE((SELECT sum(royalties) FROM transactions
				WHERE creator_id = $1 AND status = 'Completed' AND royalties > 0), 0)`,
		userID,
	)
	var earnings repoargs.EarningsAggregation
	if err := row.Scan(&earnings.SalesAmount, &earnings.RoyaltyAmount); err != nil {
		return nil, convertErr(err, "getting earnings of user %d", userID)
	}
	return &earnings, nil
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	var transaction domain.Transaction
	err := row.Scan(
		&transaction.ID,
		&transaction.CreatedAt,
		&transaction.NFTID,
		&transaction.SellerID,
		&transaction.BuyerID,
		&transaction.CreatorID,
		&transaction.Price,
		&transaction.Royalties,
		&transaction.Status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &transaction, nil
}
