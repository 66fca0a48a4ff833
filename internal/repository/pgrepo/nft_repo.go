package pgrepo

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const nftColumns = `id, created_at, updated_at, name, description, price, image, royalty,
	creator_id, owner_id, listed`

// nftColumnsWithLikes дополняет выборку количеством лайков. Только для читающих запросов
// без блокировок.
const nftColumnsWithLikes = nftColumns + `,
	(SELECT count(*) FROM nft_likes l WHERE l.nft_id = nfts.id) AS likes_count`

type NFTRepository struct {
	db uow.DBTX
}

func NewNFTRepository(db uow.DBTX) *NFTRepository {
	return &NFTRepository{db: db}
}

// Create создает NFT. Владелец при создании всегда совпадает с автором.
func (n *NFTRepository) Create(ctx context.Context, args repoargs.CreateNFT) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `
		INSERT INTO nfts (name, description, price, image, royalty, creator_id, owner_id, listed)
		VALUES ($1, $2, $3, $4, $5, $6, $6, TRUE)
		RETURNING `+nftColumns,
		args.Name, args.Description, args.Price, args.Image, args.Royalty, args.CreatorID,
	)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "creating nft")
	}
	return nft, nil
}

func (n *NFTRepository) FindByID(ctx context.Context, id int64) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `SELECT `+nftColumnsWithLikes+` FROM nfts WHERE id = $1`, id)
	nft, err := scanNFT(row, true)
	if err != nil {
		return nil, convertErr(err, "finding nft by id %d", id)
	}
	return nft, nil
}

// FindByIDForUpdate читает NFT с блокировкой строки. Вызывается только внутри транзакции.
func (n *NFTRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `SELECT `+nftColumns+` FROM nfts WHERE id = $1 FOR UPDATE`, id)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "locking nft by id %d", id)
	}
	return nft, nil
}

func (n *NFTRepository) Update(ctx context.Context, args repoargs.UpdateNFT) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `
		UPDATE nfts
		SET name = $2, description = $3, price = $4, image = $5, updated_at = now()
		WHERE id = $1
		RETURNING `+nftColumns,
		args.ID, args.Name, args.Description, args.Price, args.Image,
	)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "updating nft %d", args.ID)
	}
	return nft, nil
}

func (n *NFTRepository) UpdatePrice(ctx context.Context, id int64, price decimal.Decimal) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `
		UPDATE nfts SET price = $2, updated_at = now() WHERE id = $1
		RETURNING `+nftColumns,
		id, price,
	)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "updating price of nft %d", id)
	}
	return nft, nil
}

func (n *NFTRepository) Delete(ctx context.Context, id int64) error {
	tag, err := n.db.Exec(ctx, `DELETE FROM nfts WHERE id = $1`, id)
	if err != nil {
		return convertErr(err, "deleting nft %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "deleting nft %d", id)
	}
	return nil
}

// GetListed возвращает каталог: все NFT, выставленные на продажу.
func (n *NFTRepository) GetListed(ctx context.Context) ([]domain.NFT, error) {
	rows, err := n.db.Query(ctx,
		`SELECT `+nftColumnsWithLikes+` FROM nfts WHERE listed ORDER BY created_at DESC`)
	if err != nil {
		return nil, convertErr(err, "getting listed nfts")
	}
	return collectNFTs(rows, "getting listed nfts")
}

func (n *NFTRepository) GetByOwnerID(ctx context.Context, ownerID int64) ([]domain.NFT, error) {
	rows, err := n.db.Query(ctx,
		`SELECT `+nftColumnsWithLikes+` FROM nfts WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, convertErr(err, "getting nfts of owner %d", ownerID)
	}
	return collectNFTs(rows, "getting nfts of owner")
}

// SetListed выставляет или снимает NFT с продажи.
func (n *NFTRepository) SetListed(ctx context.Context, id int64, listed bool) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `
		UPDATE nfts SET listed = $2, updated_at = now() WHERE id = $1
		RETURNING `+nftColumns,
		id, listed,
	)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "setting listed=%t for nft %d", listed, id)
	}
	return nft, nil
}

// TransferOwnership передает NFT новому владельцу и снимает его с продажи одним условным
// UPDATE: запрос проходит только пока listed = TRUE, так что два конкурирующих покупателя
// не могут купить один и тот же NFT - проигравший получит domain.ErrRecordNotFound.
func (n *NFTRepository) TransferOwnership(ctx context.Context, id, newOwnerID int64) (*domain.NFT, error) {
	row := n.db.QueryRow(ctx, `
		UPDATE nfts
		SET owner_id = $2, listed = FALSE, updated_at = now()
		WHERE id = $1 AND listed
		RETURNING `+nftColumns,
		id, newOwnerID,
	)
	nft, err := scanNFT(row, false)
	if err != nil {
		return nil, convertErr(err, "transferring ownership of nft %d", id)
	}
	return nft, nil
}

// AddLike добавляет NFT в избранное юзера. Повторное добавление возвращает domain.ErrDuplicateKey.
func (n *NFTRepository) AddLike(ctx context.Context, nftID, userID int64) error {
	tag, err := n.db.Exec(ctx, `
		INSERT INTO nft_likes (nft_id, user_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING`,
		nftID, userID,
	)
	if err != nil {
		return convertErr(err, "adding like to nft %d", nftID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(domain.ErrDuplicateKey, "adding like to nft %d", nftID)
	}
	return nil
}

func (n *NFTRepository) RemoveLike(ctx context.Context, nftID, userID int64) error {
	if _, err := n.db.Exec(ctx,
		`DELETE FROM nft_likes WHERE nft_id = $1 AND user_id = $2`, nftID, userID); err != nil {
		return convertErr(err, "removing like from nft %d", nftID)
	}
	return nil
}

func (n *NFTRepository) GetLikerIDs(ctx context.Context, nftID int64) ([]int64, error) {
	rows, err := n.db.Query(ctx, `SELECT user_id FROM nft_likes WHERE nft_id = $1`, nftID)
	if err != nil {
		return nil, convertErr(err, "getting likers of nft %d", nftID)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "getting likers of nft %d", nftID)
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting likers of nft %d", nftID)
	}
	return ids, nil
}

func (n *NFTRepository) ClearLikes(ctx context.Context, nftID int64) error {
	if _, err := n.db.Exec(ctx, `DELETE FROM nft_likes WHERE nft_id = $1`, nftID); err != nil {
		return convertErr(err, "clearing likes of nft %d", nftID)
	}
	return nil
}

// Trending возвращает выставленные на продажу NFT, созданные не раньше since,
// отсортированные по количеству лайков.
func (n *NFTRepository) Trending(ctx context.Context, since time.Time, limit uint) ([]domain.NFT, error) {
	lim, limErr := safeConvertUintToInt32(limit)
	if limErr != nil {
		return nil, convertErr(limErr, "getting trending nfts")
	}
	rows, err := n.db.Query(ctx, `
		SELECT `+nftColumnsWithLikes+` FROM nfts
		WHERE listed AND created_at >= $1
		ORDER BY likes_count DESC, created_at DESC
		LIMIT $2`,
		since, lim,
	)
	if err != nil {
		return nil, convertErr(err, "getting trending nfts")
	}
	return collectNFTs(rows, "getting trending nfts")
}

// TopCreators группирует NFT, созданные не раньше since, по автору и возвращает
// авторов с наибольшим числом созданных NFT.
func (n *NFTRepository) TopCreators(
	ctx context.Context,
	since time.Time,
	limit uint,
) ([]repoargs.TopCreatorRow, error) {
	lim, limErr := safeConvertUintToInt32(limit)
	if limErr != nil {
		return nil, convertErr(limErr, "getting top creators")
	}
	rows, err := n.db.Query(ctx, `
		SELECT u.id, u.fullname, u.profile_picture, count(*) AS nft_count
		FROM nfts
		JOIN users u ON u.id = nfts.creator_id
		WHERE nfts.created_at >= $1
		GROUP BY u.id, u.fullname, u.profile_picture
		ORDER BY nft_count DESC
		LIMIT $2`,
		since, lim,
	)
	if err != nil {
		return nil, convertErr(err, "getting top creators")
	}
	defer rows.Close()

	var creators []repoargs.TopCreatorRow
	for rows.Next() {
		var c repoargs.TopCreatorRow
		if scanErr := rows.Scan(&c.CreatorID, &c.Fullname, &c.ProfilePicture, &c.NFTCount); scanErr != nil {
			return nil, convertErr(scanErr, "getting top creators")
		}
		creators = append(creators, c)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting top creators")
	}
	return creators, nil
}

func scanNFT(row rowScanner, withLikes bool) (*domain.NFT, error) {
	var nft domain.NFT
	dest := []any{
		&nft.ID,
		&nft.CreatedAt,
		&nft.UpdatedAt,
		&nft.Name,
		&nft.Description,
		&nft.Price,
		&nft.Image,
		&nft.Royalty,
		&nft.CreatorID,
		&nft.OwnerID,
		&nft.Listed,
	}
	if withLikes {
		dest = append(dest, &nft.LikesCount)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &nft, nil
}
