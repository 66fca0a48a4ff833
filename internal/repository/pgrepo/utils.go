package pgrepo

import (
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-market/internal/domain"
)

// safeConvertUintToInt32 безопасно конвертирует uint в int32. В случае выхода значения за рамки
// диапазона выбрасывает ошибку.
func safeConvertUintToInt32(val uint) (int32, error) {
	if val > uint(math.MaxInt32) {
		return 0, fmt.Errorf("value is out of range: %d", val)
	}
	return int32(val), nil
}

func collectNFTs(rows pgx.Rows, msg string) ([]domain.NFT, error) {
	defer rows.Close()

	var nfts []domain.NFT
	for rows.Next() {
		nft, err := scanNFT(rows, true)
		if err != nil {
			return nil, convertErr(err, "%s", msg)
		}
		nfts = append(nfts, *nft)
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "%s", msg)
	}
	return nfts, nil
}
