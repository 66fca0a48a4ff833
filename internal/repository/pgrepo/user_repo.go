package pgrepo

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-market/internal/domain"
	"github.com/fsdevblog/groph-market/internal/repository/repoargs"
	"github.com/fsdevblog/groph-market/pkg/uow"
)

const userColumns = `id, created_at, updated_at, fullname, age, email, encrypted_password,
	profile_picture, balance, last_claimed_reward`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create создает юзера в базе данных. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) Create(ctx context.Context, args repoargs.CreateUser) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (fullname, age, email, encrypted_password, profile_picture, balance)
		VALUES ($1, $2, lower($3), $4, $5, $6)
		RETURNING `+userColumns,
		args.Fullname, args.Age, args.Email, args.Password, args.ProfilePicture, args.Balance,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return user, nil
}

// FindByEmail ищет юзера по email (без учета регистра). Возвращает ошибку domain.ErrRecordNotFound
// если запись не найдена, во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

func (u *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

// FindByIDForUpdate читает юзера с блокировкой строки (SELECT ... FOR UPDATE). Вызывается только
// внутри транзакции; блокировка держится до её конца.
func (u *UserRepository) FindByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "locking user by id %d", id)
	}
	return user, nil
}

// UpdateBalance выставляет юзеру новый баланс.
func (u *UserRepository) UpdateBalance(ctx context.Context, id int64, balance decimal.Decimal) error {
	tag, err := u.db.Exec(ctx, `UPDATE users SET balance = $2, updated_at = now() WHERE id = $1`, id, balance)
	if err != nil {
		return convertErr(err, "updating balance of user %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(errNoRowsAffected, "updating balance of user %d", id)
	}
	return nil
}

// ClaimReward начисляет ежедневную награду одним условным UPDATE: запрос проходит только если
// с прошлого начисления минуло не меньше cooldown. Если награда еще не готова, вернется
// domain.ErrRecordNotFound (условие не совпало, строк нет).
func (u *UserRepository) ClaimReward(
	ctx context.Context,
	id int64,
	amount decimal.Decimal,
	cooldown string,
) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		UPDATE users
		SET balance = balance + $2, last_claimed_reward = now(), updated_at = now()
		WHERE id = $1
		  AND (last_claimed_reward IS NULL OR last_claimed_reward <= now() - $3::interval)
		RETURNING `+userColumns,
		id, amount, cooldown,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "claiming reward for user %d", id)
	}
	return user, nil
}

// FindRewardEligibleIDs возвращает id юзеров, которым доступна ежедневная награда.
func (u *UserRepository) FindRewardEligibleIDs(ctx context.Context, cooldown string) ([]int64, error) {
	rows, err := u.db.Query(ctx, `
		SELECT id FROM users
		WHERE last_claimed_reward IS NULL OR last_claimed_reward <= now() - $1::interval`,
		cooldown,
	)
	if err != nil {
		return nil, convertErr(err, "finding reward eligible users")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if scanErr := rows.Scan(&id); scanErr != nil {
			return nil, convertErr(scanErr, "finding reward eligible users")
		}
		ids = append(ids, id)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "finding reward eligible users")
	}
	return ids, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Fullname,
		&user.Age,
		&user.Email,
		&user.EncryptedPassword,
		&user.ProfilePicture,
		&user.Balance,
		&user.LastClaimedReward,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
