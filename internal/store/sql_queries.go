package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/Monica-R-Kashyapa/kodnest-auth/models"
)

// userColumns is the canonical column order used by every SELECT and the
// matching Scan calls in this package.
var userColumns = []string{"user_id", "name", "password_hash", "email", "phone", "created_at"}

func (db *DB) insertUser(user models.User) sq.InsertBuilder {
	return db.builder.
		Insert(user.TableName()).
		Columns("user_id", "name", "password_hash", "email", "phone").
		Values(user.UserID, user.Name, user.PasswordHash, user.Email, user.Phone)
}

func (db *DB) selectUserByName(name string) sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"name": name}).
		OrderBy("user_id").
		Limit(1)
}

func (db *DB) selectUserExists(column, value string) sq.SelectBuilder {
	return db.builder.
		Select("1").
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		Limit(1)
}

func (db *DB) selectAllUsers() sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("user_id")
}
