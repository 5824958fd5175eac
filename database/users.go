package database

import (
	"time"

	"sales-management/models"
)

func CreateUser(user *models.User) error {
	user.CreatedAt = time.Now()
	result, err := DB.Exec(
		"INSERT INTO users (name, email, password, role, created_at) VALUES (?, ?, ?, ?, ?)",
		user.Name, user.Email, user.Password, user.Role, user.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func GetUserByID(id int64) (*models.User, error) {
	return scanUser("SELECT id, name, email, password, role, created_at FROM users WHERE id = ?", id)
}

func GetUserByEmail(email string) (*models.User, error) {
	return scanUser("SELECT id, name, email, password, role, created_at FROM users WHERE email = ?", email)
}

func scanUser(query string, arg any) (*models.User, error) {
	var user models.User
	err := DB.QueryRow(query, arg).Scan(&user.ID, &user.Name, &user.Email,
		&user.Password, &user.Role, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func UserEmailExists(email string) (bool, error) {
	var count int64
	err := DB.QueryRow("SELECT COUNT(*) FROM users WHERE email = ?", email).Scan(&count)
	return count > 0, err
}

func ListUsers() ([]*models.User, error) {
	rows, err := DB.Query("SELECT id, name, email, password, role, created_at FROM users ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Password,
			&user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func CountUsers() (int64, error) {
	var count int64
	err := DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}
