package domain

import "time"

// User is an account that can be credited with creating or editing terms.
type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Name      *string   `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}
