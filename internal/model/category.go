package model

import "time"

// Category is a user-defined expense category name.
type Category struct {
	CreatedAt time.Time
	Username  string
	Name      string
	ID        int64
}
