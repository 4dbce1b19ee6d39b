// Серверные модели: пользователь и состояние браузерной сессии
package models

import (
	"time"

	"github.com/google/uuid"
)

// User — запись справочника пользователей. Ключ — Email.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
