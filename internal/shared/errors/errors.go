// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на сообщения страниц (web) и HTTP-статусы (api).
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля формы и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Пароль и подтверждение не совпадают
	ErrPasswordMismatch = errors.New("passwords do not match")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
	// ожидаемая ошибка
	ErrExpectedError = errors.New("expected error")
	// неожидаемая ошибка
	ErrUnexpectedError = errors.New("unexpected error")
)

// только для форм советов
var (
	ErrUnknownStatus = errors.New("unknown academic status")
)
