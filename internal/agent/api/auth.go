// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и текущий пользователь.
package api

import "github.com/IvanChernomyrdin/careermind/internal/shared/models"

// Register выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /api/auth/register и возвращает RegisterResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Register(name, email, password, confirm string) (models.RegisterResponse, error) {
	var resp models.RegisterResponse
	err := c.PostJSON("/api/auth/register", models.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает access токен.
//
// Метод отправляет POST запрос на /api/auth/login. В случае ошибки возвращает
// непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (models.LoginResponse, error) {
	var resp models.LoginResponse
	err := c.PostJSON("/api/auth/login", models.LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Me запрашивает информацию о текущем пользователе.
//
// Метод отправляет GET запрос на /api/me и использует accessToken для авторизации.
func (c *Client) Me(accessToken string) (models.MeResponse, error) {
	var resp models.MeResponse
	err := c.GetJSON("/api/me", &resp, accessToken)
	return resp, err
}
