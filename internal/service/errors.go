package service

import "errors"

// Ошибки валидации: ловятся до любого обращения к хранилищу.
var (
	ErrTitleRequired    = errors.New("title is required")
	ErrURLRequired      = errors.New("url is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidIcon      = errors.New("unknown folder icon")
	ErrLoginRequired    = errors.New("login is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidTheme     = errors.New("theme must be light, dark or system")
)

// Ошибки доменных правил.
var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrBuiltinProtected   = errors.New("built-in search engine is protected")
)

// IsValidationError сообщает, относится ли ошибка к валидации входа.
func IsValidationError(err error) bool {
	for _, e := range []error{
		ErrTitleRequired, ErrURLRequired, ErrNameRequired,
		ErrInvalidIcon, ErrLoginRequired, ErrPasswordTooShort, ErrInvalidTheme,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
