package service

import "github.com/shopspring/decimal"

// UserService заведение пользователей с балансом. Регистрация и аутентификация
// вне зоны ответственности сервиса, баланс принимается как есть.
type UserService struct {
	accounts AccountRepository
}

func NewUserService(accounts AccountRepository) *UserService {
	return &UserService{accounts: accounts}
}

func (s *UserService) AddUser(userID string, balance decimal.Decimal) {
	s.accounts.AddUser(userID, balance)
}
