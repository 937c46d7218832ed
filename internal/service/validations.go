package service

import (
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		// Base58-shaped wallet address: alphanumerics without 0, O, I, l
		validate.RegisterValidation("wallet_address", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if len(value) < 32 || len(value) > 44 {
				return false
			}
			for _, char := range value {
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) {
					return false
				}
				switch char {
				case '0', 'O', 'I', 'l':
					return false
				}
			}
			return true
		})
	})
}
