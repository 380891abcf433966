package middleware

import "github.com/go-playground/validator/v10"

// Validate is the shared request-body validator.
var Validate = validator.New()
