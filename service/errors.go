package service

import "errors"

// ErrPagoMaximoInalcanzable indica que ningún plazo dentro del máximo
// permitido produce un pago mensual total que cumpla con el límite.
var ErrPagoMaximoInalcanzable = errors.New("ningún plazo dentro del máximo satisface el pago mensual límite")
