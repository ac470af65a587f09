package usecase_test

import "errors"

var errConexion = errors.New("connection refused")
