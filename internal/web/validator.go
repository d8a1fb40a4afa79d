// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package web

import (
	"github.com/go-playground/validator/v10"
)

// selfValidator is implemented by request bodies that report their own
// validation errors, such as view.Draft.
type selfValidator interface {
	Validate() error
}

// requestValidator plugs go-playground/validator into echo's c.Validate.
type requestValidator struct {
	v *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{v: validator.New()}
}

func (rv *requestValidator) Validate(i any) error {
	if sv, ok := i.(selfValidator); ok {
		return sv.Validate()
	}
	return rv.v.Struct(i)
}
