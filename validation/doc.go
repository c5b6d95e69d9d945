// Package validation provides struct-tag validation using
// go-playground/validator.
//
// Field names in errors follow the struct's mapstructure, yaml or json tag, so
// messages refer to keys as they appear in configuration files.
//
//	type Limits struct {
//	    URIMaxLength int `mapstructure:"uri_max_length" validate:"min=1,max=65534"`
//	}
//
//	if err := validation.Validate(limits); err != nil {
//	    return err
//	}
package validation
