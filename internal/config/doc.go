// Package config defines the format-agnostic message model for the
// application, along with the Loader interface for reading message overrides
// from external sources.
//
// The `config.Messages` value is the single source of user-facing text for
// the `app` package. Concrete loaders, such as for HCL, are provided in
// separate packages.
package config
