// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for parsing message override files and for
// evaluating the header template against the range bounds.
package hcl
