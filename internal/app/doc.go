// Package app contains the core application flow. It defines the main App
// struct, its configuration, and the prompt, validate and print lifecycle,
// decoupled from any specific entrypoint like a CLI.
package app
