package types

type contextKey string

// ClientAppKey carries the initialized client app through the command
// context into subcommand packages.
const ClientAppKey contextKey = "client_app"
