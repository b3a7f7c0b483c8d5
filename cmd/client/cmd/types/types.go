package types

type contextKey string

// ClientAppKey is where the root command stores the *client.App for
// subcommands to pick up.
const ClientAppKey contextKey = "clientApp"
