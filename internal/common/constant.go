// Package common contains shared constants, sentinel errors and small helpers
// used by both the ERP server and its terminal client.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// DefaultAuthorName is stored as author when the acting profile has no name.
const DefaultAuthorName = "Usuário"

// SystemAuthorName marks rows created without a named profile (e.g. clients).
const SystemAuthorName = "Sistema"
