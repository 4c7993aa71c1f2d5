package schemas

import "embed"

// SchemasFS содержит JSON-схемы событий, встраиваемые в бинарник.
//
//go:embed events
var SchemasFS embed.FS
