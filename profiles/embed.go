// Package profiles embeds the stock timing-belt profile catalog. It has no
// imports beyond embed so any package can depend on it.
package profiles

import "embed"

// Dir is the catalog directory inside FS.
const Dir = "catalog"

//go:embed catalog/*.yaml
var FS embed.FS
