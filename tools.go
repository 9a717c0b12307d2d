//go:build tools
// +build tools

package daytime

import (
	_ "github.com/dmarkham/enumer"
)
