//go:build windows

package main

import (
	_ "github.com/darkawower/multiwall/internal/platform/windows"
)
