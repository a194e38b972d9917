package main

import (
	"fmt"
	"runtime/debug"
)

const (
	serverName    = "Happy-Vibe-Go"
	serverVersion = "1.0.0"
)

// gitCommit may be set with `-ldflags "-X main.gitCommit=$(git rev-parse --short HEAD)"`.
// Without it the VCS revision stamped by the go tool is used when available.
var gitCommit string

func serverSignature() string {
	return fmt.Sprintf("%s/%s (%s)", serverName, serverVersion, revision())
}

func revision() string {
	if gitCommit != "" {
		return gitCommit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				if len(setting.Value) > 12 {
					return setting.Value[:12]
				}
				return setting.Value
			}
		}
	}
	return "unknown"
}
