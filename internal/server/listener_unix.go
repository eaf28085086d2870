//go:build linux || darwin

// Package server provides network listener functionality
package server

import (
	"errors"
	"net"
	"os"
	"strconv"
)

// GetListener supports systemd socket activation when SOCKET_ACTIVATION=1 and
// LISTEN_FDS is set for the current PID. Otherwise it falls back to
// net.Listen on addr.
func GetListener(addr string) (net.Listener, error) {
	if os.Getenv("SOCKET_ACTIVATION") != "1" {
		return net.Listen("tcp", addr)
	}
	if os.Getenv("LISTEN_FDS") == "1" {
		if pid, _ := strconv.Atoi(os.Getenv("LISTEN_PID")); pid == os.Getpid() {
			f := os.NewFile(uintptr(3), "listener") // SD_LISTEN_FDS_START = 3
			if f != nil {
				if ln, err := net.FileListener(f); err == nil {
					return ln, nil
				}
			}
		}
	}
	return nil, errors.New("socket activation requested but no valid LISTEN_FDS")
}
