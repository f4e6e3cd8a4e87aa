//go:build !linux

package main

import "errors"

func (ps *processStats) readUsage() error {
	return errors.New("resource usage is only reported on linux")
}
