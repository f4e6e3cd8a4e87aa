package main

import (
	"time"

	"golang.org/x/sys/unix"
)

func (ps *processStats) readUsage() error {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return err
	}
	ps.cpuUsage = time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
	ps.maxRSSBytes = int64(ru.Maxrss) * 1024
	return nil
}
