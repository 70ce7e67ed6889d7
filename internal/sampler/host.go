// internal/sampler/host.go
package sampler

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"

	"github.com/tamzrod/hwmon-serial/internal/rate"
)

// Host implements HostSource on gopsutil.
type Host struct{}

func (Host) CPUPercent(ctx context.Context, window time.Duration) (float64, error) {
	v, err := cpu.PercentWithContext(ctx, window, false)
	if err != nil {
		return 0, err
	}
	if len(v) == 0 {
		return 0, errors.New("sampler: no cpu percent reported")
	}
	return v[0], nil
}

func (Host) MemoryPercent(ctx context.Context) (float64, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return vm.UsedPercent, nil
}

// Counters sums disk I/O over whole devices and network I/O over all interfaces.
func (Host) Counters(ctx context.Context) (rate.Counters, error) {
	var c rate.Counters

	disks, derr := disk.IOCountersWithContext(ctx)
	if derr == nil {
		for name, d := range disks {
			if isPartition(name, disks) {
				continue
			}
			c.DiskRead += d.ReadBytes
			c.DiskWrite += d.WriteBytes
		}
	}

	nets, nerr := net.IOCountersWithContext(ctx, false)
	if nerr == nil && len(nets) > 0 {
		c.NetSent = nets[0].BytesSent
		c.NetRecv = nets[0].BytesRecv
	}

	if derr != nil && nerr != nil {
		return c, errors.Join(derr, nerr)
	}
	return c, nil
}

// isPartition reports whether name is a partition of another listed device
// (sda1 of sda, nvme0n1p2 of nvme0n1, mmcblk0p1 of mmcblk0).
// A parent ending in a digit takes a "p" separator, so loop10, dm-10 and
// md12 stay whole devices next to loop1, dm-1 and md1.
// Partitions are skipped so their bytes are not counted twice.
func isPartition[T any](name string, devices map[string]T) bool {
	for parent := range devices {
		if parent == "" || parent == name || !strings.HasPrefix(name, parent) {
			continue
		}
		rest := name[len(parent):]
		if isDigits(parent[len(parent)-1:]) {
			var ok bool
			if rest, ok = strings.CutPrefix(rest, "p"); !ok {
				continue
			}
		}
		if rest != "" && isDigits(rest) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
